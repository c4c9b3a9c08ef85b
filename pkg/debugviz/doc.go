// Package debugviz renders the coplanar-case 2D projection computed by
// pkg/geom's intersection predicate as an SVG frame, for inspecting a
// single disputed triangle pair by eye. It is a diagnostic consumer only:
// nothing it renders feeds back into pkg/geom's decision.
package debugviz
