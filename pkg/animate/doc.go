// Package animate ports the reference implementation's time-varying
// triangles: a triangle spinning around an arbitrary axis at a fixed
// angular speed. It builds on pkg/geom.Line.RotatePoint and produces
// ordinary pkg/collide.Scene values for a given instant, but is never
// imported by pkg/geom or pkg/collide themselves — the core has no notion
// of time.
package animate
