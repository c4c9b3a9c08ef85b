// Package collide finds every triangle in a scene whose filled surface
// intersects that of at least one other triangle, using a recursive
// axis-aligned space partition so that most pairs are pruned without ever
// calling geom.Intersects on them. It reports triangle indices, not pairs.
package collide
