// Package fixtures builds collide.Scene values for testing and
// benchmarking: either by placing kernel-generated solids at explicit
// positions, or by generating clustered random triangles directly, as the
// reference test suite's seed scenarios do.
package fixtures
