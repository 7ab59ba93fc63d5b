// Package lvfractal is an in-memory fractal geometry engine: five
// generators that turn a recursion depth (or a sampled rectangle of the
// complex plane) into plain Go values a renderer can consume.
//
// What is inside?
//
//	• Menger sponge: boolean voxel grid of side 3^n, digit rule, parallel fill
//	• Sierpinski tetrahedron: 4^n sub-tetrahedra by edge-midpoint subdivision
//	• L-systems: parallel rewriting, lazy streams, turtle commands
//	• Koch curve & snowflake: 4^n+1 point polylines
//	• Mandelbrot set: escape-time raster over a rectangular window
//
// Why lvfractal?
//
//   - Deterministic: the same inputs always produce identical output
//   - Bounded: every generator checks its output size against limits.Limits
//     before allocating, and honours context cancellation
//   - Plot-ready: geometry uses gonum spatial vectors; plotdata adapts the
//     results to gonum/plot interfaces
//
// Packages:
//
//	geom/       — Point2D/Point3D, Triangle, Tetrahedron, PolyLine
//	limits/     — resource ceilings, YAML loading, shared sentinel errors
//	menger/     — Menger sponge voxel grids
//	tetra/      — Sierpinski tetrahedron subdivision
//	lsystem/    — L-system rewriting and turtle interpretation
//	koch/       — Koch curves and snowflakes
//	mandelbrot/ — escape-time fields
//	plotdata/   — gonum/plot adapters
//	cmd/lvfractal — command-line front end
//
// Quick start:
//
//	g, err := menger.Generate(ctx, 2)
//	pts, err := koch.Curve(ctx, 3, geom.Point2D{}, geom.Point2D{X: 1})
//	f, err := mandelbrot.ComputeField(ctx, mandelbrot.DefaultRange(), 80, 40, 100)
//
// Errors: invalid inputs wrap limits.ErrInvalidParameter; outputs that would
// exceed a ceiling wrap limits.ErrResourceExhausted. Use errors.Is.
package lvfractal
