// Package mandelbrot computes escape-time rasters of the Mandelbrot set.
//
// Every cell (i,j) of a width×height raster samples the complex point
//
//	c = x_i + y_j·i,  x_i = xmin + i·(xmax−xmin)/(width−1)
//	                  y_j = ymin + j·(ymax−ymin)/(height−1)
//
// (a single column/row samples xmin/ymin) and stores how many iterations of
// z ← z² + c, starting at z = 0, ran while |z|² ≤ 4, capped at maxIter.
// Points inside the set reach maxIter; c = 3 escapes after one step.
//
// Cells are independent. ComputeField fans columns out to a bounded pool of
// goroutines that write disjoint slices of the raster, and polls ctx between
// columns so very large requests can be abandoned.
//
// The raster is indexed [x][y] (column-major) and is immutable once returned.
package mandelbrot
