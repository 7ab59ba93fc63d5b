// Package menger generates Menger sponges as boolean voxel grids.
//
// A sponge of order n is a cube of side 3^n. Cell (x,y,z) is removed when,
// at some base-3 digit position, at least two of its three coordinates carry
// the digit 1, i.e. the cell sits at a face centre or the body centre of
// a 3×3×3 block at some scale. The test peels digits least-significant first
// and needs no recursion tree:
//
//	order 0: 1×1×1, 1 solid cell
//	order 1: 3×3×3, 20 solid cells (7 removed: 6 face centres + body centre)
//	order n: 27^n cells, 20^n solid
//
// Generation is embarrassingly parallel: every x-slab is written by exactly
// one worker goroutine into a disjoint region of the grid, so no locks are
// needed. Cost is Θ(27^n · n), so orders above 5 or 6 exhaust memory quickly;
// ceilings from limits.Limits are enforced before allocation.
//
// Example:
//
//	grid, err := menger.Generate(ctx, 3, menger.WithWorkers(4))
//	if err != nil {
//		return err
//	}
//	fmt.Println(grid.Side(), grid.SolidCount()) // 27 8000
package menger
