// Package limits holds the error taxonomy and the resource ceilings shared by
// every lvfractal generator.
//
// Two sentinel classes exist:
//
//   - ErrInvalidParameter  — negative order/iterations, non-positive sizes,
//     degenerate ranges (min ≥ max), unknown symbols.
//   - ErrResourceExhausted — the requested artifact would exceed a configured
//     ceiling. Checked before any allocation happens.
//
// Generators wrap them with a method tag, so callers branch with errors.Is:
//
//	grid, err := menger.Generate(ctx, 7)
//	if errors.Is(err, limits.ErrResourceExhausted) {
//		// lower the order or raise Limits.MaxVoxelCells
//	}
//
// Ceilings live in Limits. A zero field means "use the default"; Load and
// Parse read the same structure from YAML:
//
//	max_voxel_cells: 14348907
//	max_raster_work: 17179869184
//	workers: 8
package limits
