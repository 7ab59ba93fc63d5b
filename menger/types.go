package menger

import "iter"

// Voxel addresses one grid cell.
type Voxel struct {
	X, Y, Z int
}

// VoxelGrid is a cubic occupancy grid of side 3^order. true marks a solid
// cell. It is written once during Generate and read-only afterwards.
//
// Cells are stored flat in x-major order: index = (x·side + y)·side + z.
type VoxelGrid struct {
	order int
	side  int
	cells []bool
}

// Order returns the recursion depth the grid was generated with.
func (g *VoxelGrid) Order() int { return g.order }

// Side returns the edge length 3^order.
func (g *VoxelGrid) Side() int { return g.side }

// Len returns the total number of cells, side³.
func (g *VoxelGrid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y,z) lies inside the grid.
func (g *VoxelGrid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.side && y >= 0 && y < g.side && z >= 0 && z < g.side
}

// At reports whether cell (x,y,z) is solid. Out-of-bounds cells are empty.
func (g *VoxelGrid) At(x, y, z int) bool {
	if !g.InBounds(x, y, z) {
		return false
	}
	return g.cells[g.index(x, y, z)]
}

// SolidCount returns the number of solid cells. Complexity: O(side³).
func (g *VoxelGrid) SolidCount() int {
	n := 0
	for _, solid := range g.cells {
		if solid {
			n++
		}
	}
	return n
}

// Solids yields every solid cell in x-major order.
func (g *VoxelGrid) Solids() iter.Seq[Voxel] {
	return func(yield func(Voxel) bool) {
		for i, solid := range g.cells {
			if !solid {
				continue
			}
			x, y, z := g.Coordinate(i)
			if !yield(Voxel{X: x, Y: y, Z: z}) {
				return
			}
		}
	}
}

// Slice returns the cross-section at depth z as rows [y][x]. A z without a
// base-3 digit 1 yields a Sierpiński carpet of the same order.
// Out-of-range z returns nil.
func (g *VoxelGrid) Slice(z int) [][]bool {
	if z < 0 || z >= g.side {
		return nil
	}
	rows := make([][]bool, g.side)
	for y := range rows {
		rows[y] = make([]bool, g.side)
		for x := range rows[y] {
			rows[y][x] = g.cells[g.index(x, y, z)]
		}
	}
	return rows
}

// index maps (x,y,z) to the flat x-major index.
func (g *VoxelGrid) index(x, y, z int) int {
	return (x*g.side+y)*g.side + z
}

// Coordinate converts a flat index back to (x,y,z).
func (g *VoxelGrid) Coordinate(idx int) (x, y, z int) {
	z = idx % g.side
	idx /= g.side
	return idx / g.side, idx % g.side, z
}
