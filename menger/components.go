package menger

// neighborOffsets lists the six face-adjacent directions.
var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Components finds all face-connected regions of solid cells.
// Returns a slice of components; each component is a slice of flat cell
// indices in BFS discovery order. Use Coordinate to recover (x,y,z).
//
// Every Menger sponge is a single component; this is mostly useful to verify
// hand-edited or sliced grids.
//
// Time:   O(side³·6).
// Memory: O(side³) for visited flags and output.
func (g *VoxelGrid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, solid := range g.cells {
		if !solid || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy, uz := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vx, vy, vz := ux+d[0], uy+d[1], uz+d[2]
				if !g.At(vx, vy, vz) {
					continue
				}
				vi := g.index(vx, vy, vz)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
