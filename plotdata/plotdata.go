// Package plotdata adapts lvfractal artifacts to the data interfaces of
// gonum.org/v1/plot/plotter, so a rendering collaborator can hand them to
// plotter.NewLine, plotter.NewHeatMap or a 3D scatter without copying:
//
//	geom.PolyLine        → plotter.XYer     (Koch curves, turtle strokes)
//	*mandelbrot.Raster   → plotter.GridXYZ  (heat maps, contours)
//	*menger.VoxelGrid    → plotter.XYZer    (solid cell centres)
//	[]geom.Tetrahedron   → plotter.XYZer    (vertex cloud, 4 per tetrahedron)
//
// Only in-memory views live here; colormaps, canvases and file formats stay
// with the caller.
package plotdata

import (
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/mandelbrot"
	"github.com/katalvlaran/lvfractal/menger"
)

// Curve exposes a polyline as plotter.XYer.
func Curve(p geom.PolyLine) plotter.XYer { return p }

// Strokes exposes several polylines, e.g. a turtle drawing split by pen-ups.
func Strokes(ps []geom.PolyLine) []plotter.XYer {
	out := make([]plotter.XYer, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// Field exposes an escape-time raster as plotter.GridXYZ: columns follow the
// real axis, rows the imaginary axis and Z is the iteration count.
func Field(r *mandelbrot.Raster) plotter.GridXYZ { return fieldGrid{r} }

type fieldGrid struct{ r *mandelbrot.Raster }

func (g fieldGrid) Dims() (c, r int)   { return g.r.Width(), g.r.Height() }
func (g fieldGrid) Z(c, r int) float64 { return float64(g.r.At(c, r)) }
func (g fieldGrid) X(c int) float64    { return g.r.X(c) }
func (g fieldGrid) Y(r int) float64    { return g.r.Y(r) }

// Voxels exposes the centres of the solid cells of g, in x-major order.
func Voxels(g *menger.VoxelGrid) plotter.XYZer {
	pts := make(plotter.XYZs, 0, g.SolidCount())
	for v := range g.Solids() {
		pts = append(pts, plotter.XYZ{X: float64(v.X) + 0.5, Y: float64(v.Y) + 0.5, Z: float64(v.Z) + 0.5})
	}
	return pts
}

// Vertices exposes every vertex of ts, four per tetrahedron in input order.
func Vertices(ts []geom.Tetrahedron) plotter.XYZer {
	pts := make(plotter.XYZs, 0, 4*len(ts))
	for _, t := range ts {
		for _, v := range t {
			pts = append(pts, plotter.XYZ{X: v.X, Y: v.Y, Z: v.Z})
		}
	}
	return pts
}
