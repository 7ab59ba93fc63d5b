// SPDX-License-Identifier: MIT
// Package: lvfractal/geom
//
// types.go — points, tetrahedra, triangles and polylines.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point2D is a planar coordinate pair.
type Point2D = r2.Vec

// Point3D is a spatial coordinate triple.
type Point3D = r3.Vec

// Midpoint returns the midpoint of segment ab.
func Midpoint(a, b Point3D) Point3D {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Triangle is one face of a tetrahedral mesh.
type Triangle [3]Point3D

// Tetrahedron holds exactly four vertices. Values are copied, never shared.
type Tetrahedron [4]Point3D

// faceIndex enumerates the four faces as vertex triples: 012, 013, 023, 123.
var faceIndex = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// Faces returns the four triangular faces in a fixed order (012, 013, 023, 123).
func (t Tetrahedron) Faces() [4]Triangle {
	var out [4]Triangle
	for f, idx := range faceIndex {
		out[f] = Triangle{t[idx[0]], t[idx[1]], t[idx[2]]}
	}
	return out
}

// Volume returns the unsigned volume |(b-a)·((c-a)×(d-a))| / 6.
func (t Tetrahedron) Volume() float64 {
	ab := r3.Sub(t[1], t[0])
	ac := r3.Sub(t[2], t[0])
	ad := r3.Sub(t[3], t[0])
	return math.Abs(r3.Dot(ab, r3.Cross(ac, ad))) / 6
}

// Centroid returns the arithmetic mean of the four vertices.
func (t Tetrahedron) Centroid() Point3D {
	sum := r3.Add(r3.Add(t[0], t[1]), r3.Add(t[2], t[3]))
	return r3.Scale(0.25, sum)
}

// PolyLine is an ordered point sequence joined by straight segments.
type PolyLine []Point2D

// Len returns the number of points.
func (p PolyLine) Len() int { return len(p) }

// XY returns the coordinates of point i.
func (p PolyLine) XY(i int) (x, y float64) { return p[i].X, p[i].Y }

// Segments returns the number of segments (len-1, or 0 for fewer than 2 points).
func (p PolyLine) Segments() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// Length returns the total Euclidean length of all segments.
func (p PolyLine) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += r2.Norm(r2.Sub(p[i], p[i-1]))
	}
	return total
}

// Bounds returns the axis-aligned bounding box. An empty polyline yields the zero box.
func (p PolyLine) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: p[0], Max: p[0]}
	for _, q := range p[1:] {
		b.Min.X = math.Min(b.Min.X, q.X)
		b.Min.Y = math.Min(b.Min.Y, q.Y)
		b.Max.X = math.Max(b.Max.X, q.X)
		b.Max.Y = math.Max(b.Max.Y, q.Y)
	}
	return b
}
