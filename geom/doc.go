// Package geom defines the immutable geometric values exchanged between the
// lvfractal generators and a rendering collaborator.
//
// Points are gonum spatial vectors (r2.Vec, r3.Vec) so callers can use the
// full gonum vector algebra on generator output without conversions:
//
//	Point2D = r2.Vec   // Koch curves, turtle paths
//	Point3D = r3.Vec   // tetrahedron vertices
//
// Composite values:
//
//	Tetrahedron — exactly four Point3D; Faces() yields its four triangles.
//	Triangle    — three Point3D, a mesh face.
//	PolyLine    — ordered Point2D; consecutive points joined by segments.
package geom
