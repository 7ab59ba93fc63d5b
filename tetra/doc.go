// Package tetra generates Sierpiński tetrahedra by recursive midpoint
// subdivision.
//
// At order 0 the base tetrahedron is returned unchanged. At order n each
// tetrahedron is split into four corner tetrahedra of half the edge length;
// the central octahedron is discarded. The result holds exactly 4^n
// tetrahedra whose total volume is V·2^-n.
//
// Midpoint pairing (stable contract, it fixes rendering order):
//
//	m0=(v0,v1) m1=(v0,v2) m2=(v0,v3) m3=(v1,v2) m4=(v1,v3) m5=(v2,v3)
//
//	child 0: [v0, m0, m1, m2]
//	child 1: [v1, m0, m3, m4]
//	child 2: [v2, m1, m3, m5]
//	child 3: [v3, m2, m4, m5]
//
// Children are emitted depth-first in that order.
package tetra
