// Package koch generates von Koch curves and snowflakes as ordered point
// sequences.
//
// Order 0 is the segment [start, end]. Each further order splits every
// segment into thirds p0→p1→p3→p4 and raises an equilateral bump p2 on the
// middle third by rotating it 60° counter-clockwise around p1:
//
//	            p2
//	           /  \
//	p0 ──── p1      p3 ──── p4
//
// Sub-curves are concatenated without repeating the shared junction points,
// so a curve of order k has exactly 4^k segments and 4^k + 1 points, starts at
// start and ends at end.
//
// A snowflake joins three curves over the sides of a triangle. With the
// vertices in clockwise order (as in UnitSnowflake) the bumps point outward.
package koch
