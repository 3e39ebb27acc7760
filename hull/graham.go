package hull

import (
	"slices"
)

// GrahamScan rearranges ps in place so that a prefix holds the convex hull
// vertices in counter-clockwise order and returns the length of that
// prefix. Unlike QuickHull the tail may contain stale copies of hull
// vertices: collapsed collinear points are overwritten, not swapped.
func GrahamScan(ps []Vec) int {
	n := len(ps)
	if n < 2 {
		return n
	}

	lo := 0
	for i := range ps {
		if lexLess(ps[i], ps[lo]) {
			lo = i
		}
	}

	// the lexicographic minimum is always a hull vertex and anchors the
	// polar sort. All geometry below is evaluated relative to it with
	// cross3; the points themselves are only swapped or copied, never
	// recomputed, so the hull vertices stay bit-identical to the input.
	ps[lo], ps[0] = ps[0], ps[lo]
	p0 := ps[0]

	// sort by polar angle around the anchor. Collinear points tie-break
	// lexicographically, which puts the one closer to the anchor first.
	slices.SortFunc(ps[1:], func(u, v Vec) int {
		if c := cross3(p0, u, v); c != 0 {
			if c > 0 {
				return -1
			}

			return 1
		}

		return compareLex(u, v)
	})

	// collapse runs of equal-angle points down to the farthest one.
	// Intermediate collinear points can never be hull vertices and would
	// corrupt the turn test of the sweep below.
	m := 1
	for i := 1; i < n; i++ {
		u := ps[i]
		for i < n-1 {
			v := ps[i+1]
			if cross3(p0, u, v) != 0 {
				break
			}

			u = v
			i++
		}

		ps[m] = u
		m++
	}

	if ps[1] == p0 {
		// every point coincides with the anchor
		return 1
	}

	// sweep with a stack living in ps[0..s]. The <= 0 test pops right
	// turns and straight continuations alike, so no three consecutive
	// hull vertices end up collinear.
	s := 1
	for i := 2; i < m; i++ {
		cur := ps[i]

		for cross3(ps[s-1], ps[s], cur) <= 0 {
			s--
			assertf(s > 0, "graham scan: sweep tried to pop the anchor")
		}

		s++
		ps[i], ps[s] = ps[s], ps[i]
	}

	return s + 1
}
