package hull

import (
	"slices"
)

// QuickHull rearranges ps in place so that a prefix holds the convex hull
// vertices in counter-clockwise order and returns the length of that
// prefix. The remaining positions keep the non-hull points in unspecified
// order; the whole slice stays a permutation of the input.
func QuickHull(ps []Vec) int {
	if len(ps) < 2 {
		return len(ps)
	}

	lo, hi := 0, 0
	for i := range ps {
		if lexLess(ps[i], ps[lo]) {
			lo = i
		}

		if lexLess(ps[hi], ps[i]) {
			hi = i
		}
	}

	left, right := ps[lo], ps[hi]
	if left == right {
		// every point is the same point
		return 1
	}

	// split into the arc above the directed line right->left and the arc
	// below it. Points exactly on the line fall to the lower side.
	v := left.Sub(right)
	pivot := halfStablePartition(ps, func(p Vec) bool {
		if p == right {
			return true
		}

		return Cross(p.Sub(right), v) > 0
	})

	// canonicalize both arcs so each starts with its fixed edge anchor,
	// which is what the recursion below relies on
	slices.SortFunc(ps[:pivot], func(a, b Vec) int { return compareLex(b, a) })
	slices.SortFunc(ps[pivot:], compareLex)
	assertf(ps[0] == right, "quickhull: upper arc does not start at the right extreme %v", right)
	assertf(ps[pivot] == left, "quickhull: lower arc does not start at the left extreme %v", left)

	leftBoundary := findHull(ps[:pivot], right, left)
	rightBoundary := pivot + findHull(ps[pivot:], left, right)

	// A point right after the pivot that sits exactly on the line between
	// left and right is a spurious collinear vertex. Remove it.
	if pivot+1 != len(ps) {
		p := ps[pivot+1]
		if Cross(right.Sub(left), p.Sub(left)) == 0 {
			assertf(pivot+2 == rightBoundary, "quickhull: collinear point %v survived deep in the lower arc", p)
			rightBoundary--
		}
	}

	return swapRanges(ps, pivot, rightBoundary, leftBoundary)
}

// findHull is the recursive step of QuickHull. It requires ps[0] to equal
// the edge anchor u and every point of ps to lie on or outside the
// directed edge u->v. The hull vertices of this arc are moved to the
// front of ps and their count is returned.
func findHull(ps []Vec, u, v Vec) int {
	assertf(ps[0] == u, "quickhull: range must start with its edge anchor %v, got %v", u, ps[0])
	if len(ps) == 1 {
		return 1
	}

	// find the point farthest from the line u->v. ps[0] is the partition
	// boundary (u itself) and can be skipped; at least one other point
	// exists here.
	d := v.Sub(u)
	far, dist := -1, -1.0
	for i := 1; i < len(ps); i++ {
		cur := Cross(d, u.Sub(ps[i]))
		assertf(cur >= 0, "quickhull: point %v lies inside the edge %v->%v", ps[i], u, v)

		if cur > dist {
			dist = cur
			far = i
		}
	}

	assertf(far > 0, "quickhull: no farthest point found for edge %v->%v", u, v)

	farP := ps[far]
	uf, vf := u.Sub(farP), v.Sub(farP)
	outside := func(p Vec) bool {
		pf := p.Sub(farP)
		return Cross(pf, vf) > 0 || Cross(uf, pf) > 0
	}

	// points inside the triangle (u, farP, v) can never be hull vertices;
	// keep only the outside ones and recurse along both new edges
	pivot := 1 + halfStablePartition(ps[1:far], outside)
	leftBoundary := findHull(ps[:pivot], u, farP)

	pivot = far + 1 + halfStablePartition(ps[far+1:], outside)
	rightBoundary := far + findHull(ps[far:pivot], farP, v)

	return swapRanges(ps, far, rightBoundary, leftBoundary)
}

// swapRanges swaps ps[first:last] with the equally sized range starting at
// dst (dst <= first) and returns the position one past the moved range.
// Swapping instead of copying keeps the slice a permutation of its input.
func swapRanges(ps []Vec, first, last, dst int) int {
	for i := first; i < last; i++ {
		ps[dst], ps[i] = ps[i], ps[dst]
		dst++
	}

	return dst
}
