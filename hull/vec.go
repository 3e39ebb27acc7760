package hull

import (
	"github.com/quasilyte/gmath"
)

// Vec is the planar point type both hull engines operate on.
type Vec = gmath.Vec

// Cross product of two vectors. The sign encodes the turn direction
// (positive means b is counter-clockwise from a), the magnitude is twice
// the signed triangle area when applied to displacement vectors.
func Cross(a, b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Cross product of OA and OB vectors (O, A, B are points)
func cross3(o, a, b Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// lexLess orders points lexicographically by (X, Y). The ordering carries
// no geometric meaning, it only picks canonical extreme points.
func lexLess(a, b Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}

func compareLex(a, b Vec) int {
	switch {
	case lexLess(a, b):
		return -1
	case lexLess(b, a):
		return 1
	default:
		return 0
	}
}

// PointInHull checks whether point p lies inside or on the convex polygon
// given by hull in counter-clockwise order.
func PointInHull(hull []Vec, p Vec) bool {
	n := len(hull)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		if cross3(a, b, p) < 0 {
			// p is to the right of the edge a->b, i.e. outside
			return false
		}
	}

	return true
}
