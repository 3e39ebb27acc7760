package hull

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func vec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// requireSameVecSet checks that a and b hold the same points, ignoring
// their order.
func requireSameVecSet(t *testing.T, a, b []Vec) {
	t.Helper()

	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.SortFunc(as, compareLex)
	slices.SortFunc(bs, compareLex)

	require.Equal(t, as, bs)
}

// requireValidHull checks the hull invariants against the original cloud:
// counter-clockwise orientation, convexity (every point of the cloud lies
// inside or on the polygon), and no three consecutive collinear vertices.
func requireValidHull(t *testing.T, cloud, hull []Vec) {
	t.Helper()

	require.NotEmpty(t, hull)

	if len(hull) < 3 {
		return
	}

	require.Positive(t, signedArea(hull), "hull is not counter-clockwise: %v", hull)

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		c := hull[(i+2)%len(hull)]

		// a strict left turn at every vertex, no tolerance: an exactly
		// collinear triple must fail. Only the containment check below
		// allows for float noise in randomized clouds.
		turn := cross3(a, b, c)
		require.Greater(t, turn, 0.0, "vertices %v, %v, %v do not turn left", a, b, c)

		for _, p := range cloud {
			require.GreaterOrEqual(t, cross3(a, b, p), -1e-9, "point %v lies outside edge %v->%v", p, a, b)
		}
	}
}

func signedArea(poly []Vec) float64 {
	var sum float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

type engine struct {
	name string
	run  func([]Vec) int
}

func engines() []engine {
	return []engine{
		{name: "quickhull", run: QuickHull},
		{name: "graham", run: GrahamScan},
	}
}

func TestHullBoundaryCases(t *testing.T) {
	for _, tc := range []struct {
		name   string
		points []Vec
		count  int
		hull   []Vec
	}{
		{
			name:   "single point",
			points: []Vec{vec(3, 4)},
			count:  1,
			hull:   []Vec{vec(3, 4)},
		},
		{
			name:   "two points",
			points: []Vec{vec(1, 2), vec(-1, 0)},
			count:  2,
			hull:   []Vec{vec(-1, 0), vec(1, 2)},
		},
		{
			name:   "triangle",
			points: []Vec{vec(0, 0), vec(1, 0), vec(0, 1)},
			count:  3,
			hull:   []Vec{vec(0, 0), vec(1, 0), vec(0, 1)},
		},
		{
			name:   "triangle with interior point",
			points: []Vec{vec(0, 0), vec(4, 0), vec(0, 4), vec(1, 1)},
			count:  3,
			hull:   []Vec{vec(0, 0), vec(4, 0), vec(0, 4)},
		},
		{
			name:   "all collinear",
			points: []Vec{vec(0, 0), vec(1, 0), vec(2, 0), vec(3, 0)},
			count:  2,
			hull:   []Vec{vec(0, 0), vec(3, 0)},
		},
		{
			name:   "duplicates",
			points: []Vec{vec(0, 0), vec(0, 0), vec(0, 0), vec(0, 0), vec(0, 0), vec(1, 1)},
			count:  2,
			hull:   []Vec{vec(0, 0), vec(1, 1)},
		},
		{
			name:   "square with edge midpoint",
			points: []Vec{vec(0, 0), vec(0, 1), vec(1, 1), vec(1, 0), vec(0, 0.5)},
			count:  4,
			hull:   []Vec{vec(0, 0), vec(0, 1), vec(1, 1), vec(1, 0)},
		},
	} {
		for _, engine := range engines() {
			t.Run(tc.name+"/"+engine.name, func(t *testing.T) {
				points := slices.Clone(tc.points)

				count := engine.run(points)
				require.Equal(t, tc.count, count)
				requireSameVecSet(t, tc.hull, points[:count])
				requireValidHull(t, tc.points, points[:count])
			})
		}
	}
}

func TestHullOnIntegerGrid(t *testing.T) {
	// a full 5x5 lattice is packed with collinear triples. Only the four
	// corners survive.
	var points []Vec
	for x := 0; x <= 4; x++ {
		for y := 0; y <= 4; y++ {
			points = append(points, vec(float64(x), float64(y)))
		}
	}

	corners := []Vec{vec(0, 0), vec(4, 0), vec(4, 4), vec(0, 4)}

	for _, engine := range engines() {
		t.Run(engine.name, func(t *testing.T) {
			ps := slices.Clone(points)

			count := engine.run(ps)
			require.Equal(t, 4, count)
			requireSameVecSet(t, corners, ps[:count])
			requireValidHull(t, points, ps[:count])
		})
	}
}

func TestHullEnginesAgree(t *testing.T) {
	for _, dist := range []Distribution{Disc, Ring, Circle, Clusters} {
		for _, n := range []int{1, 2, 3, 8, 64, 512} {
			t.Run(fmt.Sprintf("%s/%d", dist, n), func(t *testing.T) {
				gen := NewGenerator(Config{Distribution: dist, Seed: 0xbadc0ffee})
				points := make([]Vec, n)
				gen.Fill(points)

				quick := slices.Clone(points)
				quickCount := QuickHull(quick)

				graham := slices.Clone(points)
				grahamCount := GrahamScan(graham)

				// the engines must find the same vertex set, even though
				// their traversal orders may differ
				require.Equal(t, quickCount, grahamCount)
				requireSameVecSet(t, quick[:quickCount], graham[:grahamCount])

				// quickhull only ever swaps, the buffer stays a permutation
				requireSameVecSet(t, points, quick)

				requireValidHull(t, points, quick[:quickCount])
				requireValidHull(t, points, graham[:grahamCount])
			})
		}
	}
}

func TestHullIsIdempotent(t *testing.T) {
	gen := NewGenerator(Config{Distribution: Disc, Seed: 99})
	points := make([]Vec, 256)
	gen.Fill(points)

	for _, engine := range engines() {
		t.Run(engine.name, func(t *testing.T) {
			ps := slices.Clone(points)
			count := engine.run(ps)
			hull := slices.Clone(ps[:count])

			// running the engine on just the hull vertices must keep all
			// of them
			again := slices.Clone(hull)
			require.Equal(t, count, engine.run(again))
			requireSameVecSet(t, hull, again[:count])
		})
	}
}

func TestGrahamKeepsExactCoordinates(t *testing.T) {
	// hull vertices must be bit-identical members of the input. Any
	// arithmetic detour through shifted coordinates would be off by an
	// ulp on fractional inputs.
	gen := NewGenerator(Config{Distribution: Ring, Seed: 123})
	points := make([]Vec, 512)
	gen.Fill(points)

	ps := slices.Clone(points)
	count := GrahamScan(ps)

	for _, v := range ps[:count] {
		require.Contains(t, points, v)
	}
}

func TestCircleDistributionKeepsEveryPoint(t *testing.T) {
	// every point sits on the unit circle, so every point is a hull vertex
	gen := NewGenerator(Config{Distribution: Circle, Seed: 7})
	points := make([]Vec, 128)
	gen.Fill(points)

	for _, engine := range engines() {
		t.Run(engine.name, func(t *testing.T) {
			ps := slices.Clone(points)
			require.Equal(t, len(ps), engine.run(ps))
		})
	}
}

func TestPointInHull(t *testing.T) {
	square := []Vec{vec(0, 0), vec(2, 0), vec(2, 2), vec(0, 2)}

	require.True(t, PointInHull(square, vec(1, 1)))
	require.True(t, PointInHull(square, vec(0, 0)), "corners count as inside")
	require.True(t, PointInHull(square, vec(1, 0)), "edge points count as inside")
	require.False(t, PointInHull(square, vec(3, 1)))
	require.False(t, PointInHull(square, vec(-0.001, 1)))

	require.False(t, PointInHull(square[:2], vec(1, 0)), "degenerate polygons contain nothing")
}

func TestCross(t *testing.T) {
	require.Equal(t, 1.0, Cross(vec(1, 0), vec(0, 1)), "left turn is positive")
	require.Equal(t, -1.0, Cross(vec(0, 1), vec(1, 0)), "right turn is negative")
	require.Equal(t, 0.0, Cross(vec(2, 2), vec(3, 3)), "parallel vectors vanish")

	// twice the triangle area for displacement vectors
	require.Equal(t, 2.0, cross3(vec(0, 0), vec(2, 0), vec(0, 2))/2)
}
