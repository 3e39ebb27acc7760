package hull

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	for _, dist := range []Distribution{Disc, Ring, Circle, Clusters} {
		t.Run(dist.String(), func(t *testing.T) {
			cfg := Config{Distribution: dist, Seed: 1234}

			a := make([]Vec, 100)
			NewGenerator(cfg).Fill(a)

			b := make([]Vec, 100)
			NewGenerator(cfg).Fill(b)

			require.Equal(t, a, b)

			c := make([]Vec, 100)
			NewGenerator(Config{Distribution: dist, Seed: 1235}).Fill(c)
			require.NotEqual(t, a, c)
		})
	}
}

func TestGeneratorRadii(t *testing.T) {
	for _, tc := range []struct {
		dist       Distribution
		rMin, rMax float64
	}{
		{dist: Disc, rMin: 0, rMax: 1},
		{dist: Ring, rMin: 0.9, rMax: 1},
	} {
		t.Run(tc.dist.String(), func(t *testing.T) {
			ps := make([]Vec, 1000)
			NewGenerator(Config{Distribution: tc.dist, Seed: 42}).Fill(ps)

			for _, p := range ps {
				r := p.Len()
				require.GreaterOrEqual(t, r, tc.rMin-1e-9)
				require.LessOrEqual(t, r, tc.rMax+1e-9)
			}
		})
	}
}

func TestCircleDistributionRadius(t *testing.T) {
	ps := make([]Vec, 1000)
	NewGenerator(Config{Distribution: Circle, Seed: 42}).Fill(ps)

	for _, p := range ps {
		require.InDelta(t, 1.0, p.Len(), 1e-12)
	}
}

func TestClustersStayInUnitSquare(t *testing.T) {
	ps := make([]Vec, 1000)
	NewGenerator(Config{Distribution: Clusters, Seed: 42}).Fill(ps)

	for _, p := range ps {
		require.GreaterOrEqual(t, p.X, -1.0)
		require.LessOrEqual(t, p.X, 1.0)
		require.GreaterOrEqual(t, p.Y, -1.0)
		require.LessOrEqual(t, p.Y, 1.0)
	}
}
