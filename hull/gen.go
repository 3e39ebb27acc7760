package hull

import (
	"math"
	"math/rand/v2"

	fastnoiselite "github.com/furui/fastnoiselite-go"
)

// Distribution selects the spatial layout of generated point sets.
type Distribution int

const (
	// Disc spreads points over the whole unit disc, denser towards the center.
	Disc Distribution = iota

	// Ring keeps points inside a thin annulus just below the unit circle.
	Ring

	// Circle places every point exactly on the unit circle, so every
	// generated point is a hull vertex.
	Circle

	// Clusters samples noise-weighted blobs inside the unit square.
	Clusters
)

func (d Distribution) String() string {
	switch d {
	case Disc:
		return "disc"
	case Ring:
		return "ring"
	case Circle:
		return "circle"
	case Clusters:
		return "clusters"
	default:
		return "unknown"
	}
}

// Config describes one point source. The same Config always produces the
// same sequence of point sets.
type Config struct {
	Distribution Distribution
	Seed         uint64
}

// Generator produces random planar point sets for the hull engines.
type Generator struct {
	rng        *rand.Rand
	rMin, rMax float64

	// set for the Clusters distribution only
	noise *fastnoiselite.FastNoiseLite
}

func NewGenerator(cfg Config) *Generator {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	gen := &Generator{rng: rng}

	switch cfg.Distribution {
	case Disc:
		gen.rMin, gen.rMax = 0, 1

	case Ring:
		gen.rMin, gen.rMax = 0.9, 1

	case Circle:
		gen.rMin, gen.rMax = 1, 1

	case Clusters:
		noise := fastnoiselite.NewNoise()
		noise.Seed = rng.Int32()
		noise.Frequency = 1.5
		gen.noise = noise

	default:
		assertf(false, "hull: unknown distribution %d", cfg.Distribution)
	}

	return gen
}

// Fill overwrites every element of ps with a freshly generated point.
func (g *Generator) Fill(ps []Vec) {
	for i := range ps {
		if g.noise != nil {
			ps[i] = g.clusterPoint()
			continue
		}

		a := randf(g.rng, 0, 2*math.Pi)
		r := randf(g.rng, g.rMin, g.rMax)
		ps[i] = Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
}

// clusterPoint rejection-samples the noise field, so denser areas win
func (g *Generator) clusterPoint() Vec {
	for {
		p := Vec{X: randf(g.rng, -1, 1), Y: randf(g.rng, -1, 1)}

		value := g.noise.GetNoise2D(fastnoiselite.FNLfloat(p.X), fastnoiselite.FNLfloat(p.Y))
		if max(0, float64(value)) > g.rng.Float64() {
			return p
		}
	}
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}
