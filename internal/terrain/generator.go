package terrain

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/dgravesa/go-parallel/parallel"

	"terrain-gen/internal/config"
	"terrain-gen/internal/noise"
	"terrain-gen/internal/profiling"
)

// Generator synthesizes height fields. It owns a random engine that Hills
// jitter and Steps block heights draw from, so it must not be shared between
// goroutines without external locking.
type Generator struct {
	rng   *rand.Rand
	noise noise.Source
}

// Option customises a Generator.
type Option func(*Generator)

// WithNoise replaces the reference Perlin field used by Hills.
func WithNoise(src noise.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.noise = src
		}
	}
}

// New creates a generator whose random engine is seeded from system entropy.
func New(opts ...Option) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), opts...)
}

// NewGenerator creates a generator drawing from rng. Passing a seeded source
// makes every call reproducible.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:   rng,
		noise: noise.NewPerlin(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the height field for cfg. It never fails: unknown
// archetypes fall back to a plane and degenerate extents give a tiny or empty
// grid.
func (g *Generator) Generate(cfg Config) Result {
	switch cfg.Archetype {
	case Plane:
		return g.generatePlane(cfg)
	case Hills:
		if config.GetParallelHills() {
			return g.generateHillsParallel(cfg)
		}
		return g.generateHills(cfg)
	case Steps:
		return g.generateSteps(cfg)
	default:
		log.Printf("terrain: unknown archetype %v, generating plane", cfg.Archetype)
		return g.generatePlane(cfg)
	}
}

func (g *Generator) generatePlane(cfg Config) Result {
	defer profiling.Track("terrain.Plane")()
	return Result{
		Heights: make([]float64, cfg.Dimensions().Count()),
		Config:  cfg,
	}
}

// fbm sums the octaves for vertex (i, j). Octave k has amplitude A/2^k and
// frequency F*2^k.
func (g *Generator) fbm(i, j int, p HillsParams, z float64) float64 {
	height := 0.0
	for k := 0; k < p.Octaves; k++ {
		scale := math.Ldexp(1, k)
		amp := p.Amplitude / scale
		freq := p.Frequency * scale
		height += amp * g.noise.Noise(float64(i)*freq, float64(j)*freq, z)
	}
	return height
}

func (g *Generator) generateHills(cfg Config) Result {
	defer profiling.Track("terrain.Hills")()

	dims := cfg.Dimensions()
	heights := make([]float64, dims.Count())
	p := cfg.Hills
	z := config.GetHillsZOffset()

	idx := 0
	for i := 0; i < dims.VerticesX; i++ {
		for j := 0; j < dims.VerticesY; j++ {
			heights[idx] = g.fbm(i, j, p, z) + p.Roughness*g.rng.Float64()
			idx++
		}
	}
	return Result{Heights: heights, Config: cfg}
}

// generateHillsParallel splits rows across goroutines. The engine is drawn
// once for a salt, and each vertex's jitter comes from hashing (i, j, salt),
// so the output does not depend on scheduling.
func (g *Generator) generateHillsParallel(cfg Config) Result {
	defer profiling.Track("terrain.HillsParallel")()

	dims := cfg.Dimensions()
	heights := make([]float64, dims.Count())
	p := cfg.Hills
	z := config.GetHillsZOffset()
	salt := g.rng.Uint64()

	parallel.For(dims.VerticesX, func(i, _ int) {
		row := heights[i*dims.VerticesY : (i+1)*dims.VerticesY]
		for j := range row {
			jitter := noise.Lattice01(int64(i), int64(j), 0, salt)
			row[j] = g.fbm(i, j, p, z) + p.Roughness*jitter
		}
	})
	return Result{Heights: heights, Config: cfg}
}

// generateSteps tiles the patch with Width-sized blocks, each a flat plateau
// at a random height in [0, Height). Vertices past the last whole block
// along either axis keep height zero.
func (g *Generator) generateSteps(cfg Config) Result {
	defer profiling.Track("terrain.Steps")()

	dims := cfg.Dimensions()
	heights := make([]float64, dims.Count())
	result := Result{Heights: heights, Config: cfg}

	p := cfg.Steps
	if !positiveFinite(p.Width) || dims.Count() == 0 {
		return result
	}

	segmentsX := int(math.Floor(cfg.ExtentX / p.Width))
	segmentsY := int(math.Floor(cfg.ExtentY / p.Width))
	perSegment := int(math.Floor(p.Width / cfg.Resolution))
	if perSegment == 0 {
		return result
	}

	for sx := 0; sx < segmentsX; sx++ {
		i0 := sx * perSegment
		i1 := min(i0+perSegment, dims.VerticesX)
		for sy := 0; sy < segmentsY; sy++ {
			j0 := sy * perSegment
			j1 := min(j0+perSegment, dims.VerticesY)

			h := g.rng.Float64() * p.Height
			for i := i0; i < i1; i++ {
				row := heights[i*dims.VerticesY : (i+1)*dims.VerticesY]
				for j := j0; j < j1; j++ {
					row[j] = h
				}
			}
		}
	}
	return result
}
