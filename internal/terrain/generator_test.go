package terrain

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-gen/internal/config"
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed+1)))
}

func hillsConfig(roughness float64, octaves int) Config {
	return Config{
		Archetype:  Hills,
		ExtentX:    4,
		ExtentY:    3,
		Resolution: 0.25,
		Hills: HillsParams{
			Amplitude: 1,
			Frequency: 0.2,
			Roughness: roughness,
			Octaves:   octaves,
		},
	}
}

func stepsConfig() Config {
	return Config{
		Archetype:  Steps,
		ExtentX:    1,
		ExtentY:    1,
		Resolution: 0.1,
		Steps:      StepsParams{Width: 0.5, Height: 1},
	}
}

func TestGridSizing(t *testing.T) {
	tests := []struct {
		name       string
		extentX    float64
		extentY    float64
		resolution float64
		wantX      int
		wantY      int
	}{
		{"unit square half resolution", 1, 1, 0.5, 3, 3},
		{"rectangle", 2, 1, 0.5, 5, 3},
		{"non multiple extent", 1.2, 1, 0.25, 5, 5},
		{"fine grid", 10, 10, 0.1, 101, 101},
		{"resolution equals extent", 1, 1, 1, 2, 2},
		{"resolution exceeds extent", 1, 1, 3, 1, 1},
	}

	g := seeded(1)
	for _, archetype := range []Archetype{Plane, Hills, Steps} {
		for _, tt := range tests {
			t.Run(archetype.String()+"/"+tt.name, func(t *testing.T) {
				cfg := Config{
					Archetype:  archetype,
					ExtentX:    tt.extentX,
					ExtentY:    tt.extentY,
					Resolution: tt.resolution,
					Hills:      HillsParams{Amplitude: 1, Frequency: 0.3, Octaves: 2},
					Steps:      StepsParams{Width: 0.5, Height: 1},
				}
				dims := cfg.Dimensions()
				assert.Equal(t, tt.wantX, dims.VerticesX)
				assert.Equal(t, tt.wantY, dims.VerticesY)

				res := g.Generate(cfg)
				assert.Len(t, res.Heights, tt.wantX*tt.wantY)
				assert.Equal(t, cfg, res.Config)
			})
		}
	}
}

func TestDimensionsInvalidResolution(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		cfg := Config{ExtentX: 1, ExtentY: 1, Resolution: r}
		assert.Equal(t, 0, cfg.Dimensions().Count(), "resolution %v", r)
		assert.Empty(t, seeded(1).Generate(cfg).Heights)
	}
}

func TestPlaneExample(t *testing.T) {
	res := seeded(1).Generate(Config{Archetype: Plane, ExtentX: 1, ExtentY: 1, Resolution: 0.5})

	require.Len(t, res.Heights, 9)
	for i, h := range res.Heights {
		assert.Equal(t, 0.0, h, "index %d", i)
	}
}

func TestUnknownArchetypeFallsBackToPlane(t *testing.T) {
	cfg := Config{Archetype: Archetype(42), ExtentX: 2, ExtentY: 1, Resolution: 0.5}
	res := seeded(1).Generate(cfg)

	require.Len(t, res.Heights, 15)
	for _, h := range res.Heights {
		assert.Equal(t, 0.0, h)
	}
	assert.Equal(t, cfg, res.Config)
}

func TestHillsDeterministicWithoutRoughness(t *testing.T) {
	cfg := hillsConfig(0, 4)

	g := seeded(1)
	a := g.Generate(cfg)
	b := g.Generate(cfg)
	c := seeded(99).Generate(cfg)

	assert.Equal(t, a.Heights, b.Heights)
	assert.Equal(t, a.Heights, c.Heights)
}

func TestHillsRoughnessOnlyJitters(t *testing.T) {
	smooth := seeded(1).Generate(hillsConfig(0, 3))

	g := seeded(2)
	rough1 := g.Generate(hillsConfig(0.5, 3))
	rough2 := g.Generate(hillsConfig(0.5, 3))

	assert.NotEqual(t, rough1.Heights, rough2.Heights)
	for i := range smooth.Heights {
		d := rough1.Heights[i] - smooth.Heights[i]
		assert.GreaterOrEqual(t, d, 0.0)
		assert.Less(t, d, 0.5+1e-12)
	}
}

func TestHillsZeroOctaves(t *testing.T) {
	res := seeded(1).Generate(hillsConfig(0, 0))

	require.Len(t, res.Heights, 17*13)
	for _, h := range res.Heights {
		assert.Equal(t, 0.0, h)
	}
}

func TestHillsSingleOctaveBounds(t *testing.T) {
	cfg := hillsConfig(0, 1)
	cfg.Hills.Amplitude = 2.5
	res := seeded(1).Generate(cfg)

	lo, hi := res.MinMax()
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 2.5)
	assert.Less(t, lo, hi)
}

type constantNoise float64

func (c constantNoise) Noise(_, _, _ float64) float64 { return float64(c) }

func TestHillsOctaveLaw(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 1)), WithNoise(constantNoise(0.5)))
	cfg := hillsConfig(0, 3)
	cfg.Hills.Amplitude = 8

	res := g.Generate(cfg)
	// 8*0.5 + 4*0.5 + 2*0.5
	for _, h := range res.Heights {
		assert.InDelta(t, 7.0, h, 1e-12)
	}
}

func TestHillsParallelMatchesSequentialShape(t *testing.T) {
	t.Cleanup(config.Reset)

	cfg := hillsConfig(0, 4)
	sequential := seeded(1).Generate(cfg)

	config.SetParallelHills(true)
	parallel := seeded(1).Generate(cfg)

	assert.Equal(t, sequential.Heights, parallel.Heights)
}

func TestHillsParallelReproducibleJitter(t *testing.T) {
	t.Cleanup(config.Reset)
	config.SetParallelHills(true)

	cfg := hillsConfig(0.25, 2)
	a := seeded(5).Generate(cfg)
	b := seeded(5).Generate(cfg)
	assert.Equal(t, a.Heights, b.Heights)

	smooth := seeded(5).Generate(hillsConfig(0, 2))
	for i := range a.Heights {
		d := a.Heights[i] - smooth.Heights[i]
		assert.GreaterOrEqual(t, d, 0.0)
		assert.Less(t, d, 0.25+1e-12)
	}
}

func TestHillsZOffsetSetting(t *testing.T) {
	t.Cleanup(config.Reset)

	cfg := hillsConfig(0, 2)
	base := seeded(1).Generate(cfg)

	config.SetHillsZOffset(0.6)
	shifted := seeded(1).Generate(cfg)

	assert.NotEqual(t, base.Heights, shifted.Heights)
}

func TestStepsPlateaus(t *testing.T) {
	res := seeded(3).Generate(stepsConfig())
	dims := res.Dimensions()
	require.Equal(t, Dimensions{VerticesX: 11, VerticesY: 11}, dims)

	blocks := make(map[[2]int]float64)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			key := [2]int{i / 5, j / 5}
			h := res.At(i, j)
			if want, ok := blocks[key]; ok {
				assert.Equal(t, want, h, "vertex (%d,%d) in block %v", i, j, key)
			} else {
				blocks[key] = h
			}
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Less(t, h, 1.0)
		}
	}
	require.Len(t, blocks, 4)

	distinct := make(map[float64]struct{})
	for _, h := range blocks {
		distinct[h] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)

	// trailing row and column past the last whole block
	for k := 0; k < 11; k++ {
		assert.Equal(t, 0.0, res.At(10, k))
		assert.Equal(t, 0.0, res.At(k, 10))
	}
}

func TestStepsLeftoverVerticesStayZero(t *testing.T) {
	cfg := Config{
		Archetype:  Steps,
		ExtentX:    1.2,
		ExtentY:    1.2,
		Resolution: 0.25,
		Steps:      StepsParams{Width: 0.5, Height: 1},
	}
	res := seeded(4).Generate(cfg)
	require.Equal(t, Dimensions{VerticesX: 5, VerticesY: 5}, res.Dimensions())

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Greater(t, res.At(i, j), 0.0)
		}
	}
	for k := 0; k < 5; k++ {
		assert.Equal(t, 0.0, res.At(4, k))
		assert.Equal(t, 0.0, res.At(k, 4))
	}
}

func TestStepsNarrowerThanResolution(t *testing.T) {
	cfg := stepsConfig()
	cfg.Steps.Width = 0.05
	res := seeded(1).Generate(cfg)

	require.Len(t, res.Heights, 121)
	lo, hi := res.MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestStepsReproducibleWithSeed(t *testing.T) {
	a := seeded(8).Generate(stepsConfig())
	b := seeded(8).Generate(stepsConfig())
	assert.Equal(t, a.Heights, b.Heights)

	g := seeded(8)
	g.Generate(stepsConfig())
	c := g.Generate(stepsConfig())
	assert.NotEqual(t, a.Heights, c.Heights)
}

func TestNewUsesEntropy(t *testing.T) {
	a := New().Generate(stepsConfig())
	b := New().Generate(stepsConfig())
	assert.NotEqual(t, a.Heights, b.Heights)
}

func BenchmarkGenerateHills(b *testing.B) {
	g := seeded(1)
	cfg := hillsConfig(0.01, 4)
	cfg.ExtentX, cfg.ExtentY, cfg.Resolution = 10, 10, 0.02
	for i := 0; i < b.N; i++ {
		g.Generate(cfg)
	}
}

func BenchmarkGenerateSteps(b *testing.B) {
	g := seeded(1)
	cfg := stepsConfig()
	cfg.ExtentX, cfg.ExtentY, cfg.Resolution = 10, 10, 0.005
	for i := 0; i < b.N; i++ {
		g.Generate(cfg)
	}
}
