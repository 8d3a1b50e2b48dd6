package noise

import (
	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a 3D noise field with values in [0, 1].
type Source interface {
	Noise(x, y, z float64) float64
}

var (
	_ Source = (*Perlin)(nil)
	_ Source = (*Simplex)(nil)
	_ Source = (*Classic)(nil)
)

// Simplex adapts OpenSimplex noise to Source.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns normalized OpenSimplex noise for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

func (s *Simplex) Noise(x, y, z float64) float64 {
	return clamp01(s.n.Eval3(x, y, z))
}

// Classic adapts go-perlin's summed noise to Source. go-perlin already sums
// its own octaves (alpha is the amplitude divisor, beta the frequency factor),
// so it reads as a rougher single sample.
type Classic struct {
	p *perlin.Perlin
}

// NewClassic returns a go-perlin field with 2/2/3 weighting for seed.
func NewClassic(seed int64) *Classic {
	return &Classic{p: perlin.NewPerlin(2, 2, 3, seed)}
}

func (c *Classic) Noise(x, y, z float64) float64 {
	return clamp01((c.p.Noise3D(x, y, z) + 1) / 2)
}
