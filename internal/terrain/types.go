package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Archetype selects the generation strategy.
type Archetype int

const (
	// Plane is a flat zero-height grid. It is also the fallback for
	// unrecognised archetypes.
	Plane Archetype = iota
	// Hills sums octaves of gradient noise plus optional uniform jitter.
	Hills
	// Steps tiles the patch with flat blocks of random height.
	Steps
)

func (a Archetype) String() string {
	switch a {
	case Plane:
		return "plane"
	case Hills:
		return "hills"
	case Steps:
		return "steps"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// ParseArchetype maps a name as printed by String back to an Archetype.
func ParseArchetype(name string) (Archetype, error) {
	for _, a := range []Archetype{Plane, Hills, Steps} {
		if a.String() == name {
			return a, nil
		}
	}
	return Plane, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
}

// HillsParams are only read by the Hills strategy.
type HillsParams struct {
	Amplitude float64
	Frequency float64
	Roughness float64 // scale of the per-vertex uniform jitter
	Octaves   int
}

// StepsParams are only read by the Steps strategy.
type StepsParams struct {
	Width  float64 // planar size of one block
	Height float64 // upper bound of a block's elevation
}

// Config describes one terrain patch. Extents and Resolution are in meters.
type Config struct {
	Archetype  Archetype
	ExtentX    float64
	ExtentY    float64
	Resolution float64

	Hills HillsParams
	Steps StepsParams
}

var (
	ErrInvalidExtent     = errors.New("extent must be positive and finite")
	ErrInvalidResolution = errors.New("resolution must be positive and finite")
	ErrDegenerateGrid    = errors.New("resolution exceeds extent")
	ErrInvalidHills      = errors.New("invalid hills parameters")
	ErrInvalidStep       = errors.New("invalid step parameters")
	ErrUnknownArchetype  = errors.New("unknown archetype")
)

// Validate reports configs that Generate would still accept but that produce
// degenerate or fallback output. Only the parameters of the configured
// archetype are checked.
func (c Config) Validate() error {
	if !positiveFinite(c.ExtentX) || !positiveFinite(c.ExtentY) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidExtent, c.ExtentX, c.ExtentY)
	}
	if !positiveFinite(c.Resolution) {
		return fmt.Errorf("%w: %g", ErrInvalidResolution, c.Resolution)
	}
	if c.Resolution > c.ExtentX || c.Resolution > c.ExtentY {
		return fmt.Errorf("%w: resolution %g, extent %gx%g", ErrDegenerateGrid, c.Resolution, c.ExtentX, c.ExtentY)
	}

	switch c.Archetype {
	case Plane:
	case Hills:
		h := c.Hills
		if h.Octaves < 0 {
			return fmt.Errorf("%w: octaves %d", ErrInvalidHills, h.Octaves)
		}
		if h.Roughness < 0 || math.IsNaN(h.Roughness) {
			return fmt.Errorf("%w: roughness %g", ErrInvalidHills, h.Roughness)
		}
	case Steps:
		s := c.Steps
		if !positiveFinite(s.Width) || !positiveFinite(s.Height) {
			return fmt.Errorf("%w: width %g, height %g", ErrInvalidStep, s.Width, s.Height)
		}
		if s.Width < c.Resolution {
			return fmt.Errorf("%w: width %g below resolution %g", ErrInvalidStep, s.Width, c.Resolution)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownArchetype, c.Archetype)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Dimensions is the vertex count of the grid along each axis. An N by M cell
// grid has N+1 by M+1 vertices.
type Dimensions struct {
	VerticesX int
	VerticesY int
}

// Count is the total number of vertices.
func (d Dimensions) Count() int {
	return d.VerticesX * d.VerticesY
}

// Dimensions derives the vertex grid. A resolution that is not positive and
// finite, or a negative extent, yields an empty grid.
func (c Config) Dimensions() Dimensions {
	return Dimensions{
		VerticesX: verticesAlong(c.ExtentX, c.Resolution),
		VerticesY: verticesAlong(c.ExtentY, c.Resolution),
	}
}

func verticesAlong(extent, resolution float64) int {
	if !positiveFinite(resolution) || !(extent >= 0) || math.IsInf(extent, 1) {
		return 0
	}
	return int(math.Floor(extent/resolution)) + 1
}

// Result is a generated height field plus the config that produced it.
// Heights are laid out as Heights[i*VerticesY+j], i along X and j along Y.
type Result struct {
	Heights []float64
	Config  Config
}

// Dimensions of the grid Heights covers.
func (r Result) Dimensions() Dimensions {
	return r.Config.Dimensions()
}

// Index returns the position of vertex (i, j) in Heights.
func (r Result) Index(i, j int) int {
	return i*r.Dimensions().VerticesY + j
}

// At returns the height of vertex (i, j).
func (r Result) At(i, j int) float64 {
	return r.Heights[r.Index(i, j)]
}
