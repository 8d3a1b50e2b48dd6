package config

import (
	"math"
	"sync"
)

// DefaultHillsZOffset is the z plane Hills samples noise on. Any nonzero
// value avoids the degenerate gradients of the z=0 plane at lattice points.
const DefaultHillsZOffset = 0.1

// GenerationSettings holds process-wide terrain generation configuration
type GenerationSettings struct {
	mu            sync.RWMutex
	parallelHills bool
	hillsZOffset  float64
}

var globalGenerationSettings = &GenerationSettings{
	parallelHills: false, // sequential keeps the engine draw order of the original generator
	hillsZOffset:  DefaultHillsZOffset,
}

// GetParallelHills returns whether Hills runs across goroutines
func GetParallelHills() bool {
	globalGenerationSettings.mu.RLock()
	defer globalGenerationSettings.mu.RUnlock()
	return globalGenerationSettings.parallelHills
}

// SetParallelHills toggles parallel Hills generation
func SetParallelHills(enabled bool) {
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.parallelHills = enabled
}

// GetHillsZOffset returns the z plane used for Hills noise sampling
func GetHillsZOffset() float64 {
	globalGenerationSettings.mu.RLock()
	defer globalGenerationSettings.mu.RUnlock()
	return globalGenerationSettings.hillsZOffset
}

// SetHillsZOffset sets the Hills sampling plane. Zero and non-finite values
// fall back to DefaultHillsZOffset.
func SetHillsZOffset(z float64) {
	if z == 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		z = DefaultHillsZOffset
	}
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.hillsZOffset = z
}

// Reset restores the defaults.
func Reset() {
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.parallelHills = false
	globalGenerationSettings.hillsZOffset = DefaultHillsZOffset
}
