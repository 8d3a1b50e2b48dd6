package noise

// Hash3 is a SplitMix64 style integer hash of a lattice point, stable across
// runs for the same inputs. Each axis is scaled by its own odd constant so the
// axes are not interchangeable.
func Hash3(x, y, z int64, seed uint64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + seed
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

// Lattice01 maps Hash3 to [0, 1).
func Lattice01(x, y, z int64, seed uint64) float64 {
	// top 53 bits give an exact float64 mantissa
	return float64(Hash3(x, y, z, seed)>>11) / (1 << 53)
}
