package terrain

import "math"

// HeightAt bilinearly interpolates the height at physical coordinates (x, y)
// measured from vertex (0, 0). Points outside the patch are clamped to its
// edge.
func (r Result) HeightAt(x, y float64) float64 {
	dims := r.Dimensions()
	if dims.Count() == 0 || len(r.Heights) != dims.Count() {
		return 0
	}

	gx := clampGrid(x/r.Config.Resolution, dims.VerticesX)
	gy := clampGrid(y/r.Config.Resolution, dims.VerticesY)

	i0, j0 := int(gx), int(gy)
	i1 := min(i0+1, dims.VerticesX-1)
	j1 := min(j0+1, dims.VerticesY-1)
	tx, ty := gx-float64(i0), gy-float64(j0)

	h00 := r.Heights[i0*dims.VerticesY+j0]
	h10 := r.Heights[i1*dims.VerticesY+j0]
	h01 := r.Heights[i0*dims.VerticesY+j1]
	h11 := r.Heights[i1*dims.VerticesY+j1]

	return lerp(ty, lerp(tx, h00, h10), lerp(tx, h01, h11))
}

func clampGrid(g float64, vertices int) float64 {
	if math.IsNaN(g) || g < 0 {
		return 0
	}
	if maxG := float64(vertices - 1); g > maxG {
		return maxG
	}
	return g
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// MinMax returns the lowest and highest heights. Both are zero for an empty
// grid.
func (r Result) MinMax() (lo, hi float64) {
	if len(r.Heights) == 0 {
		return 0, 0
	}
	lo, hi = r.Heights[0], r.Heights[0]
	for _, h := range r.Heights[1:] {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	return lo, hi
}
