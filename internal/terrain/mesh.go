package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a triangle list over the height field, z up, centered on the origin
// in the XY plane. Position and normal k belong to Heights[k].
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// BuildMesh extracts vertex positions, normals and two counter-clockwise
// triangles per grid cell for physics or render collaborators.
func BuildMesh(r Result) Mesh {
	dims := r.Dimensions()
	if dims.Count() == 0 || len(r.Heights) != dims.Count() {
		return Mesh{}
	}

	res := r.Config.Resolution
	offX := float64(dims.VerticesX-1) * res / 2
	offY := float64(dims.VerticesY-1) * res / 2

	m := Mesh{
		Positions: make([]mgl32.Vec3, 0, dims.Count()),
		Normals:   make([]mgl32.Vec3, 0, dims.Count()),
	}
	for i := 0; i < dims.VerticesX; i++ {
		for j := 0; j < dims.VerticesY; j++ {
			m.Positions = append(m.Positions, mgl32.Vec3{
				float32(float64(i)*res - offX),
				float32(float64(j)*res - offY),
				float32(r.Heights[i*dims.VerticesY+j]),
			})
			m.Normals = append(m.Normals, vertexNormal(r, dims, i, j))
		}
	}

	if dims.VerticesX < 2 || dims.VerticesY < 2 {
		return m
	}
	m.Indices = make([]uint32, 0, (dims.VerticesX-1)*(dims.VerticesY-1)*6)
	for i := 0; i < dims.VerticesX-1; i++ {
		for j := 0; j < dims.VerticesY-1; j++ {
			a := uint32(i*dims.VerticesY + j)
			b := uint32((i+1)*dims.VerticesY + j)
			c := a + 1
			d := b + 1
			m.Indices = append(m.Indices, a, b, d, a, d, c)
		}
	}
	return m
}

// vertexNormal uses central differences, one-sided on the border.
func vertexNormal(r Result, dims Dimensions, i, j int) mgl32.Vec3 {
	h := func(i, j int) float64 { return r.Heights[i*dims.VerticesY+j] }
	res := r.Config.Resolution

	var dzdx, dzdy float64
	if dims.VerticesX > 1 {
		i0, i1 := max(i-1, 0), min(i+1, dims.VerticesX-1)
		dzdx = (h(i1, j) - h(i0, j)) / (float64(i1-i0) * res)
	}
	if dims.VerticesY > 1 {
		j0, j1 := max(j-1, 0), min(j+1, dims.VerticesY-1)
		dzdy = (h(i, j1) - h(i, j0)) / (float64(j1-j0) * res)
	}
	return mgl32.Vec3{float32(-dzdx), float32(-dzdy), 1}.Normalize()
}
