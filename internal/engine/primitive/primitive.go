// Package primitive generates the unit meshes used for collider proxies.
package primitive

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
)

// Tessellation used for curved primitives.
const (
	Segments = 24 // around the Y axis
	Rings    = 16 // pole to pole (sphere) or per cap (capsule, halved)
)

// Mesh is an indexed triangle mesh. Positions and Normals are [x, y, z] per vertex.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Bounds returns the axis-aligned extents of the mesh.
func (m Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) < 3 {
		return min, max
	}
	min = mgl32.Vec3{m.Positions[0], m.Positions[1], m.Positions[2]}
	max = min
	for i := 3; i+2 < len(m.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := m.Positions[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return min, max
}

// Generate builds the unit mesh for p.
func Generate(p collider.Primitive) Mesh {
	switch p {
	case collider.PrimitiveSphere:
		return Sphere(0.5, Segments, Rings)
	case collider.PrimitiveCapsule:
		return Capsule(0.5, collider.CapsuleUnitHeight, Segments, Rings)
	default:
		return Cube(1)
	}
}

// Cube returns an axis-aligned cube centered on the origin with 24
// vertices so each face has flat normals.
func Cube(edge float32) Mesh {
	h := edge / 2
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}

	var m Mesh
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			for k := 0; k < 3; k++ {
				m.Positions = append(m.Positions, h*(f.n[k]+c[0]*f.u[k]+c[1]*f.v[k]))
			}
			m.Normals = append(m.Normals, f.n[0], f.n[1], f.n[2])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Sphere returns a UV sphere centered on the origin.
func Sphere(radius float32, segments, rings int) Mesh {
	var m Mesh
	for r := 0; r <= rings; r++ {
		phi := gomath.Pi * float64(r) / float64(rings)
		y := float32(gomath.Cos(phi))
		ringR := float32(gomath.Sin(phi))
		for s := 0; s <= segments; s++ {
			theta := 2 * gomath.Pi * float64(s) / float64(segments)
			x := ringR * float32(gomath.Cos(theta))
			z := ringR * float32(gomath.Sin(theta))
			m.Positions = append(m.Positions, x*radius, y*radius, z*radius)
			m.Normals = append(m.Normals, x, y, z)
		}
	}
	m.Indices = gridIndices(segments, rings)
	return m
}

// Capsule returns a capsule along Y with total height height, including caps.
// The cylinder section collapses to nothing when height <= 2*radius.
func Capsule(radius, height float32, segments, rings int) Mesh {
	half := height/2 - radius
	if half < 0 {
		half = 0
	}
	if rings%2 != 0 {
		rings++
	}

	var m Mesh
	// rings+1 latitude lines for the two hemispheres, with the equator
	// duplicated so the cylinder gets its own quad strip.
	rows := 0
	for r := 0; r <= rings; r++ {
		phi := gomath.Pi * float64(r) / float64(rings)
		ny := float32(gomath.Cos(phi))
		ringR := float32(gomath.Sin(phi))

		offsets := []float32{half}
		if r == rings/2 {
			offsets = []float32{half, -half}
		} else if r > rings/2 {
			offsets = []float32{-half}
		}

		for _, off := range offsets {
			for s := 0; s <= segments; s++ {
				theta := 2 * gomath.Pi * float64(s) / float64(segments)
				nx := ringR * float32(gomath.Cos(theta))
				nz := ringR * float32(gomath.Sin(theta))
				m.Positions = append(m.Positions, nx*radius, ny*radius+off, nz*radius)
				m.Normals = append(m.Normals, nx, ny, nz)
			}
			rows++
		}
	}
	m.Indices = gridIndices(segments, rows-1)
	return m
}

// gridIndices triangulates a (segments+1) x (rows+1) vertex grid.
func gridIndices(segments, rows int) []uint32 {
	stride := uint32(segments + 1)
	idx := make([]uint32, 0, segments*rows*6)
	for r := 0; r < rows; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			idx = append(idx, a, b, a+1, a+1, b, b+1)
		}
	}
	return idx
}
