// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
)

// BoxWireframeVertexCount is the number of vertices in a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// boxEdges indexes the corners returned by boxCorners.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// boxCorners returns the 8 corners; bit 0 selects max X, bit 1 max Y, bit 2 max Z.
func boxCorners(min, max mgl32.Vec3) [8]mgl32.Vec3 {
	var c [8]mgl32.Vec3
	for i := range c {
		c[i] = min
		if i&1 != 0 {
			c[i][0] = max[0]
		}
		if i&2 != 0 {
			c[i][1] = max[1]
		}
		if i&4 != 0 {
			c[i][2] = max[2]
		}
	}
	return c
}

// BoxWireframe returns line-list vertices, [x, y, z] each, for the box
// min..max transformed by m. The result is oriented, not axis-aligned.
func BoxWireframe(min, max mgl32.Vec3, m mgl32.Mat4) []float32 {
	corners := boxCorners(min, max)
	for i := range corners {
		corners[i] = mgl32.TransformCoordinate(corners[i], m)
	}

	out := make([]float32, 0, BoxWireframeVertexCount*3)
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	return out
}

// ColliderWireframe returns the wireframe of a shape's local bounds placed
// by the owner's world matrix. ok is false for shapes without bounds.
func ColliderWireframe(s collider.Shape, world mgl32.Mat4) ([]float32, bool) {
	min, max, err := collider.Bounds(s)
	if err != nil {
		return nil, false
	}
	return BoxWireframe(min, max, world), true
}

// WorldAABB returns the axis-aligned box enclosing min..max after m.
func WorldAABB(min, max mgl32.Vec3, m mgl32.Mat4) (mgl32.Vec3, mgl32.Vec3) {
	corners := boxCorners(min, max)
	lo := mgl32.TransformCoordinate(corners[0], m)
	hi := lo
	for _, c := range corners[1:] {
		p := mgl32.TransformCoordinate(c, m)
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}
