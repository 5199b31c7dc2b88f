// Package scene provides a small scene graph with per-node components
// driven by a frame loop.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a node's position, rotation and scale relative to its parent.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the local matrix, translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rot := t.Rotation.Mat4()
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(rot).Mul4(sc)
}

// Rotate rotates around a local axis by the given angle in degrees.
func (t *Transform) Rotate(axis mgl32.Vec3, degrees float32) {
	q := mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize())
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// Translate moves the transform by delta in parent space.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}
