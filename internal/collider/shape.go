// Package collider describes physics collider shapes and maps them onto
// the transforms of the visible proxy meshes used to debug them.
package collider

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape is a collider volume attached to a scene node.
// The set of shapes is closed; see Box, Sphere, Capsule and Mesh.
type Shape interface {
	isShape()
}

// Box is an axis-aligned box collider in the owner's local space.
type Box struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

// Sphere is a sphere collider.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Capsule is a capsule collider. Height is the full tip-to-tip length
// along Axis, including both hemispherical caps.
type Capsule struct {
	Center mgl32.Vec3
	Radius float32
	Height float32
	Axis   Axis
}

// Mesh is an arbitrary triangle-mesh collider. It takes part in physics
// but has no primitive proxy, so it cannot be visualized.
type Mesh struct {
	Convex bool
}

func (Box) isShape()     {}
func (Sphere) isShape()  {}
func (Capsule) isShape() {}
func (Mesh) isShape()    {}

// Axis is the direction a capsule's long side points along.
// Values match the physics engine's direction index (0=X, 1=Y, 2=Z).
type Axis int

// Capsule axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lower-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y", "":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisY, fmt.Errorf("unknown capsule axis %q", s)
	}
}

// Name returns a short human-readable name for a shape.
func Name(s Shape) string {
	switch s.(type) {
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Capsule:
		return "capsule"
	case Mesh:
		return "mesh"
	case nil:
		return "none"
	default:
		return fmt.Sprintf("%T", s)
	}
}
