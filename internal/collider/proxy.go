package collider

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnsupportedShape is returned for shapes that have no primitive proxy.
var ErrUnsupportedShape = errors.New("only box, sphere and capsule colliders are supported")

// Primitive identifies one of the engine's built-in unit meshes.
type Primitive int

// Built-in primitives. Their unit sizes follow the usual engine convention:
// the cube has edge 1, the sphere has diameter 1 and the capsule has
// radius 0.5 and total height 2 along Y.
const (
	PrimitiveCube Primitive = iota
	PrimitiveSphere
	PrimitiveCapsule
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimitiveCube:
		return "cube"
	case PrimitiveSphere:
		return "sphere"
	case PrimitiveCapsule:
		return "capsule"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// CapsuleUnitHeight is the authored height of the unit capsule primitive.
const CapsuleUnitHeight = 2

// ProxyTransform is the local transform given to a proxy mesh that is
// parented under the collider's owner.
type ProxyTransform struct {
	LocalPosition        mgl32.Vec3
	LocalScale           mgl32.Vec3
	LocalRotationDegrees mgl32.Vec3
}

// Rotation converts LocalRotationDegrees to a quaternion.
func (t ProxyTransform) Rotation() mgl32.Quat {
	return EulerDegrees(t.LocalRotationDegrees)
}

// EulerDegrees converts Euler angles in degrees to a quaternion, applying
// Z, then X, then Y.
func EulerDegrees(r mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(r.X()), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(r.Y()), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(r.Z()), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz).Normalize()
}

// PrimitiveFor returns the primitive mesh that visualizes s.
func PrimitiveFor(s Shape) (Primitive, error) {
	switch s.(type) {
	case Box:
		return PrimitiveCube, nil
	case Sphere:
		return PrimitiveSphere, nil
	case Capsule:
		return PrimitiveCapsule, nil
	default:
		return 0, fmt.Errorf("%s collider: %w", Name(s), ErrUnsupportedShape)
	}
}

// ComputeProxyTransform maps a collider shape onto the local transform of
// its proxy primitive. base is the primitive's scale before the shape is
// applied, normally (1, 1, 1).
func ComputeProxyTransform(s Shape, base mgl32.Vec3) (ProxyTransform, error) {
	switch shape := s.(type) {
	case Box:
		size := abs3(shape.Size)
		return ProxyTransform{
			LocalPosition: shape.Center,
			LocalScale:    mul3(base, size),
		}, nil

	case Sphere:
		d := 2 * absf(shape.Radius)
		return ProxyTransform{
			LocalPosition: shape.Center,
			LocalScale:    base.Mul(d),
		}, nil

	case Capsule:
		var rot mgl32.Vec3
		switch shape.Axis {
		case AxisX:
			// Rotate about forward so the primitive's Y axis lies along X.
			rot = mgl32.Vec3{0, 0, 90}
		case AxisZ:
			rot = mgl32.Vec3{90, 0, 0}
		}
		d := 2 * absf(shape.Radius)
		h := absf(shape.Height) / CapsuleUnitHeight
		return ProxyTransform{
			LocalPosition:        shape.Center,
			LocalScale:           mgl32.Vec3{base.X() * d, base.Y() * h, base.Z() * d},
			LocalRotationDegrees: rot,
		}, nil

	default:
		return ProxyTransform{}, fmt.Errorf("%s collider: %w", Name(s), ErrUnsupportedShape)
	}
}

// Bounds returns the local-space axis-aligned extents of s.
func Bounds(s Shape) (min, max mgl32.Vec3, err error) {
	var half mgl32.Vec3
	var center mgl32.Vec3

	switch shape := s.(type) {
	case Box:
		center = shape.Center
		half = abs3(shape.Size).Mul(0.5)
	case Sphere:
		center = shape.Center
		r := absf(shape.Radius)
		half = mgl32.Vec3{r, r, r}
	case Capsule:
		center = shape.Center
		r := absf(shape.Radius)
		// The capsule can never be shorter than its two caps.
		l := absf(shape.Height) / 2
		if l < r {
			l = r
		}
		half = mgl32.Vec3{r, r, r}
		switch shape.Axis {
		case AxisX:
			half[0] = l
		case AxisZ:
			half[2] = l
		default:
			half[1] = l
		}
	default:
		return min, max, fmt.Errorf("%s collider: %w", Name(s), ErrUnsupportedShape)
	}

	return center.Sub(half), center.Add(half), nil
}

func mul3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func abs3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{absf(v[0]), absf(v[1]), absf(v[2])}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
