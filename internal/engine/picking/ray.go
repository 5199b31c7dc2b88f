// Package picking provides ray casting against collider bounds.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in 3D space.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // normalized for rays from ScreenToRay
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for k := 0; k < 3; k++ {
		box.Min[k] = min(a[k], b[k])
		box.Max[k] = max(a[k], b[k])
	}
	return box
}

// ScreenToRay converts pixel coordinates (top-left origin) to a world-space
// ray. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, invViewProj)
	farWorld := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, 1}, invViewProj)

	dir := farWorld.Sub(nearWorld)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: nearWorld, Direction: dir}
}

// Transform maps the ray by m. The direction is not renormalized, so a
// distance along the result matches the same distance along r.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    mgl32.TransformCoordinate(r.Origin, m),
		Direction: m.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if mgl32.Abs(r.Direction.Y()) < 0.001 {
		return 0, 0, false // parallel
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return 0, 0, false // behind the origin
	}

	return r.Origin.X() + t*r.Direction.X(), r.Origin.Z() + t*r.Direction.Z(), true
}

// IntersectAABB returns the distance to the first hit with box. If the ray
// starts inside the box, the exit distance is returned.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for k := 0; k < 3; k++ {
		if r.Direction[k] == 0 {
			if r.Origin[k] < box.Min[k] || r.Origin[k] > box.Max[k] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[k] - r.Origin[k]) / r.Direction[k]
		t2 := (box.Max[k] - r.Origin[k]) / r.Direction[k]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectOBB tests the ray against box given in the local space of
// world. The returned distance is measured along r.
func (r Ray) IntersectOBB(box AABB, world mgl32.Mat4) (t float32, hit bool) {
	if mgl32.Abs(world.Det()) < 1e-12 {
		return 0, false
	}
	return r.Transform(world.Inv()).IntersectAABB(box)
}
