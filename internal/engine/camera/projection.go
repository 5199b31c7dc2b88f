package camera

import "github.com/go-gl/mathgl/mgl32"

// Viewport is a pixel rectangle with a top-left origin.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Aspect returns width / height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// WorldToScreen projects a world position into viewport pixel coordinates
// with the origin at the top-left. ok is false when the point is behind
// the camera or outside the near/far range.
func WorldToScreen(cam Camera, vp Viewport, world mgl32.Vec3) (screen mgl32.Vec2, ok bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return screen, false
	}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(vp.Aspect())

	clip := proj.Mul4(view).Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return screen, false
	}

	// Project yields bottom-left window coordinates relative to the viewport.
	win := mgl32.Project(world, view, proj, 0, 0, vp.Width, vp.Height)
	if win.Z() < 0 || win.Z() > 1 {
		return screen, false
	}

	return mgl32.Vec2{
		float32(vp.X) + win.X(),
		float32(vp.Y) + float32(vp.Height) - win.Y(),
	}, true
}

// View pairs a camera with the viewport it renders into.
type View struct {
	Camera   Camera
	Viewport Viewport
}

// Project projects a world position into screen space. See WorldToScreen.
func (v *View) Project(world mgl32.Vec3) (mgl32.Vec2, bool) {
	return WorldToScreen(v.Camera, v.Viewport, world)
}
