package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func frontCamera() *OrbitCamera {
	c := NewOrbitCamera()
	c.Distance = 10
	c.Pitch = 0
	c.Yaw = 0
	return c
}

func TestOrbitCameraPosition(t *testing.T) {
	c := frontCamera()
	c.Target = mgl32.Vec3{1, 2, 3}
	got := c.Position()
	want := mgl32.Vec3{1, 2, 13}
	if !got.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MinDistance, c.Distance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-5)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("expected pitch %v, got %v", c.MaxPitch, c.Pitch)
	}
}

func TestWorldToScreenCenter(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	got, ok := WorldToScreen(frontCamera(), vp, mgl32.Vec3{0, 0, 0})
	if !ok {
		t.Fatal("target should be visible")
	}
	want := mgl32.Vec2{400, 300}
	if !got.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("WorldToScreen(target) = %v, want %v", got, want)
	}
}

func TestWorldToScreenTopLeftOrigin(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	cam := frontCamera()

	up, ok := WorldToScreen(cam, vp, mgl32.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("point should be visible")
	}
	if up.Y() >= 300 {
		t.Errorf("point above target should be above screen center, got y=%v", up.Y())
	}

	right, _ := WorldToScreen(cam, vp, mgl32.Vec3{1, 0, 0})
	if right.X() <= 400 {
		t.Errorf("point right of target should be right of center, got x=%v", right.X())
	}
}

func TestWorldToScreenViewportOffset(t *testing.T) {
	cam := frontCamera()
	got, ok := WorldToScreen(cam, Viewport{X: 100, Y: 50, Width: 200, Height: 100}, mgl32.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	want := mgl32.Vec2{200, 100}
	if !got.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	if _, ok := WorldToScreen(frontCamera(), vp, mgl32.Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera should not be visible")
	}
	if _, ok := WorldToScreen(frontCamera(), Viewport{}, mgl32.Vec3{}); ok {
		t.Error("empty viewport should never report visible")
	}
}

func TestViewProject(t *testing.T) {
	v := &View{Camera: frontCamera(), Viewport: Viewport{Width: 640, Height: 480}}
	got, ok := v.Project(mgl32.Vec3{})
	if !ok || !got.ApproxEqualThreshold(mgl32.Vec2{320, 240}, 1e-2) {
		t.Errorf("Project() = %v, %v", got, ok)
	}

	v.Viewport = Viewport{Width: 320, Height: 240}
	got, _ = v.Project(mgl32.Vec3{})
	if !got.ApproxEqualThreshold(mgl32.Vec2{160, 120}, 1e-2) {
		t.Errorf("after resize Project() = %v, want (160, 120)", got)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(mgl32.Vec3{-2, 0, -2}, mgl32.Vec3{2, 4, 2})
	if !c.Target.ApproxEqualThreshold(mgl32.Vec3{0, 2, 0}, 1e-5) {
		t.Errorf("target: got %v, want (0, 2, 0)", c.Target)
	}
	for _, corner := range []mgl32.Vec3{{-2, 0, -2}, {2, 4, 2}} {
		if _, ok := WorldToScreen(c, Viewport{Width: 100, Height: 100}, corner); !ok {
			t.Errorf("corner %v should be in front of the camera", corner)
		}
	}
}
