package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
)

func TestBoxWireframeIdentity(t *testing.T) {
	min := mgl32.Vec3{-1, -2, -3}
	max := mgl32.Vec3{1, 2, 3}
	v := BoxWireframe(min, max, mgl32.Ident4())

	if len(v) != BoxWireframeVertexCount*3 {
		t.Fatalf("expected %d floats, got %d", BoxWireframeVertexCount*3, len(v))
	}

	// Every endpoint is a corner, and every edge changes exactly one axis.
	for i := 0; i < len(v); i += 6 {
		a := mgl32.Vec3{v[i], v[i+1], v[i+2]}
		b := mgl32.Vec3{v[i+3], v[i+4], v[i+5]}
		for _, p := range []mgl32.Vec3{a, b} {
			for k := 0; k < 3; k++ {
				if p[k] != min[k] && p[k] != max[k] {
					t.Fatalf("vertex %v is not a corner", p)
				}
			}
		}
		diff := 0
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %v-%v changes %d axes", a, b, diff)
		}
	}
}

func TestBoxWireframeTransformed(t *testing.T) {
	m := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	v := BoxWireframe(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, m)

	for i := 0; i < len(v); i += 3 {
		p := mgl32.Vec3{v[i], v[i+1], v[i+2]}
		if mgl32.Abs(p.X()-10) != 1 || mgl32.Abs(p.Y()) != 1 || mgl32.Abs(p.Z()) != 1 {
			t.Fatalf("vertex %v not on the scaled, translated box", p)
		}
	}
}

func TestColliderWireframe(t *testing.T) {
	if _, ok := ColliderWireframe(collider.Mesh{}, mgl32.Ident4()); ok {
		t.Error("mesh collider should have no wireframe")
	}

	v, ok := ColliderWireframe(collider.Sphere{Radius: 1}, mgl32.Ident4())
	if !ok || len(v) != BoxWireframeVertexCount*3 {
		t.Fatalf("sphere wireframe: ok=%v len=%d", ok, len(v))
	}
	for _, f := range v {
		if mgl32.Abs(f) != 1 {
			t.Fatalf("sphere bounds component %v, want ±1", f)
		}
	}
}

func TestWorldAABB(t *testing.T) {
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	lo, hi := WorldAABB(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 1, 1}, rot)

	// A 90° turn about Y maps +X to -Z.
	wantLo := mgl32.Vec3{0, 0, -2}
	wantHi := mgl32.Vec3{1, 1, 0}
	if !lo.ApproxEqualThreshold(wantLo, 1e-5) || !hi.ApproxEqualThreshold(wantHi, 1e-5) {
		t.Errorf("WorldAABB = %v..%v, want %v..%v", lo, hi, wantLo, wantHi)
	}
}

func TestGroundGrid(t *testing.T) {
	if GroundGrid(0, 1, 0) != nil {
		t.Error("empty grid should return nil")
	}

	v := GroundGrid(2, 0.5, -1)
	// 5 lines each way, 2 vertices per line.
	if len(v) != 20 {
		t.Fatalf("expected 20 vertices, got %d", len(v))
	}
	axes := 0
	for _, p := range v {
		if p.Y != -1 {
			t.Fatalf("vertex %+v off the grid plane", p)
		}
		if mgl32.Abs(p.X) > 1 || mgl32.Abs(p.Z) > 1 {
			t.Fatalf("vertex %+v outside the extent", p)
		}
		if [3]float32{p.R, p.G, p.B} != gridColor {
			axes++
		}
	}
	if axes != 4 {
		t.Errorf("expected 4 axis-tinted vertices, got %d", axes)
	}
}

func TestColored(t *testing.T) {
	v := Colored([]float32{1, 2, 3, 4, 5, 6}, [3]float32{1, 0, 0})
	if len(v) != 2 {
		t.Fatalf("expected 2 vertices, got %d", len(v))
	}
	if v[1] != (LineVertex{4, 5, 6, 1, 0, 0}) {
		t.Errorf("second vertex = %+v", v[1])
	}
}

func TestFlipPixels(t *testing.T) {
	// 1x2: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}

	if _, err := FlipPixels(pixels, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "colliderviz")
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	first, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}
	want := filepath.Join(dir, "colliderviz_2026-03-14_15-09-26.png")
	if first != want {
		t.Errorf("path = %s, want %s", first, want)
	}

	second, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}
	if second == first {
		t.Error("second capture in the same second must not overwrite the first")
	}

	f, err := os.Open(second)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestCaptureFromPixels(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "")
	path, err := sc.CaptureFromPixels(make([]byte, 2*2*4), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Ext(path) != ".png" || !fileExists(path) {
		t.Errorf("unexpected capture path %s", path)
	}
	if _, err := sc.CaptureFromPixels([]byte{1}, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
