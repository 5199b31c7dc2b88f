package collider

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

var unitBase = mgl32.Vec3{1, 1, 1}

func TestComputeProxyTransformBox(t *testing.T) {
	shape := Box{Center: mgl32.Vec3{1, 0, 0}, Size: mgl32.Vec3{2, 2, 2}}

	for _, base := range []mgl32.Vec3{unitBase, {0.5, 2, 3}} {
		got, err := ComputeProxyTransform(shape, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LocalPosition != (mgl32.Vec3{1, 0, 0}) {
			t.Errorf("position: got %v, want (1, 0, 0)", got.LocalPosition)
		}
		want := mgl32.Vec3{2 * base[0], 2 * base[1], 2 * base[2]}
		if !got.LocalScale.ApproxEqualThreshold(want, eps) {
			t.Errorf("scale with base %v: got %v, want %v", base, got.LocalScale, want)
		}
		if got.LocalRotationDegrees != (mgl32.Vec3{}) {
			t.Errorf("box should not rotate, got %v", got.LocalRotationDegrees)
		}
	}
}

func TestComputeProxyTransformBoxNonUniform(t *testing.T) {
	got, err := ComputeProxyTransform(Box{Size: mgl32.Vec3{1, 3, 0.25}}, mgl32.Vec3{2, 2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mgl32.Vec3{2, 6, 0.5}
	if !got.LocalScale.ApproxEqualThreshold(want, eps) {
		t.Errorf("scale: got %v, want %v", got.LocalScale, want)
	}
}

func TestComputeProxyTransformSphere(t *testing.T) {
	base := mgl32.Vec3{1, 2, 4}
	got, err := ComputeProxyTransform(Sphere{Center: mgl32.Vec3{0, 1, 0}, Radius: 0.5}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.LocalScale.ApproxEqualThreshold(base, eps) {
		t.Errorf("radius 0.5 should give 1x base scale, got %v", got.LocalScale)
	}
	if got.LocalPosition != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("position: got %v, want (0, 1, 0)", got.LocalPosition)
	}
}

func TestComputeProxyTransformCapsule(t *testing.T) {
	tests := []struct {
		name      string
		axis      Axis
		wantRot   mgl32.Vec3
		wantScale mgl32.Vec3
	}{
		{"y axis", AxisY, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}},
		{"x axis", AxisX, mgl32.Vec3{0, 0, 90}, mgl32.Vec3{2, 2, 2}},
		{"z axis", AxisZ, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Capsule{Center: mgl32.Vec3{0, 0.5, 0}, Radius: 1, Height: 4, Axis: tt.axis}
			got, err := ComputeProxyTransform(shape, unitBase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.LocalRotationDegrees != tt.wantRot {
				t.Errorf("rotation: got %v, want %v", got.LocalRotationDegrees, tt.wantRot)
			}
			if !got.LocalScale.ApproxEqualThreshold(tt.wantScale, eps) {
				t.Errorf("scale: got %v, want %v", got.LocalScale, tt.wantScale)
			}
			if got.LocalPosition != shape.Center {
				t.Errorf("position: got %v, want %v", got.LocalPosition, shape.Center)
			}
		})
	}
}

func TestComputeProxyTransformCapsuleHalfHeight(t *testing.T) {
	base := mgl32.Vec3{1, 3, 1}
	got, err := ComputeProxyTransform(Capsule{Radius: 0.25, Height: 5, Axis: AxisX}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mgl32.Vec3{0.5, 7.5, 0.5}
	if !got.LocalScale.ApproxEqualThreshold(want, eps) {
		t.Errorf("scale: got %v, want %v", got.LocalScale, want)
	}
}

func TestCapsuleRotationAlignsLongAxis(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	tests := []struct {
		axis Axis
		want mgl32.Vec3
	}{
		{AxisX, mgl32.Vec3{1, 0, 0}},
		{AxisY, mgl32.Vec3{0, 1, 0}},
		{AxisZ, mgl32.Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		pt, err := ComputeProxyTransform(Capsule{Radius: 1, Height: 2, Axis: tt.axis}, unitBase)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dir := pt.Rotation().Rotate(up)
		// Direction sign does not matter for a symmetric capsule.
		if d := dir.Dot(tt.want); d < 1-eps && d > -1+eps {
			t.Errorf("axis %v: long axis points %v, want ±%v", tt.axis, dir, tt.want)
		}
	}
}

func TestComputeProxyTransformUnsupported(t *testing.T) {
	for _, shape := range []Shape{Mesh{}, Mesh{Convex: true}, nil} {
		_, err := ComputeProxyTransform(shape, unitBase)
		if !errors.Is(err, ErrUnsupportedShape) {
			t.Errorf("%s: expected ErrUnsupportedShape, got %v", Name(shape), err)
		}
		if _, err := PrimitiveFor(shape); !errors.Is(err, ErrUnsupportedShape) {
			t.Errorf("%s: PrimitiveFor expected ErrUnsupportedShape, got %v", Name(shape), err)
		}
	}
}

func TestPrimitiveFor(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Primitive
	}{
		{Box{}, PrimitiveCube},
		{Sphere{}, PrimitiveSphere},
		{Capsule{}, PrimitiveCapsule},
	}
	for _, tt := range tests {
		got, err := PrimitiveFor(tt.shape)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", Name(tt.shape), err)
		}
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", Name(tt.shape), got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		min, max mgl32.Vec3
	}{
		{"box", Box{Center: mgl32.Vec3{1, 0, 0}, Size: mgl32.Vec3{2, 4, 6}}, mgl32.Vec3{0, -2, -3}, mgl32.Vec3{2, 2, 3}},
		{"sphere", Sphere{Radius: 2}, mgl32.Vec3{-2, -2, -2}, mgl32.Vec3{2, 2, 2}},
		{"capsule x", Capsule{Radius: 1, Height: 6, Axis: AxisX}, mgl32.Vec3{-3, -1, -1}, mgl32.Vec3{3, 1, 1}},
		{"short capsule", Capsule{Radius: 1, Height: 1, Axis: AxisY}, mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, err := Bounds(tt.shape)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !min.ApproxEqualThreshold(tt.min, eps) || !max.ApproxEqualThreshold(tt.max, eps) {
				t.Errorf("got [%v, %v], want [%v, %v]", min, max, tt.min, tt.max)
			}
		})
	}

	if _, _, err := Bounds(Mesh{}); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("mesh bounds: expected ErrUnsupportedShape, got %v", err)
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, " z ": AxisZ, "": AxisY} {
		got, err := ParseAxis(in)
		if err != nil {
			t.Errorf("ParseAxis(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAxis(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAxis("w"); err == nil {
		t.Error("expected error for unknown axis")
	}
}
