package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
)

func TestSortForDraw(t *testing.T) {
	sc := NewScene()

	near := sc.CreatePrimitive("near", collider.PrimitiveSphere)
	near.Transform.Position = mgl32.Vec3{0, 0, 2}
	near.Mesh.Material.SetRenderingMode(material.Fade)

	far := sc.CreatePrimitive("far", collider.PrimitiveCube)
	far.Transform.Position = mgl32.Vec3{0, 0, -20}
	far.Mesh.Material.SetRenderingMode(material.Fade)

	solid := sc.CreatePrimitive("solid", collider.PrimitiveCube)
	_ = solid

	cutout := sc.CreatePrimitive("cutout", collider.PrimitiveCube)
	cutout.Mesh.Material.SetRenderingMode(material.Cutout)

	rs := sc.Renderables()
	SortForDraw(rs, mgl32.Vec3{0, 0, 10})

	var got []string
	for _, r := range rs {
		got = append(got, r.Node.Name)
	}
	want := []string{"solid", "cutout", "far", "near"}
	if !equalStrings(got, want) {
		t.Errorf("draw order = %v, want %v", got, want)
	}

	if rs[0].Queue() != QueueGeometry {
		t.Errorf("opaque queue = %d, want %d", rs[0].Queue(), QueueGeometry)
	}
	if rs[0].Transparent() || !rs[3].Transparent() {
		t.Error("transparency flags wrong")
	}
}
