package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
)

type recorder struct {
	BaseComponent
	name string
	log  *[]string
}

func (r *recorder) Start()                { *r.log = append(*r.log, r.name+".start") }
func (r *recorder) Update(dt float64)     { *r.log = append(*r.log, r.name+".update") }
func (r *recorder) LateUpdate(dt float64) { *r.log = append(*r.log, r.name+".late") }
func (r *recorder) OnDestroy()            { *r.log = append(*r.log, r.name+".destroy") }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTickOrder(t *testing.T) {
	var log []string
	s := NewScene()

	a := NewNode("a")
	b := NewNode("b")
	s.Add(a)
	b.SetParent(a, false)
	a.AddComponent(&recorder{name: "a", log: &log})
	b.AddComponent(&recorder{name: "b", log: &log})

	s.Tick(0.016)
	want := []string{"a.start", "b.start", "a.update", "b.update", "a.late", "b.late"}
	if !equalStrings(log, want) {
		t.Errorf("first tick: got %v, want %v", log, want)
	}

	log = nil
	s.Tick(0.016)
	want = []string{"a.update", "b.update", "a.late", "b.late"}
	if !equalStrings(log, want) {
		t.Errorf("second tick: got %v, want %v", log, want)
	}
}

type spawner struct {
	BaseComponent
	spawned *Node
	log     *[]string
}

func (s *spawner) Start() {
	s.spawned = s.Node().Scene().CreatePrimitive("child", collider.PrimitiveCube)
	s.spawned.SetParent(s.Node(), false)
	s.spawned.AddComponent(&recorder{name: "child", log: s.log})
}

func TestComponentsAddedDuringStartWaitForNextTick(t *testing.T) {
	var log []string
	s := NewScene()
	owner := NewNode("owner")
	s.Add(owner)
	sp := &spawner{log: &log}
	owner.AddComponent(sp)

	s.Tick(0)
	if len(log) != 0 {
		t.Errorf("child should not run in the frame it was created, got %v", log)
	}
	if sp.spawned.Parent() != owner {
		t.Fatal("spawned node should be parented to owner")
	}

	s.Tick(0)
	want := []string{"child.start", "child.update", "child.late"}
	if !equalStrings(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
}

func TestDestroyIsSynchronousAndRecursive(t *testing.T) {
	var log []string
	s := NewScene()
	root := NewNode("root")
	child := NewNode("child")
	s.Add(root)
	child.SetParent(root, false)
	root.AddComponent(&recorder{name: "root", log: &log})
	child.AddComponent(&recorder{name: "child", log: &log})

	s.Destroy(root)

	want := []string{"child.destroy", "root.destroy"}
	if !equalStrings(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
	if !root.Destroyed() || !child.Destroyed() {
		t.Error("expected root and child to be destroyed")
	}
	if len(s.Roots()) != 0 {
		t.Errorf("expected no roots, got %d", len(s.Roots()))
	}

	// Destroying twice is a no-op.
	log = nil
	s.Destroy(root)
	if len(log) != 0 {
		t.Errorf("second destroy should not call OnDestroy, got %v", log)
	}
}

func TestWorldMatrix(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent")
	parent.Transform.Position = mgl32.Vec3{10, 0, 0}
	parent.Transform.Scale = mgl32.Vec3{2, 2, 2}
	s.Add(parent)

	child := NewNode("child")
	child.Transform.Position = mgl32.Vec3{1, 0, 0}
	child.SetParent(parent, false)

	got := child.WorldPosition()
	want := mgl32.Vec3{12, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}

	parent.Transform.Rotate(mgl32.Vec3{0, 1, 0}, 90)
	got = child.WorldPosition()
	want = mgl32.Vec3{10, 0, -2}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("after rotation WorldPosition() = %v, want %v", got, want)
	}
}

func TestSetParentWorldPositionStays(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent")
	parent.Transform.Position = mgl32.Vec3{5, 5, 5}
	s.Add(parent)

	n := NewNode("n")
	n.Transform.Position = mgl32.Vec3{1, 2, 3}
	s.Add(n)

	n.SetParent(parent, true)
	if got := n.WorldPosition(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-5) {
		t.Errorf("world position changed: got %v", got)
	}
	if got := n.Transform.Position; !got.ApproxEqualThreshold(mgl32.Vec3{-4, -3, -2}, 1e-5) {
		t.Errorf("local position: got %v, want (-4, -3, -2)", got)
	}
	if len(s.Roots()) != 1 {
		t.Errorf("expected 1 root after reparenting, got %d", len(s.Roots()))
	}

	n.SetParent(nil, true)
	if len(s.Roots()) != 2 {
		t.Errorf("expected 2 roots after unparenting, got %d", len(s.Roots()))
	}
	if got := n.Transform.Position; !got.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-5) {
		t.Errorf("local position after unparent: got %v", got)
	}
}

func TestCreatePrimitive(t *testing.T) {
	s := NewScene()
	n := s.CreatePrimitive("cube", collider.PrimitiveSphere)

	if n.Mesh == nil || n.Mesh.Primitive != collider.PrimitiveSphere {
		t.Fatalf("expected sphere mesh, got %+v", n.Mesh)
	}
	if n.Collider != nil {
		t.Error("primitive proxy must not carry a collider")
	}
	if n.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("base scale: got %v, want (1, 1, 1)", n.Transform.Scale)
	}
	if s.Find("cube") != n {
		t.Error("Find should return the created node")
	}
}

func TestRenderablesSkipInactive(t *testing.T) {
	s := NewScene()
	a := s.CreatePrimitive("a", collider.PrimitiveCube)
	b := s.CreatePrimitive("b", collider.PrimitiveCube)
	b.SetParent(a, false)
	s.Add(NewNode("empty"))

	if got := len(s.Renderables()); got != 2 {
		t.Errorf("expected 2 renderables, got %d", got)
	}
	a.Active = false
	if got := len(s.Renderables()); got != 0 {
		t.Errorf("inactive parent should hide subtree, got %d renderables", got)
	}
	if b.ActiveInHierarchy() {
		t.Error("b should be inactive in hierarchy")
	}
}

func TestClear(t *testing.T) {
	var log []string
	s := NewScene()
	for _, name := range []string{"a", "b", "c"} {
		n := NewNode(name)
		n.AddComponent(&recorder{name: name, log: &log})
		s.Add(n)
	}
	s.Clear()
	if len(s.Roots()) != 0 {
		t.Errorf("expected empty scene, got %d roots", len(s.Roots()))
	}
	if len(log) != 3 {
		t.Errorf("expected 3 OnDestroy calls, got %v", log)
	}
}

type selfRemover struct {
	recorder
}

func (r *selfRemover) Update(dt float64) {
	r.recorder.Update(dt)
	r.Node().RemoveComponent(r)
}

func TestRemoveComponent(t *testing.T) {
	var log []string
	s := NewScene()
	n := NewNode("leg")
	s.Add(n)
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	n.AddComponent(a)
	n.AddComponent(b)

	s.Tick(0)
	log = nil

	if !n.RemoveComponent(a) {
		t.Fatal("expected a to be removed")
	}
	if want := []string{"a.destroy"}; !equalStrings(log, want) {
		t.Errorf("remove: got %v, want %v", log, want)
	}
	if n.Destroyed() {
		t.Error("removing a component must not destroy its node")
	}
	if got := n.Components(); len(got) != 1 || got[0] != b {
		t.Errorf("components = %v", got)
	}
	if n.RemoveComponent(a) {
		t.Error("second remove should report false")
	}

	log = nil
	s.Tick(0)
	if want := []string{"b.update", "b.late"}; !equalStrings(log, want) {
		t.Errorf("after remove: got %v, want %v", log, want)
	}
}

func TestRemoveComponentDuringUpdate(t *testing.T) {
	var log []string
	s := NewScene()
	n := NewNode("n")
	s.Add(n)
	n.AddComponent(&selfRemover{recorder{name: "self", log: &log}})

	s.Tick(0)
	want := []string{"self.start", "self.update", "self.destroy"}
	if !equalStrings(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
	if len(n.Components()) != 0 {
		t.Errorf("expected no components, got %d", len(n.Components()))
	}
}

func TestRemoveComponentBeforeStart(t *testing.T) {
	var log []string
	s := NewScene()
	n := NewNode("n")
	s.Add(n)
	r := &recorder{name: "r", log: &log}
	n.AddComponent(r)
	n.RemoveComponent(r)

	s.Tick(0)
	if want := []string{"r.destroy"}; !equalStrings(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
}
