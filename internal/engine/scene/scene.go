package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
)

// Scene owns a forest of nodes and drives their components.
type Scene struct {
	roots []*Node
}

// Renderable is a mesh node resolved to world space for one frame.
type Renderable struct {
	Node  *Node
	Mesh  *MeshRenderer
	World mgl32.Mat4
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add makes n (and its subtree) a root of the scene.
func (s *Scene) Add(n *Node) {
	if n.scene == s && n.parent == nil {
		return
	}
	n.detach()
	s.roots = append(s.roots, n)
	n.setScene(s)
}

// Roots returns the root nodes. The slice must not be modified.
func (s *Scene) Roots() []*Node {
	return s.roots
}

// CreatePrimitive adds a root node that draws prim with a white opaque
// material. The node has unit scale and no collider.
func (s *Scene) CreatePrimitive(name string, prim collider.Primitive) *Node {
	n := NewNode(name)
	n.Mesh = &MeshRenderer{
		Primitive: prim,
		Material:  material.New([4]float32{1, 1, 1, 1}),
	}
	s.Add(n)
	return n
}

// Find returns the first live node with the given name, depth-first.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.Walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits nodes depth-first, parents before children.
// Returning false from fn stops the walk.
func (s *Scene) Walk(fn func(n *Node) bool) {
	for _, r := range s.roots {
		if !walk(r, fn) {
			return
		}
	}
}

func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// Destroy removes n and its subtree from the scene. OnDestroy runs for
// every component before Destroy returns, children first.
func (s *Scene) Destroy(n *Node) {
	if n == nil || n.destroyed {
		return
	}
	n.detach()
	destroy(n)
}

func destroy(n *Node) {
	// Copy: OnDestroy handlers may destroy siblings.
	children := append([]*Node(nil), n.children...)
	for _, c := range children {
		destroy(c)
	}
	n.destroyed = true
	for _, slot := range n.components {
		slot.c.OnDestroy()
	}
	n.components = nil
	n.children = nil
	n.parent = nil
	n.scene = nil
}

// Clear destroys every root node.
func (s *Scene) Clear() {
	roots := append([]*Node(nil), s.roots...)
	for _, r := range roots {
		s.Destroy(r)
	}
}

// Tick runs one frame: Start for components that have not started, then
// Update on every component, then LateUpdate on every component. Nodes
// created during the frame start on the next Tick.
func (s *Scene) Tick(dt float64) {
	nodes := s.activeNodes()

	for _, n := range nodes {
		// Slots appended during Start wait for the next frame.
		slots := n.components
		for _, slot := range slots {
			if n.destroyed {
				break
			}
			if !slot.started && !slot.removed {
				slot.started = true
				slot.c.Start()
			}
		}
	}

	for _, n := range nodes {
		for _, slot := range n.components {
			if n.destroyed {
				break
			}
			if slot.started && !slot.removed {
				slot.c.Update(dt)
			}
		}
	}

	for _, n := range nodes {
		for _, slot := range n.components {
			if n.destroyed {
				break
			}
			if slot.started && !slot.removed {
				slot.c.LateUpdate(dt)
			}
		}
	}
}

// Renderables returns every active mesh node with its world matrix.
func (s *Scene) Renderables() []Renderable {
	var out []Renderable
	for _, n := range s.activeNodes() {
		if n.Mesh == nil {
			continue
		}
		out = append(out, Renderable{Node: n, Mesh: n.Mesh, World: n.WorldMatrix()})
	}
	return out
}

func (s *Scene) activeNodes() []*Node {
	var nodes []*Node
	for _, r := range s.roots {
		collectActive(r, &nodes)
	}
	return nodes
}

func collectActive(n *Node, out *[]*Node) {
	if !n.Active {
		return
	}
	*out = append(*out, n)
	for _, c := range n.children {
		collectActive(c, out)
	}
}
