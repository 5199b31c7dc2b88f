package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
)

// MeshRenderer draws one of the built-in primitives with a material.
type MeshRenderer struct {
	Primitive collider.Primitive
	Material  *material.Material
}

// Node is an object in the scene graph.
type Node struct {
	Name      string
	Active    bool
	Transform Transform

	// Collider is the node's physics volume, or nil.
	Collider collider.Shape
	// Mesh is nil for nodes that draw nothing.
	Mesh *MeshRenderer

	scene      *Scene
	parent     *Node
	children   []*Node
	components []*componentSlot
	destroyed  bool
}

// NewNode creates a detached, active node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Active:    true,
		Transform: NewTransform(),
	}
}

// Scene returns the scene the node belongs to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Parent returns the parent node, or nil for roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Destroyed reports whether the node has been destroyed.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// AddComponent attaches c to the node. Start runs on the next scene tick.
func (n *Node) AddComponent(c Component) {
	c.Attach(n)
	n.components = append(n.components, &componentSlot{c: c})
}

// RemoveComponent detaches c from the node and runs its OnDestroy before
// returning. The node itself stays alive. It reports whether c was attached.
func (n *Node) RemoveComponent(c Component) bool {
	for i, slot := range n.components {
		if slot.c != c {
			continue
		}
		slot.removed = true
		// Copy so a Tick iterating the old slice is not disturbed.
		rest := make([]*componentSlot, 0, len(n.components)-1)
		rest = append(rest, n.components[:i]...)
		n.components = append(rest, n.components[i+1:]...)
		c.OnDestroy()
		return true
	}
	return false
}

// Components returns the attached components in insertion order.
func (n *Node) Components() []Component {
	out := make([]Component, len(n.components))
	for i, s := range n.components {
		out[i] = s.c
	}
	return out
}

// SetParent moves the node under parent. A nil parent makes it a root of
// its current scene. With worldPositionStays the local position is
// recomputed so the world position does not change; rotation and scale
// are kept as local values either way.
func (n *Node) SetParent(parent *Node, worldPositionStays bool) {
	if parent == n.parent {
		return
	}

	var worldPos mgl32.Vec3
	if worldPositionStays {
		worldPos = n.WorldPosition()
	}

	n.detach()

	var sc *Scene
	if parent != nil {
		parent.children = append(parent.children, n)
		n.parent = parent
		sc = parent.scene
	} else {
		sc = n.scene
	}
	if parent == nil && sc != nil {
		sc.roots = append(sc.roots, n)
	}
	n.setScene(sc)

	if worldPositionStays {
		if parent != nil {
			inv := parent.WorldMatrix().Inv()
			n.Transform.Position = mgl32.TransformCoordinate(worldPos, inv)
		} else {
			n.Transform.Position = worldPos
		}
	}
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	return n.Transform.Matrix()
}

// WorldMatrix returns the node's transform in world space.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// ActiveInHierarchy reports whether the node and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Active {
			return false
		}
	}
	return true
}

func (n *Node) detach() {
	if n.parent != nil {
		n.parent.children = removeNode(n.parent.children, n)
		n.parent = nil
		return
	}
	if n.scene != nil {
		n.scene.roots = removeNode(n.scene.roots, n)
	}
}

func (n *Node) setScene(sc *Scene) {
	n.scene = sc
	for _, c := range n.children {
		c.setScene(sc)
	}
}

func removeNode(list []*Node, n *Node) []*Node {
	for i, o := range list {
		if o == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
