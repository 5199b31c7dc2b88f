package scene

// Component is behaviour attached to a node.
//
// Lifecycle per node: Attach when added, Start once before its first
// Update, then Update and LateUpdate every frame, OnDestroy when the node
// is destroyed or the component is removed. LateUpdate runs after every
// Update in the scene, so transforms are final by then.
type Component interface {
	Attach(n *Node)
	Start()
	Update(dt float64)
	LateUpdate(dt float64)
	OnDestroy()
}

// BaseComponent provides no-op lifecycle methods.
// Embed it and override only what you need.
type BaseComponent struct {
	node *Node
}

func (c *BaseComponent) Attach(n *Node)        { c.node = n }
func (c *BaseComponent) Start()                {}
func (c *BaseComponent) Update(dt float64)     {}
func (c *BaseComponent) LateUpdate(dt float64) {}
func (c *BaseComponent) OnDestroy()            {}

// Node returns the node the component is attached to.
func (c *BaseComponent) Node() *Node {
	return c.node
}

type componentSlot struct {
	c       Component
	started bool
	removed bool
}
