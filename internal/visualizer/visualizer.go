// Package visualizer makes invisible colliders visible for debugging.
//
// A Visualizer is a scene component. On Start it reads the collider of
// the node it is attached to, spawns a semi-transparent primitive child
// with the same shape, position and size, and optionally shows a text
// label that follows the proxy on screen.
package visualizer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
	"github.com/Faultbox/colliderviz/internal/engine/overlay"
	"github.com/Faultbox/colliderviz/internal/engine/scene"
)

// ProxySuffix is appended to the owner's name to name its proxy node.
const ProxySuffix = " (collider)"

// Visualizer shows a node's collider as a colored proxy mesh.
type Visualizer struct {
	scene.BaseComponent

	// LabelOffsetY lifts the label above the proxy origin, in world units.
	LabelOffsetY float32

	canvas *overlay.Canvas
	view   View
	log    *zap.Logger

	color     Color
	labelText string
	fontSize  float64
	wantLabel bool

	started   bool
	err       error
	proxy     *scene.Node
	transform collider.ProxyTransform
	tracker   *LabelTracker
}

// New creates a visualizer that draws labels on canvas using view for
// projection. log may be nil.
func New(canvas *overlay.Canvas, view View, log *zap.Logger) *Visualizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Visualizer{
		canvas: canvas,
		view:   view,
		log:    log,
		color:  Red,
	}
}

// Initialize sets the proxy color and requests a label. An empty text
// skips the label.
func (v *Visualizer) Initialize(color Color, text string, fontSize float64) {
	v.color = color
	if v.proxy != nil {
		v.proxy.Mesh.Material.Color = color.RGBA()
	}
	if text != "" {
		v.CreateLabel(text, fontSize)
	}
}

// CreateLabel shows text over the proxy. Before Start the request is
// remembered; calling it again replaces the existing label's text and size.
func (v *Visualizer) CreateLabel(text string, fontSize float64) {
	v.labelText = text
	v.fontSize = fontSize
	v.wantLabel = true

	if !v.started || v.proxy == nil {
		return
	}

	if v.tracker != nil {
		l := v.tracker.Label()
		l.SetText(text)
		l.SetFontSize(fontSize)
		return
	}

	label := v.canvas.NewLabel(text, fontSize)
	v.tracker = NewLabelTracker(label, v.proxy, v.view)
	v.tracker.OffsetY = v.LabelOffsetY
	v.tracker.Update()
}

// Start builds the proxy for the owner's collider.
func (v *Visualizer) Start() {
	v.started = true
	owner := v.Node()

	prim, err := collider.PrimitiveFor(owner.Collider)
	if err != nil {
		v.err = err
		v.log.Warn("collider not visualized",
			zap.String("node", owner.Name),
			zap.String("shape", collider.Name(owner.Collider)),
			zap.Error(err),
		)
		return
	}

	proxy := owner.Scene().CreatePrimitive(owner.Name+ProxySuffix, prim)
	pt, err := collider.ComputeProxyTransform(owner.Collider, proxy.Transform.Scale)
	if err != nil {
		// PrimitiveFor accepted the shape, so this cannot happen.
		owner.Scene().Destroy(proxy)
		v.err = err
		return
	}

	proxy.SetParent(owner, false)
	proxy.Transform.Position = pt.LocalPosition
	proxy.Transform.Rotation = pt.Rotation()
	proxy.Transform.Scale = pt.LocalScale

	proxy.Mesh.Material.Color = v.color.RGBA()
	proxy.Mesh.Material.SetRenderingMode(material.Fade)

	v.proxy = proxy
	v.transform = pt

	v.log.Debug("collider visualized",
		zap.String("node", owner.Name),
		zap.Stringer("primitive", prim),
		zap.Stringer("color", v.color),
	)

	if v.wantLabel {
		v.CreateLabel(v.labelText, v.fontSize)
	}
}

// LateUpdate moves the label to the proxy's current screen position.
func (v *Visualizer) LateUpdate(dt float64) {
	if v.tracker != nil {
		v.tracker.Update()
	}
}

// OnDestroy removes the label from the canvas. When only the component is
// removed and its owner lives on, the proxy is destroyed too.
func (v *Visualizer) OnDestroy() {
	if v.tracker != nil {
		v.canvas.Remove(v.tracker.Label())
		v.tracker = nil
	}
	if v.proxy != nil && !v.proxy.Destroyed() {
		if sc := v.proxy.Scene(); sc != nil {
			sc.Destroy(v.proxy)
		}
	}
	v.proxy = nil
}

// Color returns the proxy color.
func (v *Visualizer) Color() Color {
	return v.color
}

// Proxy returns the proxy node, or nil before Start or when the collider
// is unsupported.
func (v *Visualizer) Proxy() *scene.Node {
	return v.proxy
}

// Label returns the overlay label, or nil if none exists.
func (v *Visualizer) Label() *overlay.Label {
	if v.tracker == nil {
		return nil
	}
	return v.tracker.Label()
}

// Transform returns the transform applied to the proxy.
func (v *Visualizer) Transform() collider.ProxyTransform {
	return v.transform
}

// Err returns the reason no proxy was built, if any.
func (v *Visualizer) Err() error {
	return v.err
}
