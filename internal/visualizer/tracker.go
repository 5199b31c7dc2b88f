package visualizer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/engine/overlay"
	"github.com/Faultbox/colliderviz/internal/engine/scene"
)

// View projects world positions to screen space.
// *camera.View implements it.
type View interface {
	Project(world mgl32.Vec3) (mgl32.Vec2, bool)
}

// LabelTracker keeps a label centered over a node's projected world position.
type LabelTracker struct {
	label  *overlay.Label
	target *scene.Node
	view   View

	// OffsetY lifts the tracked point in world units before projecting.
	OffsetY float32
}

// NewLabelTracker creates a tracker. Call Update once per frame after
// transforms are final.
func NewLabelTracker(label *overlay.Label, target *scene.Node, view View) *LabelTracker {
	return &LabelTracker{label: label, target: target, view: view}
}

// Label returns the tracked label.
func (t *LabelTracker) Label() *overlay.Label {
	return t.label
}

// Update re-projects the target and moves the label. The label is hidden
// while the target is destroyed, inactive or off the camera's depth range.
func (t *LabelTracker) Update() {
	if t.label == nil || t.label.Removed() {
		return
	}
	if t.target == nil || t.target.Destroyed() || !t.target.ActiveInHierarchy() || t.view == nil {
		t.label.SetAnchor(t.label.Anchor(), false)
		return
	}

	world := t.target.WorldPosition()
	world[1] += t.OffsetY
	pt, ok := t.view.Project(world)
	t.label.SetAnchor(pt, ok)
}
