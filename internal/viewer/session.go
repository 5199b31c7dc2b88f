// Package viewer runs the collider debug viewer: it owns the scene, the
// overlay canvas and the camera, and reloads scene files on request.
package viewer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/camera"
	"github.com/Faultbox/colliderviz/internal/engine/debug"
	"github.com/Faultbox/colliderviz/internal/engine/overlay"
	"github.com/Faultbox/colliderviz/internal/engine/picking"
	"github.com/Faultbox/colliderviz/internal/engine/scene"
	"github.com/Faultbox/colliderviz/internal/scenefile"
	"github.com/Faultbox/colliderviz/internal/visualizer"
)

var (
	boundsColor   = [3]float32{1, 0.85, 0.2}
	selectedColor = [3]float32{1, 1, 1}
)

// Session holds the loaded scene and everything the visualizers draw into.
// It has no GL dependencies.
type Session struct {
	Scene  *scene.Scene
	Canvas *overlay.Canvas
	Camera *camera.OrbitCamera
	View   *camera.View

	// LabelOffsetY is added to every visualizer that does not set its own.
	LabelOffsetY float32

	log      *zap.Logger
	path     string
	vis      []*visualizer.Visualizer
	selected *scene.Node
}

// NewSession creates an empty session rendering into a width x height screen.
func NewSession(canvas *overlay.Canvas, cam *camera.OrbitCamera, width, height int, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Scene:  scene.NewScene(),
		Canvas: canvas,
		Camera: cam,
		View: &camera.View{
			Camera:   cam,
			Viewport: camera.Viewport{Width: width, Height: height},
		},
		log: log,
	}
}

// Path returns the open scene file, or "" for the demo scene.
func (s *Session) Path() string {
	return s.path
}

// Visualizers returns the visualizers of the current scene.
func (s *Session) Visualizers() []*visualizer.Visualizer {
	return s.vis
}

// Open replaces the scene with the one at path ("" for the demo). If the
// file cannot be loaded or built the current scene is kept.
func (s *Session) Open(path string) error {
	doc, err := scenefile.LoadOrDefault(path)
	if err != nil {
		return err
	}

	old := append([]*scene.Node(nil), s.Scene.Roots()...)

	b := scenefile.Builder{
		Scene:  s.Scene,
		Canvas: s.Canvas,
		View:   s.View,
		Log:    s.log,
	}
	vis, err := b.Build(doc)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	// OnDestroy runs synchronously, so the old labels leave the canvas
	// before the new visualizers start.
	for _, r := range old {
		s.Scene.Destroy(r)
	}

	for _, v := range vis {
		if v.LabelOffsetY == 0 {
			v.LabelOffsetY = s.LabelOffsetY
		}
	}

	s.vis = vis
	s.path = path
	s.log.Info("scene opened",
		zap.String("path", displayPath(path)),
		zap.Int("visualizers", len(vis)),
	)
	return nil
}

// Reload re-reads the current scene file.
func (s *Session) Reload() error {
	return s.Open(s.path)
}

// Tick advances the scene one frame.
func (s *Session) Tick(dt float64) {
	s.Scene.Tick(dt)
}

// Resize updates the canvas and projection viewport.
func (s *Session) Resize(width, height int) {
	s.Canvas.Resize(width, height)
	s.View.Viewport.Width = width
	s.View.Viewport.Height = height
}

// Bounds returns the world AABB of every active collider in the scene.
func (s *Session) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	s.Scene.Walk(func(n *scene.Node) bool {
		if n.Collider == nil || !n.ActiveInHierarchy() {
			return true
		}
		lmin, lmax, err := collider.Bounds(n.Collider)
		if err != nil {
			return true
		}
		wmin, wmax := debug.WorldAABB(lmin, lmax, n.WorldMatrix())
		if !ok {
			lo, hi, ok = wmin, wmax, true
			return true
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], wmin[k])
			hi[k] = max(hi[k], wmax[k])
		}
		return true
	})
	return lo, hi, ok
}

// FrameAll points the camera at the whole scene.
func (s *Session) FrameAll() {
	if lo, hi, ok := s.Bounds(); ok {
		s.Camera.FitToBounds(lo, hi)
	}
}

// WireBounds returns line vertices for the oriented bounds of every
// active collider.
func (s *Session) WireBounds() []debug.LineVertex {
	var out []debug.LineVertex
	s.Scene.Walk(func(n *scene.Node) bool {
		if n.Collider == nil || !n.ActiveInHierarchy() {
			return true
		}
		if v, ok := debug.ColliderWireframe(n.Collider, n.WorldMatrix()); ok {
			out = append(out, debug.Colored(v, boundsColor)...)
		}
		return true
	})
	return out
}

// Pick returns the nearest active collider under the pixel (x, y), or nil.
// Colliders are tested against their oriented bounds.
func (s *Session) Pick(x, y float32) *scene.Node {
	vp := s.View.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil
	}
	viewProj := s.Camera.ProjectionMatrix(vp.Aspect()).Mul4(s.Camera.ViewMatrix())
	ray := picking.ScreenToRay(x-float32(vp.X), y-float32(vp.Y), float32(vp.Width), float32(vp.Height), viewProj.Inv())

	var (
		best  *scene.Node
		bestT float32
	)
	s.Scene.Walk(func(n *scene.Node) bool {
		if n.Collider == nil || !n.ActiveInHierarchy() {
			return true
		}
		lo, hi, err := collider.Bounds(n.Collider)
		if err != nil {
			return true
		}
		t, hit := ray.IntersectOBB(picking.NewAABB(lo, hi), n.WorldMatrix())
		if hit && (best == nil || t < bestT) {
			best, bestT = n, t
		}
		return true
	})
	return best
}

// Select picks the collider under (x, y) and makes it the selection.
// Clicking empty space clears it.
func (s *Session) Select(x, y float32) *scene.Node {
	s.selected = s.Pick(x, y)
	if s.selected != nil {
		pos := s.selected.WorldPosition()
		s.log.Info("collider selected",
			zap.String("node", s.selected.Name),
			zap.String("shape", collider.Name(s.selected.Collider)),
			zap.Float32s("position", pos[:]),
		)
	}
	return s.selected
}

// Selected returns the selected node, or nil once it has been destroyed.
func (s *Session) Selected() *scene.Node {
	if s.selected != nil && s.selected.Destroyed() {
		s.selected = nil
	}
	return s.selected
}

// SelectionWire returns line vertices for the selected collider's bounds.
func (s *Session) SelectionWire() []debug.LineVertex {
	n := s.Selected()
	if n == nil || !n.ActiveInHierarchy() {
		return nil
	}
	v, ok := debug.ColliderWireframe(n.Collider, n.WorldMatrix())
	if !ok {
		return nil
	}
	return debug.Colored(v, selectedColor)
}

// Close destroys the scene.
func (s *Session) Close() {
	s.Scene.Clear()
	s.vis = nil
	s.selected = nil
}

func displayPath(path string) string {
	if path == "" {
		return "<demo>"
	}
	return path
}
