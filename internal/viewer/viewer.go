package viewer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/colliderviz/internal/config"
	"github.com/Faultbox/colliderviz/internal/engine/camera"
	"github.com/Faultbox/colliderviz/internal/engine/debug"
	"github.com/Faultbox/colliderviz/internal/engine/input"
	"github.com/Faultbox/colliderviz/internal/engine/overlay"
	"github.com/Faultbox/colliderviz/internal/engine/renderer"
	"github.com/Faultbox/colliderviz/internal/engine/window"
	"github.com/Faultbox/colliderviz/internal/scenefile"
)

const (
	title        = "ColliderViz"
	gridHalfSize = 10
	// clickSlop is how far (in window pixels) the mouse may move between
	// press and release for a click to select.
	clickSlop = 3
)

// Viewer is the interactive window around a Session.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	canvas   *overlay.Canvas
	session  *Session
	watcher  *scenefile.Watcher
	capture  *debug.ScreenshotCapture

	grid       []debug.LineVertex
	showBounds bool
	running    bool
	pressX     int
	pressY     int

	// Paths chosen in the open dialog, handed to the main thread.
	opened     chan string
	dialogOpen bool
}

// New creates the window, GL renderer and session, and opens the
// configured scene. If that scene cannot be loaded the demo opens instead.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	v := &Viewer{
		cfg:        cfg,
		log:        log,
		showBounds: cfg.Overlay.ShowBounds,
		opened:     make(chan string, 1),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Labels and the projection work in framebuffer pixels.
	fw, fh := v.window.DrawableSize()

	// Renderer needs the GL context, so it comes after the window.
	v.renderer, err = renderer.New(renderer.Config{
		Width:      fw,
		Height:     fh,
		Background: cfg.Graphics.Background,
	}, log.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.canvas, err = overlay.NewCanvas(fw, fh)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	v.canvas.SetDefaultFontSize(cfg.Overlay.FontSize)

	v.session = NewSession(v.canvas, newCamera(cfg.Camera), fw, fh, log.Named("session"))
	v.session.LabelOffsetY = cfg.Overlay.LabelOffsetY
	v.input = input.New()
	v.capture = debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix)

	if err := v.open(cfg.Scene.Path); err != nil {
		log.Warn("failed to open scene, using demo",
			zap.String("path", cfg.Scene.Path),
			zap.Error(err),
		)
		if err := v.open(""); err != nil {
			v.Close()
			return nil, fmt.Errorf("failed to open demo scene: %w", err)
		}
	}

	log.Info("viewer initialized")
	return v, nil
}

func newCamera(cc config.CameraConfig) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.FovY = cc.FovDeg
	cam.Near = cc.Near
	cam.Far = cc.Far
	cam.Distance = mgl32.Clamp(cc.Distance, cam.MinDistance, cam.MaxDistance)
	cam.Pitch = mgl32.Clamp(cc.Pitch, cam.MinPitch, cam.MaxPitch)
	cam.Yaw = cc.Yaw
	cam.Target = mgl32.Vec3(cc.Target)
	return cam
}

// cameraConfig captures cam so the next run starts from the same view.
func cameraConfig(cam *camera.OrbitCamera) config.CameraConfig {
	return config.CameraConfig{
		FovDeg:   cam.FovY,
		Near:     cam.Near,
		Far:      cam.Far,
		Distance: cam.Distance,
		Pitch:    cam.Pitch,
		Yaw:      cam.Yaw,
		Target:   [3]float32(cam.Target),
	}
}

// Run runs the frame loop until the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleInput()
		v.pollFiles()

		v.session.Tick(dt)
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleInput() {
	if _, _, ok := v.input.Resized(); ok {
		fw, fh := v.window.DrawableSize()
		v.renderer.Resize(fw, fh)
		v.session.Resize(fw, fh)
	}

	if dx, dy := v.input.Drag(); dx != 0 || dy != 0 {
		v.session.Camera.HandleDrag(dx, dy)
	}
	if w := v.input.Wheel(); w != 0 {
		v.session.Camera.HandleZoom(w)
	}

	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventKeyDown:
			v.handleKey(e.Key)
		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				v.pressX, v.pressY = e.MouseX, e.MouseY
			}
		case input.EventMouseUp:
			if e.Button == sdl.BUTTON_LEFT && abs(e.MouseX-v.pressX) <= clickSlop && abs(e.MouseY-v.pressY) <= clickSlop {
				v.selectAt(e.MouseX, e.MouseY)
			}
		}
	}

	if path, ok := v.input.DroppedFile(); ok {
		if !scenefile.IsSceneFile(path) {
			v.log.Warn("dropped file is not a scene", zap.String("path", path))
		} else if err := v.open(path); err != nil {
			v.log.Error("failed to open dropped scene", zap.String("path", path), zap.Error(err))
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_O:
		v.openDialog()
	case sdl.SCANCODE_R:
		v.reload()
	case sdl.SCANCODE_B:
		v.showBounds = !v.showBounds
		v.log.Debug("bounds toggled", zap.Bool("visible", v.showBounds))
	case sdl.SCANCODE_F:
		v.session.FrameAll()
	case sdl.SCANCODE_F12:
		v.screenshot()
	case sdl.SCANCODE_C:
		v.saveCamera()
	}
}

// selectAt selects the collider under a point in window coordinates.
func (v *Viewer) selectAt(x, y int) {
	ww, wh := v.window.Size()
	fw, fh := v.window.DrawableSize()
	if ww <= 0 || wh <= 0 {
		return
	}
	sx := float32(x) * float32(fw) / float32(ww)
	sy := float32(y) * float32(fh) / float32(wh)
	if v.session.Select(sx, sy) == nil {
		v.log.Debug("selection cleared")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pollFiles picks up dialog results and watched file changes.
func (v *Viewer) pollFiles() {
	select {
	case path := <-v.opened:
		v.dialogOpen = false
		if path != "" {
			if err := v.open(path); err != nil {
				v.log.Error("failed to open scene", zap.String("path", path), zap.Error(err))
			}
		}
	default:
	}

	if v.watcher == nil {
		return
	}
	current := filepath.Clean(v.session.Path())
	for _, changed := range v.watcher.Drain() {
		if filepath.Clean(changed) == current {
			v.log.Info("scene file changed", zap.String("path", changed))
			v.reload()
			return
		}
	}
}

// openDialog shows a native file dialog. The dialog blocks, so it runs in
// a goroutine and the result is opened on the main thread.
func (v *Viewer) openDialog() {
	if v.dialogOpen {
		return
	}
	v.dialogOpen = true
	go func() {
		filename, err := dialog.File().
			Filter("Scene files", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open Scene").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				v.log.Warn("file dialog failed", zap.Error(err))
			}
			filename = ""
		}
		v.opened <- filename
	}()
}

func (v *Viewer) open(path string) error {
	if err := v.session.Open(path); err != nil {
		return err
	}

	y := float32(0)
	if lo, _, ok := v.session.Bounds(); ok {
		y = lo.Y()
	}
	v.grid = debug.GroundGrid(gridHalfSize, 1, y)
	v.session.FrameAll()

	name := "demo"
	if path != "" {
		name = filepath.Base(path)
	}
	v.window.SetTitle(title + " - " + name)

	v.watch(path)
	return nil
}

func (v *Viewer) reload() {
	if err := v.session.Reload(); err != nil {
		v.log.Error("failed to reload scene", zap.String("path", v.session.Path()), zap.Error(err))
	}
}

// watch points the file watcher at the directory of path.
func (v *Viewer) watch(path string) {
	if v.watcher != nil {
		_ = v.watcher.Close()
		v.watcher = nil
	}
	if !v.cfg.Scene.Watch || path == "" {
		return
	}
	w, err := scenefile.NewWatcher(v.log.Named("watch"), filepath.Dir(path))
	if err != nil {
		v.log.Warn("failed to watch scene", zap.String("path", path), zap.Error(err))
		return
	}
	v.watcher = w
}

// saveCamera stores the current view in the user config file.
func (v *Viewer) saveCamera() {
	v.cfg.Camera = cameraConfig(v.session.Camera)
	if err := v.cfg.Save(); err != nil {
		v.log.Error("failed to save config", zap.Error(err))
		return
	}
	v.log.Info("camera saved", zap.String("dir", config.ConfigDir()))
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) render() {
	view := v.session.View
	cam := v.session.Camera
	viewProj := cam.ProjectionMatrix(view.Viewport.Aspect()).Mul4(cam.ViewMatrix())

	v.renderer.Begin()
	v.renderer.DrawScene(v.session.Scene.Renderables(), viewProj, cam.Position())
	v.renderer.DrawLines(v.grid, viewProj)
	if v.showBounds {
		v.renderer.DrawLines(v.session.WireBounds(), viewProj)
	}
	v.renderer.DrawLines(v.session.SelectionWire(), viewProj)
	v.renderer.DrawOverlay(v.canvas)
}

// Close releases the scene, GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	if v.session != nil {
		v.session.Close()
	}
	if v.canvas != nil {
		v.canvas.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
