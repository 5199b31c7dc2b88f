// Package renderer draws the scene, debug lines and overlay with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/scene"
	"github.com/Faultbox/colliderviz/internal/engine/shader"
)

// Config holds renderer configuration.
type Config struct {
	Width      int // framebuffer pixels
	Height     int
	Background [3]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram    *shader.Program
	lineProgram    *shader.Program
	overlayProgram *shader.Program

	meshes  map[collider.Primitive]*gpuMesh
	lines   *lineBatch
	overlay *overlayPass
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config: cfg,
		log:    log,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	var err error
	if r.meshProgram, err = shader.New("mesh", meshVertexShader, meshFragmentShader); err != nil {
		return nil, err
	}
	if r.lineProgram, err = shader.New("line", lineVertexShader, lineFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.overlayProgram, err = shader.New("overlay", overlayVertexShader, overlayFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	r.meshes = uploadPrimitives()
	r.lines = newLineBatch()
	r.overlay = newOverlayPass()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	if r.lines != nil {
		r.lines.delete()
		r.lines = nil
	}
	if r.overlay != nil {
		r.overlay.delete()
		r.overlay = nil
	}
	for _, p := range []*shader.Program{r.meshProgram, r.lineProgram, r.overlayProgram} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize sets the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws renderables in queue order; transparent ones are
// sorted back to front from eye. rs is reordered in place.
func (r *Renderer) DrawScene(rs []scene.Renderable, viewProj mgl32.Mat4, eye mgl32.Vec3) {
	scene.SortForDraw(rs, eye)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", viewProj)
	r.meshProgram.SetVec3("uEye", eye)

	for _, rd := range rs {
		m, ok := r.meshes[rd.Mesh.Primitive]
		if !ok || rd.Mesh.Material == nil {
			continue
		}
		r.applyMaterial(rd.Mesh.Material)
		r.meshProgram.SetMat4("uModel", rd.World)
		m.draw()
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
