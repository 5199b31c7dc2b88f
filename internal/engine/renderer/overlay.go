package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/colliderviz/internal/engine/overlay"
)

// labelTexture caches the GPU copy of one label image.
type labelTexture struct {
	id  uint32
	src *image.RGBA
}

// overlayPass draws canvas labels as screen-space quads.
type overlayPass struct {
	vao, vbo uint32
	textures map[*overlay.Label]*labelTexture
}

func newOverlayPass() *overlayPass {
	p := &overlayPass{textures: make(map[*overlay.Label]*labelTexture)}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	// Position (location = 0), UV (location = 1)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return p
}

// texture returns an up-to-date texture for l. Labels only re-rasterize
// when their text or size changes, so most frames reuse the upload.
func (p *overlayPass) texture(l *overlay.Label) *labelTexture {
	img := l.Image()
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	tex, ok := p.textures[l]
	if ok && tex.src == img {
		return tex
	}
	if !ok {
		tex = &labelTexture{}
		gl.GenTextures(1, &tex.id)
		p.textures[l] = tex
	}
	tex.src = img

	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// prune drops textures of labels no longer on the canvas.
func (p *overlayPass) prune(live []*overlay.Label) {
	keep := make(map[*overlay.Label]bool, len(live))
	for _, l := range live {
		keep[l] = true
	}
	for l, tex := range p.textures {
		if !keep[l] {
			gl.DeleteTextures(1, &tex.id)
			delete(p.textures, l)
		}
	}
}

func (p *overlayPass) delete() {
	for _, tex := range p.textures {
		gl.DeleteTextures(1, &tex.id)
	}
	p.textures = nil
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteBuffers(1, &p.vbo)
}

// DrawOverlay draws every visible label on canvas over the scene.
// Canvas coordinates are scaled to the framebuffer for high-DPI windows.
func (r *Renderer) DrawOverlay(canvas *overlay.Canvas) {
	labels := canvas.Labels()
	r.overlay.prune(labels)
	if len(labels) == 0 {
		return
	}

	cw, ch := canvas.Size()
	if cw <= 0 || ch <= 0 {
		return
	}

	r.overlayProgram.Use()
	r.overlayProgram.SetVec2("uScreen", float32(cw), float32(ch))
	r.overlayProgram.SetInt("uTexture", 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// image.RGBA is premultiplied.
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.overlay.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlay.vbo)

	for _, l := range labels {
		if !l.Visible() {
			continue
		}
		tex := r.overlay.texture(l)
		if tex == nil {
			continue
		}
		x, y, w, h := l.Rect()
		quad := [6 * 4]float32{
			x, y, 0, 0,
			x + w, y, 1, 0,
			x + w, y + h, 1, 1,
			x, y, 0, 0,
			x + w, y + h, 1, 1,
			x, y + h, 0, 1,
		}
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, unsafe.Pointer(&quad[0]))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
}
