package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/engine/debug"
)

// lineBatch is a streaming buffer for debug lines.
type lineBatch struct {
	vao, vbo uint32
	capacity int // in vertices
}

func newLineBatch() *lineBatch {
	b := &lineBatch{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(unsafe.Sizeof(debug.LineVertex{}))
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

func (b *lineBatch) upload(vertices []debug.LineVertex) {
	size := len(vertices) * int(unsafe.Sizeof(debug.LineVertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > b.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
		b.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&vertices[0]))
	}
}

func (b *lineBatch) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}

// DrawLines draws a line list. Lines are depth tested but never occlude.
func (r *Renderer) DrawLines(vertices []debug.LineVertex, viewProj mgl32.Mat4) {
	if len(vertices) < 2 {
		return
	}

	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)

	gl.Disable(gl.BLEND)
	gl.DepthMask(false)

	r.lines.upload(vertices)
	gl.BindVertexArray(r.lines.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
}
