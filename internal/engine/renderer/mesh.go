package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
	"github.com/Faultbox/colliderviz/internal/engine/primitive"
)

// gpuMesh is an uploaded indexed mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// uploadMesh interleaves positions and normals and uploads them.
func uploadMesh(m primitive.Mesh) *gpuMesh {
	n := m.VertexCount()
	data := make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		data = append(data,
			m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2],
			m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2],
		)
	}

	g := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}

// uploadPrimitives uploads one mesh per collider primitive.
func uploadPrimitives() map[collider.Primitive]*gpuMesh {
	meshes := make(map[collider.Primitive]*gpuMesh, 3)
	for _, p := range []collider.Primitive{
		collider.PrimitiveCube,
		collider.PrimitiveSphere,
		collider.PrimitiveCapsule,
	} {
		meshes[p] = uploadMesh(primitive.Generate(p))
	}
	return meshes
}

// glBlend maps a material blend factor to its GL enum.
func glBlend(f material.BlendFactor) uint32 {
	switch f {
	case material.BlendZero:
		return gl.ZERO
	case material.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case material.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}

// applyMaterial sets blend and depth state for m.
func (r *Renderer) applyMaterial(m *material.Material) {
	if m.SrcBlend == material.BlendOne && m.DstBlend == material.BlendZero {
		gl.Disable(gl.BLEND)
	} else {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(glBlend(m.SrcBlend), glBlend(m.DstBlend))
	}
	gl.DepthMask(m.ZWrite)

	r.meshProgram.SetVec4("uColor", m.Color)
	r.meshProgram.SetBool("uAlphaTest", m.IsKeywordEnabled(material.KeywordAlphaTest))
	r.meshProgram.SetBool("uPremultiply", m.IsKeywordEnabled(material.KeywordAlphaPremultiply))
}
