package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/colliderviz/internal/engine/material"
)

// QueueGeometry is the queue of materials that use the shader default.
const QueueGeometry = 2000

// Queue returns the render queue the material is drawn in.
func (r Renderable) Queue() int {
	m := r.Mesh.Material
	if m == nil || m.RenderQueue == material.QueueFromShader {
		return QueueGeometry
	}
	return m.RenderQueue
}

// Transparent reports whether r is drawn in the blended pass.
func (r Renderable) Transparent() bool {
	return r.Mesh.Material != nil && r.Mesh.Material.IsTransparent()
}

// SortForDraw orders renderables for drawing from eye: ascending render
// queue, and within the transparent queues farthest first. Ties keep
// scene order.
func SortForDraw(rs []Renderable, eye mgl32.Vec3) {
	dist := make(map[*Node]float32, len(rs))
	for _, r := range rs {
		if r.Transparent() {
			d := r.World.Col(3).Vec3().Sub(eye)
			dist[r.Node] = d.Dot(d)
		}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		qi, qj := rs[i].Queue(), rs[j].Queue()
		if qi != qj {
			return qi < qj
		}
		if rs[i].Transparent() {
			return dist[rs[i].Node] > dist[rs[j].Node]
		}
		return false
	})
}
