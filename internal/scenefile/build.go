package scenefile

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/colliderviz/internal/collider"
	"github.com/Faultbox/colliderviz/internal/engine/material"
	"github.com/Faultbox/colliderviz/internal/engine/overlay"
	"github.com/Faultbox/colliderviz/internal/engine/scene"
	"github.com/Faultbox/colliderviz/internal/visualizer"
)

// meshColor is the opaque tint of object meshes, so proxies stand out.
var meshColor = [4]float32{0.75, 0.75, 0.75, 1}

// Builder turns documents into scene nodes.
type Builder struct {
	Scene  *scene.Scene
	Canvas *overlay.Canvas
	View   visualizer.View
	Log    *zap.Logger
}

// Build adds every object in doc to the scene and returns the attached
// visualizers. On error nothing is added.
func (b *Builder) Build(doc *Document) ([]*visualizer.Visualizer, error) {
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}

	var (
		roots []*scene.Node
		vis   []*visualizer.Visualizer
	)
	for i := range doc.Objects {
		n, err := b.buildNode(&doc.Objects[i], log, &vis)
		if err != nil {
			// Nodes are only added to the scene once everything parsed.
			return nil, err
		}
		roots = append(roots, n)
	}

	for _, r := range roots {
		b.Scene.Add(r)
	}
	log.Info("scene built",
		zap.Int("objects", len(roots)),
		zap.Int("visualizers", len(vis)),
	)
	return vis, nil
}

func (b *Builder) buildNode(spec *ObjectSpec, log *zap.Logger, vis *[]*visualizer.Visualizer) (*scene.Node, error) {
	n := scene.NewNode(spec.Name)
	if spec.Active != nil {
		n.Active = *spec.Active
	}

	pos, err := vec3(spec.Position, mgl32.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("object %q: position: %w", spec.Name, err)
	}
	rot, err := vec3(spec.RotationDeg, mgl32.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("object %q: rotation_deg: %w", spec.Name, err)
	}
	scale, err := vec3(spec.Scale, mgl32.Vec3{1, 1, 1})
	if err != nil {
		return nil, fmt.Errorf("object %q: scale: %w", spec.Name, err)
	}
	n.Transform.Position = pos
	n.Transform.Rotation = collider.EulerDegrees(rot)
	n.Transform.Scale = scale

	if spec.Mesh != "" {
		prim, err := parsePrimitive(spec.Mesh)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		n.Mesh = &scene.MeshRenderer{Primitive: prim, Material: material.New(meshColor)}
	}

	if spec.Collider != nil {
		shape, err := Shape(spec.Collider)
		if err != nil {
			return nil, fmt.Errorf("object %q: collider: %w", spec.Name, err)
		}
		n.Collider = shape
	}

	if vs := spec.Visualizer; vs != nil {
		color, err := visualizer.ParseColor(vs.Color)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		v := visualizer.New(b.Canvas, b.View, log)
		v.LabelOffsetY = vs.LabelOffset
		v.Initialize(color, vs.Label, vs.FontSize)
		n.AddComponent(v)
		*vis = append(*vis, v)
	}

	for i := range spec.Children {
		child, err := b.buildNode(&spec.Children[i], log, vis)
		if err != nil {
			return nil, err
		}
		child.SetParent(n, false)
	}
	return n, nil
}

// Shape converts a collider description to a collider shape.
func Shape(c *ColliderSpec) (collider.Shape, error) {
	center, err := vec3(c.Center, mgl32.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}

	switch strings.ToLower(c.Type) {
	case "box":
		size, err := vec3(c.Size, mgl32.Vec3{1, 1, 1})
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		return collider.Box{Center: center, Size: size}, nil
	case "sphere":
		return collider.Sphere{Center: center, Radius: c.Radius}, nil
	case "capsule":
		axis, err := collider.ParseAxis(c.Direction)
		if err != nil {
			return nil, err
		}
		return collider.Capsule{Center: center, Radius: c.Radius, Height: c.Height, Axis: axis}, nil
	default:
		// Everything else (mesh, terrain, wheel...) has no proxy primitive.
		return collider.Mesh{Convex: c.Convex}, nil
	}
}

func parsePrimitive(s string) (collider.Primitive, error) {
	switch strings.ToLower(s) {
	case "cube", "box":
		return collider.PrimitiveCube, nil
	case "sphere":
		return collider.PrimitiveSphere, nil
	case "capsule":
		return collider.PrimitiveCapsule, nil
	default:
		return 0, fmt.Errorf("unknown mesh %q", s)
	}
}

func vec3(v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return def, fmt.Errorf("want 3 components, got %d", len(v))
	}
}
