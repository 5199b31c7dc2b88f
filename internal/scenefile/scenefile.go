// Package scenefile loads debug scenes described in YAML.
//
// A scene file lists objects with a transform, an optional collider and an
// optional visualizer block:
//
//	objects:
//	  - name: Cube
//	    position: [-3, 0, 0]
//	    collider: {type: box, size: [1, 1, 1]}
//	    visualizer: {color: red, label: Cube, font_size: 24}
package scenefile

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultName is the embedded demo scene.
const DefaultName = "demo.yaml"

//go:embed demo.yaml
var defaultFS embed.FS

// Document is a parsed scene file.
type Document struct {
	Objects []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes one scene node and its children.
type ObjectSpec struct {
	Name        string          `yaml:"name"`
	Active      *bool           `yaml:"active"`
	Position    []float32       `yaml:"position"`
	RotationDeg []float32       `yaml:"rotation_deg"`
	Scale       []float32       `yaml:"scale"`
	Mesh        string          `yaml:"mesh"`
	Collider    *ColliderSpec   `yaml:"collider"`
	Visualizer  *VisualizerSpec `yaml:"visualizer"`
	Children    []ObjectSpec    `yaml:"children"`
}

// ColliderSpec describes a collider. Type is box, sphere, capsule or mesh;
// anything else is treated as a mesh collider.
type ColliderSpec struct {
	Type      string    `yaml:"type"`
	Center    []float32 `yaml:"center"`
	Size      []float32 `yaml:"size"`
	Radius    float32   `yaml:"radius"`
	Height    float32   `yaml:"height"`
	Direction string    `yaml:"direction"`
	Convex    bool      `yaml:"convex"`
}

// VisualizerSpec attaches a collider visualizer to the object.
type VisualizerSpec struct {
	Color       string  `yaml:"color"`
	Label       string  `yaml:"label"`
	FontSize    float64 `yaml:"font_size"`
	LabelOffset float32 `yaml:"label_offset"`
}

// ErrEmpty is returned for a scene file with no YAML document in it, as
// seen mid-save by editors that truncate before writing. A scene with no
// objects is written "objects: []".
var ErrEmpty = errors.New("scenefile: empty document")

// Parse decodes a scene document.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	var doc Document
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("scenefile: unmarshal: %w", err)
	}
	return &doc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: load %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Default returns the embedded demo scene.
func Default() (*Document, error) {
	data, err := defaultFS.ReadFile(DefaultName)
	if err != nil {
		return nil, fmt.Errorf("scenefile: load %s: %w", DefaultName, err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, or the demo scene when path is empty.
func LoadOrDefault(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
