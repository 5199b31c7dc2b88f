package overlay

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is used when a label asks for a size <= 0.
const DefaultFontSize = 14

// Faces caches font faces by pixel size.
type Faces struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewFaces parses the embedded Go Regular font.
func NewFaces() (*Faces, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Faces{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Faces) Face(size float64) font.Face {
	if size <= 0 {
		size = DefaultFontSize
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	f.faces[size] = face
	return face
}

// Len returns the number of cached faces.
func (f *Faces) Len() int {
	return len(f.faces)
}

// Close releases all cached faces.
func (f *Faces) Close() {
	for size, face := range f.faces {
		_ = face.Close()
		delete(f.faces, size)
	}
}
