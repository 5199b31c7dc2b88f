// Package overlay holds screen-space UI drawn on top of the 3D scene.
package overlay

import (
	"fmt"
	"image"
	"image/draw"
)

// Canvas is the shared container for overlay labels. The host creates
// one per window and passes it to everything that needs to show text.
type Canvas struct {
	width       int
	height      int
	defaultSize float64
	faces       *Faces
	labels      []*Label
}

// NewCanvas creates a canvas covering a width x height pixel screen.
func NewCanvas(width, height int) (*Canvas, error) {
	faces, err := NewFaces()
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	return &Canvas{
		width:       width,
		height:      height,
		defaultSize: DefaultFontSize,
		faces:       faces,
	}, nil
}

// SetDefaultFontSize sets the size used by labels created with size <= 0.
func (c *Canvas) SetDefaultFontSize(size float64) {
	if size > 0 {
		c.defaultSize = size
	}
}

// DefaultFontSize returns the size used by labels created with size <= 0.
func (c *Canvas) DefaultFontSize() float64 {
	return c.defaultSize
}

// Close releases cached font faces. Later draws recreate the faces they need.
func (c *Canvas) Close() {
	c.faces.Close()
}

// Resize updates the screen size.
func (c *Canvas) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Size returns the screen size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// NewLabel adds a hidden label. It becomes visible on its first SetAnchor
// with visible=true.
func (c *Canvas) NewLabel(text string, fontSize float64) *Label {
	if fontSize <= 0 {
		fontSize = c.defaultSize
	}
	l := &Label{
		Color:    ColorLabelText,
		canvas:   c,
		text:     text,
		fontSize: fontSize,
		dirty:    true,
	}
	c.labels = append(c.labels, l)
	return l
}

// Remove detaches l from the canvas. Removing twice is a no-op.
func (c *Canvas) Remove(l *Label) {
	if l == nil || l.removed || l.canvas != c {
		return
	}
	for i, o := range c.labels {
		if o == l {
			c.labels = append(c.labels[:i], c.labels[i+1:]...)
			break
		}
	}
	l.removed = true
	l.visible = false
	l.img = nil
}

// Labels returns the labels in creation order. The slice must not be modified.
func (c *Canvas) Labels() []*Label {
	return c.labels
}

// Len returns the number of labels on the canvas.
func (c *Canvas) Len() int {
	return len(c.labels)
}

// Compose draws every visible label onto dst.
func (c *Canvas) Compose(dst draw.Image) {
	for _, l := range c.labels {
		l.DrawTo(dst)
	}
}

// Snapshot renders the overlay alone into a new transparent image.
func (c *Canvas) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.Compose(img)
	return img
}
