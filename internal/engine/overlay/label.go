package overlay

import (
	"image"
	"image/draw"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the empty border around rasterized label text, in pixels.
const labelPadding = 2

// Label is a line (or lines) of screen-space text centered on an anchor.
type Label struct {
	Color Color

	canvas   *Canvas
	text     string
	fontSize float64
	anchor   mgl32.Vec2
	visible  bool
	removed  bool

	img   *image.RGBA
	dirty bool
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.dirty = true
}

// FontSize returns the font size in pixels.
func (l *Label) FontSize() float64 {
	return l.fontSize
}

// SetFontSize changes the font size. Sizes <= 0 use the canvas default.
func (l *Label) SetFontSize(size float64) {
	if size <= 0 {
		size = DefaultFontSize
		if l.canvas != nil {
			size = l.canvas.defaultSize
		}
	}
	if size == l.fontSize {
		return
	}
	l.fontSize = size
	l.dirty = true
}

// Anchor returns the screen position the label is centered on.
func (l *Label) Anchor() mgl32.Vec2 {
	return l.anchor
}

// SetAnchor moves the label. Invisible labels are skipped when drawing.
func (l *Label) SetAnchor(pt mgl32.Vec2, visible bool) {
	l.anchor = pt
	l.visible = visible
}

// Visible reports whether the label should be drawn this frame.
func (l *Label) Visible() bool {
	return l.visible && !l.removed && l.text != ""
}

// Removed reports whether the label has been removed from its canvas.
func (l *Label) Removed() bool {
	return l.removed
}

// Size returns the rasterized label size in pixels.
func (l *Label) Size() (w, h int) {
	b := l.Image().Bounds()
	return b.Dx(), b.Dy()
}

// Rect returns the label's screen rectangle (x, y, w, h), centered on the anchor.
func (l *Label) Rect() (x, y, w, h float32) {
	iw, ih := l.Size()
	w, h = float32(iw), float32(ih)
	return l.anchor.X() - w/2, l.anchor.Y() - h/2, w, h
}

// Image returns the rasterized label. It is re-rendered only after the
// text or font size changed.
func (l *Label) Image() *image.RGBA {
	if l.img == nil || l.dirty {
		l.img = l.rasterize()
		l.dirty = false
	}
	return l.img
}

func (l *Label) rasterize() *image.RGBA {
	if l.canvas == nil || l.text == "" {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	face := l.canvas.faces.Face(l.fontSize)
	metrics := face.Metrics()
	lineH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	lines := strings.Split(l.text, "\n")
	var maxW fixed.Int26_6
	for _, line := range lines {
		if w := font.MeasureString(face, line); w > maxW {
			maxW = w
		}
	}

	// +1 on each axis for the drop shadow.
	w := maxW.Ceil() + 2*labelPadding + 1
	h := lineH*len(lines) + 2*labelPadding + 1
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	pass := func(c Color, dx, dy int) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c.NRGBA()),
			Face: face,
		}
		for i, line := range lines {
			d.Dot = fixed.P(labelPadding+dx, labelPadding+ascent+i*lineH+dy)
			d.DrawString(line)
		}
	}
	pass(ColorLabelShadow, 1, 1)
	pass(l.Color, 0, 0)

	return img
}

// DrawTo composites the label onto dst at its current rectangle.
// Used for captures and tests; the GL renderer uploads Image directly.
func (l *Label) DrawTo(dst draw.Image) {
	if !l.Visible() {
		return
	}
	x, y, _, _ := l.Rect()
	src := l.Image()
	r := src.Bounds().Add(image.Pt(int(x), int(y)))
	draw.Draw(dst, r, src, image.Point{}, draw.Over)
}
