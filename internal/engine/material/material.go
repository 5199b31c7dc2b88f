// Package material describes surface colors and blend state for scene meshes.
package material

import "fmt"

// RenderingMode selects how a material blends with what is behind it.
type RenderingMode int

// Rendering modes, in the order the standard shader numbers them.
const (
	Opaque RenderingMode = iota
	Cutout
	Fade
	Transparent
)

// String returns the mode name.
func (m RenderingMode) String() string {
	switch m {
	case Opaque:
		return "opaque"
	case Cutout:
		return "cutout"
	case Fade:
		return "fade"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// BlendFactor is a source or destination blend factor.
type BlendFactor int

// Blend factors used by the rendering modes.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// Shader keywords toggled by SetRenderingMode.
const (
	KeywordAlphaTest        = "_ALPHATEST_ON"
	KeywordAlphaBlend       = "_ALPHABLEND_ON"
	KeywordAlphaPremultiply = "_ALPHAPREMULTIPLY_ON"
)

// Render queue values. QueueFromShader means "use the shader default".
const (
	QueueFromShader  = -1
	QueueAlphaTest   = 2450
	QueueTransparent = 3000
)

// Material is a flat-colored surface.
type Material struct {
	Color [4]float32

	Mode        RenderingMode
	SrcBlend    BlendFactor
	DstBlend    BlendFactor
	ZWrite      bool
	RenderQueue int

	keywords map[string]bool
}

// New returns an opaque material with the given color.
func New(color [4]float32) *Material {
	m := &Material{Color: color, keywords: make(map[string]bool)}
	m.SetRenderingMode(Opaque)
	return m
}

// SetRenderingMode configures blend factors, depth writes, keywords and
// render queue to match mode.
func (m *Material) SetRenderingMode(mode RenderingMode) {
	m.Mode = mode

	switch mode {
	case Opaque:
		m.SrcBlend, m.DstBlend = BlendOne, BlendZero
		m.ZWrite = true
		m.DisableKeyword(KeywordAlphaTest)
		m.DisableKeyword(KeywordAlphaBlend)
		m.DisableKeyword(KeywordAlphaPremultiply)
		m.RenderQueue = QueueFromShader

	case Cutout:
		m.SrcBlend, m.DstBlend = BlendOne, BlendZero
		m.ZWrite = true
		m.EnableKeyword(KeywordAlphaTest)
		m.DisableKeyword(KeywordAlphaBlend)
		m.DisableKeyword(KeywordAlphaPremultiply)
		m.RenderQueue = QueueAlphaTest

	case Fade:
		m.SrcBlend, m.DstBlend = BlendSrcAlpha, BlendOneMinusSrcAlpha
		m.ZWrite = false
		m.DisableKeyword(KeywordAlphaTest)
		m.EnableKeyword(KeywordAlphaBlend)
		m.DisableKeyword(KeywordAlphaPremultiply)
		m.RenderQueue = QueueTransparent

	case Transparent:
		m.SrcBlend, m.DstBlend = BlendOne, BlendOneMinusSrcAlpha
		m.ZWrite = false
		m.DisableKeyword(KeywordAlphaTest)
		m.DisableKeyword(KeywordAlphaBlend)
		m.EnableKeyword(KeywordAlphaPremultiply)
		m.RenderQueue = QueueTransparent
	}
}

// EnableKeyword turns a shader keyword on.
func (m *Material) EnableKeyword(k string) {
	if m.keywords == nil {
		m.keywords = make(map[string]bool)
	}
	m.keywords[k] = true
}

// DisableKeyword turns a shader keyword off.
func (m *Material) DisableKeyword(k string) {
	delete(m.keywords, k)
}

// IsKeywordEnabled reports whether k is on.
func (m *Material) IsKeywordEnabled(k string) bool {
	return m.keywords[k]
}

// IsTransparent reports whether the material is drawn in the transparent pass.
func (m *Material) IsTransparent() bool {
	return m.RenderQueue >= QueueTransparent
}

// Premultiplied returns Color with RGB multiplied by alpha when the
// material expects premultiplied input.
func (m *Material) Premultiplied() [4]float32 {
	if !m.IsKeywordEnabled(KeywordAlphaPremultiply) {
		return m.Color
	}
	c := m.Color
	return [4]float32{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}
