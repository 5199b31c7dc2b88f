package visualizer

import (
	"fmt"
	"strings"
)

// Color selects the proxy tint.
type Color int

// Proxy colors.
const (
	Red Color = iota
	Green
	Blue
)

// ProxyAlpha is the opacity of every proxy mesh.
const ProxyAlpha = 0.5

// RGBA returns the fixed proxy color for c. Out-of-range values map to Red.
func (c Color) RGBA() [4]float32 {
	switch c {
	case Green:
		return [4]float32{0, 1, 0, ProxyAlpha}
	case Blue:
		return [4]float32{0, 0, 1, ProxyAlpha}
	default:
		return [4]float32{1, 0, 0, ProxyAlpha}
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ParseColor parses "red", "green" or "blue" (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return Red, fmt.Errorf("unknown visualizer color %q", s)
	}
}
