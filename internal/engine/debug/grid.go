package debug

// LineVertex is a colored line vertex.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// Colored pairs [x, y, z] positions with a single color.
func Colored(positions []float32, c [3]float32) []LineVertex {
	out := make([]LineVertex, 0, len(positions)/3)
	for i := 0; i+2 < len(positions); i += 3 {
		out = append(out, LineVertex{positions[i], positions[i+1], positions[i+2], c[0], c[1], c[2]})
	}
	return out
}

var (
	gridColor  = [3]float32{0.35, 0.35, 0.35}
	axisXColor = [3]float32{0.8, 0.2, 0.2}
	axisZColor = [3]float32{0.2, 0.2, 0.8}
)

// GroundGrid generates line vertices for a square grid on the XZ plane at
// height y, centered on the origin with halfCells cells to each side. The
// lines through the origin are tinted by axis.
func GroundGrid(halfCells int, spacing, y float32) []LineVertex {
	if halfCells <= 0 || spacing <= 0 {
		return nil
	}

	extent := float32(halfCells) * spacing
	vertices := make([]LineVertex, 0, (2*halfCells+1)*4)

	// Lines parallel to Z
	for i := -halfCells; i <= halfCells; i++ {
		x := float32(i) * spacing
		c := gridColor
		if i == 0 {
			c = axisZColor
		}
		vertices = append(vertices,
			LineVertex{x, y, -extent, c[0], c[1], c[2]},
			LineVertex{x, y, extent, c[0], c[1], c[2]},
		)
	}

	// Lines parallel to X
	for i := -halfCells; i <= halfCells; i++ {
		z := float32(i) * spacing
		c := gridColor
		if i == 0 {
			c = axisXColor
		}
		vertices = append(vertices,
			LineVertex{-extent, y, z, c[0], c[1], c[2]},
			LineVertex{extent, y, z, c[0], c[1], c[2]},
		)
	}

	return vertices
}
