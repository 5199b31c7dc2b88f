package material

import "testing"

func TestSetRenderingMode(t *testing.T) {
	tests := []struct {
		mode    RenderingMode
		src     BlendFactor
		dst     BlendFactor
		zwrite  bool
		keyword string
		queue   int
	}{
		{Opaque, BlendOne, BlendZero, true, "", QueueFromShader},
		{Cutout, BlendOne, BlendZero, true, KeywordAlphaTest, 2450},
		{Fade, BlendSrcAlpha, BlendOneMinusSrcAlpha, false, KeywordAlphaBlend, 3000},
		{Transparent, BlendOne, BlendOneMinusSrcAlpha, false, KeywordAlphaPremultiply, 3000},
	}

	allKeywords := []string{KeywordAlphaTest, KeywordAlphaBlend, KeywordAlphaPremultiply}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			// Start from a different mode so stale keywords would show up.
			m := New([4]float32{1, 0, 0, 0.5})
			m.SetRenderingMode(Transparent)
			m.SetRenderingMode(Cutout)
			m.SetRenderingMode(tt.mode)

			if m.SrcBlend != tt.src || m.DstBlend != tt.dst {
				t.Errorf("blend: got (%d, %d), want (%d, %d)", m.SrcBlend, m.DstBlend, tt.src, tt.dst)
			}
			if m.ZWrite != tt.zwrite {
				t.Errorf("zwrite: got %v, want %v", m.ZWrite, tt.zwrite)
			}
			if m.RenderQueue != tt.queue {
				t.Errorf("render queue: got %d, want %d", m.RenderQueue, tt.queue)
			}
			for _, k := range allKeywords {
				want := k == tt.keyword
				if got := m.IsKeywordEnabled(k); got != want {
					t.Errorf("keyword %s: got %v, want %v", k, got, want)
				}
			}
		})
	}
}

func TestIsTransparent(t *testing.T) {
	m := New([4]float32{0, 1, 0, 1})
	if m.IsTransparent() {
		t.Error("new material should be opaque")
	}
	m.SetRenderingMode(Fade)
	if !m.IsTransparent() {
		t.Error("fade material should be transparent")
	}
}

func TestPremultiplied(t *testing.T) {
	m := New([4]float32{1, 0.5, 0, 0.5})
	if got := m.Premultiplied(); got != m.Color {
		t.Errorf("opaque material should return color unchanged, got %v", got)
	}
	m.SetRenderingMode(Transparent)
	want := [4]float32{0.5, 0.25, 0, 0.5}
	if got := m.Premultiplied(); got != want {
		t.Errorf("Premultiplied() = %v, want %v", got, want)
	}
}

func TestZeroValueKeywords(t *testing.T) {
	var m Material
	m.EnableKeyword("FOO")
	if !m.IsKeywordEnabled("FOO") {
		t.Error("expected keyword on zero-value material to be enabled")
	}
}
