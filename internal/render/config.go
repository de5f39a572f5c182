package render

import "image/color"

// Style holds the per-layer sizes and translucency of the compositor.
type Style struct {
	GlowPadding    int
	HighlightInset int
	OutlineWidth   int
	EdgeWidth      int
	EdgeAlpha      uint8
	GlowAlpha      uint8
	HighlightAlpha uint8
}

// GlyphStyle describes the monogram overlay.
type GlyphStyle struct {
	Text         string
	Size         float64
	ShadowOffset int
	ShadowAlpha  uint8
}

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)
