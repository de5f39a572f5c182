package render

import (
	"image"
	"image/color"

	"github.com/bradleydigital/appicon/internal/palette"
	"github.com/bradleydigital/appicon/internal/render/layout"
)

// Composite draws the edges and then, for every node in order, its glow, body
// and highlight. Later layers cover earlier ones.
func Composite(dst *image.RGBA, nodes []layout.Node, edges []layout.Edge, s Style) {
	edgeColor := palette.WithAlpha(white, s.EdgeAlpha)
	for _, e := range edges {
		strokeLine(dst, nodes[e.From].Center, nodes[e.To].Center, float64(s.EdgeWidth), edgeColor)
	}
	for _, n := range nodes {
		drawNode(dst, n, s)
	}
}

func drawNode(dst *image.RGBA, n layout.Node, s Style) {
	r := float64(n.Radius)

	// Glow.
	fillCircle(dst, n.Center, r+float64(s.GlowPadding), palette.WithAlpha(n.Color, s.GlowAlpha))

	// Body: the outline is drawn inside the node's radius.
	if s.OutlineWidth > 0 {
		fillCircle(dst, n.Center, r, white)
	}
	fillCircle(dst, n.Center, r-float64(s.OutlineWidth), color.RGBA{R: n.Color.R, G: n.Color.G, B: n.Color.B, A: 0xFF})

	// Highlight.
	fillCircle(dst, n.Center, r-float64(s.HighlightInset), palette.WithAlpha(white, s.HighlightAlpha))
}
