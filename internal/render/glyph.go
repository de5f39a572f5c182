package render

import (
	"image"
	"image/draw"

	"github.com/bradleydigital/appicon/internal/palette"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph is a measured label ready to be drawn.
type Glyph struct {
	Text string
	Face font.Face
	// Dot is the baseline origin that centres the ink box on the target point.
	Dot fixed.Point26_6
	// Bounds is the ink box relative to Dot.
	Bounds fixed.Rectangle26_6
}

// MeasureGlyph centres the ink box of text on the middle of pixel center.
func MeasureGlyph(face font.Face, text string, center image.Point) Glyph {
	bounds, _ := font.BoundString(face, text)
	mid := fixed.Point26_6{
		X: (bounds.Min.X + bounds.Max.X) / 2,
		Y: (bounds.Min.Y + bounds.Max.Y) / 2,
	}
	target := fixed.Point26_6{X: fixed.I(center.X) + 32, Y: fixed.I(center.Y) + 32}
	return Glyph{Text: text, Face: face, Dot: target.Sub(mid), Bounds: bounds}
}

// TopLeft is the top-left corner of the ink box on the canvas.
func (g Glyph) TopLeft() image.Point {
	p := g.Dot.Add(g.Bounds.Min)
	return image.Pt(p.X.Floor(), p.Y.Floor())
}

// Size is the width and height of the ink box in whole pixels.
func (g Glyph) Size() image.Point {
	return image.Pt((g.Bounds.Max.X - g.Bounds.Min.X).Ceil(), (g.Bounds.Max.Y - g.Bounds.Min.Y).Ceil())
}

// DrawGlyph draws a translucent black shadow offset by (offset, offset) and
// then the opaque white glyph at its measured origin.
func DrawGlyph(dst draw.Image, g Glyph, s GlyphStyle) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(palette.WithAlpha(black, s.ShadowAlpha)),
		Face: g.Face,
		Dot:  g.Dot.Add(fixed.P(s.ShadowOffset, s.ShadowOffset)),
	}
	drawer.DrawString(g.Text)

	drawer.Src = image.NewUniform(white)
	drawer.Dot = g.Dot
	drawer.DrawString(g.Text)
}
