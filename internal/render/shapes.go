package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/bradleydigital/appicon/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four segments approximate a circle.
const kappa = 0.5522847498

// fillCircle composites a disc of radius r centred on pixel c over dst.
func fillCircle(dst *image.RGBA, c image.Point, r float64, src color.Color) {
	if r <= 0 {
		return
	}
	rect := layout.CircleBounds(c, r, 1).Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}

	var z vector.Rasterizer
	z.Reset(rect.Dx(), rect.Dy())
	z.DrawOp = draw.Over

	cx := float32(c.X-rect.Min.X) + 0.5
	cy := float32(c.Y-rect.Min.Y) + 0.5
	rr := float32(r)
	k := rr * kappa
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
	z.Draw(dst, rect, image.NewUniform(src), image.Point{})
}

// strokeLine composites a straight segment of the given width with flat caps
// between the centres of pixels a and b.
func strokeLine(dst *image.RGBA, a, b image.Point, width float64, src color.Color) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	pad := int(math.Ceil(width/2)) + 1
	rect := image.Rect(min(a.X, b.X)-pad, min(a.Y, b.Y)-pad, max(a.X, b.X)+pad+1, max(a.Y, b.Y)+pad+1)
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}

	ox := float64(rect.Min.X) - 0.5
	oy := float64(rect.Min.Y) - 0.5
	pt := func(x, y float64) (float32, float32) {
		return float32(x - ox), float32(y - oy)
	}

	var z vector.Rasterizer
	z.Reset(rect.Dx(), rect.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(pt(float64(a.X)+nx, float64(a.Y)+ny))
	z.LineTo(pt(float64(b.X)+nx, float64(b.Y)+ny))
	z.LineTo(pt(float64(b.X)-nx, float64(b.Y)-ny))
	z.LineTo(pt(float64(a.X)-nx, float64(a.Y)-ny))
	z.ClosePath()
	z.Draw(dst, rect, image.NewUniform(src), image.Point{})
}
