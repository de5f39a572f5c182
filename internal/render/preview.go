package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bradleydigital/appicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Blit clears dst to black and nearest-neighbour scales src into the largest
// centred square of dst.
func Blit(dst draw.Image, src image.Image) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(dst, layout.CenterSquare(bounds), src, src.Bounds(), xdraw.Src, nil)
}
