package render

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Gradient is a radial blend from Start at Center to End at Stop times the
// centre-to-corner distance. Pixels beyond that radius are exactly End.
type Gradient struct {
	Center image.Point
	Start  color.RGBA
	End    color.RGBA
	// Stop is the fraction of the corner distance at which the ratio clamps to 1.
	Stop float64
}

// reach is the distance at which the blend ratio reaches 1.
func (g Gradient) reach() float64 {
	cx, cy := float64(g.Center.X), float64(g.Center.Y)
	return math.Sqrt(cx*cx+cy*cy) * g.Stop
}

// ColorAt is the reference per-pixel formula. Channels are truncated toward zero.
func ColorAt(x, y int, g Gradient) color.RGBA {
	return g.colorAt(x, y, g.reach())
}

func (g Gradient) colorAt(x, y int, reach float64) color.RGBA {
	dx := float64(x - g.Center.X)
	dy := float64(y - g.Center.Y)
	ratio := math.Min(math.Sqrt(dx*dx+dy*dy)/reach, 1.0)
	return color.RGBA{
		R: blend(g.Start.R, g.End.R, ratio),
		G: blend(g.Start.G, g.End.G, ratio),
		B: blend(g.Start.B, g.End.B, ratio),
		A: 0xFF,
	}
}

// blend keeps each product rounded separately; the conversions forbid fused
// multiply-add so every platform yields the same bytes.
func blend(start, end uint8, ratio float64) uint8 {
	return uint8(float64(float64(start)*(1-ratio)) + float64(float64(end)*ratio))
}

// bandRows is the number of canvas rows evaluated by one task.
const bandRows = 32

// FillBackground paints every pixel of img with the gradient. Rows are split
// into bands evaluated by at most workers goroutines (zero means GOMAXPROCS);
// the result does not depend on the worker count.
func FillBackground(ctx context.Context, img *image.RGBA, g Gradient, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	reach := g.reach()
	b := img.Bounds()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y0 := b.Min.Y; y0 < b.Max.Y; y0 += bandRows {
		y0 := y0
		y1 := min(y0+bandRows, b.Max.Y)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				row := img.Pix[img.PixOffset(b.Min.X, y):]
				for x := b.Min.X; x < b.Max.X; x++ {
					c := g.colorAt(x, y, reach)
					i := (x - b.Min.X) * 4
					row[i+0] = c.R
					row[i+1] = c.G
					row[i+2] = c.B
					row[i+3] = c.A
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
