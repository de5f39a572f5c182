package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/bradleydigital/appicon/internal/render/layout"
	"github.com/stretchr/testify/require"
)

func brandScene() Scene {
	nodes := brandNodes()
	return Scene{
		Size:     1024,
		Gradient: brandGradient(),
		Nodes:    nodes,
		Edges:    layout.Edges(nodes),
		Style:    brandStyle(),
		Glyph:    GlyphStyle{Text: "B", Size: 180, ShadowOffset: 4, ShadowAlpha: 100},
	}
}

func TestRendererRender(t *testing.T) {
	logger := &recordingLogger{}
	r := &Renderer{Workers: 2, Logger: logger, Resolvers: []Resolver{EmbeddedResolver{}}}

	img, err := r.Render(context.Background(), brandScene())
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1024, 1024), img.Bounds())
	requireNear(t, img, 512, 405, hubBlue, "hub body")
	require.Equal(t, agencyPurple, img.RGBAAt(0, 0))
	require.NotEmpty(t, logger.infos)
}

func TestRendererIsDeterministic(t *testing.T) {
	r := &Renderer{Resolvers: []Resolver{EmbeddedResolver{}}}
	a, err := r.Render(context.Background(), brandScene())
	require.NoError(t, err)
	b, err := r.Render(context.Background(), brandScene())
	require.NoError(t, err)
	require.Equal(t, a.Pix, b.Pix)
}

func TestRendererStaysOpaque(t *testing.T) {
	r := &Renderer{}
	img, err := r.Render(context.Background(), brandScene())
	require.NoError(t, err)
	require.True(t, img.Opaque())
}

func TestRendererSkipsEmptyGlyph(t *testing.T) {
	scene := brandScene()
	scene.Glyph.Text = ""
	logger := &recordingLogger{}
	r := &Renderer{Logger: logger, Resolvers: []Resolver{failingResolver{"unused.ttf"}}}
	_, err := r.Render(context.Background(), scene)
	require.NoError(t, err)
	require.Empty(t, logger.errors, "fonts are not resolved without a glyph")
}

func TestBlit(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 300, 100))
	src := image.NewUniform(color.RGBA{0xFF, 0, 0, 0xFF})
	srcImg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			srcImg.Set(x, y, src.C)
		}
	}

	Blit(dst, srcImg)
	require.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, dst.RGBAAt(150, 50))
	require.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, dst.RGBAAt(100, 0))
	require.Equal(t, color.RGBA{0, 0, 0, 0xFF}, dst.RGBAAt(50, 50))
	require.Equal(t, color.RGBA{0, 0, 0, 0xFF}, dst.RGBAAt(250, 50))
}

func TestPreviewMissingDevice(t *testing.T) {
	err := Preview("/nonexistent/fb0", NewCanvas(4), nil)
	require.Error(t, err)
}
