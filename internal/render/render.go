// Package render composites the app icon onto an offscreen canvas: radial
// background, hub-and-satellite nodes, and the centred monogram.
package render

import (
	"context"
	"fmt"
	"image"

	"github.com/bradleydigital/appicon/internal/render/layout"
	"golang.org/x/image/font"
)

// Scene is everything the renderer draws, in draw order.
type Scene struct {
	Size     int
	Gradient Gradient
	Nodes    []layout.Node
	Edges    []layout.Edge
	Style    Style
	Glyph    GlyphStyle
}

// Renderer owns one canvas for the duration of a render.
type Renderer struct {
	// Workers bounds background evaluation; zero means GOMAXPROCS.
	Workers int
	// Face overrides font resolution when non-nil.
	Face      font.Face
	Resolvers []Resolver
	Logger    Logger
}

// NewCanvas returns an opaque square canvas of the given size.
func NewCanvas(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// Render draws scene onto a fresh canvas: background, edges and nodes, then
// the glyph.
func (r *Renderer) Render(ctx context.Context, scene Scene) (*image.RGBA, error) {
	canvas := NewCanvas(scene.Size)
	if err := FillBackground(ctx, canvas, scene.Gradient, r.Workers); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	r.infof("render", "background filled, %dx%d", scene.Size, scene.Size)

	Composite(canvas, scene.Nodes, scene.Edges, scene.Style)
	r.infof("render", "composited %d nodes, %d edges", len(scene.Nodes), len(scene.Edges))

	if scene.Glyph.Text != "" {
		face := r.Face
		if face == nil {
			face = ResolveFace(r.Logger, scene.Glyph.Size, r.Resolvers...)
		}
		g := MeasureGlyph(face, scene.Glyph.Text, scene.Gradient.Center)
		DrawGlyph(canvas, g, scene.Glyph)
		r.infof("render", "glyph %q drawn at %v size %v", g.Text, g.TopLeft(), g.Size())
	}
	return canvas, nil
}

func (r *Renderer) infof(component, format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof(component, format, args...)
	}
}
