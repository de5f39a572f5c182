package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"github.com/bradleydigital/appicon/internal/config"
	"github.com/bradleydigital/appicon/internal/export"
	"github.com/bradleydigital/appicon/internal/palette"
	"github.com/bradleydigital/appicon/internal/render"
	"github.com/bradleydigital/appicon/internal/render/layout"
)

// Options are the output settings of a run; the design lives in config.Config.
type Options struct {
	Output      string
	Sizes       []int
	Contents    bool
	PreviewFB   string
	Compression png.CompressionLevel
	// Resolvers replaces the font candidates from the config when non-nil.
	Resolvers []render.Resolver
}

type App struct {
	Config  config.Config
	Options Options
	Logger  Logger
	// Out receives the human-readable progress lines.
	Out io.Writer
}

func New(cfg config.Config, opts Options, out io.Writer) *App {
	return &App{Config: cfg, Options: opts, Logger: NoopLogger{}, Out: out}
}

// Scene resolves the palette and lays out the nodes for cfg.
func Scene(cfg config.Config) (render.Scene, error) {
	pal, err := palette.Resolve(cfg.Colors.Palette())
	if err != nil {
		return render.Scene{}, err
	}
	center := image.Pt(cfg.Size/2, cfg.Size/2)
	nodes := layout.Nodes(layout.Params{
		Center:          center,
		HubRadius:       cfg.Layout.HubRadius,
		SatelliteRadius: cfg.Layout.SatelliteRadius,
		OrbitRadius:     cfg.Layout.OrbitRadius,
		Satellites:      cfg.Layout.Satellites,
		Primary:         pal.Primary,
		Secondary:       pal.Secondary,
	})
	return render.Scene{
		Size:     cfg.Size,
		Gradient: render.Gradient{Center: center, Start: pal.Start, End: pal.End, Stop: cfg.GradientStop},
		Nodes:    nodes,
		Edges:    layout.Edges(nodes),
		Style: render.Style{
			GlowPadding:    cfg.Style.GlowPadding,
			HighlightInset: cfg.Style.HighlightInset,
			OutlineWidth:   cfg.Style.OutlineWidth,
			EdgeWidth:      cfg.Style.EdgeWidth,
			EdgeAlpha:      uint8(cfg.Style.EdgeAlpha),
			GlowAlpha:      uint8(cfg.Style.GlowAlpha),
			HighlightAlpha: uint8(cfg.Style.HighlightAlpha),
		},
		Glyph: render.GlyphStyle{
			Text:         cfg.Glyph.Text,
			Size:         cfg.Glyph.Size,
			ShadowOffset: cfg.Glyph.ShadowOffset,
			ShadowAlpha:  uint8(cfg.Glyph.ShadowAlpha),
		},
	}, nil
}

// Render produces the composited canvas without writing anything.
func (app *App) Render(ctx context.Context) (*image.RGBA, error) {
	if err := app.Config.Validate(); err != nil {
		return nil, err
	}
	scene, err := Scene(app.Config)
	if err != nil {
		return nil, err
	}
	resolvers := app.Options.Resolvers
	if resolvers == nil {
		resolvers = render.DefaultResolvers(app.Config.Glyph.FontPaths)
	}
	renderer := &render.Renderer{Workers: app.Config.Workers, Resolvers: resolvers, Logger: app.Logger}
	return renderer.Render(ctx, scene)
}

// checkSlots fails before anything is written when the icon set would name a
// size the asset catalog cannot hold.
func checkSlots(size int, opts Options) error {
	for _, s := range opts.Sizes {
		if !export.HasSlot(s) {
			return fmt.Errorf("%w for %dpx (supported: %v)", export.ErrNoSlot, s, export.SupportedSizes())
		}
	}
	if opts.Contents && !export.HasSlot(size) {
		return fmt.Errorf("%w for the %dpx canvas; Contents.json needs a catalog size", export.ErrNoSlot, size)
	}
	return nil
}

// Run renders the icon and writes every requested output. Only the main PNG
// and the icon set files are fatal; the framebuffer preview is best-effort.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	out := app.Out
	if out == nil {
		out = io.Discard
	}
	opts := app.Options
	if err := checkSlots(app.Config.Size, opts); err != nil {
		app.Logger.Errorf("export", "%v", err)
		return err
	}

	fmt.Fprintln(out, "Rendering app icon...")
	canvas, err := app.Render(ctx)
	if err != nil {
		app.Logger.Errorf("app", "render failed: %v", err)
		return err
	}

	if err := export.WritePNG(opts.Output, canvas, opts.Compression); err != nil {
		app.Logger.Errorf("export", "write %s failed: %v", opts.Output, err)
		return err
	}
	app.Logger.Infof("export", "wrote %s", opts.Output)

	dir := filepath.Dir(opts.Output)
	files := map[int]string{app.Config.Size: filepath.Base(opts.Output)}
	if len(opts.Sizes) > 0 {
		paths, err := export.WriteSizes(dir, canvas, opts.Sizes, opts.Compression)
		for i, p := range paths {
			files[opts.Sizes[i]] = filepath.Base(p)
			fmt.Fprintln(out, "Wrote", p)
		}
		if err != nil {
			app.Logger.Errorf("export", "icon sizes failed: %v", err)
			return err
		}
	}
	if opts.Contents {
		if err := export.WriteContents(dir, files); err != nil {
			app.Logger.Errorf("export", "Contents.json failed: %v", err)
			return err
		}
		fmt.Fprintln(out, "Wrote", filepath.Join(dir, "Contents.json"))
	}

	if opts.PreviewFB != "" {
		if err := render.Preview(opts.PreviewFB, canvas, app.Logger); err != nil {
			app.Logger.Errorf("fb", "preview on %s failed: %v", opts.PreviewFB, err)
			fmt.Fprintln(out, "Preview unavailable:", err)
		}
	}

	fmt.Fprintln(out, "App icon created successfully:", opts.Output)
	fmt.Fprintf(out, "   Size: %dx%d pixels\n", app.Config.Size, app.Config.Size)
	fmt.Fprintln(out, "   Format: PNG")
	return nil
}
