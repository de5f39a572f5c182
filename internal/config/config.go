// Package config holds the immutable design description of the app icon and
// the loaders that build one from defaults, an HCL design file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleydigital/appicon/internal/palette"
)

const (
	EnvOutput   = "APPICON_OUTPUT"
	EnvConfig   = "APPICON_CONFIG"
	EnvWorkers  = "APPICON_WORKERS"
	EnvStdioLog = "APPICON_STDIO_LOG"
)

// DefaultOutput is where the Xcode asset catalog expects the marketing icon.
const DefaultOutput = "Bradley Digital Marketing Hub/Assets.xcassets/AppIcon.appiconset/AppIcon-1024.png"

var ErrInvalidConfig = errors.New("invalid config")

// Colors are brand colours in "#RRGGBB" form.
type Colors struct {
	Start     string
	End       string
	Primary   string
	Secondary string
}

// Palette returns the textual palette for palette.Resolve.
func (c Colors) Palette() palette.Hex {
	return palette.Hex{Start: c.Start, End: c.End, Primary: c.Primary, Secondary: c.Secondary}
}

// Layout describes the hub-and-satellite node arrangement.
type Layout struct {
	HubRadius       int
	SatelliteRadius int
	OrbitRadius     int
	Satellites      int
}

// Style describes stroke widths and translucency of the composited layers.
type Style struct {
	GlowPadding    int
	HighlightInset int
	OutlineWidth   int
	EdgeWidth      int
	EdgeAlpha      int
	GlowAlpha      int
	HighlightAlpha int
}

// Glyph describes the centred monogram.
type Glyph struct {
	Text         string
	Size         float64
	ShadowOffset int
	ShadowAlpha  int
	FontPaths    []string
}

// Config is passed by value through the pipeline and never mutated after
// loading.
type Config struct {
	Size         int
	GradientStop float64
	// Workers bounds the number of background row bands evaluated at once.
	// Zero means GOMAXPROCS.
	Workers int

	Colors Colors
	Layout Layout
	Style  Style
	Glyph  Glyph
}

// DefaultFontPaths are tried in order before the embedded font.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
}

// Default returns the brand icon design.
func Default() Config {
	return Config{
		Size:         1024,
		GradientStop: 0.8,
		Colors: Colors{
			Start:     "#5B8DEF", // hub blue
			End:       "#7F52FF", // agency purple
			Primary:   "#5B8DEF",
			Secondary: "#2AA876", // pro green
		},
		Layout: Layout{
			HubRadius:       120,
			SatelliteRadius: 80,
			OrbitRadius:     280,
			Satellites:      5,
		},
		Style: Style{
			GlowPadding:    15,
			HighlightInset: 20,
			OutlineWidth:   6,
			EdgeWidth:      8,
			EdgeAlpha:      100,
			GlowAlpha:      100,
			HighlightAlpha: 150,
		},
		Glyph: Glyph{
			Text:         "B",
			Size:         180,
			ShadowOffset: 4,
			ShadowAlpha:  100,
			FontPaths:    append([]string(nil), DefaultFontPaths...),
		},
	}
}

// Validate reports every problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive (got %d)", name, v))
		}
	}
	alpha := func(name string, v int) {
		if v < 0 || v > 255 {
			errs = append(errs, fmt.Errorf("%s must be within [0,255] (got %d)", name, v))
		}
	}

	positive("size", c.Size)
	if c.GradientStop <= 0 || c.GradientStop > 1 {
		errs = append(errs, fmt.Errorf("gradient_stop must be within (0,1] (got %g)", c.GradientStop))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative (got %d)", c.Workers))
	}
	positive("hub_radius", c.Layout.HubRadius)
	positive("satellite_radius", c.Layout.SatelliteRadius)
	if c.Layout.OrbitRadius < 0 {
		errs = append(errs, fmt.Errorf("orbit_radius must not be negative (got %d)", c.Layout.OrbitRadius))
	}
	if c.Layout.Satellites < 0 {
		errs = append(errs, fmt.Errorf("satellites must not be negative (got %d)", c.Layout.Satellites))
	}
	smallest := min(c.Layout.HubRadius, c.Layout.SatelliteRadius)
	if c.Style.HighlightInset < 0 || c.Style.HighlightInset >= smallest {
		errs = append(errs, fmt.Errorf("highlight_inset must be within [0,%d) (got %d)", smallest, c.Style.HighlightInset))
	}
	if c.Style.OutlineWidth < 0 || c.Style.OutlineWidth >= smallest {
		errs = append(errs, fmt.Errorf("outline_width must be within [0,%d) (got %d)", smallest, c.Style.OutlineWidth))
	}
	if c.Style.GlowPadding < 0 {
		errs = append(errs, fmt.Errorf("glow_padding must not be negative (got %d)", c.Style.GlowPadding))
	}
	positive("edge_width", c.Style.EdgeWidth)
	alpha("edge_alpha", c.Style.EdgeAlpha)
	alpha("glow_alpha", c.Style.GlowAlpha)
	alpha("highlight_alpha", c.Style.HighlightAlpha)
	alpha("shadow_alpha", c.Glyph.ShadowAlpha)
	if c.Glyph.Size <= 0 {
		errs = append(errs, fmt.Errorf("glyph size must be positive (got %g)", c.Glyph.Size))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Env holds the environment defaults for the command line.
type Env struct {
	Output   string
	Config   string
	Workers  int
	StdioLog string
}

// FromEnv reads APPICON_* variables, falling back to defaultOutput.
func FromEnv(defaultOutput string) (Env, error) {
	env := Env{
		Output:   os.Getenv(EnvOutput),
		Config:   os.Getenv(EnvConfig),
		StdioLog: os.Getenv(EnvStdioLog),
	}
	if env.Output == "" {
		env.Output = defaultOutput
	}
	if raw := strings.TrimSpace(os.Getenv(EnvWorkers)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Env{}, fmt.Errorf("%s must be a non-negative integer (got %q)", EnvWorkers, raw)
		}
		env.Workers = n
	}
	return env, nil
}
