package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclDesignFile is the top-level structure of a design file. Every block and
// attribute is optional; absent values keep the base configuration.
type hclDesignFile struct {
	Canvas *hclCanvas `hcl:"canvas,block"`
	Colors *hclColors `hcl:"colors,block"`
	Layout *hclLayout `hcl:"layout,block"`
	Style  *hclStyle  `hcl:"style,block"`
	Glyph  *hclGlyph  `hcl:"glyph,block"`
}

type hclCanvas struct {
	Size         *int     `hcl:"size,optional"`
	GradientStop *float64 `hcl:"gradient_stop,optional"`
	Workers      *int     `hcl:"workers,optional"`
}

type hclColors struct {
	Start     *string `hcl:"start,optional"`
	End       *string `hcl:"end,optional"`
	Primary   *string `hcl:"primary,optional"`
	Secondary *string `hcl:"secondary,optional"`
}

type hclLayout struct {
	HubRadius       *int `hcl:"hub_radius,optional"`
	SatelliteRadius *int `hcl:"satellite_radius,optional"`
	OrbitRadius     *int `hcl:"orbit_radius,optional"`
	Satellites      *int `hcl:"satellites,optional"`
}

type hclStyle struct {
	GlowPadding    *int `hcl:"glow_padding,optional"`
	HighlightInset *int `hcl:"highlight_inset,optional"`
	OutlineWidth   *int `hcl:"outline_width,optional"`
	EdgeWidth      *int `hcl:"edge_width,optional"`
	EdgeAlpha      *int `hcl:"edge_alpha,optional"`
	GlowAlpha      *int `hcl:"glow_alpha,optional"`
	HighlightAlpha *int `hcl:"highlight_alpha,optional"`
}

type hclGlyph struct {
	Text         *string   `hcl:"text,optional"`
	Size         *float64  `hcl:"size,optional"`
	ShadowOffset *int      `hcl:"shadow_offset,optional"`
	ShadowAlpha  *int      `hcl:"shadow_alpha,optional"`
	Fonts        *[]string `hcl:"fonts,optional"`
}

// LoadFile overlays the design file at path onto base and validates the result.
func LoadFile(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse design file %s: %w", path, diags)
	}
	return decode(file, path, base)
}

// Parse is LoadFile for in-memory sources; filename is used in diagnostics.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse design file %s: %w", filename, diags)
	}
	return decode(file, filename, base)
}

func decode(file *hcl.File, filename string, base Config) (Config, error) {
	var parsed hclDesignFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode design file %s: %w", filename, diags)
	}

	cfg := base
	cfg.Glyph.FontPaths = append([]string(nil), base.Glyph.FontPaths...)
	if c := parsed.Canvas; c != nil {
		set(&cfg.Size, c.Size)
		set(&cfg.GradientStop, c.GradientStop)
		set(&cfg.Workers, c.Workers)
	}
	if c := parsed.Colors; c != nil {
		set(&cfg.Colors.Start, c.Start)
		set(&cfg.Colors.End, c.End)
		set(&cfg.Colors.Primary, c.Primary)
		set(&cfg.Colors.Secondary, c.Secondary)
	}
	if l := parsed.Layout; l != nil {
		set(&cfg.Layout.HubRadius, l.HubRadius)
		set(&cfg.Layout.SatelliteRadius, l.SatelliteRadius)
		set(&cfg.Layout.OrbitRadius, l.OrbitRadius)
		set(&cfg.Layout.Satellites, l.Satellites)
	}
	if s := parsed.Style; s != nil {
		set(&cfg.Style.GlowPadding, s.GlowPadding)
		set(&cfg.Style.HighlightInset, s.HighlightInset)
		set(&cfg.Style.OutlineWidth, s.OutlineWidth)
		set(&cfg.Style.EdgeWidth, s.EdgeWidth)
		set(&cfg.Style.EdgeAlpha, s.EdgeAlpha)
		set(&cfg.Style.GlowAlpha, s.GlowAlpha)
		set(&cfg.Style.HighlightAlpha, s.HighlightAlpha)
	}
	if g := parsed.Glyph; g != nil {
		set(&cfg.Glyph.Text, g.Text)
		set(&cfg.Glyph.Size, g.Size)
		set(&cfg.Glyph.ShadowOffset, g.ShadowOffset)
		set(&cfg.Glyph.ShadowAlpha, g.ShadowAlpha)
		if g.Fonts != nil {
			cfg.Glyph.FontPaths = append([]string(nil), (*g.Fonts)...)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("design file %s: %w", filename, err)
	}
	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
