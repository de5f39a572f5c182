package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a colour string is not six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// ParseHex converts "#RRGGBB" (or "RRGGBB") into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColorFormat, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// WithAlpha returns c as a non-premultiplied colour with the given alpha.
func WithAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Palette holds the resolved brand colours.
type Palette struct {
	// Start and End are the inner and outer background gradient colours.
	Start color.RGBA
	End   color.RGBA
	// Primary is brand colour "A" (hub and odd satellites).
	Primary color.RGBA
	// Secondary is brand colour "B" (even satellites).
	Secondary color.RGBA
}

// Hex is the textual form of a Palette.
type Hex struct {
	Start     string
	End       string
	Primary   string
	Secondary string
}

// Resolve parses every colour in h. The first malformed colour aborts.
func Resolve(h Hex) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"start", h.Start, &p.Start},
		{"end", h.End, &p.End},
		{"primary", h.Primary, &p.Primary},
		{"secondary", h.Secondary, &p.Secondary},
	}
	for _, f := range fields {
		c, err := ParseHex(f.in)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color: %w", f.name, err)
		}
		*f.out = c
	}
	return p, nil
}
