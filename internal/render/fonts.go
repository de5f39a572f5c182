package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Logger is the component logger used by the renderer. A nil Logger is allowed.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Resolver produces a font face at a pixel size, or an error when the font is
// unavailable.
type Resolver interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// fontDPI makes a point size equal a pixel size.
const fontDPI = 72

// FileResolver loads a font file from disk. Collections (.ttc, .otc) use their
// first face; .ttf files are parsed with freetype first and with the OpenType
// parser if freetype rejects them.
type FileResolver struct {
	Path string
}

func (r FileResolver) Name() string { return r.Path }

func (r FileResolver) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(r.Path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection: %w", err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("empty font collection")
		}
		fnt, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("collection font 0: %w", err)
		}
		return opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
	case ".ttf":
		if tt, terr := truetype.Parse(data); terr == nil {
			return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: fontDPI, Hinting: font.HintingFull}), nil
		}
	}
	return parseOpenType(data, size)
}

// EmbeddedResolver serves the Go Bold font compiled into the binary.
type EmbeddedResolver struct{}

func (EmbeddedResolver) Name() string { return "embedded Go Bold" }

func (EmbeddedResolver) Face(size float64) (font.Face, error) {
	return parseOpenType(gobold.TTF, size)
}

func parseOpenType(data []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
}

// DefaultResolvers tries each path in order, then the embedded font.
func DefaultResolvers(paths []string) []Resolver {
	resolvers := make([]Resolver, 0, len(paths)+1)
	for _, p := range paths {
		resolvers = append(resolvers, FileResolver{Path: p})
	}
	return append(resolvers, EmbeddedResolver{})
}

// ResolveFace returns the first face any resolver produces. When all of them
// fail it returns basicfont.Face7x13; it never fails.
func ResolveFace(logger Logger, size float64, resolvers ...Resolver) font.Face {
	for _, r := range resolvers {
		face, err := r.Face(size)
		if err != nil {
			if logger != nil {
				logger.Errorf("font", "%s unavailable: %v", r.Name(), err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("font", "using %s at %gpx", r.Name(), size)
		}
		return face
	}
	if logger != nil {
		logger.Errorf("font", "no font resolved, using basicfont")
	}
	return basicfont.Face7x13
}
