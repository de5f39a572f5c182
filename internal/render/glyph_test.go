package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

type failingResolver struct{ name string }

func (r failingResolver) Name() string                    { return r.name }
func (r failingResolver) Face(float64) (font.Face, error) { return nil, errors.New("not installed") }

func TestResolveFaceFirstSuccessWins(t *testing.T) {
	logger := &recordingLogger{}
	face := ResolveFace(logger, 180, failingResolver{"missing.ttf"}, EmbeddedResolver{}, failingResolver{"never"})

	require.NotNil(t, face)
	require.NotEqual(t, font.Face(basicfont.Face7x13), face)
	require.Len(t, logger.errors, 1)
	require.Contains(t, logger.errors[0], "missing.ttf unavailable")
	require.Contains(t, logger.infos[0], "embedded Go Bold")
}

func TestResolveFaceFallsBackToBasicfont(t *testing.T) {
	logger := &recordingLogger{}
	face := ResolveFace(logger, 180, DefaultResolvers([]string{"/nonexistent/a.ttf", "/nonexistent/b.ttc"})[:2]...)
	require.Equal(t, font.Face(basicfont.Face7x13), face)
	require.Len(t, logger.errors, 3)
}

func TestResolveFaceNilLogger(t *testing.T) {
	require.Equal(t, font.Face(basicfont.Face7x13), ResolveFace(nil, 12))
}

func TestFileResolverFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bold.ttf", "bold.otf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, gobold.TTF, 0600))
		face, err := FileResolver{Path: path}.Face(48)
		require.NoError(t, err, name)
		require.Positive(t, font.MeasureString(face, "B").Ceil(), name)
	}
}

func TestFileResolverRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bad.ttf", "bad.ttc", "bad.otf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("not a font"), 0600))
		_, err := FileResolver{Path: path}.Face(48)
		require.Error(t, err, name)
	}
}

func TestMeasureGlyphCentres(t *testing.T) {
	face, err := EmbeddedResolver{}.Face(180)
	require.NoError(t, err)

	g := MeasureGlyph(face, "B", image.Pt(512, 512))
	tl, size := g.TopLeft(), g.Size()
	require.Greater(t, size.X, 60)
	require.Greater(t, size.Y, 100)
	require.InDelta(t, 512, tl.X+size.X/2, 1.5)
	require.InDelta(t, 512, tl.Y+size.Y/2, 1.5)
}

func TestDrawGlyph(t *testing.T) {
	face, err := EmbeddedResolver{}.Face(180)
	require.NoError(t, err)
	gray := color.RGBA{0x80, 0x80, 0x80, 0xFF}
	img := NewCanvas(1024)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: gray}, image.Point{}, draw.Src)

	DrawGlyph(img, MeasureGlyph(face, "B", image.Pt(512, 512)), GlyphStyle{ShadowOffset: 4, ShadowAlpha: 100})

	ink := image.Rectangle{}
	shadow := false
	for y := 0; y < 1024; y++ {
		for x := 0; x < 1024; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0xFF {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
			if c.R < gray.R {
				shadow = true
			}
		}
	}
	require.False(t, ink.Empty(), "white glyph drawn")
	require.True(t, shadow, "shadow drawn")
	mid := image.Pt((ink.Min.X+ink.Max.X)/2, (ink.Min.Y+ink.Max.Y)/2)
	require.InDelta(t, 512, mid.X, 3)
	require.InDelta(t, 512, mid.Y, 3)
}
