package export

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// pngHeader returns width, height, bit depth and colour type from the IHDR chunk.
func pngHeader(t *testing.T, data []byte) (w, h uint32, depth, colorType byte) {
	t.Helper()
	require.Greater(t, len(data), 26)
	require.Equal(t, "IHDR", string(data[12:16]))
	return binary.BigEndian.Uint32(data[16:20]), binary.BigEndian.Uint32(data[20:24]), data[24], data[25]
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon-1024.png")
	src := solid(64, color.RGBA{0x5B, 0x8D, 0xEF, 0xFF})

	require.NoError(t, WritePNG(path, src, png.BestCompression))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	w, h, depth, colorType := pngHeader(t, data)
	require.Equal(t, uint32(64), w)
	require.Equal(t, uint32(64), h)
	require.Equal(t, byte(8), depth)
	require.Equal(t, byte(2), colorType, "truecolor without alpha")

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	r, g, b, _ := decoded.At(10, 10).RGBA()
	require.Equal(t, []uint32{0x5B, 0x8D, 0xEF}, []uint32{r >> 8, g >> 8, b >> 8})

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(FilePerm), info.Mode().Perm())
}

func TestWritePNGFlattensTranslucentImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, WritePNG(path, solid(8, color.NRGBA{0xFF, 0xFF, 0xFF, 0x80}), png.DefaultCompression))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, _, _, colorType := pngHeader(t, data)
	require.Equal(t, byte(2), colorType)
}

func TestWritePNGIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	src := solid(32, color.RGBA{1, 2, 3, 0xFF})
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	require.NoError(t, WritePNG(a, src, png.DefaultCompression))
	require.NoError(t, WritePNG(b, src, png.DefaultCompression))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	require.Equal(t, da, db)
}

func TestWritePNGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "AppIcon-1024.png")
	err := WritePNG(path, solid(4, color.Black), png.DefaultCompression)
	require.ErrorIs(t, err, ErrIO)
	_, statErr := os.Stat(filepath.Dir(path))
	require.True(t, os.IsNotExist(statErr), "the directory is not created")
}

func TestWritePNGParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0600))
	err := WritePNG(filepath.Join(parent, "icon.png"), solid(4, color.Black), png.DefaultCompression)
	require.ErrorIs(t, err, ErrIO)
}

func TestWritePNGLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WritePNG(filepath.Join(dir, "icon.png"), solid(4, color.Black), png.DefaultCompression))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "icon.png", entries[0].Name())
}

func TestParseCompression(t *testing.T) {
	tests := map[string]png.CompressionLevel{
		"":           png.DefaultCompression,
		"default":    png.DefaultCompression,
		"none":       png.NoCompression,
		"best-speed": png.BestSpeed,
		"BEST":       png.BestCompression,
	}
	for in, want := range tests {
		got, err := ParseCompression(in)
		if err != nil || got != want {
			t.Errorf("ParseCompression(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseCompression("lossy"); err == nil {
		t.Error("ParseCompression(\"lossy\") succeeded, want error")
	}
}
