package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"slices"

	xdraw "golang.org/x/image/draw"
)

// ErrNoSlot is returned for a pixel size the asset catalog has no entry for.
var ErrNoSlot = errors.New("no app icon slot")

// Slot is one entry of an app icon set.
type Slot struct {
	Idiom    string
	Platform string
	Size     string
	Scale    string
}

// slots maps a pixel size to the catalog entries it fills.
var slots = map[int][]Slot{
	1024: {{Idiom: "universal", Platform: "ios", Size: "1024x1024"}},
	180:  {{Idiom: "iphone", Size: "60x60", Scale: "3x"}},
	167:  {{Idiom: "ipad", Size: "83.5x83.5", Scale: "2x"}},
	152:  {{Idiom: "ipad", Size: "76x76", Scale: "2x"}},
	120: {
		{Idiom: "iphone", Size: "40x40", Scale: "3x"},
		{Idiom: "iphone", Size: "60x60", Scale: "2x"},
	},
	87: {{Idiom: "iphone", Size: "29x29", Scale: "3x"}},
	80: {
		{Idiom: "iphone", Size: "40x40", Scale: "2x"},
		{Idiom: "ipad", Size: "40x40", Scale: "2x"},
	},
	76: {{Idiom: "ipad", Size: "76x76", Scale: "1x"}},
	60: {{Idiom: "iphone", Size: "20x20", Scale: "3x"}},
	58: {
		{Idiom: "iphone", Size: "29x29", Scale: "2x"},
		{Idiom: "ipad", Size: "29x29", Scale: "2x"},
	},
	40: {
		{Idiom: "iphone", Size: "20x20", Scale: "2x"},
		{Idiom: "ipad", Size: "20x20", Scale: "2x"},
		{Idiom: "ipad", Size: "40x40", Scale: "1x"},
	},
	29: {{Idiom: "ipad", Size: "29x29", Scale: "1x"}},
	20: {{Idiom: "ipad", Size: "20x20", Scale: "1x"}},
}

// SupportedSizes lists the pixel sizes with an asset catalog slot, largest first.
func SupportedSizes() []int {
	sizes := make([]int, 0, len(slots))
	for s := range slots {
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}

// HasSlot reports whether size fills at least one asset catalog entry.
func HasSlot(size int) bool {
	_, ok := slots[size]
	return ok
}

// FileName is the conventional icon file name for a pixel size.
func FileName(size int) string {
	return fmt.Sprintf("AppIcon-%d.png", size)
}

// Resize scales img to a size x size square with Catmull-Rom filtering.
func Resize(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteSizes writes a downscaled copy of img for each size into dir and
// returns the written paths in the order given.
func WriteSizes(dir string, img image.Image, sizes []int, level png.CompressionLevel) ([]string, error) {
	paths := make([]string, 0, len(sizes))
	for _, size := range sizes {
		if !HasSlot(size) {
			return paths, fmt.Errorf("%w for %dpx (supported: %v)", ErrNoSlot, size, SupportedSizes())
		}
		path := filepath.Join(dir, FileName(size))
		if err := WritePNG(path, Resize(img, size), level); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type contentsImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Platform string `json:"platform,omitempty"`
	Scale    string `json:"scale,omitempty"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contents struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// WriteContents writes dir/Contents.json describing the icon files named by
// their pixel sizes.
func WriteContents(dir string, files map[int]string) error {
	sizes := make([]int, 0, len(files))
	for s := range files {
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	doc := contents{Info: contentsInfo{Author: "xcode", Version: 1}}
	for _, size := range sizes {
		entries, ok := slots[size]
		if !ok {
			return fmt.Errorf("%w for %dpx", ErrNoSlot, size)
		}
		for _, slot := range entries {
			doc.Images = append(doc.Images, contentsImage{
				Filename: files[size],
				Idiom:    slot.Idiom,
				Platform: slot.Platform,
				Scale:    slot.Scale,
				Size:     slot.Size,
			})
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(filepath.Join(dir, "Contents.json"), func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}
