//go:build linux && cgo

package render

import (
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Preview shows img on the framebuffer device at path, letterboxed and centred.
func Preview(path string, img image.Image, logger Logger) error {
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()
	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	Blit(dev, img)
	return nil
}
