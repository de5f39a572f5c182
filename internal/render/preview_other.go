//go:build !linux || !cgo

package render

import (
	"errors"
	"image"
)

// Preview is only available on Linux framebuffer consoles.
func Preview(path string, img image.Image, logger Logger) error {
	return errors.New("framebuffer preview requires linux")
}
