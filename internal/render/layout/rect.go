package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CircleBounds returns the integer rectangle covering a circle of radius r
// centred on the pixel c, padded by pad pixels for anti-aliasing.
func CircleBounds(c image.Point, r float64, pad int) image.Rectangle {
	ri := int(r+0.5) + 1 + pad
	return image.Rect(c.X-ri, c.Y-ri, c.X+ri+1, c.Y+ri+1)
}

// CenterSquare returns the largest square that fits into rect, centred on both axes.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}
