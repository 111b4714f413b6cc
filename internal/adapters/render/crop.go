package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// opaqueBounds scans alpha for the tightest rectangle holding any
// non-transparent pixel. ok is false for a fully transparent image.
func opaqueBounds(img image.Image) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// cropToContent trims the canvas to its opaque bounding box. A fully
// transparent render skips the crop rather than emitting a zero-size image.
func cropToContent(img image.Image) image.Image {
	bounds, ok := opaqueBounds(img)
	if !ok {
		return img
	}
	return imaging.Crop(img, bounds)
}
