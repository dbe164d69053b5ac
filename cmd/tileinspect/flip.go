package main

import (
	"image"
	"image/color"

	"github.com/automoto/tilecrawl/shared/tilemap"
)

// flipped returns src transformed by the Tiled flip bits. The diagonal flip
// is applied first.
func flipped(src image.Image, f tilemap.Flip) image.Image {
	if f == 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if f&tilemap.FlipDiagonal != 0 {
		w, h = h, w
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if f&tilemap.FlipHorizontal != 0 {
				sx = w - 1 - sx
			}
			if f&tilemap.FlipVertical != 0 {
				sy = h - 1 - sy
			}
			if f&tilemap.FlipDiagonal != 0 {
				sx, sy = sy, sx
			}
			dst.Set(x, y, src.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

func opacityColor(opacity float64) color.Alpha {
	return color.Alpha{A: uint8(min(opacity, 1) * 255)}
}
