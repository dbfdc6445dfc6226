package spectrum

import (
	"fftviz/internal/models"
)

// Center returns a new field with the four quadrants swapped diagonally so
// the zero-frequency sample, natively at index (0,0), appears at the image
// center. The forward transform leaves DC at the corner with its aliases at
// the other three corners; this remap is what makes the magnitude image
// readable.
//
// Each axis shifts independently by its own half-dimension, modulo that
// dimension: source column = (x + ceil(W/2)) mod W and source row =
// (y + ceil(H/2)) mod H. With floor-truncated halves this places DC at
// (W/2, H/2). For even dimensions the shift is exactly half, so applying
// Center twice is the identity; for odd dimensions the extra sample travels
// with the upper half, the conventional choice.
func Center(f *models.Field) *models.Field {
	shiftX := (f.Width + 1) / 2
	shiftY := (f.Height + 1) / 2

	out := models.NewField(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		srcY := (y + shiftY) % f.Height
		for x := 0; x < f.Width; x++ {
			srcX := (x + shiftX) % f.Width
			out.Data[y*f.Width+x] = f.Data[srcY*f.Width+srcX]
		}
	}
	return out
}
