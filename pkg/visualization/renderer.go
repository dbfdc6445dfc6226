// Package visualization renders display fields produced by the spectral
// pipeline as grayscale images, for the on-screen viewer and for on-disk
// export. Field values are expected in [0,1]; anything outside is clamped.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"fftviz/internal/models"
)

// Renderer converts display fields into grayscale images.
type Renderer struct {
	// bitDepth is the grayscale precision, 8 or 16 bits per pixel
	bitDepth int

	// jpegQuality controls JPEG encoding quality (1-100)
	jpegQuality int
}

// NewRenderer creates a renderer. Unsupported bit depths fall back to 8.
func NewRenderer(bitDepth, jpegQuality int) *Renderer {
	if bitDepth != 16 {
		bitDepth = 8
	}
	return &Renderer{
		bitDepth:    bitDepth,
		jpegQuality: jpegQuality,
	}
}

// Render converts a display field into a grayscale image at the renderer's
// bit depth.
func (r *Renderer) Render(f *models.Field) image.Image {
	if r.bitDepth == 16 {
		img := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				value := uint16(math.Max(0, math.Min(65535, f.At(x, y)*65535)))
				img.SetGray16(x, y, color.Gray16{Y: value})
			}
		}
		return img
	}

	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			value := uint8(math.Max(0, math.Min(255, f.At(x, y)*255)))
			img.SetGray(x, y, color.Gray{Y: value})
		}
	}
	return img
}

// Save renders a display field and writes it to path in the given format
// ("png" or "jpeg"). The output directory is created if needed.
func (r *Renderer) Save(f *models.Field, path, format string) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("saving spectrum image: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer file.Close()

	img := r.Render(f)
	switch format {
	case "png":
		err = png.Encode(file, img)
	case "jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: r.jpegQuality})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s image: %w", format, err)
	}
	return nil
}
