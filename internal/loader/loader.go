// Package loader reads image files from disk and decodes them into pixel
// buffers for the spectral pipeline. Container parsing is delegated to the
// Go image registry: PNG, JPEG and GIF from the standard library, BMP and
// TIFF from golang.org/x/image.
package loader

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"fftviz/internal/models"
)

// ErrRead is returned when the file cannot be opened or its bytes cannot be
// decoded as a supported image container.
var ErrRead = errors.New("failed to read image")

// ReadFile opens, decodes and flattens an image file into a pixel buffer.
func ReadFile(path string) (*models.PixelBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrRead, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrRead, path, err)
	}

	return FromImage(img), nil
}

// FromImage flattens a decoded image into an 8-bit pixel buffer. Grayscale
// images stay single-channel; everything else is flattened to RGBA.
func FromImage(img image.Image) *models.PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf := &models.PixelBuffer{
			Width:    width,
			Height:   height,
			Channels: 1,
			Data:     make([]uint8, width*height),
		}
		for y := 0; y < height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			copy(buf.Data[y*width:(y+1)*width], row)
		}
		return buf
	}

	buf := &models.PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: 4,
		Data:     make([]uint8, width*height*4),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.Data[i] = uint8(r >> 8)
			buf.Data[i+1] = uint8(g >> 8)
			buf.Data[i+2] = uint8(b >> 8)
			buf.Data[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return buf
}
