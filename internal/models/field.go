package models

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a buffer's flattened length does not
// match its declared width and height. Detecting this up front keeps every
// later pipeline stage free of silent truncation.
var ErrDimensionMismatch = errors.New("buffer length does not match dimensions")

// PixelBuffer holds a decoded raster image as delivered by a container
// decoder: interleaved 8-bit samples, row-major.
type PixelBuffer struct {
	// Width and Height are the image dimensions in pixels
	Width  int
	Height int

	// Channels is the number of interleaved components per pixel.
	// The spectral pipeline supports 1 (grayscale), 3 (RGB) and 4 (RGBA).
	Channels int

	// Data is the raw sample data, Width*Height*Channels bytes
	Data []uint8
}

// Validate checks that the buffer's declared shape matches its data length.
func (p *PixelBuffer) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: %w", p.Width, p.Height, ErrDimensionMismatch)
	}
	if len(p.Data) != p.Width*p.Height*p.Channels {
		return fmt.Errorf("have %d samples, want %d (%dx%dx%d): %w",
			len(p.Data), p.Width*p.Height*p.Channels, p.Width, p.Height, p.Channels, ErrDimensionMismatch)
	}
	return nil
}

// Field is a single-channel scalar image: Width*Height float64 values in
// row-major order. It is the currency of the spectral pipeline; each stage
// takes ownership of the field it is handed and never shares it.
type Field struct {
	// Data is the scalar values as a 1D array in row-major order
	Data []float64

	// Width and Height are the field dimensions
	Width  int
	Height int
}

// NewField allocates a zero-valued field of the given dimensions.
func NewField(width, height int) *Field {
	return &Field{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the value at column x, row y.
func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.Width+x]
}

// Set stores a value at column x, row y.
func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.Width+x] = v
}

// Mean returns the arithmetic mean of all samples.
func (f *Field) Mean() float64 {
	m := 0.0
	for _, v := range f.Data {
		m += v
	}
	return m / float64(len(f.Data))
}

// Validate checks that the field's data length matches its dimensions.
func (f *Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: %w", f.Width, f.Height, ErrDimensionMismatch)
	}
	if len(f.Data) != f.Width*f.Height {
		return fmt.Errorf("have %d values, want %d (%dx%d): %w",
			len(f.Data), f.Width*f.Height, f.Width, f.Height, ErrDimensionMismatch)
	}
	return nil
}
