// Package spectrum implements the spectral-analysis pipeline: it turns a
// decoded raster image into a normalized, zero-frequency-centered magnitude
// image of its 2D discrete Fourier transform.
package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"fftviz/internal/models"
)

// plan is an immutable fixed-length transform configuration. A plan carries
// no state about the data it transforms, so one plan per distinct length is
// reused across every row or column of a pass.
type plan struct {
	fft *fourier.CmplxFFT
}

func newPlan(n int) plan {
	return plan{fft: fourier.NewCmplxFFT(n)}
}

// forward writes the unnormalized forward DFT of src into dst.
// dst and src must both have the plan's length.
func (p plan) forward(dst, src []complex128) {
	p.fft.Coefficients(dst, src)
}

// inverse writes the unnormalized inverse DFT of src into dst. A forward
// pass followed by an inverse pass scales the sequence by its length.
func (p plan) inverse(dst, src []complex128) {
	p.fft.Sequence(dst, src)
}

// NewComplexField builds the transform input from a scalar field: real
// parts are the samples with the field mean subtracted, imaginary parts are
// zero. Removing the mean zeroes the DC coefficient so it cannot dominate
// the dynamic range of the normalized spectrum.
func NewComplexField(f *models.Field) ([]complex128, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("complex field: %w", err)
	}

	mean := f.Mean()
	data := make([]complex128, len(f.Data))
	for i, v := range f.Data {
		data[i] = complex(v-mean, 0)
	}
	return data, nil
}

// Forward2D computes the full 2D discrete Fourier transform of data in
// place. data holds width*height complex samples in row-major order.
//
// The transform is separable: a forward 1D pass over each of the height
// rows, then a forward 1D pass over each of the width columns. Rows are
// contiguous and transform directly; columns are strided, so each one is
// gathered into a contiguous scratch sequence, transformed, and scattered
// back. The gather/scatter copy is an intentional locality cost.
//
// No 1/N scaling is applied; coefficients are left in raw forward-DFT form.
// Lengths may be any positive integers, composite or prime.
func Forward2D(data []complex128, width, height int) error {
	if err := checkDims(data, width, height); err != nil {
		return fmt.Errorf("2d transform: %w", err)
	}

	rowPlan := newPlan(width)
	colPlan := rowPlan
	if height != width {
		colPlan = newPlan(height)
	}

	scratch := make([]complex128, max(width, height))
	column := make([]complex128, height)

	for y := 0; y < height; y++ {
		row := data[y*width : (y+1)*width]
		rowPlan.forward(scratch[:width], row)
		copy(row, scratch[:width])
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			column[y] = data[y*width+x]
		}
		colPlan.forward(scratch[:height], column)
		for y := 0; y < height; y++ {
			data[y*width+x] = scratch[y]
		}
	}
	return nil
}

// Inverse2D undoes Forward2D in place, including the 1/(width*height)
// scaling, so a forward/inverse round trip reproduces the original field.
func Inverse2D(data []complex128, width, height int) error {
	if err := checkDims(data, width, height); err != nil {
		return fmt.Errorf("2d inverse transform: %w", err)
	}

	rowPlan := newPlan(width)
	colPlan := rowPlan
	if height != width {
		colPlan = newPlan(height)
	}

	scratch := make([]complex128, max(width, height))
	column := make([]complex128, height)

	for y := 0; y < height; y++ {
		row := data[y*width : (y+1)*width]
		rowPlan.inverse(scratch[:width], row)
		copy(row, scratch[:width])
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			column[y] = data[y*width+x]
		}
		colPlan.inverse(scratch[:height], column)
		for y := 0; y < height; y++ {
			data[y*width+x] = scratch[y]
		}
	}

	scale := 1.0 / float64(width*height)
	for i := range data {
		data[i] *= complex(scale, 0)
	}
	return nil
}

func checkDims(data []complex128, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: %w", width, height, models.ErrDimensionMismatch)
	}
	if len(data) != width*height {
		return fmt.Errorf("have %d samples, want %d (%dx%d): %w",
			len(data), width*height, width, height, models.ErrDimensionMismatch)
	}
	return nil
}
