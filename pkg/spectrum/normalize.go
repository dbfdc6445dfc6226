package spectrum

import (
	"fmt"
	"math/cmplx"

	"fftviz/internal/models"
)

// NormalizeMagnitude reduces a transformed complex field to its magnitude
// spectrum, rescaled linearly into [0,1].
//
// This is a two-pass reduction: a full sweep establishes the global
// (min, max) magnitude range, then each value maps to
// (|z| - min) / (max - min). The minimum-magnitude bin therefore maps to 0
// and the maximum-magnitude bin to 1. When the range collapses (max == min,
// e.g. a constant input image whose spectrum vanished with the removed
// mean), every output value is 0 rather than the result of a zero division.
func NormalizeMagnitude(data []complex128, width, height int) (*models.Field, error) {
	if err := checkDims(data, width, height); err != nil {
		return nil, fmt.Errorf("magnitude normalization: %w", err)
	}

	minMag := cmplx.Abs(data[0])
	maxMag := minMag
	for _, z := range data[1:] {
		mag := cmplx.Abs(z)
		if mag < minMag {
			minMag = mag
		}
		if mag > maxMag {
			maxMag = mag
		}
	}

	field := models.NewField(width, height)
	if maxMag == minMag {
		// Flat spectrum; NewField already zeroed the values.
		return field, nil
	}

	scale := 1.0 / (maxMag - minMag)
	for i, z := range data {
		field.Data[i] = (cmplx.Abs(z) - minMag) * scale
	}
	return field, nil
}
