// Package luminance converts decoded pixel buffers into single-channel
// scalar fields using the standard relative-luminance weighting.
package luminance

import (
	"errors"
	"fmt"

	"fftviz/internal/models"
)

// ErrUnsupportedFormat is returned for pixel buffers whose channel layout
// falls outside the supported grayscale/RGB/RGBA family.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// Relative-luminance weights for linear RGB (ITU-R BT.709). These are a
// policy choice, not a tunable: broader color-space support is out of scope.
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// FromPixels extracts a luminance field from a decoded pixel buffer.
//
// For 3- and 4-channel buffers each output value is the weighted sum of the
// red, green and blue intensities after mapping them from [0,255] into
// [0,1]; a 4th (alpha) channel is ignored. Single-channel buffers pass
// through with only the [0,1] mapping applied. Any other channel count
// fails with ErrUnsupportedFormat.
//
// FromPixels is a pure function of its input: the buffer is not modified
// and the returned field shares no storage with it.
func FromPixels(buf *models.PixelBuffer) (*models.Field, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("luminance extraction: %w", err)
	}

	switch buf.Channels {
	case 1, 3, 4:
	default:
		return nil, fmt.Errorf("luminance extraction: %d channels: %w", buf.Channels, ErrUnsupportedFormat)
	}

	field := models.NewField(buf.Width, buf.Height)

	if buf.Channels == 1 {
		for i, v := range buf.Data {
			field.Data[i] = float64(v) / 255.0
		}
		return field, nil
	}

	for i := 0; i < buf.Width*buf.Height; i++ {
		base := i * buf.Channels
		r := float64(buf.Data[base]) / 255.0
		g := float64(buf.Data[base+1]) / 255.0
		b := float64(buf.Data[base+2]) / 255.0
		field.Data[i] = weightRed*r + weightGreen*g + weightBlue*b
	}
	return field, nil
}
