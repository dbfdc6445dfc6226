package spectrum

import (
	"errors"
	"math"
	"testing"

	"fftviz/internal/models"
	"fftviz/pkg/luminance"
)

// grayBuffer builds a single-channel pixel buffer
func grayBuffer(width, height int, data []uint8) *models.PixelBuffer {
	return &models.PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: 1,
		Data:     data,
	}
}

// TestProcessConstantImage runs the full pipeline over a 4x4 image with
// identical pixels. DC removal collapses it to an all-zero complex field,
// the spectrum degenerates, and every display value is the flat constant 0
func TestProcessConstantImage(t *testing.T) {
	data := make([]uint8, 16)
	for i := range data {
		data[i] = 137
	}

	analyzer := NewAnalyzer(nil)
	field, err := analyzer.Process(grayBuffer(4, 4, data))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if field.Width != 4 || field.Height != 4 {
		t.Fatalf("Expected 4x4 display field, got %dx%d", field.Width, field.Height)
	}
	for i, v := range field.Data {
		if v != 0 {
			t.Errorf("Expected flat constant 0 at index %d, got %f", i, v)
		}
	}
}

// TestProcessImpulseImage runs the pipeline over an 8x8 image with one
// bright pixel at the origin. The impulse transforms to a flat spectrum;
// with the DC bin zeroed by mean removal, normalization maps every other
// bin to exactly 1 and the DC bin, centered at (4,4), to 0
func TestProcessImpulseImage(t *testing.T) {
	data := make([]uint8, 64)
	data[0] = 255

	analyzer := NewAnalyzer(nil)
	field, err := analyzer.Process(grayBuffer(8, 8, data))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := 1.0
			if x == 4 && y == 4 {
				want = 0.0
			}
			if math.Abs(field.At(x, y)-want) > 1e-9 {
				t.Errorf("Expected %f at (%d,%d), got %f", want, x, y, field.At(x, y))
			}
		}
	}
}

// TestProcessDisplayBounds verifies that an arbitrary image always
// normalizes into [0,1]
func TestProcessDisplayBounds(t *testing.T) {
	const width, height = 6, 10
	data := make([]uint8, width*height)
	for i := range data {
		data[i] = uint8((i * 37) % 256)
	}

	analyzer := NewAnalyzer(nil)
	field, err := analyzer.Process(grayBuffer(width, height, data))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	for i, v := range field.Data {
		if v < 0 || v > 1 {
			t.Errorf("Expected display value in [0,1], got %f at index %d", v, i)
		}
	}
}

// TestProcessFailureKeepsDisplayed verifies that a failed run leaves the
// previously displayed field untouched
func TestProcessFailureKeepsDisplayed(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	good := make([]uint8, 16)
	good[3] = 200
	first, err := analyzer.Process(grayBuffer(4, 4, good))
	if err != nil {
		t.Fatalf("Process failed on valid image: %v", err)
	}

	bad := &models.PixelBuffer{
		Width:    2,
		Height:   2,
		Channels: 2,
		Data:     make([]uint8, 8),
	}
	if _, err := analyzer.Process(bad); !errors.Is(err, luminance.ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}

	if analyzer.Displayed() != first {
		t.Error("Expected displayed field to survive a failed run")
	}
}

// TestProcessDimensionMismatch verifies the deterministic failure for a
// buffer whose data length disagrees with its declared shape
func TestProcessDimensionMismatch(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	buf := grayBuffer(4, 4, make([]uint8, 15))

	if _, err := analyzer.Process(buf); !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
	if analyzer.Displayed() != nil {
		t.Error("Expected no displayed field after an initial failure")
	}
}

// TestDisplayedReplacedOnSuccess verifies the atomic replacement of the
// displayed field across successive successful runs
func TestDisplayedReplacedOnSuccess(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	first := make([]uint8, 16)
	first[1] = 255
	a, err := analyzer.Process(grayBuffer(4, 4, first))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if analyzer.Displayed() != a {
		t.Error("Expected first result to be displayed")
	}

	second := make([]uint8, 36)
	second[7] = 99
	b, err := analyzer.Process(grayBuffer(6, 6, second))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if analyzer.Displayed() != b {
		t.Error("Expected second result to replace the first")
	}
}
