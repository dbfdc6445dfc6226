package spectrum

import (
	"fmt"
	"time"

	"fftviz/internal/logger"
	"fftviz/internal/models"
	"fftviz/pkg/luminance"
)

// Analyzer runs the spectral pipeline over decoded images: luminance
// extraction, DC removal, separable 2D transform, magnitude normalization
// and quadrant centering, in that fixed order.
//
// An Analyzer processes one image at a time on the calling goroutine; a run
// completes or fails before the next one starts. The only state carried
// between runs is the most recent display field, which is replaced only
// when a run fully succeeds, so a failed run never disturbs what is
// currently displayed.
type Analyzer struct {
	log logger.Logger

	// displayed is the display field from the last successful run, or nil.
	displayed *models.Field
}

// NewAnalyzer creates an analyzer. A nil log disables logging.
func NewAnalyzer(log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &Analyzer{log: log}
}

// Process runs the full pipeline over one decoded image and returns the
// resulting display field, a scalar field with values in [0,1] whose center
// pixel carries the zero-frequency bin. On success the returned field also
// becomes the analyzer's displayed field. On failure the previous displayed
// field is left untouched and the error describes the failed stage.
func (a *Analyzer) Process(buf *models.PixelBuffer) (*models.Field, error) {
	start := time.Now()

	field, err := luminance.FromPixels(buf)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	data, err := NewComplexField(field)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if err := Forward2D(data, field.Width, field.Height); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	normalized, err := NormalizeMagnitude(data, field.Width, field.Height)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	centered := Center(normalized)
	a.displayed = centered

	a.log.Debug("spectrum", "pipeline completed", map[string]interface{}{
		"width":   buf.Width,
		"height":  buf.Height,
		"elapsed": time.Since(start).String(),
	})
	return centered, nil
}

// Displayed returns the display field from the most recent successful run,
// or nil if no run has succeeded yet.
func (a *Analyzer) Displayed() *models.Field {
	return a.displayed
}
