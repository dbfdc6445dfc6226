// Package viewer provides the desktop window for fftviz: a drag-and-drop
// target that shows the Fourier spectrum of the most recently dropped image
// together with its file path.
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fftviz/internal/loader"
	"fftviz/internal/logger"
	"fftviz/pkg/config"
	"fftviz/pkg/spectrum"
	"fftviz/pkg/visualization"
)

// App wires the spectral pipeline into a Fyne window.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	log      logger.Logger
	analyzer *spectrum.Analyzer
	renderer *visualization.Renderer

	spectrumImage *canvas.Image
	pathLabel     *widget.Label
}

// New builds the viewer window. Nothing is shown until Run is called.
func New(cfg *config.Config, log logger.Logger) *App {
	fyneApp := app.New()
	window := fyneApp.NewWindow(cfg.Viewer.Title)
	window.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))

	spectrumImage := canvas.NewImageFromImage(nil)
	spectrumImage.FillMode = canvas.ImageFillContain

	pathLabel := widget.NewLabel("No file currently loaded...")

	a := &App{
		fyneApp:       fyneApp,
		window:        window,
		log:           log,
		analyzer:      spectrum.NewAnalyzer(log),
		renderer:      visualization.NewRenderer(cfg.Output.BitDepth, cfg.Output.JpegQuality),
		spectrumImage: spectrumImage,
		pathLabel:     pathLabel,
	}

	window.SetContent(container.NewBorder(pathLabel, nil, nil, nil, spectrumImage))
	window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		// Dropped files are processed strictly in presentation order, one
		// pipeline run at a time on the event goroutine.
		for _, uri := range uris {
			a.Open(uri.Path())
		}
	})

	return a
}

// Open loads one image file, runs the spectral pipeline over it and, on
// success, replaces the displayed spectrum and caption. On any failure the
// error is logged and whatever is currently displayed stays up.
func (a *App) Open(path string) {
	buf, err := loader.ReadFile(path)
	if err != nil {
		a.log.Error("viewer", err, "could not load dropped file")
		return
	}

	field, err := a.analyzer.Process(buf)
	if err != nil {
		a.log.Error("viewer", err, "spectral analysis failed")
		return
	}

	a.spectrumImage.Image = a.renderer.Render(field)
	a.spectrumImage.Refresh()
	a.pathLabel.SetText(path)

	a.log.Info("viewer", "spectrum displayed", map[string]interface{}{
		"path":   path,
		"width":  field.Width,
		"height": field.Height,
	})
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.window.ShowAndRun()
}
