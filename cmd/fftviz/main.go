package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fftviz/internal/loader"
	"fftviz/internal/logger"
	"fftviz/pkg/config"
	"fftviz/pkg/spectrum"
	"fftviz/pkg/visualization"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Image file to analyze (png, jpeg, gif, bmp, tiff)")
	outputFile := flag.String("output", "spectrum.png", "Output spectrum image filename")
	configFile := flag.String("config", "config.yaml", "Configuration file path")
	initConfig := flag.Bool("init-config", false, "Write a default configuration file and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configFile); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *configFile)
		return
	}

	// Validate inputs
	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, falling back to defaults when no file exists
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewConsole(*verbose || cfg.Logging.Verbose)

	// Decode the input image
	buf, err := loader.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	// Run the spectral pipeline
	analyzer := spectrum.NewAnalyzer(appLogger)
	startTime := time.Now()
	field, err := analyzer.Process(buf)
	if err != nil {
		log.Fatalf("Spectral analysis failed: %v", err)
	}
	processingTime := time.Since(startTime)

	// Save the spectrum image
	renderer := visualization.NewRenderer(cfg.Output.BitDepth, cfg.Output.JpegQuality)
	if err := renderer.Save(field, *outputFile, cfg.Output.Format); err != nil {
		log.Fatalf("Failed to save spectrum: %v", err)
	}

	fmt.Printf("Spectrum computed in %.3f seconds\n", processingTime.Seconds())
	fmt.Printf("Input:  %s (%dx%d, %d channels)\n", *inputFile, buf.Width, buf.Height, buf.Channels)
	fmt.Printf("Output: %s (%s, %d-bit grayscale)\n", *outputFile, cfg.Output.Format, cfg.Output.BitDepth)
}
