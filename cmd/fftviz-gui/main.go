package main

import (
	"flag"
	"log"

	"fftviz/internal/logger"
	"fftviz/internal/viewer"
	"fftviz/pkg/config"
)

func main() {
	// Parse command line arguments
	configFile := flag.String("config", "config.yaml", "Configuration file path")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	// Load configuration, falling back to defaults when no file exists
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewConsole(*verbose || cfg.Logging.Verbose)

	app := viewer.New(cfg, appLogger)

	// Any file given on the command line is shown before the first drop
	for _, path := range flag.Args() {
		app.Open(path)
	}

	app.Run()
}
