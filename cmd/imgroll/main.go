package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"imgroll/internal/roll"
	"imgroll/internal/scan"
	"imgroll/internal/service"
	"imgroll/internal/ui"
)

const (
	windowWidth  = 1200
	windowHeight = 900
	windowTitle  = "imgroll"
)

func main() {
	interval := flag.Duration("interval", 3*time.Second, "Slideshow interval duration (e.g., '5s', '1m')")
	dirFlag := flag.String("dir", "", "Directory to scan for images instead of listing files")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Passing -interval also starts the slideshow.
	startSlideshow := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "interval" {
			startSlideshow = true
		}
	})

	roller := roll.New(scan.FromPaths(flag.Args()))
	if *dirFlag != "" {
		n, err := roller.ResetFromPath(*dirFlag)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", *dirFlag).Msg("scanning image directory")
		}
		if n == 0 {
			logger.Warn().Str("dir", *dirFlag).Msg("no images found, starting empty")
		}
	}
	logger.Info().Int("count", roller.Len()).Msg("roll ready")

	viewer := ui.NewViewer(roller, service.NewImageService(), logger, *interval)
	if startSlideshow {
		viewer.ToggleSlideshow()
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		logger.Fatal().Err(err).Msg("viewer terminated")
	}
}
