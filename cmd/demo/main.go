package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/controls/internal/logger"
)

func main() {
	bindingsPath := flag.String("bindings", "", "binding profile to load and hot-reload (defaults to the built-in profile)")
	debug := flag.Bool("debug", false, "enable debug logging and physics overlay")
	logFile := flag.String("log", "", "also write logs to this file, with rotation")
	flag.Parse()

	log := logger.New(logger.Options{Debug: *debug, File: *logFile})
	defer log.Sync()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("controls demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(*bindingsPath, *debug, log)
	if err != nil {
		log.Fatal("setup failed", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop failed", zap.Error(err))
	}
}
