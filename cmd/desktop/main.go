package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/blaster/internal/config"
	"github.com/tomz197/blaster/internal/desktop"
	loopconfig "github.com/tomz197/blaster/internal/loop/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desktop",
	})
	log.SetDefault(logger)

	width := config.GetEnvInt("DESKTOP_WIDTH", loopconfig.ViewWidth)
	height := config.GetEnvInt("DESKTOP_HEIGHT", loopconfig.ViewHeight)

	app, err := desktop.New(desktop.Options{})
	if err != nil {
		log.Fatal("failed to create game", "err", err)
	}

	ebiten.SetWindowTitle("Blaster")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(loopconfig.TickRate)

	log.Info("Starting desktop game", "width", width, "height", height)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal("game error", "err", err)
	}
	log.Info("Bye")
}
