//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"pixel-ocean/internal/app"
	"pixel-ocean/pkg/logger"
)

func main() {
	logger.Init()
	log := logger.Log

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	oc := cfg.Ocean()
	game := app.New(oc, cfg.HUDWidth, log)

	ebiten.SetWindowTitle("pixel ocean")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(oc.Width+max(cfg.HUDWidth, 0), oc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.WithFields(logrus.Fields{
		"width":  oc.Width,
		"height": oc.Height,
		"cell":  oc.Controls.CellSize,
		"seed":  oc.Seed,
	}).Info("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop failed")
	}
}
