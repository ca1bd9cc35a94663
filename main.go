package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/config"
	"github.com/milk9111/blockdash/logging"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(config.ExitCode(err))
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("blockdash")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(cfg)
	if err != nil {
		logging.Log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logging.Log.WithError(err).Fatal("run game")
	}
}
