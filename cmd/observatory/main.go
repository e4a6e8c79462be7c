// Package main is the entry point for the Comet Observatory demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cometlab/observatory/internal/config"
	"github.com/cometlab/observatory/internal/game"
	"github.com/cometlab/observatory/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Comet Observatory ===")
	logger.Info("controls: WASD move, mouse look, Space jump, R reset, F fullscreen, Tab stats, Esc quit")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
