// Package main is the entry point for the keyboard-driven Flame frontend
// in a plain SDL window.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/app/standalone"
	"github.com/Faultbox/flame/internal/config"
	"github.com/Faultbox/flame/internal/logger"
)

func main() {
	runtime.LockOSThread()
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if path := config.InitConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Flame (SDL) ===")
	logger.Info("keys: Up/Down tessellation, F/V frequency, A/Z amplitude, H/N height, C cube, L load, R reset, F12 screenshot, Esc quit")

	s, err := standalone.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
