// Package main is the entry point for the Flame viewer: the deformed
// icosphere demo with an ImGui controls panel.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/app/viewer"
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

	logger.Info("=== Flame viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	v.Run()

	logger.Info("viewer closed normally")
	return 0
}
