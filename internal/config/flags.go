package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagTesselations = flag.Int("tesselations", -1, "Initial icosphere subdivision level (0-8)")
	flagShaders      = flag.String("shaders", "", "Directory with GLSL overrides")
	flagWatch        = flag.Bool("watch", false, "Recompile shaders when files in the shader directory change")
	flagInitConfig   = flag.String("init-config", "", "Write the effective config as YAML to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// InitConfigPath returns the --init-config target, or "" when not requested.
func InitConfigPath() string {
	return *flagInitConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagTesselations >= 0 {
		cfg.Scene.Tesselations = *flagTesselations
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagWatch {
		cfg.Shaders.Watch = true
	}
}
