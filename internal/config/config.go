// Package config handles demo configuration loading and management.
package config

import "github.com/Faultbox/flame/internal/controls"

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Scene    SceneConfig    `yaml:"scene" toml:"scene"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Shaders  ShadersConfig  `yaml:"shaders" toml:"shaders"`
	Debug    DebugConfig    `yaml:"debug" toml:"debug"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width" toml:"width"`
	Height     int        `yaml:"height" toml:"height"`
	Fullscreen bool       `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool       `yaml:"vsync" toml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color" toml:"clear_color"`
}

// SceneConfig holds the control values the demo starts with.
type SceneConfig struct {
	Tesselations int        `yaml:"tesselations" toml:"tesselations"`
	Color        [4]float32 `yaml:"color" toml:"color"` // 0-255 per channel
	Frequency    float32    `yaml:"frequency" toml:"frequency"`
	Amplitude    float32    `yaml:"amplitude" toml:"amplitude"`
	FlameHeight  float32    `yaml:"flame_height" toml:"flame_height"`
	ShowCube     bool       `yaml:"show_cube" toml:"show_cube"`
	Radius       float32    `yaml:"radius" toml:"radius"`
	Position     [3]float32 `yaml:"position" toml:"position"` // world position of the flame
}

// CameraConfig holds the fixed projection parameters and the home position.
type CameraConfig struct {
	FovDegrees float32    `yaml:"fov_degrees" toml:"fov_degrees"`
	Near       float32    `yaml:"near" toml:"near"`
	Far        float32    `yaml:"far" toml:"far"`
	Eye        [3]float32 `yaml:"eye" toml:"eye"`
	Target     [3]float32 `yaml:"target" toml:"target"`
}

// ShadersConfig points at GLSL sources that override the built-in ones.
type ShadersConfig struct {
	Dir   string `yaml:"dir" toml:"dir"`
	Watch bool   `yaml:"watch" toml:"watch"` // recompile when files in Dir change
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ShowFPS          bool   `yaml:"show_fps" toml:"show_fps"`
	ScreenshotDir    string `yaml:"screenshot_dir" toml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format" toml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [4]float32{0.2, 0.2, 0.2, 1},
		},
		Scene: SceneConfig{
			Tesselations: controls.DefaultTesselations,
			Color:        controls.DefaultColor,
			Frequency:    controls.DefaultFrequency,
			Amplitude:    controls.DefaultAmplitude,
			FlameHeight:  controls.DefaultFlameHeight,
			Radius:       1,
		},
		Camera: CameraConfig{
			FovDegrees: 45,
			Near:       0.1,
			Far:        1000,
			Eye:        [3]float32{0, 0, 5},
			Target:     [3]float32{0, 0, 0},
		},
		Debug: DebugConfig{
			ShowFPS:          true,
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Controls returns the initial control values described by the scene section.
func (c *Config) Controls() controls.Controls {
	ctl := controls.Controls{
		Tesselations: int32(c.Scene.Tesselations),
		Color:        c.Scene.Color,
		Frequency:    c.Scene.Frequency,
		Amplitude:    c.Scene.Amplitude,
		FlameHeight:  c.Scene.FlameHeight,
		ShowCube:     c.Scene.ShowCube,
	}
	ctl.Clamp()
	return ctl
}
