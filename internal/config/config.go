// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/ripplegrid/internal/engine/debug"
)

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Render    RenderConfig    `yaml:"render"`
	Capture   CaptureConfig   `yaml:"capture"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// GridConfig describes the plane mesh.
type GridConfig struct {
	Width  float32 `yaml:"width"`
	Depth  float32 `yaml:"depth"`
	StepsW int     `yaml:"steps_w"`
	StepsD int     `yaml:"steps_d"`
}

// AnimationConfig controls the ripple tick.
type AnimationConfig struct {
	TickInterval     time.Duration `yaml:"tick_interval"`
	Step             float32       `yaml:"step"`
	MaxTicksPerFrame int           `yaml:"max_ticks_per_frame"`
}

// CameraConfig holds the fixed view and the lens.
type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	FovDeg float32    `yaml:"fov_deg"`
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
}

// RenderConfig holds colours and raster state.
type RenderConfig struct {
	Colour      [4]float32 `yaml:"colour"`
	ClearColour [4]float32 `yaml:"clear_colour"`
	Wireframe   bool       `yaml:"wireframe"`
	Samples     int        `yaml:"samples"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Grid Exercise",
			Width:  1024,
			Height: 720,
			VSync:  true,
		},
		Grid: GridConfig{
			Width:  60,
			Depth:  60,
			StepsW: 240,
			StepsD: 240,
		},
		Animation: AnimationConfig{
			TickInterval:     20 * time.Millisecond,
			Step:             0.1,
			MaxTicksPerFrame: 5,
		},
		Camera: CameraConfig{
			Eye:    [3]float32{5, 5, 5},
			Target: [3]float32{0, 0, 0},
			FovDeg: 60,
			Near:   0.5,
			Far:    20,
		},
		Render: RenderConfig{
			Colour:      [4]float32{1, 0, 0, 1},
			ClearColour: [4]float32{1, 1, 1, 1},
			Samples:     4,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "grid",
			Format: debug.FormatPNG,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail at render time.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Grid.StepsW <= 0 || c.Grid.StepsD <= 0 {
		return fmt.Errorf("grid steps must be positive, got %dx%d", c.Grid.StepsW, c.Grid.StepsD)
	}
	if c.Grid.Width <= 0 || c.Grid.Depth <= 0 {
		return fmt.Errorf("grid extent must be positive, got %gx%g", c.Grid.Width, c.Grid.Depth)
	}
	if c.Animation.TickInterval <= 0 {
		return fmt.Errorf("animation tick_interval must be positive, got %v", c.Animation.TickInterval)
	}
	if c.Animation.MaxTicksPerFrame < 0 {
		return fmt.Errorf("animation max_ticks_per_frame must not be negative")
	}
	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		return fmt.Errorf("camera fov_deg must be in (0, 180), got %g", c.Camera.FovDeg)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("camera planes must satisfy 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("camera eye and target must differ")
	}
	if c.Render.Samples < 0 {
		return fmt.Errorf("render samples must not be negative")
	}
	if !debug.ValidFormat(c.Capture.Format) {
		return fmt.Errorf("unknown capture format %q", c.Capture.Format)
	}
	return nil
}
