// Package config provides YAML-based configuration loading and difficulty
// presets for Pyramid of Doom.
package config

import (
	"errors"
	"fmt"
)

// PyramidConfig contains the tunable settings of the game and its front-ends.
// Rules fixed by the game itself (window size, jump geometry, lives, level
// count) are not configurable.
type PyramidConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Generator GeneratorConfig `yaml:"generator"`
	Runtime   RuntimeTuning   `yaml:"runtime"`
	Display   DisplayConfig   `yaml:"display"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed int `yaml:"speed"` // horizontal pixels per frame
}

// GeneratorConfig defines level generation parameters.
type GeneratorConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // random draws per placement before scanning
}

// RuntimeTuning defines the simulation clock.
type RuntimeTuning struct {
	TickRate int `yaml:"tick_rate"` // frames per second
}

// DisplayConfig defines front-end scaling.
type DisplayConfig struct {
	TUIScale    int     `yaml:"tui_scale"`    // window pixels per braille dot, 0 fits the terminal
	WindowScale float64 `yaml:"window_scale"` // desktop window size relative to 1344x756
}

// Validate reports settings that cannot drive a game.
func (c PyramidConfig) Validate() error {
	var errs []error
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %d", c.Player.Speed))
	}
	if c.Generator.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("generator.max_attempts must be positive, got %d", c.Generator.MaxAttempts))
	}
	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}
	if c.Display.TUIScale < 0 {
		errs = append(errs, fmt.Errorf("display.tui_scale must not be negative, got %d", c.Display.TUIScale))
	}
	if c.Display.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("display.window_scale must be positive, got %g", c.Display.WindowScale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// fillDefaults replaces zero values left out of a partial file.
func (c *PyramidConfig) fillDefaults() {
	def := DefaultPyramidConfig()
	if c.Player.Speed == 0 {
		c.Player.Speed = def.Player.Speed
	}
	if c.Generator.MaxAttempts == 0 {
		c.Generator.MaxAttempts = def.Generator.MaxAttempts
	}
	if c.Runtime.TickRate == 0 {
		c.Runtime.TickRate = def.Runtime.TickRate
	}
	if c.Display.WindowScale == 0 {
		c.Display.WindowScale = def.Display.WindowScale
	}
}
