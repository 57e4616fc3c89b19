// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for a game session.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Snake      SnakeConfig      `yaml:"snake"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig defines loop timing.
type EngineConfig struct {
	FrameRate   int `yaml:"frame_rate"`    // Fixed updates per second
	InputPollMS int `yaml:"input_poll_ms"` // Max wait for input per frame
}

// InputPoll returns the input poll timeout as a duration.
func (e EngineConfig) InputPoll() time.Duration {
	return time.Duration(e.InputPollMS) * time.Millisecond
}

// SnakeStyle selects how the snake is colored.
type SnakeStyle string

const (
	StyleSolid SnakeStyle = "solid"
	StyleFlash SnakeStyle = "flash"
)

// SnakeConfig defines snake movement and growth.
type SnakeConfig struct {
	Speed    float64    `yaml:"speed"`     // Moves per second
	GrowRate int        `yaml:"grow_rate"` // Segments gained per food
	Size     int        `yaml:"size"`      // Initial length
	Style    SnakeStyle `yaml:"style"`
}

// DisplayConfig toggles on-screen extras.
type DisplayConfig struct {
	ShowFrameRate bool `yaml:"show_frame_rate"`
	ShowBorder    bool `yaml:"show_border"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.Engine.FrameRate < 1 || c.Engine.FrameRate > 240:
		return fmt.Errorf("%w: engine.frame_rate must be in [1, 240], got %d", ErrInvalidConfig, c.Engine.FrameRate)
	case c.Engine.InputPollMS < 0:
		return fmt.Errorf("%w: engine.input_poll_ms must not be negative, got %d", ErrInvalidConfig, c.Engine.InputPollMS)
	case c.Snake.Speed <= 0:
		return fmt.Errorf("%w: snake.speed must be positive, got %g", ErrInvalidConfig, c.Snake.Speed)
	case c.Snake.GrowRate < 0:
		return fmt.Errorf("%w: snake.grow_rate must not be negative, got %d", ErrInvalidConfig, c.Snake.GrowRate)
	case c.Snake.Size < 1:
		return fmt.Errorf("%w: snake.size must be at least 1, got %d", ErrInvalidConfig, c.Snake.Size)
	case c.Snake.Style != StyleSolid && c.Snake.Style != StyleFlash:
		return fmt.Errorf("%w: snake.style must be %q or %q, got %q", ErrInvalidConfig, StyleSolid, StyleFlash, c.Snake.Style)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %g", ErrInvalidConfig, c.Difficulty.InitialLevel)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type must be score, time or none, got %q",
			ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}
