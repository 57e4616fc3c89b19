package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			FrameRate:   60,
			InputPollMS: 5,
		},
		Snake: SnakeConfig{
			Speed:    10,
			GrowRate: 1,
			Size:     6,
			Style:    StyleSolid,
		},
		Display: DisplayConfig{
			ShowFrameRate: false,
			ShowBorder:    true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
