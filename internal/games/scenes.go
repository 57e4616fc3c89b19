// Package games holds the scene ids shared by the snake game's screens.
package games

import "github.com/vovakirdan/term-snake/internal/engine"

// Scene ids registered with the loop.
const (
	TitleScene    engine.SceneID = "title"
	SnakeScene    engine.SceneID = "snake"
	SettingsScene engine.SceneID = "settings"
)
