// Package engine runs terminal games: a fixed-timestep loop that routes input
// to the active scene, advances it in constant increments and renders what it
// draws.
package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

// SceneID names a registered scene. Ids are chosen by the caller.
type SceneID string

// Scene is one screen of a game (a title menu, the game board...). The loop
// calls at most one of its methods at a time.
type Scene interface {
	// Draw returns the instructions describing the scene right now.
	Draw(ts *Timestep) []render.Instruction
	// Update advances the scene by a fixed increment.
	Update(elapsed time.Duration) (Signal, error)
	// ProcessInput reacts to a single input event.
	ProcessInput(ev input.Event) (Signal, error)
}

// Resizable is implemented by scenes that lay themselves out for the screen
// size. On a resize event the loop resizes every registered scene, then
// passes the event to the active one.
type Resizable interface {
	Resize(columns, rows int)
}

// Enterable is implemented by scenes that prepare themselves each time they
// become active: when the loop starts on them and on every LoadScene.
type Enterable interface {
	Enter()
}

// SignalKind tells the loop what to do after a scene callback.
type SignalKind uint8

const (
	SignalRun SignalKind = iota
	SignalStop
	SignalLoad
)

// Signal is returned by scene callbacks to control the loop.
type Signal struct {
	Kind  SignalKind
	Scene SceneID // target of SignalLoad
}

// Run keeps the loop going.
func Run() Signal {
	return Signal{Kind: SignalRun}
}

// Stop ends the loop.
func Stop() Signal {
	return Signal{Kind: SignalStop}
}

// LoadScene switches to another scene at the start of the next iteration.
func LoadScene(id SceneID) Signal {
	return Signal{Kind: SignalLoad, Scene: id}
}

// String returns a human-readable form of the signal.
func (s Signal) String() string {
	switch s.Kind {
	case SignalRun:
		return "Run"
	case SignalStop:
		return "Stop"
	case SignalLoad:
		return fmt.Sprintf("Load(%s)", s.Scene)
	default:
		return "Unknown"
	}
}
