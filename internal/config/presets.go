package config

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for a preset name that does not exist.
var ErrUnknownPreset = errors.New("config: unknown preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetNormal DifficultyPreset = "normal"
	PresetHard   DifficultyPreset = "hard"
	PresetInsane DifficultyPreset = "insane"
)

// PresetInfo describes a preset for menus and listings.
type PresetInfo struct {
	Name        DifficultyPreset
	Description string
	Speed       float64
	GrowRate    int
	Level       float64
}

var presets = []PresetInfo{
	{PresetEasy, "Slow snake, gentle ramp", 7, 1, 0.0},
	{PresetNormal, "The classic pace", 10, 1, 0.2},
	{PresetHard, "Fast snake, grows by two", 14, 2, 0.5},
	{PresetInsane, "Good luck", 20, 3, 0.8},
}

// Presets returns every preset in order of increasing difficulty.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (PresetInfo, error) {
	for _, p := range presets {
		if string(p.Name) == name {
			return p, nil
		}
	}
	return PresetInfo{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, name string) error {
	p, err := LookupPreset(name)
	if err != nil {
		return err
	}
	cfg.Snake.Speed = p.Speed
	cfg.Snake.GrowRate = p.GrowRate
	cfg.Difficulty.InitialLevel = p.Level
	return nil
}
