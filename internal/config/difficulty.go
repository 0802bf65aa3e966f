package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// speedOffsets is added to the configured speed for each preset.
var speedOffsets = map[DifficultyPreset]int{
	DifficultyEasy:   -2,
	DifficultyNormal: 0,
	DifficultyHard:   2,
}

// ParsePreset parses a preset name, case-insensitively.
// An empty name selects DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	preset := DifficultyPreset(strings.ToLower(name))
	if _, ok := speedOffsets[preset]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return preset, nil
}

// ApplyPyramidPreset modifies the config based on a difficulty preset.
// Speed never drops below one pixel per frame.
func ApplyPyramidPreset(cfg *PyramidConfig, preset DifficultyPreset) {
	cfg.Player.Speed += speedOffsets[preset]
	if cfg.Player.Speed < 1 {
		cfg.Player.Speed = 1
	}
}
