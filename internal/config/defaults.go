package config

import (
	_ "embed"
)

//go:embed defaults/pyramid.yaml
var defaultPyramidYAML []byte

// DefaultPyramidConfig returns the hard-coded configuration used when the
// embedded YAML cannot be parsed.
func DefaultPyramidConfig() PyramidConfig {
	return PyramidConfig{
		Player: PlayerConfig{
			Speed: 7,
		},
		Generator: GeneratorConfig{
			MaxAttempts: 1000,
		},
		Runtime: RuntimeTuning{
			TickRate: 60,
		},
		Display: DisplayConfig{
			TUIScale:    0,
			WindowScale: 1.0,
		},
	}
}
