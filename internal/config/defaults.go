package config

import (
	_ "embed"
)

//go:embed defaults/brickduel.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Arena: Arena{
			Width:  800,
			Height: 600,
			Inset:  10,
		},
		Paddle: Paddle{
			Width:        100,
			Height:       20,
			Speed:        8,
			BottomOffset: 30,
		},
		Ball: Ball{
			Radius:         10,
			Speed:          5,
			MaxBounceAngle: 60,
		},
		Bricks: Bricks{
			Width:      60,
			Height:     20,
			DropChance: 0.2,
		},
		PowerUps: PowerUps{
			Radius:         10,
			FallSpeed:      2,
			ShrinkFactor:   0.7,
			ExpandFactor:   1.3,
			MultiballCount: 2,
		},
		Laser: Laser{
			Width:    4,
			Height:   10,
			Speed:    10,
			Cooldown: 30,
		},
		Gameplay: Gameplay{
			Lives:       3,
			StartLayout: 1,
		},
		Audio: Audio{
			Sound:      true,
			Music:      true,
			AssetDir:   "~/.brickduel/assets",
			Synthesize: true,
			Volume:     1.0,
		},
		Storage: Storage{
			Backend:    BackendFile,
			ScoresFile: "~/.brickduel/high_scores.txt",
			DBPath:     "~/.brickduel/scores.db",
		},
	}
}
