package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects a bundle of overrides applied on top of a loaded config.
type DifficultyPreset string

const (
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies cfg for the given difficulty. Normal leaves it untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.2
		cfg.Ball.Speed *= 0.8
		cfg.Bricks.DropChance = min(1, cfg.Bricks.DropChance*1.5)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
		cfg.Ball.Speed *= 1.3
		cfg.Bricks.DropChance *= 0.5
	}
}
