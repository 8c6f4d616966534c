// Package config provides YAML/TOML game configuration loading and
// difficulty presets for Brick Duel.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable of a Brick Duel round and its collaborators.
// Distances are arena pixels, speeds are pixels per tick.
type Config struct {
	Arena    Arena    `yaml:"arena" toml:"arena"`
	Paddle   Paddle   `yaml:"paddle" toml:"paddle"`
	Ball     Ball     `yaml:"ball" toml:"ball"`
	Bricks   Bricks   `yaml:"bricks" toml:"bricks"`
	PowerUps PowerUps `yaml:"powerups" toml:"powerups"`
	Laser    Laser    `yaml:"laser" toml:"laser"`
	Gameplay Gameplay `yaml:"gameplay" toml:"gameplay"`
	Audio    Audio    `yaml:"audio" toml:"audio"`
	Storage  Storage  `yaml:"storage" toml:"storage"`
}

// Arena defines the play area shared by both halves.
type Arena struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Inset  float64 `yaml:"inset" toml:"inset"` // Gap each paddle keeps from the midline
}

// Mid returns the x-coordinate of the midline.
func (a Arena) Mid() float64 {
	return a.Width / 2
}

// Paddle defines paddle geometry and movement.
type Paddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Paddle top = Height - BottomOffset
}

// Ball defines ball geometry and launch behavior.
type Ball struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle" toml:"max_bounce_angle"` // Degrees from vertical
}

// Bricks defines brick size and power-up drop odds.
type Bricks struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	DropChance float64 `yaml:"drop_chance" toml:"drop_chance"`
}

// PowerUps defines falling pickups and their effects.
type PowerUps struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	FallSpeed      float64 `yaml:"fall_speed" toml:"fall_speed"`
	ShrinkFactor   float64 `yaml:"shrink_factor" toml:"shrink_factor"`
	ExpandFactor   float64 `yaml:"expand_factor" toml:"expand_factor"`
	MultiballCount int     `yaml:"multiball_count" toml:"multiball_count"`
	StickyTicks    int     `yaml:"sticky_ticks" toml:"sticky_ticks"` // 0 = until round reset
	LaserTicks     int     `yaml:"laser_ticks" toml:"laser_ticks"`   // 0 = until round reset
}

// Laser defines laser bolts.
type Laser struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	Cooldown int     `yaml:"cooldown" toml:"cooldown"` // Ticks between shots
}

// Gameplay defines round rules.
type Gameplay struct {
	Lives       int `yaml:"lives" toml:"lives"`
	StartLayout int `yaml:"start_layout" toml:"start_layout"`
}

// Audio defines the sound collaborator.
type Audio struct {
	Sound      bool    `yaml:"sound" toml:"sound"`
	Music      bool    `yaml:"music" toml:"music"`
	AssetDir   string  `yaml:"asset_dir" toml:"asset_dir"`
	Synthesize bool    `yaml:"synthesize" toml:"synthesize"` // Generate tones for missing assets
	Volume     float64 `yaml:"volume" toml:"volume"`         // Linear gain, 1.0 = unchanged
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Storage selects where high scores are kept.
type Storage struct {
	Backend    string `yaml:"backend" toml:"backend"`
	ScoresFile string `yaml:"scores_file" toml:"scores_file"`
	DBPath     string `yaml:"db_path" toml:"db_path"`
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("powerups.radius", c.PowerUps.Radius)
	positive("powerups.fall_speed", c.PowerUps.FallSpeed)
	positive("laser.width", c.Laser.Width)
	positive("laser.height", c.Laser.Height)
	positive("laser.speed", c.Laser.Speed)
	positive("gameplay.lives", float64(c.Gameplay.Lives))

	if c.Arena.Inset < 0 || c.Arena.Inset*2 >= c.Arena.Width {
		errs = append(errs, fmt.Errorf("arena.inset %v out of range", c.Arena.Inset))
	}
	if c.Bricks.DropChance < 0 || c.Bricks.DropChance > 1 {
		errs = append(errs, fmt.Errorf("bricks.drop_chance must be within [0, 1], got %v", c.Bricks.DropChance))
	}
	if c.Laser.Cooldown < 0 || c.PowerUps.StickyTicks < 0 || c.PowerUps.LaserTicks < 0 {
		errs = append(errs, errors.New("tick counts must not be negative"))
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q is not one of %q, %q", c.Storage.Backend, BackendFile, BackendSQLite))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
