// Package config provides YAML-based game configuration loading and
// difficulty presets for the block breaker.
package config

import (
	"errors"
	"fmt"
)

// BlockBreakerConfig contains all tunable parameters of the game.
type BlockBreakerConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Physics PhysicsConfig `yaml:"physics"`
	Session SessionConfig `yaml:"session"`
}

// SurfaceConfig defines the logical drawing surface in pixels.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and its initial velocity per frame.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

// PaddleConfig defines the paddle size.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// PhysicsConfig defines the paddle reflection model.
type PhysicsConfig struct {
	MaxBounceAngle  float64 `yaml:"max_bounce_angle"` // degrees
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// SessionConfig defines host scheduling parameters.
type SessionConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate reports the first configuration problem found.
func (c BlockBreakerConfig) Validate() error {
	var errs []error

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface size must be positive, got %gx%g", c.Surface.Width, c.Surface.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.SpeedX == 0 && c.Ball.SpeedY == 0 {
		errs = append(errs, errors.New("ball speed must not be zero"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("block grid must have rows and columns, got %dx%d", c.Blocks.Columns, c.Blocks.Rows))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, fmt.Errorf("block size must be positive, got %gx%g", c.Blocks.Width, c.Blocks.Height))
	}
	if right := c.Blocks.OffsetLeft + float64(c.Blocks.Columns)*(c.Blocks.Width+c.Blocks.Padding) - c.Blocks.Padding; right > c.Surface.Width {
		errs = append(errs, fmt.Errorf("block grid is %g wide, surface is %g", right, c.Surface.Width))
	}
	if bottom := c.Blocks.OffsetTop + float64(c.Blocks.Rows)*(c.Blocks.Height+c.Blocks.Padding) - c.Blocks.Padding; bottom > c.Surface.Height {
		errs = append(errs, fmt.Errorf("block grid is %g tall, surface is %g", bottom, c.Surface.Height))
	}
	if c.Physics.MaxBounceAngle <= 0 || c.Physics.MaxBounceAngle >= 90 {
		errs = append(errs, fmt.Errorf("max bounce angle must be in (0, 90) degrees, got %g", c.Physics.MaxBounceAngle))
	}
	if c.Physics.SpeedMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("speed multiplier must be positive, got %g", c.Physics.SpeedMultiplier))
	}
	if c.Session.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.Session.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// BlockCount returns the number of blocks in the grid.
func (c BlockBreakerConfig) BlockCount() int {
	return c.Blocks.Rows * c.Blocks.Columns
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Empty means none.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// speedScale is the ball speed factor of each preset.
func (p DifficultyPreset) speedScale() float64 {
	switch p {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
