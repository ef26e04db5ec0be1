package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultBlockBreakerYAML []byte

// DefaultBlockBreakerConfig returns the built-in configuration. It matches
// the embedded YAML and is used when that fails to parse.
func DefaultBlockBreakerConfig() BlockBreakerConfig {
	return BlockBreakerConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 10,
			SpeedX: 4,
			SpeedY: -4,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
		},
		Blocks: BlocksConfig{
			Rows:       6,
			Columns:    8,
			Width:      75,
			Height:     20,
			Padding:    15,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Physics: PhysicsConfig{
			MaxBounceAngle:  45,
			SpeedMultiplier: 1,
		},
		Session: SessionConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockBreakerYAML
}
