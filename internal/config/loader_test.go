package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultBlockBreakerConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBlockBreakerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBlockBreakerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.BlockCount() != 48 {
		t.Errorf("BlockCount() = %d, expected 48", cfg.BlockCount())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultBlockBreakerConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".blockbreaker", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("ball:\n  speed_x: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ball.SpeedX != 6 {
		t.Errorf("SpeedX = %g, expected 6 from user config", cfg.Ball.SpeedX)
	}
	if cfg.Ball.SpeedY != -4 {
		t.Errorf("SpeedY = %g, expected default -4 for unset key", cfg.Ball.SpeedY)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "paddle:\n  width: 120\nsession:\n  tick_rate: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %g, expected 120", cfg.Paddle.Width)
	}
	if cfg.Session.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Session.TickRate)
	}
	if cfg.Blocks.Rows != 6 {
		t.Errorf("Blocks.Rows = %d, expected default 6", cfg.Blocks.Rows)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed yaml", "ball: [1, 2", "failed to parse"},
		{"invalid values", "ball:\n  radius: -1\n", "ball radius must be positive"},
		{"grid overflow", "blocks:\n  columns: 20\n", "block grid is"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should contain %q", err, tc.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockBreakerConfig)
		want   string
	}{
		{"zero surface", func(c *BlockBreakerConfig) { c.Surface.Width = 0 }, "surface size"},
		{"zero speed", func(c *BlockBreakerConfig) { c.Ball.SpeedX, c.Ball.SpeedY = 0, 0 }, "ball speed"},
		{"no rows", func(c *BlockBreakerConfig) { c.Blocks.Rows = 0 }, "block grid must have"},
		{"flat angle", func(c *BlockBreakerConfig) { c.Physics.MaxBounceAngle = 90 }, "max bounce angle"},
		{"negative multiplier", func(c *BlockBreakerConfig) { c.Physics.SpeedMultiplier = -1 }, "speed multiplier"},
		{"zero tick rate", func(c *BlockBreakerConfig) { c.Session.TickRate = 0 }, "tick rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockBreakerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should contain %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantX, wantY float64
	}{
		{"", 4, -4},
		{DifficultyEasy, 3, -3},
		{DifficultyNormal, 4, -4},
		{DifficultyHard, 6, -6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlockBreakerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Ball.SpeedX != tc.wantX || cfg.Ball.SpeedY != tc.wantY {
				t.Errorf("speed = (%g, %g), expected (%g, %g)", cfg.Ball.SpeedX, cfg.Ball.SpeedY, tc.wantX, tc.wantY)
			}
			if cfg.Paddle != DefaultBlockBreakerConfig().Paddle {
				t.Error("presets must not change the paddle")
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(\"nightmare\") should fail")
	}
}
