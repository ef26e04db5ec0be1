package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "blockbreaker.yaml"

// Load loads the block breaker configuration.
// Search order: customPath -> ~/.blockbreaker/configs/blockbreaker.yaml ->
// ./configs/blockbreaker.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other locations are
// skipped when missing or unparsable.
func Load(customPath string) (BlockBreakerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockBreakerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlockBreakerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BlockBreakerConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultBlockBreakerYAML)
	if err != nil {
		return DefaultBlockBreakerConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files only
// override the keys they name.
func parse(data []byte) (BlockBreakerConfig, error) {
	cfg := DefaultBlockBreakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockBreakerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockbreaker", "configs", fileName)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the initial ball speed changes; the layout stays fixed.
func ApplyPreset(cfg *BlockBreakerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	scale := preset.speedScale()
	cfg.Ball.SpeedX *= scale
	cfg.Ball.SpeedY *= scale
}
