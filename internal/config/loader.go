package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from the file named by CONFIG_PATH
// (fallback "./config.yaml") and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	return LoadFrom(path)
}

// LoadFrom reads configuration from path plus the environment.
// An empty path falls back to "./config.yaml"; if that file is absent,
// configuration comes from ENV + defaults only. A non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
