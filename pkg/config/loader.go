package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when BAREUN_CONFIG is unset.
const DefaultPath = "./bareun.yaml"

// Load builds the configuration from the file named by BAREUN_CONFIG, or
// DefaultPath when it is unset. Environment variables win over the file.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("BAREUN_CONFIG"))
}

// LoadFile builds the configuration from path. With an empty path it tries
// DefaultPath and quietly falls back to the environment alone when that file
// does not exist; a named file that cannot be found is an error.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	named := path != ""
	if !named {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		// cleanenv applies env overrides and env-default tags after the file.
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case named || !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
