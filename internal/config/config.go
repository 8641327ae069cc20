package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Timer    Timer    `yaml:"timer"`
	Resolver Resolver `yaml:"resolver"`
}

type Timer struct {
	// Disabled starts games without a time limit.
	Disabled bool          `yaml:"disabled" env:"TIMER_DISABLED"`
	Tick     time.Duration `yaml:"tick" env:"TIMER_TICK" env-default:"1s"`
}

type Resolver struct {
	// Seed 0 picks a time based seed.
	Seed uint64 `yaml:"seed" env:"RESOLVER_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}
