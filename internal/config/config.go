package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	GridSize   int    `yaml:"grid-size" env:"GRID_SIZE" env-default:"5"`
	AutoDeploy bool   `yaml:"auto-deploy" env:"AUTO_DEPLOY" env-default:"false"`
	RandomSeed int64  `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
	Fleet      []Ship `yaml:"fleet"`
}

type Ship struct {
	Type   string `yaml:"type"`
	Length int    `yaml:"length"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path when it exists and falls back to environment variables otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if len(config.Fleet) == 0 {
		config.Fleet = defaultFleet()
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func defaultFleet() []Ship {
	rules := entity.DefaultRules()

	fleet := make([]Ship, 0, len(rules.Fleet))
	for _, spec := range rules.Fleet {
		fleet = append(fleet, Ship{Type: spec.Type, Length: spec.Length})
	}

	return fleet
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", that.LogLevel)
	}

	if err := entity.ValidateFleet(that.GridSize, that.Rules().Fleet); err != nil {
		return fmt.Errorf("invalid game rules: %w", err)
	}

	return nil
}

// Rules converts the game section of the config into match rules.
func (that *Config) Rules() entity.Rules {
	fleet := make([]entity.ShipSpec, 0, len(that.Fleet))
	for _, ship := range that.Fleet {
		fleet = append(fleet, entity.ShipSpec{Type: ship.Type, Length: ship.Length})
	}

	return entity.Rules{
		GridSize:   that.GridSize,
		Fleet:      fleet,
		AutoDeploy: that.AutoDeploy,
	}
}
