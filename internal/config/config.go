package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem/internal/util"
	"holdem/pkg/playable/poker/texasholdem"
)

// Config provides configuration for the hold'em engine and its tools
type Config struct {
	loaded bool
	Table  struct {
		Seats         int `yaml:"seats" envconfig:"seats"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		Ante          int `yaml:"ante" envconfig:"ante"`
	} `yaml:"table" envconfig:"table"`
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		// Format is json or text, or empty to pick based on the output
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	// Seed makes every shuffle repeatable when non-zero
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	var cfg Config
	cfg.Table.Seats = opts.Seats
	cfg.Table.StartingStack = opts.StartingStack
	cfg.Table.SmallBlind = opts.SmallBlind
	cfg.Table.BigBlind = opts.BigBlind
	cfg.Table.Ante = opts.Ante
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional. Environment variables prefixed with HOLDEM_ take precedence over it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the table configuration as options for a new game
func (c Config) GameOptions() texasholdem.Options {
	return texasholdem.Options{
		Seats:         c.Table.Seats,
		StartingStack: c.Table.StartingStack,
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		Ante:          c.Table.Ante,
		Seed:          c.Seed,
	}
}
