package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"schnapsen/ml"
)

// ReplayTarget names one strategy to record replays for.
type ReplayTarget struct {
	Strategy string `yaml:"strategy"`
	Seed     uint64 `yaml:"seed"`
	LogFile  string `yaml:"log_file"`
}

// DatasetSource maps a strategy label to its recorded logs.
type DatasetSource struct {
	Strategy string   `yaml:"strategy"`
	Paths    []string `yaml:"paths"`
}

// Config is the YAML pipeline configuration.
type Config struct {
	Replay struct {
		Games    int    `yaml:"games"`
		BaseSeed uint64 `yaml:"base_seed"`
		OutDir   string `yaml:"out_dir"`
		// Opponent overrides the self-play default; when set, only the
		// target strategy's decisions are recorded.
		Opponent string         `yaml:"opponent"`
		Targets  []ReplayTarget `yaml:"targets"`
	} `yaml:"replay"`
	Train struct {
		Sources         []DatasetSource `yaml:"sources"`
		HoldoutFraction float64         `yaml:"holdout_fraction"`
		SplitSeed       uint64          `yaml:"split_seed"`
		Neighbors       int             `yaml:"neighbors"`
		ModelPath       string          `yaml:"model_path"`
	} `yaml:"train"`
}

// LoadConfig reads and validates a pipeline configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, target := range c.Replay.Targets {
		if _, err := ml.ParseStrategy(target.Strategy); err != nil {
			return fmt.Errorf("replay target: %w", err)
		}
		if target.LogFile == "" {
			return fmt.Errorf("replay target %s: log_file is required", target.Strategy)
		}
	}
	for _, src := range c.Train.Sources {
		if _, err := ml.ParseStrategy(src.Strategy); err != nil {
			return fmt.Errorf("dataset source: %w", err)
		}
		if len(src.Paths) == 0 {
			return fmt.Errorf("dataset source %s: at least one path is required", src.Strategy)
		}
	}
	if c.Train.HoldoutFraction < 0 || c.Train.HoldoutFraction > 1 {
		return fmt.Errorf("holdout_fraction must be in [0,1], got %g", c.Train.HoldoutFraction)
	}
	return nil
}

// Sources converts the configured dataset sources into assembly inputs.
func (c *Config) Sources() ([]ml.Source, error) {
	sources := make([]ml.Source, 0, len(c.Train.Sources))
	for _, src := range c.Train.Sources {
		strategy, err := ml.ParseStrategy(src.Strategy)
		if err != nil {
			return nil, err
		}
		sources = append(sources, ml.Source{Strategy: strategy, Paths: src.Paths})
	}
	return sources, nil
}
