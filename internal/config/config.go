// Package config loads runtime settings from MATHTOWER_ environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathtower/internal/challenge"
)

// Config holds game settings.
type Config struct {
	DBPath             string `env:"MATHTOWER_DB"`
	Candidates         int    `env:"MATHTOWER_CANDIDATES"          envDefault:"20"`
	DistractorAttempts int    `env:"MATHTOWER_DISTRACTOR_ATTEMPTS" envDefault:"200"`
	SpeedSeconds       int    `env:"MATHTOWER_SPEED_SECONDS"       envDefault:"60"`
	Hints              bool   `env:"MATHTOWER_HINTS"               envDefault:"true"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses Config from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Candidates < 1:
		return fmt.Errorf("MATHTOWER_CANDIDATES must be at least 1, got %d", c.Candidates)
	case c.DistractorAttempts < 1:
		return fmt.Errorf("MATHTOWER_DISTRACTOR_ATTEMPTS must be at least 1, got %d", c.DistractorAttempts)
	case c.SpeedSeconds < 1:
		return fmt.Errorf("MATHTOWER_SPEED_SECONDS must be at least 1, got %d", c.SpeedSeconds)
	}
	return nil
}

// SpeedDuration is the length of a speed round.
func (c Config) SpeedDuration() time.Duration {
	return time.Duration(c.SpeedSeconds) * time.Second
}

// Challenge returns the builder configuration for these settings.
func (c Config) Challenge() challenge.Config {
	cfg := challenge.DefaultConfig()
	cfg.CandidateCount = c.Candidates
	cfg.MaxDistractorAttempts = c.DistractorAttempts
	return cfg
}
