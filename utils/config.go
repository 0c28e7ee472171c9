package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	SeedRandom = "random"
	SeedGlider = "glider"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AutoRestart         bool          `json:"auto_restart"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	WorkerLimit         int           `json:"worker_limit"`
	Seed                string        `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		AutoRestart:         true,
		UseMemoryPool:       true,
		WorkerLimit:         0, // one worker per row, unbounded
		Seed:                SeedRandom,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] dimensions must not be negative, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.WorkerLimit < 0:
		return errors.Errorf("[Validate] worker_limit must not be negative, got %d", c.WorkerLimit)
	}

	switch c.Seed {
	case SeedRandom, SeedGlider:
		return nil
	default:
		return errors.Errorf("[Validate] unknown seed %q", c.Seed)
	}
}
