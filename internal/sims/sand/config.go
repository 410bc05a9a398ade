package sand

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// RegionMargin is how far the active region reaches past the grains that moved.
const RegionMargin = 2

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid sand config")

// Params holds the spawn and drain tunables.
type Params struct {
	SpawnRadius    int `yaml:"spawn_radius"`
	SpawnAttempts  int `yaml:"spawn_attempts"`
	DrainHalfWidth int `yaml:"drain_half_width"`
}

// Config controls the sand world dimensions and tunables. It is fixed once a
// World has been built.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1200,
		Height: 800,
		Seed:   170,
		Params: Params{
			SpawnRadius:    6,
			SpawnAttempts:  25,
			DrainHalfWidth: 50,
		},
	}
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.Params.SpawnRadius < 0:
		return fmt.Errorf("%w: spawn radius must not be negative, got %d", ErrInvalidConfig, c.Params.SpawnRadius)
	case c.Params.SpawnAttempts < 0:
		return fmt.Errorf("%w: spawn attempts must not be negative, got %d", ErrInvalidConfig, c.Params.SpawnAttempts)
	case c.Params.DrainHalfWidth < 0:
		return fmt.Errorf("%w: drain half-width must not be negative, got %d", ErrInvalidConfig, c.Params.DrainHalfWidth)
	case c.Params.DrainHalfWidth > c.Width:
		return fmt.Errorf("%w: drain half-width %d exceeds width %d", ErrInvalidConfig, c.Params.DrainHalfWidth, c.Width)
	}
	return nil
}

// LoadConfig reads the embedded defaults and overlays the YAML file at path
// when path is non-empty. The result is validated.
func LoadConfig(path string) (Config, error) {
	c, err := loadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func loadConfig(path string) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	// Only keys present in the file overwrite the defaults.
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return c, nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// FromMap builds a config from flag-style key/value pairs. The "config" key
// names a YAML file loaded before the remaining keys are applied.
func FromMap(cfg map[string]string) (Config, error) {
	c, err := loadConfig(cfg["config"])
	if err != nil {
		return Config{}, err
	}
	if err := c.Apply(cfg); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply overrides fields from a string map. Unknown keys are ignored so the
// same map can carry front-end options.
func (c *Config) Apply(cfg map[string]string) error {
	ints := map[string]*int{
		"w":                &c.Width,
		"h":                &c.Height,
		"spawn_radius":     &c.Params.SpawnRadius,
		"spawn_attempts":   &c.Params.SpawnAttempts,
		"drain_half_width": &c.Params.DrainHalfWidth,
	}
	for key, v := range cfg {
		if key == "seed" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: seed=%q: %v", ErrInvalidConfig, v, err)
			}
			c.Seed = parsed
			continue
		}
		dst, ok := ints[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
		*dst = parsed
	}
	return nil
}
