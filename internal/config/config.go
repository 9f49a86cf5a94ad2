// Package config loads generator settings from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/transitions/internal/effects"
)

// Config holds the settings shared by every generation call.
type Config struct {
	Canvas effects.Canvas `yaml:"canvas" toml:"canvas"`
	// Durations overrides the default duration of an effect, keyed by ID.
	Durations map[string]float64 `yaml:"durations" toml:"durations"`
	LogLevel  string             `yaml:"log_level" toml:"log_level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Canvas:    effects.DefaultCanvas,
		Durations: map[string]float64{},
		LogLevel:  "info",
	}
}

// Load reads path and fills any value the file leaves out from Default.
// The format follows the extension: .yaml/.yml or .toml. An empty path
// returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q (use .yaml or .toml)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return nil
}

// normalize resolves duration keys to effect IDs and validates every value.
func (c *Config) normalize() error {
	if err := c.Canvas.Validate(); err != nil {
		return err
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}

	resolved := make(map[string]float64, len(c.Durations))
	keys := make([]string, 0, len(c.Durations))
	for k := range c.Durations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d := c.Durations[k]
		e, err := effects.Lookup(k)
		if err != nil {
			return fmt.Errorf("durations: %w", err)
		}
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return fmt.Errorf("durations.%s must be a positive number of seconds, got %v", k, d)
		}
		if _, dup := resolved[e.ID()]; dup {
			return fmt.Errorf("durations: %s is set more than once", e.ID())
		}
		resolved[e.ID()] = d
	}
	c.Durations = resolved
	return nil
}

// DurationFor returns the configured duration of the effect named id, or
// the effect's default when none is configured.
func (c *Config) DurationFor(id string) (float64, error) {
	e, err := effects.Lookup(id)
	if err != nil {
		return 0, err
	}
	if d, ok := c.Durations[e.ID()]; ok {
		return d, nil
	}
	return e.DefaultDuration(), nil
}
