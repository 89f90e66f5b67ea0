package stepcontext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/semitest/stl-go/pkg/log"
	"gopkg.in/yaml.v3"
)

// Config configures a step Context.
type Config struct {
	// Name identifies the step in result events.
	Name string `yaml:"name"`

	// Sites are the active site numbers, in publishing order.
	Sites []int `yaml:"sites"`

	// Pins is the pin set of the test configuration.
	Pins PinConfig `yaml:"pins"`

	// Store holds shared global data.
	// If nil, a MemoryStore is created.
	Store Store `yaml:"-"`

	// Results receives published results.
	// If nil, results are discarded.
	Results log.Logger `yaml:"-"`

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger `yaml:"-"`
}

// PinConfig lists the pins of a test configuration.
type PinConfig struct {
	// DUT pins are connected to every site.
	DUT []string `yaml:"dut"`

	// System pins carry one site-agnostic value.
	System []string `yaml:"system,omitempty"`
}

// LoadConfig reads and validates a YAML step configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates a YAML step configuration.
// Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: YAML parse error: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration names at least one site, that
// site numbers are unique and non-negative, and that pin names are
// non-empty and unique across DUT and system pins.
func (c *Config) Validate() error {
	if len(c.Sites) == 0 {
		return fmt.Errorf("%w: no sites", ErrInvalidConfig)
	}
	seenSites := make(map[int]bool, len(c.Sites))
	for _, s := range c.Sites {
		if s < 0 {
			return fmt.Errorf("%w: invalid site number %d", ErrInvalidConfig, s)
		}
		if seenSites[s] {
			return fmt.Errorf("%w: duplicate site number %d", ErrInvalidConfig, s)
		}
		seenSites[s] = true
	}

	seenPins := make(map[string]bool, len(c.Pins.DUT)+len(c.Pins.System))
	for _, group := range [][]string{c.Pins.DUT, c.Pins.System} {
		for _, p := range group {
			if p == "" {
				return fmt.Errorf("%w: empty pin name", ErrInvalidConfig)
			}
			if seenPins[p] {
				return fmt.Errorf("%w: duplicate pin name %q", ErrInvalidConfig, p)
			}
			seenPins[p] = true
		}
	}
	return nil
}
