// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package logview // import "github.com/josephgodwinkimani/cloudpanel-api-sub001"

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/josephgodwinkimani/cloudpanel-api-sub001/source"
)

const (
	// DefaultMaxEntries caps how many parsed entries one source contributes
	// after filtering.
	DefaultMaxEntries = 200
)

// Config is the engine's external configuration surface: the source catalog
// plus the resource bounds that earlier revisions hardcoded.
type Config struct {
	// Sources is the static, ordered source catalog.
	Sources []source.Descriptor `mapstructure:"sources" yaml:"sources"`

	// Window is the default per-source tail window in lines.
	Window int `mapstructure:"window" yaml:"window,omitempty"`

	// MaxEntries is the post-filter cap on entries per source.
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries,omitempty"`

	// MockSpacing is the interval between placeholder dataset timestamps.
	MockSpacing time.Duration `mapstructure:"mock_spacing" yaml:"mock_spacing,omitempty"`

	// NoiseRules are optional extra drop expressions over {line: string},
	// evaluated in addition to the built-in noise table.
	NoiseRules []string `mapstructure:"noise_rules" yaml:"noise_rules,omitempty"`
}

// NewConfig creates a config with default values and an empty catalog.
func NewConfig() Config {
	return Config{
		Window:      source.DefaultWindow,
		MaxEntries:  DefaultMaxEntries,
		MockSpacing: 5 * time.Minute,
	}
}

// LoadConfig reads a YAML config file and applies defaults. The document is
// decoded through mapstructure so duration fields accept strings like "5m".
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg := NewConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(doc); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies defaults and checks every source descriptor.
func (c *Config) Validate() error {
	if c.Window <= 0 {
		c.Window = source.DefaultWindow
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	seen := make(map[string]struct{}, len(c.Sources))
	for _, desc := range c.Sources {
		if err := desc.Validate(); err != nil {
			return err
		}
		if _, dup := seen[desc.Name]; dup {
			return fmt.Errorf("duplicate source name '%s'", desc.Name)
		}
		seen[desc.Name] = struct{}{}
	}
	return nil
}
