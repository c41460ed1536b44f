// Package config loads and validates the lightbox YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/phanxgames/lightbox"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: LIGHTBOX_VIEWER__ZOOM_MAX -> viewer.zoom_max.
const EnvPrefix = "LIGHTBOX_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LIGHTBOX_*). A missing file is not an
// error; defaults are used instead.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps LIGHTBOX_LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	v := c.Viewer
	if v.ZoomMin != lightbox.DefaultZoomMin {
		return fmt.Errorf("viewer.zoom_min (%g) must be %g", v.ZoomMin, lightbox.DefaultZoomMin)
	}
	if v.ZoomMax < v.ZoomMin {
		return fmt.Errorf("viewer.zoom_max (%g) must not be below zoom_min (%g)", v.ZoomMax, v.ZoomMin)
	}
	if v.ZoomStep <= 0 {
		return fmt.Errorf("viewer.zoom_step must be positive")
	}
	if v.ZoomEpsilon <= 0 {
		return fmt.Errorf("viewer.zoom_epsilon must be positive")
	}
	if v.SwipeThreshold <= 0 {
		return fmt.Errorf("viewer.swipe_threshold must be positive")
	}
	if v.WheelLinePixels <= 0 {
		return fmt.Errorf("viewer.wheel_line_pixels must be positive")
	}
	if v.TransitionMS < 0 {
		return fmt.Errorf("viewer.transition_ms must be non-negative")
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	if len(c.Gallery.Patterns) == 0 {
		return fmt.Errorf("gallery.patterns must not be empty")
	}
	for _, p := range c.Gallery.Patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid gallery pattern %q", p)
		}
	}

	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of trace, debug, info, warn, error, disabled", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	return nil
}
