// Package config loads the generation setup from YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/ui"
)

const (
	// MinDimension is the smallest accepted map side.
	MinDimension = 8
	// MaxDimension is the largest accepted map side.
	MaxDimension = 200
)

// ErrInvalidDimension is returned for a map size outside
// [MinDimension, MaxDimension].
var ErrInvalidDimension = errors.New("invalid map dimension")

// Config holds the generation setup.
type Config struct {
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	DelayMS   int               `yaml:"delay_ms"`
	Seed      int64             `yaml:"seed"`      // 0 picks a seed from the clock
	Algorithm string            `yaml:"algorithm"` // Algorithm id, e.g. "bsp"
	LogLevel  string            `yaml:"log_level"`
	Options   map[string]int    `yaml:"options"` // Option overrides by display name
	Theme     map[string]string `yaml:"theme"`   // Hex colours for wall, floor and exit
}

// Validate checks the map size and the algorithm id.
func (c Config) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidDimension, c.Width, MinDimension, MaxDimension)
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidDimension, c.Height, MinDimension, MaxDimension)
	}
	if _, err := algorithm.Parse(c.Algorithm); err != nil {
		return err
	}
	return nil
}

// UITheme resolves the colour overrides against the default palette.
func (c Config) UITheme() (ui.Theme, error) {
	return ui.ParseTheme(c.Theme)
}

// Session builds a generation session from the config. Option overrides are
// clamped to each option's range.
func (c Config) Session() (*algorithm.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	alg, _ := algorithm.Parse(c.Algorithm)

	s := algorithm.NewSession()
	s.Width = c.Width
	s.Height = c.Height
	if c.DelayMS > 0 {
		s.Delay = time.Duration(c.DelayMS) * time.Millisecond
	}
	s.Select(alg)
	for name, value := range c.Options {
		if err := s.SetByName(name, value); err != nil {
			return nil, err
		}
	}
	return s, nil
}
