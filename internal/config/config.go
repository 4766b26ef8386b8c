// Package config loads formguard settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/guard"
)

// ErrInvalid wraps every validation failure reported by Load and Parse.
var ErrInvalid = errors.New("config: invalid")

// Config holds the guard and prompt settings.
type Config struct {
	Message         string                     `yaml:"message"`
	MissingControls guard.MissingControlPolicy `yaml:"missing_controls"`
	Interactive     bool                       `yaml:"interactive"`
	Ratings         []string                   `yaml:"ratings"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Message:         guard.DefaultMessage,
		MissingControls: guard.MissingControlFail,
		Interactive:     true,
		Ratings:         []string{"1", "2", "3", "4", "5"},
	}
}

// Load reads a YAML file. An empty path returns Default.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.normalise(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() error {
	c.Message = strings.TrimSpace(c.Message)
	if c.Message == "" {
		c.Message = guard.DefaultMessage
	}

	switch policy := guard.MissingControlPolicy(strings.ToLower(strings.TrimSpace(string(c.MissingControls)))); policy {
	case "":
		c.MissingControls = guard.MissingControlFail
	case guard.MissingControlFail, guard.MissingControlAsEmpty:
		c.MissingControls = policy
	default:
		return fmt.Errorf("%w: missing_controls must be %q or %q, got %q",
			ErrInvalid, guard.MissingControlFail, guard.MissingControlAsEmpty, c.MissingControls)
	}

	seen := make(map[string]struct{}, len(c.Ratings))
	ratings := make([]string, 0, len(c.Ratings))
	for _, rating := range c.Ratings {
		if rating == "" {
			return fmt.Errorf("%w: ratings must not contain an empty value", ErrInvalid)
		}
		if _, dup := seen[rating]; dup {
			return fmt.Errorf("%w: duplicate rating %q", ErrInvalid, rating)
		}
		seen[rating] = struct{}{}
		ratings = append(ratings, rating)
	}
	if len(ratings) == 0 {
		return fmt.Errorf("%w: at least one rating is required", ErrInvalid)
	}
	c.Ratings = ratings
	return nil
}

// GuardOptions converts the settings into guard options, followed by extra.
func (c Config) GuardOptions(extra ...guard.Option) []guard.Option {
	opts := []guard.Option{
		guard.WithMessage(c.Message),
		guard.WithMissingControlPolicy(c.MissingControls),
	}
	return append(opts, extra...)
}
