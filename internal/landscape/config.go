// Package landscape composes the opinion-landscape engine: per-cluster
// boundary geometry fanned out across clusters, plus one coalition analysis
// over the full statement matrix, returned together keyed for the rendering
// and reporting layers.
package landscape

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// Config holds the tunable parameters of the composer. All fields are
// validated at construction and immutable afterwards, so a configured
// Composer is safe for concurrent use.
type Config struct {
	// Labels are display names for groups, indexed by group ID. Groups
	// beyond the slice, or with an empty entry, fall back to "Group {id+1}".
	Labels []string `yaml:"labels" validate:"max=64,dive,max=100"`

	// MinAlignment is the alignment-percentage floor used by the
	// StrongCoalitions reporting helper.
	//
	// Range: 0 to 100 (inclusive)
	// Default: 50
	MinAlignment int `yaml:"min_alignment" validate:"min=0,max=100"`

	// MaxConcurrency bounds the per-cluster geometry fan-out.
	// Zero means one worker per available CPU.
	MaxConcurrency int `yaml:"max_concurrency" validate:"min=0,max=256"`
}

// DefaultConfig returns a Config with production-ready defaults:
// no preset labels, a 50 percent strong-coalition floor, and a fan-out
// bounded by the available CPUs.
func DefaultConfig() Config {
	return Config{
		MinAlignment:   50,
		MaxConcurrency: 0,
	}
}

// LoadConfig reads a YAML config file, strictly rejecting unknown fields,
// and validates the result. Fields absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", cleanPath, err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict mode - fail on unknown fields.
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", cleanPath, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
