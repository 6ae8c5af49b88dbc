// SPDX-License-Identifier: MIT

// Package config loads the optional YAML configuration of the sfe command.
//
// Example file:
//
//	log:
//	  level: debug
//	  json: false
//	output:
//	  format: text      # text | yaml
//	  separator: " "
//	  precision: 4
//	batch:
//	  workers: 4        # 0 = one per CPU
//
// Missing keys keep their Default() values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root of the configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// OutputConfig controls how results are rendered and saved.
type OutputConfig struct {
	Format    string `yaml:"format" validate:"oneof=text yaml yml"`
	Separator string `yaml:"separator" validate:"required"`
	Precision int    `yaml:"precision" validate:"gte=0,lte=12"`
}

// BatchConfig controls processing of several sequence files.
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Output: OutputConfig{
			Format:    "text",
			Separator: " ",
			Precision: 4,
		},
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Load reads path on top of Default() and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
