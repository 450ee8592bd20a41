// Package config loads rarreg settings from defaults, an optional YAML file
// and RARREG_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/rarreg-keygen/pkg/rarreg"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "RARREG"

// Config is the merged CLI configuration.
type Config struct {
	Username    string       `yaml:"username" split_words:"true"`
	LicenseType string       `yaml:"licenseType" split_words:"true"`
	Output      string       `yaml:"output" split_words:"true"`
	Layout      LayoutConfig `yaml:"layout" split_words:"true"`
	Log         LogConfig    `yaml:"log" split_words:"true"`
}

// LayoutConfig mirrors rarreg.Layout.
type LayoutConfig struct {
	PublicKeyWidth int `yaml:"publicKeyWidth" split_words:"true"`
	SignatureWidth int `yaml:"signatureWidth" split_words:"true"`
	ChecksumWidth  int `yaml:"checksumWidth" split_words:"true"`
	RecordLength   int `yaml:"recordLength" split_words:"true"`
	LineWidth      int `yaml:"lineWidth" split_words:"true"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	l := rarreg.DefaultLayout()
	return Config{
		Username:    rarreg.DefaultUsername,
		LicenseType: rarreg.DefaultLicenseType,
		Output:      rarreg.DefaultFileName,
		Layout: LayoutConfig{
			PublicKeyWidth: l.PublicKeyWidth,
			SignatureWidth: l.SignatureWidth,
			ChecksumWidth:  l.ChecksumWidth,
			RecordLength:   l.RecordLength,
			LineWidth:      l.LineWidth,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load merges Default, the YAML file at path (skipped when path is empty)
// and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// License returns the header values.
func (c Config) License() rarreg.License {
	return rarreg.License{
		Username:    c.Username,
		LicenseType: c.LicenseType,
	}
}

// RecordLayout returns the layout as a rarreg.Layout.
func (c Config) RecordLayout() rarreg.Layout {
	return rarreg.Layout{
		PublicKeyWidth: c.Layout.PublicKeyWidth,
		SignatureWidth: c.Layout.SignatureWidth,
		ChecksumWidth:  c.Layout.ChecksumWidth,
		RecordLength:   c.Layout.RecordLength,
		LineWidth:      c.Layout.LineWidth,
	}
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	var errs []error
	if err := c.License().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.RecordLayout().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	return errors.Join(errs...)
}
