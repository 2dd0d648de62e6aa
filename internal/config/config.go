// SPDX-License-Identifier: MIT

// Package config loads lvroute settings from a YAML file with LVROUTE_*
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/logistics"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVROUTE_"

var configValidate = validator.New()

// Config holds all lvroute settings.
type Config struct {
	// Network is a YAML network document; empty selects the built-in Malaysian network.
	Network string `yaml:"network"`

	// Orders is the customer CSV used by plan commands.
	Orders string `yaml:"orders"`

	Origin      string `yaml:"origin" validate:"required"`
	FallbackHub string `yaml:"fallback_hub"`
	Criterion   string `yaml:"criterion" validate:"required,oneof=cost time"`
	LogLevel    string `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error"`
	LogFormat   string `yaml:"log_format" validate:"required,oneof=text json"`
	Workers     int    `yaml:"workers" validate:"min=1,max=64"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Origin:      builder.MalaysiaHub,
		FallbackHub: logistics.DefaultHub,
		Criterion:   string(logistics.Cost),
		LogLevel:    "info",
		LogFormat:   "text",
		Workers:     4,
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), then applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Network = envOrDefault("NETWORK", c.Network)
	c.Orders = envOrDefault("ORDERS", c.Orders)
	c.Origin = envOrDefault("ORIGIN", c.Origin)
	c.FallbackHub = envOrDefault("FALLBACK_HUB", c.FallbackHub)
	c.Criterion = envOrDefault("CRITERION", c.Criterion)
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("LOG_FORMAT", c.LogFormat)

	if v := os.Getenv(EnvPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS must be an integer: %w", EnvPrefix, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q (value %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value())
		}
		return err
	}

	return nil
}

// ParsedCriterion returns Criterion as a logistics.Criterion.
func (c *Config) ParsedCriterion() (logistics.Criterion, error) {
	return logistics.ParseCriterion(c.Criterion)
}

// Fallback returns the fallback policy; an empty hub disables rerouting.
func (c *Config) Fallback() logistics.FallbackPolicy {
	return logistics.FallbackPolicy{Hub: c.FallbackHub}
}

// Logger builds a logrus logger writing to out at the configured level and format.
func (c *Config) Logger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}

	return fallback
}
