// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/logistics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Origin != "Port Klang" {
		t.Errorf("expected default origin Port Klang, got %s", cfg.Origin)
	}
	if cfg.FallbackHub != logistics.DefaultHub {
		t.Errorf("expected default fallback hub %s, got %s", logistics.DefaultHub, cfg.FallbackHub)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected default workers 4, got %d", cfg.Workers)
	}
	c, err := cfg.ParsedCriterion()
	if err != nil || c != logistics.Cost {
		t.Errorf("expected cost criterion, got %q (%v)", c, err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
network: central.yaml
orders: customers.csv
criterion: time
fallback_hub: ""
workers: 8
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Network != "central.yaml" || cfg.Orders != "customers.csv" {
		t.Errorf("unexpected paths %q %q", cfg.Network, cfg.Orders)
	}
	if cfg.Criterion != "time" || cfg.Workers != 8 {
		t.Errorf("unexpected criterion/workers %q/%d", cfg.Criterion, cfg.Workers)
	}
	if !cfg.Fallback().Disabled() {
		t.Errorf("expected empty fallback_hub to disable rerouting")
	}
	if cfg.Origin != "Port Klang" {
		t.Errorf("expected origin default to survive, got %s", cfg.Origin)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	if _, err := config.Load(writeConfig(t, "")); err != nil {
		t.Fatalf("expected empty file to keep defaults, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "criterion: time\n")
	t.Setenv("LVROUTE_CRITERION", "cost")
	t.Setenv("LVROUTE_ORIGIN", "Kuala Lumpur")
	t.Setenv("LVROUTE_WORKERS", "2")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Criterion != "cost" || cfg.Origin != "Kuala Lumpur" || cfg.Workers != 2 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		body string
		env  map[string]string
		want string
	}{
		"unknown key":      {body: "colour: red\n", want: "field colour not found"},
		"bad criterion":    {body: "criterion: distance\n", want: "config validation: criterion"},
		"zero workers":     {body: "workers: 0\n", want: "config validation: workers"},
		"bad log level":    {body: "log_level: loud\n", want: "config validation: loglevel"},
		"bad log format":   {body: "log_format: xml\n", want: "config validation: logformat"},
		"blank origin":     {body: "origin: \"\"\n", want: "config validation: origin"},
		"non-int workers":  {env: map[string]string{"LVROUTE_WORKERS": "many"}, want: "LVROUTE_WORKERS must be an integer"},
		"too many workers": {env: map[string]string{"LVROUTE_WORKERS": "65"}, want: "config validation: workers"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"

	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}

	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
