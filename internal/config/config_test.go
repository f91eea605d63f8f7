package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestMigrationsEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
		desc     string
	}{
		{"true", true, "exact literal"},
		{"", false, "empty string"},
		{"TRUE", false, "uppercase variant"},
		{"True", false, "capitalized variant"},
		{"1", false, "numeric truthy"},
		{"yes", false, "word truthy"},
		{"false", false, "explicit false"},
		{" true", false, "leading whitespace"},
		{"true ", false, "trailing whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := MigrationsEnabled(tt.value); got != tt.expected {
				t.Errorf("MigrationsEnabled(%q) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	cfg := Load(v)

	if cfg.RunMigrations {
		t.Error("RunMigrations defaulted to enabled; absence must mean disabled")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, expected text", cfg.LogFormat)
	}
}

func TestLoadFromValues(t *testing.T) {
	v := viper.New()
	v.Set("run_migrations", "true")
	v.Set("log_level", "debug")
	v.Set("log_format", "json")

	cfg := Load(v)

	if !cfg.RunMigrations {
		t.Error("RunMigrations = false, expected true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, expected json", cfg.LogFormat)
	}
}

func TestLoadAmbiguousGateValues(t *testing.T) {
	for _, value := range []string{"TRUE", "1", "yes", "on"} {
		t.Run(value, func(t *testing.T) {
			v := viper.New()
			v.Set("run_migrations", value)

			if cfg := Load(v); cfg.RunMigrations {
				t.Errorf("value %q enabled migrations; only the exact literal may", value)
			}
		})
	}
}
