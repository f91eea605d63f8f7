package config

import (
	"github.com/spf13/viper"
)

const (
	// ServicePort is the port the Swipe API listens on once started.
	// Declared for the surrounding deployment; the entrypoint never binds
	// or checks it.
	ServicePort = 8000

	// migrationsTrueLiteral is the only value that enables migrations.
	// Anything else, including "TRUE", "1" and "yes", means disabled, so
	// a typo in a manifest can never trigger a schema change.
	migrationsTrueLiteral = "true"
)

// Environment variable names read at startup.
const (
	EnvRunMigrations = "RUN_MIGRATIONS"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
)

// Config holds the resolved bootstrap configuration. It is read once at
// startup and passed into the sequencer; nothing re-reads the environment
// after this.
type Config struct {
	RunMigrations bool   `json:"run_migrations" yaml:"run_migrations"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFormat     string `json:"log_format" yaml:"log_format"`
}

// MigrationsEnabled reports whether a raw RUN_MIGRATIONS value enables the
// migration step. Exact literal match only.
func MigrationsEnabled(raw string) bool {
	return raw == migrationsTrueLiteral
}

// Load resolves the bootstrap configuration from an already-initialized
// viper instance.
func Load(v *viper.Viper) Config {
	cfg := Config{
		RunMigrations: MigrationsEnabled(v.GetString("run_migrations")),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg
}

// BindEnv registers the environment variables on a viper instance. Split
// out from Load so tests can populate viper without touching the real
// process environment.
func BindEnv(v *viper.Viper) {
	v.BindEnv("run_migrations", EnvRunMigrations)
	v.BindEnv("log_level", EnvLogLevel)
	v.BindEnv("log_format", EnvLogFormat)
}
