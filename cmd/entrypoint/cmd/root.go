package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sashavipro/Swipe/internal/bootstrap"
	"github.com/sashavipro/Swipe/internal/config"
	"github.com/sashavipro/Swipe/pkg/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "entrypoint [flags] -- <program> [args...]",
	Short: "Startup sequencer for the Swipe API container",
	Long: `entrypoint is the first process in the Swipe API container. It optionally
brings the database schema up to date, then replaces itself with the service
command given on its command line, so the container runtime talks to the
service directly.

Migrations run only when RUN_MIGRATIONS is exactly "true". A failed
migration aborts startup; the service never starts against a broken schema.

Example:
  entrypoint -- uvicorn src.main:app --host 0.0.0.0 --port 8000
  RUN_MIGRATIONS=true entrypoint -- uvicorn src.main:app`,
	Args: cobra.ArbitraryArgs,
	RunE: runBootstrap,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (yaml); env vars win")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default from LOG_FORMAT)")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	config.BindEnv(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", cfgFile, err)
		}
	}
}

// loadConfig resolves the effective configuration: flags over env over file.
func loadConfig() config.Config {
	cfg := config.Load(viper.GetViper())
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg
}

func newLogger(cfg config.Config) *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat == "json")
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := newLogger(cfg)

	// Everything after the entrypoint's own flags is the service command,
	// passed verbatim. No shell expansion happens here.
	seq := bootstrap.New(cfg, log)
	if err := seq.Run(cmd.Context(), args); err != nil {
		log.Error("Bootstrap failed", map[string]interface{}{
			"error":     err.Error(),
			"exit_code": bootstrap.ExitCode(err),
		})
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return err
	}
	return nil
}
