package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sashavipro/Swipe/internal/config"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the bootstrap configuration",
	Long:  `Commands for inspecting the configuration the entrypoint would run with.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective bootstrap configuration",
	Long: `Resolves RUN_MIGRATIONS, LOG_LEVEL and LOG_FORMAT the same way a real
startup would and prints the result. Useful when debugging why a deploy
did or did not run migrations.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVarP(&configOutput, "output", "o", "table",
		"Output format: table, json, yaml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	switch configOutput {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)

	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		return encoder.Encode(cfg)

	default: // table
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Setting", "Value", "Source")

		table.Append("run_migrations", fmt.Sprintf("%t", cfg.RunMigrations), config.EnvRunMigrations)
		table.Append("log_level", cfg.LogLevel, config.EnvLogLevel)
		table.Append("log_format", cfg.LogFormat, config.EnvLogFormat)
		table.Append("service_port", fmt.Sprintf("%d", config.ServicePort), "fixed")

		table.Render()
		return nil
	}
}
