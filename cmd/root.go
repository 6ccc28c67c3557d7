package cmd

import (
	"fmt"
	"os"

	"github.com/ariebrainware/inet-clinic/config"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the clinic CLI. Running it without a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "inet-clinic",
		Short:         "INET Clinic REST API over doctors, patients and treatments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file loaded before reading the environment")

	serveCmd := newServeCommand(&envFile)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd, newMigrateCommand(&envFile))
	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and sets up the global logger from it.
func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	util.InitLogger(cfg.AppName, cfg.LogLevel, cfg.LogPretty, os.Stdout)
	return cfg, nil
}
