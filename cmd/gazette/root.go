package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thebtf/gazette/internal/config"
)

var (
	configPath string
	debug      bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gazette",
	Short: "Assemble a personal magazine from saved articles and highlights",
	Long: `Gazette keeps short content records in a JSON file and assembles them
into a magazine document, grouping topically related pieces into named
sections.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return cfg.EnsureDirs()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(home, ".gazette", "config.yaml"), "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
