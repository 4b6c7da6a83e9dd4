package main

import (
	"errors"
	"log/slog"
	"os"

	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "modelcheck",
	Short: "Validate formulas and references of model build configurations",
	Long: `modelcheck checks the building blocks of a simulation model build
configuration before it is handed to a model builder. Every explicit formula
is parsed against its declared object path aliases and every molecule applied
in an event group must be defined in the molecule building block.

The model is never built or simulated.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var failed *apperrors.ValidationFailedError
		if errors.As(err, &failed) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.modelcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	system.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(2)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".modelcheck")
	}

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		slog.Error("failed to read config file", "file", cfgFile, "error", err)
		os.Exit(2)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
