package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/simkit-dev/modelcheck/internal/infrastructure/container"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Config    *system.Config
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Handles common setup: config decoding, flag overrides, dependency injection.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "origins",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        _, err := ctx.Container.OriginReportUseCase().Execute(ctx.Context, req)
//	        return err
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), viper.GetViper())
		if err != nil {
			return err
		}

		logger := slog.Default()

		c, err := container.New(container.Options{
			Logger:       logger,
			SystemConfig: cfg,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Config:    c.SystemConfig(),
			Logger:    logger,
			Context:   ctx,
		}, cmd, args)
	}
}

// resolveConfig decodes the tool configuration, applies explicitly set flags
// and validates the result.
func resolveConfig(flags *pflag.FlagSet, v *viper.Viper) (*system.Config, error) {
	cfg, err := system.Load(v)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides lets explicitly set command flags win over the config
// file and environment.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *system.Config) {
	if flags.Changed("dialect") {
		cfg.Formula.Dialect, _ = flags.GetString("dialect")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.Output.Color = !noColor
	}
	if flags.Changed("max-concurrency") {
		cfg.Validation.MaxConcurrency, _ = flags.GetInt("max-concurrency")
	}
	if flags.Changed("fail-on-warning") {
		cfg.Validation.FailOnWarning, _ = flags.GetBool("fail-on-warning")
	}
}
