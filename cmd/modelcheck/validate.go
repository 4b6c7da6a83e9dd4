package main

import (
	"fmt"
	"io"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/output"
	"github.com/simkit-dev/modelcheck/internal/version"
	"github.com/spf13/cobra"
)

var validateOpts struct {
	OutputOptions
	Dialect        string
	MaxConcurrency int
	FailOnWarning  bool
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>...",
	Short: "Validate formulas and molecule references of build configurations",
	Long: `Load one or more build configurations and validate them.

Every explicit formula of every building block is parsed against its declared
object path aliases. Every application inside the event groups must reference
a molecule defined in the molecule building block.

Files are validated in parallel; reports keep the order of the arguments.
The command exits with status 1 when any configuration is invalid.`,
	Example: `  modelcheck validate model.yaml
  modelcheck validate a.yaml b.yaml --format sarif -o results.sarif
  modelcheck validate model.yaml --dialect hcl --fail-on-warning`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		return runValidate(ctx, cmd.OutOrStdout(), args)
	}),
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateOpts.RegisterFlags(validateCmd, output.NewFormatterFactory().SupportedFormats())
	validateCmd.Flags().StringVar(&validateOpts.Dialect, "dialect", "", "Formula dialect: expr, hcl (default from config formula.dialect)")
	validateCmd.Flags().IntVar(&validateOpts.MaxConcurrency, "max-concurrency", 0, "Maximum files validated in parallel (0 = unbounded)")
	validateCmd.Flags().BoolVar(&validateOpts.FailOnWarning, "fail-on-warning", false, "Exit non-zero when a configuration has warnings")
}

// runValidate implements the core logic for the validate command.
func runValidate(ctx *CommandContext, stdout io.Writer, paths []string) error {
	cfg := ctx.Config
	factory := ctx.Container.FormatterFactory()

	if err := validateFormat(cfg.Output.Format, factory.SupportedFormats()); err != nil {
		return err
	}

	resp, err := ctx.Container.ValidateConfigurationUseCase().Execute(ctx.Context, dto.ValidateRequest{
		Paths: paths,
		Options: dto.ValidateOptions{
			MaxConcurrency: cfg.Validation.MaxConcurrency,
			FailOnWarning:  cfg.Validation.FailOnWarning,
		},
	})
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(validateOpts.OutFile, stdout)
	if err != nil {
		return err
	}
	defer closeOutput()

	formatter, err := factory.Create(cfg.Output.Format, writer, ports.FormatterOptions{
		Indent:      true,
		Color:       useColor(cfg.Output.Color, writer),
		ToolVersion: version.Get().Version,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(resp); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Return non-zero exit code if any configuration failed
	if resp.Failed(cfg.Validation.FailOnWarning) {
		failed := resp.Summary.Invalid
		if cfg.Validation.FailOnWarning {
			failed += resp.Summary.ValidWithWarnings
		}
		return apperrors.NewValidationFailedError(failed, resp.Summary.Total)
	}

	return nil
}
