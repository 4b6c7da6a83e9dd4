package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/output"
	"github.com/spf13/cobra"
)

var originsOpts OutputOptions

// originsCmd lists the distinct value origins of a configuration.
var originsCmd = &cobra.Command{
	Use:   "origins <config.yaml>",
	Short: "List the distinct value origins of a build configuration",
	Long: `Collect the value origin of every parameter and start value in a build
configuration and list each distinct origin once, together with the values
that use it. Two origins are the same when their source, determination method
and description match.`,
	Args: cobra.ExactArgs(1),
	RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		return runOrigins(ctx, cmd.OutOrStdout(), args[0], cmd.Flags().Changed("format"))
	}),
}

func init() {
	rootCmd.AddCommand(originsCmd)

	originsOpts.RegisterFlags(originsCmd, output.NewFormatterFactory().SupportedOriginFormats())
}

// runOrigins renders the origin report. A configured output format that
// cannot render origins falls back to table unless it was given explicitly.
func runOrigins(ctx *CommandContext, stdout io.Writer, path string, explicitFormat bool) error {
	supported := output.NewFormatterFactory().SupportedOriginFormats()
	format := ctx.Config.Output.Format
	if !explicitFormat && !slices.Contains(supported, format) {
		format = "table"
	}
	if err := validateFormat(format, supported); err != nil {
		return err
	}

	resp, err := ctx.Container.OriginReportUseCase().Execute(ctx.Context, dto.OriginReportRequest{Path: path})
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(originsOpts.OutFile, stdout)
	if err != nil {
		return err
	}
	defer closeOutput()

	formatter, err := ctx.Container.FormatterFactory().CreateOriginFormatter(format, writer, ports.FormatterOptions{
		Indent: true,
		Color:  useColor(ctx.Config.Output.Color, writer),
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatOrigins(resp); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
