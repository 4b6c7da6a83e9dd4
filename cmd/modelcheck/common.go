package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// OutputOptions contains the output flags shared by reporting commands.
type OutputOptions struct {
	Format  string
	OutFile string
	NoColor bool
}

// RegisterFlags adds the output flags to a cobra command.
func (opts *OutputOptions) RegisterFlags(cmd *cobra.Command, formats []string) {
	cmd.Flags().StringVar(&opts.Format, "format", "table",
		fmt.Sprintf("Output format: %v (default from config output.format)", formats))
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable ANSI colors in table output")
}

// validateFormat checks format against the supported list.
func validateFormat(format string, supported []string) error {
	if !slices.Contains(supported, format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", format, supported)
	}
	return nil
}

// openOutput returns the writer for outFile, or stdout when it is empty.
// The returned close function is always safe to call.
func openOutput(outFile string, stdout io.Writer) (io.Writer, func(), error) {
	if outFile == "" {
		return stdout, func() {}, nil
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(outFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	slog.Debug("writing output", "file", outFile)

	return file, func() {
		_ = file.Close() // Best-effort cleanup
	}, nil
}

// useColor reports whether table output to w should be colored.
func useColor(enabled bool, w io.Writer) bool {
	if !enabled {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
