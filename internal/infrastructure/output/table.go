package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

var separator = strings.Repeat("─", 80)

// TableFormatter formats validation results as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the validation run as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(resp *dto.ValidateResponse) error {
	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))
	fmt.Fprintf(f.writer, "Run: %s\n", resp.RunID)
	if !resp.Metadata.ProcessedAt.IsZero() {
		fmt.Fprintf(f.writer, "Validated: %s\n", resp.Metadata.ProcessedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(f.writer, "Duration: %s\n", resp.Metadata.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(resp.Reports) == 0 {
		fmt.Fprintln(f.writer, "No configurations validated.")
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Configurations:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))

	for _, report := range resp.Reports {
		f.formatReport(report)
	}

	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))
	fmt.Fprintln(f.writer)

	f.formatSummary(resp.Summary)

	return nil
}

// formatReport formats a single configuration report.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatReport(report dto.ConfigurationReport) {
	symbol, color := f.getStateInfo(report.State())

	title := report.Path
	if report.Name != "" {
		title = fmt.Sprintf("%s (%s v%s)", report.Path, report.Name, report.Version)
	}
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize(symbol, color), f.colorize(title, color))

	if report.LoadError != nil {
		fmt.Fprintf(f.writer, "  %s: %s\n", f.colorize("Load Error", colorRed), report.LoadError)
		fmt.Fprintln(f.writer)
		return
	}

	fmt.Fprintf(f.writer, "  State: %s\n", f.colorize(strings.ToUpper(string(report.State())), color))
	fmt.Fprintf(f.writer, "  Formulas: %d\n", report.FormulaCount)
	fmt.Fprintf(f.writer, "  Duration: %s\n", report.Duration.Round(time.Millisecond))

	messages := report.Messages()
	if len(messages) > 0 {
		fmt.Fprintln(f.writer, "  Messages:")
		for i, msg := range messages {
			f.formatMessage(msg, i+1)
		}
	}

	fmt.Fprintln(f.writer)
}

// formatMessage formats a single validation message.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatMessage(msg entities.ValidationMessage, index int) {
	symbol, color := f.getNotificationInfo(msg.Type)

	fmt.Fprintf(f.writer, "    %d. %s %s", index, f.colorize(symbol, color), f.colorize(strings.ToUpper(msg.Type.String()), color))
	if msg.Code != "" {
		fmt.Fprintf(f.writer, " (%s)", msg.Code)
	}
	fmt.Fprintln(f.writer)

	if block := msg.BuildingBlockName(); block != "" {
		fmt.Fprintf(f.writer, "       Building Block: %s\n", f.colorize(block, colorCyan))
	}
	if subject := msg.SubjectName(); subject != "" {
		fmt.Fprintf(f.writer, "       Subject: %s [%s]\n", f.colorize(subject, colorBlue), msg.SubjectType())
	}
	fmt.Fprintf(f.writer, "       %s\n", msg.Text)
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary dto.ValidationSummary) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))

	fmt.Fprintf(f.writer, "Configurations: %d total\n", summary.Total)
	fmt.Fprintf(f.writer, "  %s Valid:         %d\n", f.colorize("✓", colorGreen), summary.Valid)
	fmt.Fprintf(f.writer, "  %s With warnings: %d\n", f.colorize("⚠", colorYellow), summary.ValidWithWarnings)
	fmt.Fprintf(f.writer, "  %s Invalid:       %d\n", f.colorize("✗", colorRed), summary.Invalid)
	if summary.LoadFailures > 0 {
		fmt.Fprintf(f.writer, "    of which failed to load: %d\n", summary.LoadFailures)
	}
	fmt.Fprintln(f.writer)

	fmt.Fprintf(f.writer, "Messages: %d errors, %d warnings\n", summary.Errors, summary.Warnings)

	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))
}

// FormatOrigins writes the value origin report as a table.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatOrigins(resp *dto.OriginReportResponse) error {
	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))
	fmt.Fprintf(f.writer, "Configuration: %s (v%s)\n", f.colorize(resp.Name, colorBold), resp.Version)
	fmt.Fprintf(f.writer, "Path: %s\n", resp.Path)
	fmt.Fprintln(f.writer)

	if len(resp.Entries) == 0 {
		fmt.Fprintln(f.writer, "No value origins defined.")
	} else {
		fmt.Fprintln(f.writer, f.colorize("Value Origins:", colorBold))
		fmt.Fprintln(f.writer, f.colorize(separator, colorGray))

		for i, entry := range resp.Entries {
			display := entry.Origin.Display()
			if display == "" {
				display = "(no description)"
			}
			fmt.Fprintf(f.writer, "%d. %s %s\n", i+1, f.colorize(entry.Key(), colorCyan), display)
			for _, usage := range entry.Usages {
				owner := usage.BuildingBlock
				if usage.Owner != "" {
					owner += " / " + usage.Owner
				}
				fmt.Fprintf(f.writer, "     - %s: %s\n", owner, f.colorize(usage.Quantity, colorBlue))
			}
		}
	}

	fmt.Fprintln(f.writer, f.colorize(separator, colorGray))
	fmt.Fprintf(f.writer, "Distinct origins: %d\n", len(resp.Entries))
	fmt.Fprintf(f.writer, "%s Values without origin: %d\n", f.colorize("⊘", colorGray), resp.UndefinedCount)

	return nil
}

// getStateInfo returns a symbol and color for the given validation state.
func (f *TableFormatter) getStateInfo(state entities.ValidationState) (string, string) {
	switch state {
	case entities.StateValid:
		return "✓", colorGreen
	case entities.StateValidWithWarnings:
		return "⚠", colorYellow
	case entities.StateInvalid:
		return "✗", colorRed
	default:
		return "?", colorReset
	}
}

// getNotificationInfo returns a symbol and color for the given notification type.
func (f *TableFormatter) getNotificationInfo(n values.NotificationType) (string, string) {
	switch {
	case n.Equals(values.NotifyError):
		return "✗", colorRed
	case n.Equals(values.NotifyWarning):
		return "⚠", colorYellow
	case n.Equals(values.NotifyInfo):
		return "ℹ", colorBlue
	default:
		return "·", colorGray
	}
}
