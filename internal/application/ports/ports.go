// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"io"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
)

// ConfigurationLoader loads build configurations from storage.
type ConfigurationLoader interface {
	Load(path string) (*entities.BuildConfiguration, error)
}

// ConfigurationValidator validates a loaded build configuration.
type ConfigurationValidator interface {
	Validate(cfg *entities.BuildConfiguration) *entities.ValidationResult
}

// OutputFormatter formats validation results.
type OutputFormatter interface {
	Format(resp *dto.ValidateResponse) error
}

// OriginFormatter formats value origin reports.
type OriginFormatter interface {
	FormatOrigins(resp *dto.OriginReportResponse) error
}

// FormatterOptions contains options for output formatters.
type FormatterOptions struct {
	// Indent enables pretty-printing where the format supports it
	Indent bool

	// Color enables ANSI colors in table output
	Color bool

	// ToolVersion is reported by formats that record the producing tool
	ToolVersion string
}

// OutputFormatterFactory creates output formatters.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	CreateOriginFormatter(format string, writer io.Writer, options FormatterOptions) (OriginFormatter, error)
	SupportedFormats() []string
}
