package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/simkit-dev/modelcheck/internal/application/dto"
)

// YAMLFormatter formats validation results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the validation run as YAML.
func (f *YAMLFormatter) Format(resp *dto.ValidateResponse) error {
	return f.encode(NewValidationView(resp))
}

// FormatOrigins writes the value origin report as YAML.
func (f *YAMLFormatter) FormatOrigins(resp *dto.OriginReportResponse) error {
	return f.encode(NewOriginReportView(resp))
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2), yaml.IndentSequence(true))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
