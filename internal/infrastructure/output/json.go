package output

import (
	"encoding/json"
	"io"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
)

// JSONFormatter formats validation results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the validation run as JSON.
func (f *JSONFormatter) Format(resp *dto.ValidateResponse) error {
	return f.write(NewValidationView(resp))
}

// FormatOrigins writes the value origin report as JSON.
func (f *JSONFormatter) FormatOrigins(resp *dto.OriginReportResponse) error {
	return f.write(NewOriginReportView(resp))
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	if _, err = f.writer.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
