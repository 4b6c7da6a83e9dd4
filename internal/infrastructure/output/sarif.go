package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/simkit-dev/modelcheck/internal/application/dto"
)

// SARIFFormatter formats validation results as SARIF 2.1.0 JSON.
// Message codes map to SARIF rules and messages to results located in the
// configuration file they were found in.
//
// Usage:
//
//	formatter := output.NewSARIFFormatter(os.Stdout, version.Version)
//	if err := formatter.Format(resp); err != nil {
//	    log.Fatal(err)
//	}
type SARIFFormatter struct {
	writer      io.Writer
	toolVersion string
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer, toolVersion string) *SARIFFormatter {
	return &SARIFFormatter{
		writer:      writer,
		toolVersion: toolVersion,
	}
}

// Format writes the validation run as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(resp *dto.ValidateResponse) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("modelcheck", "https://github.com/simkit-dev/modelcheck")
	if f.toolVersion != "" {
		run.Tool.Driver.Version = ptrString(f.toolVersion)
	}
	run.Tool.Driver.Organization = ptrString("simkit-dev")

	mapper := newSARIFMapper(resp)
	mapper.mapToRun(run)

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func ptrString(s string) *string {
	return &s
}
