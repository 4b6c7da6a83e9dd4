package output

import (
	"bytes"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// FuzzSARIFGeneration fuzzes SARIF output generation
func FuzzSARIFGeneration(f *testing.F) {
	seeds := []string{
		"test output",
		"",
		`Formula "x" in building block "y" is not valid: <>&`,
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, message string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("PANIC on input %q: %v", message, r)
			}
		}()

		result := entities.NewValidationResult()
		result.AddMessage(values.NotifyError, entities.NewExplicitFormula(message, message), message, nil)

		resp := &dto.ValidateResponse{Reports: []dto.ConfigurationReport{{Path: "config.yaml", Result: result}}}
		resp.Summary = dto.Summarize(resp.Reports)

		buf := &bytes.Buffer{}
		_ = NewSARIFFormatter(buf, "0.0.0").Format(resp)
	})
}
