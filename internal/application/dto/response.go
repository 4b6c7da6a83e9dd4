package dto

import (
	"time"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/services"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// ValidateResponse contains the result of validating one or more configurations.
type ValidateResponse struct {
	// RunID identifies this validation run
	RunID values.RunID

	// Reports holds one report per requested path, in request order
	Reports []ConfigurationReport

	// Summary aggregates all reports
	Summary ValidationSummary

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// Failed reports whether the run should exit non-zero.
func (r *ValidateResponse) Failed(failOnWarning bool) bool {
	if r.Summary.Invalid > 0 {
		return true
	}
	return failOnWarning && r.Summary.ValidWithWarnings > 0
}

// ConfigurationReport is the outcome for one configuration file.
type ConfigurationReport struct {
	// Path of the configuration file
	Path string

	// Name and Version come from the configuration metadata
	Name    string
	Version string

	// Result holds the validation messages; nil when loading failed
	Result *entities.ValidationResult

	// LoadError is set when the file could not be loaded
	LoadError error

	// FormulaCount is the number of formulas that were inspected
	FormulaCount int

	// Duration is how long loading and validating took
	Duration time.Duration
}

// State returns the validation state; a file that failed to load is invalid.
func (r ConfigurationReport) State() entities.ValidationState {
	if r.LoadError != nil || r.Result == nil {
		return entities.StateInvalid
	}
	return r.Result.State()
}

// Messages returns the validation messages, or nil when loading failed.
func (r ConfigurationReport) Messages() []entities.ValidationMessage {
	if r.Result == nil {
		return nil
	}
	return r.Result.Messages()
}

// ValidationSummary aggregates the reports of a run.
type ValidationSummary struct {
	Total             int
	Valid             int
	ValidWithWarnings int
	Invalid           int
	LoadFailures      int
	Errors            int
	Warnings          int
}

// Summarize builds a summary from reports.
func Summarize(reports []ConfigurationReport) ValidationSummary {
	s := ValidationSummary{Total: len(reports)}
	for _, r := range reports {
		switch r.State() {
		case entities.StateValid:
			s.Valid++
		case entities.StateValidWithWarnings:
			s.ValidWithWarnings++
		case entities.StateInvalid:
			s.Invalid++
		}

		if r.LoadError != nil {
			s.LoadFailures++
			s.Errors++
			continue
		}
		if r.Result != nil {
			s.Errors += r.Result.Count(values.NotifyError)
			s.Warnings += r.Result.Count(values.NotifyWarning)
		}
	}
	return s
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}

// OriginReportResponse lists the distinct value origins of a configuration.
type OriginReportResponse struct {
	Path    string
	Name    string
	Version string

	// Entries are ordered by identity key
	Entries []services.ValueOriginEntry

	// UndefinedCount is the number of values without any origin
	UndefinedCount int

	Metadata ResponseMetadata
}
