// Package output provides formatters for validation results and value origin reports.
package output

import (
	"time"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
)

// ValidationView is the serialized shape of a validation run.
type ValidationView struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	ProcessedAt time.Time    `json:"processed_at" yaml:"processed_at"`
	DurationMs  int64        `json:"duration_ms" yaml:"duration_ms"`
	Summary     SummaryView  `json:"summary" yaml:"summary"`
	Reports     []ReportView `json:"reports" yaml:"reports"`
}

// SummaryView mirrors dto.ValidationSummary.
type SummaryView struct {
	Total             int `json:"total" yaml:"total"`
	Valid             int `json:"valid" yaml:"valid"`
	ValidWithWarnings int `json:"valid_with_warnings" yaml:"valid_with_warnings"`
	Invalid           int `json:"invalid" yaml:"invalid"`
	LoadFailures      int `json:"load_failures" yaml:"load_failures"`
	Errors            int `json:"errors" yaml:"errors"`
	Warnings          int `json:"warnings" yaml:"warnings"`
}

// ReportView is the serialized shape of one configuration report.
type ReportView struct {
	Path         string        `json:"path" yaml:"path"`
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Version      string        `json:"version,omitempty" yaml:"version,omitempty"`
	State        string        `json:"state" yaml:"state"`
	LoadError    string        `json:"load_error,omitempty" yaml:"load_error,omitempty"`
	FormulaCount int           `json:"formula_count" yaml:"formula_count"`
	DurationMs   int64         `json:"duration_ms" yaml:"duration_ms"`
	Messages     []MessageView `json:"messages" yaml:"messages"`
}

// MessageView is the serialized shape of a validation message.
type MessageView struct {
	Type          string `json:"type" yaml:"type"`
	Code          string `json:"code,omitempty" yaml:"code,omitempty"`
	BuildingBlock string `json:"building_block,omitempty" yaml:"building_block,omitempty"`
	Subject       string `json:"subject,omitempty" yaml:"subject,omitempty"`
	SubjectType   string `json:"subject_type,omitempty" yaml:"subject_type,omitempty"`
	Text          string `json:"text" yaml:"text"`
}

// OriginReportView is the serialized shape of a value origin report.
type OriginReportView struct {
	Path           string       `json:"path" yaml:"path"`
	Name           string       `json:"name,omitempty" yaml:"name,omitempty"`
	Version        string       `json:"version,omitempty" yaml:"version,omitempty"`
	UndefinedCount int          `json:"undefined_count" yaml:"undefined_count"`
	Origins        []OriginView `json:"origins" yaml:"origins"`
}

// OriginView is one distinct value origin.
type OriginView struct {
	Key         string      `json:"key" yaml:"key"`
	Display     string      `json:"display" yaml:"display"`
	Source      string      `json:"source" yaml:"source"`
	Method      string      `json:"method" yaml:"method"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	ID          *int        `json:"id,omitempty" yaml:"id,omitempty"`
	Default     bool        `json:"default,omitempty" yaml:"default,omitempty"`
	Usages      []UsageView `json:"usages" yaml:"usages"`
}

// UsageView locates one value carrying an origin.
type UsageView struct {
	BuildingBlock string `json:"building_block" yaml:"building_block"`
	Owner         string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Quantity      string `json:"quantity" yaml:"quantity"`
}

// NewValidationView converts a validation response to its serialized shape.
func NewValidationView(resp *dto.ValidateResponse) ValidationView {
	view := ValidationView{
		RunID:       resp.RunID.String(),
		ProcessedAt: resp.Metadata.ProcessedAt,
		DurationMs:  resp.Metadata.Duration.Milliseconds(),
		Summary:     SummaryView(resp.Summary),
		Reports:     make([]ReportView, 0, len(resp.Reports)),
	}

	for _, r := range resp.Reports {
		rv := ReportView{
			Path:         r.Path,
			Name:         r.Name,
			Version:      r.Version,
			State:        string(r.State()),
			FormulaCount: r.FormulaCount,
			DurationMs:   r.Duration.Milliseconds(),
			Messages:     []MessageView{},
		}
		if r.LoadError != nil {
			rv.LoadError = r.LoadError.Error()
		}
		for _, m := range r.Messages() {
			rv.Messages = append(rv.Messages, MessageView{
				Type:          m.Type.String(),
				Code:          string(m.Code),
				BuildingBlock: m.BuildingBlockName(),
				Subject:       m.SubjectName(),
				SubjectType:   m.SubjectType(),
				Text:          m.Text,
			})
		}
		view.Reports = append(view.Reports, rv)
	}

	return view
}

// NewOriginReportView converts an origin report to its serialized shape.
func NewOriginReportView(resp *dto.OriginReportResponse) OriginReportView {
	view := OriginReportView{
		Path:           resp.Path,
		Name:           resp.Name,
		Version:        resp.Version,
		UndefinedCount: resp.UndefinedCount,
		Origins:        make([]OriginView, 0, len(resp.Entries)),
	}

	for _, e := range resp.Entries {
		ov := OriginView{
			Key:         e.Key(),
			Display:     e.Origin.Display(),
			Source:      e.Origin.Source().Name,
			Method:      e.Origin.Method().Name,
			Description: e.Origin.Description(),
			ID:          e.Origin.ID,
			Default:     e.Origin.Default,
			Usages:      make([]UsageView, 0, len(e.Usages)),
		}
		for _, u := range e.Usages {
			ov.Usages = append(ov.Usages, UsageView(u))
		}
		view.Origins = append(view.Origins, ov)
	}

	return view
}
