package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

const (
	// ruleLoadError is reported for configurations that could not be loaded.
	ruleLoadError = "ConfigurationLoadError"
	// ruleGeneric is used for messages without a code.
	ruleGeneric = "ValidationMessage"
)

type sarifRule struct {
	id          string
	name        string
	description string
	level       string
}

var sarifRules = []sarifRule{
	{
		id:          string(entities.CodeFormulaParseError),
		name:        "Formula parse error",
		description: "An explicit formula expression could not be parsed with its declared object path aliases.",
		level:       "error",
	},
	{
		id:          string(entities.CodeUnresolvedMoleculeReference),
		name:        "Unresolved molecule reference",
		description: "An application in an event group names a molecule that the molecule building block does not define.",
		level:       "error",
	},
	{
		id:          ruleLoadError,
		name:        "Configuration load error",
		description: "The configuration file could not be read, failed schema validation or could not be converted.",
		level:       "error",
	},
	{
		id:          ruleGeneric,
		name:        "Validation message",
		description: "A validation message without a specific code.",
		level:       "warning",
	},
}

type sarifMapper struct {
	resp      *dto.ValidateResponse
	cwd       string
	artifacts map[string]*sarif.Artifact
	order     []string
}

func newSARIFMapper(resp *dto.ValidateResponse) *sarifMapper {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &sarifMapper{
		resp:      resp,
		cwd:       cwd,
		artifacts: make(map[string]*sarif.Artifact),
	}
}

// mapToRun populates the SARIF run with rules, results, artifacts, and invocations.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addArtifacts(run)
	m.addInvocation(run)
	m.addProperties(run)
}

func (m *sarifMapper) addRules(run *sarif.Run) {
	for _, r := range sarifRules {
		rule := sarif.NewReportingDescriptor().WithID(r.id)
		rule.WithName(r.name)

		name := r.name
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &name,
		})
		desc := r.description
		rule.WithFullDescription(&sarif.MultiformatMessageString{
			Text: &desc,
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: r.level,
		})

		run.Tool.Driver.AddRule(rule)
	}
}

func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, report := range m.resp.Reports {
		if report.LoadError != nil {
			result := sarif.NewRuleResult(ruleLoadError)
			result.Level = "error"
			result.Kind = "fail"
			result.Message = sarif.NewTextMessage(report.LoadError.Error())
			result.Locations = []*sarif.Location{m.createLocation(report.Path)}
			run.AddResult(result)
			continue
		}

		for _, msg := range report.Messages() {
			run.AddResult(m.mapMessage(report, msg))
		}
	}
}

// mapMessage converts a single validation message to a SARIF Result.
func (m *sarifMapper) mapMessage(report dto.ConfigurationReport, msg entities.ValidationMessage) *sarif.Result {
	ruleID := string(msg.Code)
	if ruleID == "" {
		ruleID = ruleGeneric
	}

	result := sarif.NewRuleResult(ruleID)
	result.Level = mapNotificationToLevel(msg.Type)
	result.Kind = mapNotificationToKind(msg.Type)
	result.Message = sarif.NewTextMessage(msg.Text)
	result.Locations = []*sarif.Location{m.createLocation(report.Path)}

	props := sarif.NewPropertyBag()
	if block := msg.BuildingBlockName(); block != "" {
		props.Add("buildingBlock", block)
	}
	if subject := msg.SubjectName(); subject != "" {
		props.Add("subject", subject)
		props.Add("subjectType", msg.SubjectType())
	}
	if report.Name != "" {
		props.Add("configuration", report.Name)
	}
	result.WithProperties(props)

	return result
}

// mapNotificationToLevel converts a notification type to a SARIF level.
func mapNotificationToLevel(n values.NotificationType) string {
	switch {
	case n.Equals(values.NotifyError):
		return "error"
	case n.Equals(values.NotifyWarning):
		return "warning"
	case n.Equals(values.NotifyInfo), n.Equals(values.NotifyDebug):
		return "note"
	default:
		return "none"
	}
}

// mapNotificationToKind converts a notification type to a SARIF kind.
func mapNotificationToKind(n values.NotificationType) string {
	if n.IsHigherOrEqual(values.NotifyWarning) {
		return "fail"
	}
	return "informational"
}

func (m *sarifMapper) createLocation(path string) *sarif.Location {
	uri := m.normalizeURI(path)
	m.registerArtifact(uri)

	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri))

	return sarif.NewLocation().WithPhysicalLocation(pLoc)
}

// normalizeURI converts a file path to a SARIF-compliant URI.
func (m *sarifMapper) normalizeURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path) // Fallback to original
	}

	if m.cwd != "" {
		if rel, err := filepath.Rel(m.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return "file://" + filepath.ToSlash(abs)
}

// registerArtifact adds a configuration file to the artifacts map (deduplicated).
func (m *sarifMapper) registerArtifact(uri string) {
	if _, exists := m.artifacts[uri]; exists {
		return
	}

	m.artifacts[uri] = sarif.NewArtifact().
		WithLocation(sarif.NewArtifactLocation().WithURI(uri))
	m.order = append(m.order, uri)
}

// addArtifacts adds collected artifacts to the run in first-seen order.
func (m *sarifMapper) addArtifacts(run *sarif.Run) {
	for _, uri := range m.order {
		run.AddArtifact(m.artifacts[uri])
	}
}

// addInvocation adds run metadata to the run.
func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()

	invocation.ExecutionSuccessful = ptrBool(m.resp.Summary.LoadFailures == 0)

	end := m.resp.Metadata.ProcessedAt
	if !end.IsZero() {
		start := end.Add(-m.resp.Metadata.Duration)
		startTime := start.UTC().Format("2006-01-02T15:04:05.000Z")
		endTime := end.UTC().Format("2006-01-02T15:04:05.000Z")
		invocation.StartTimeUtc = &startTime
		invocation.EndTimeUtc = &endTime
	}

	if hostname, err := os.Hostname(); err == nil {
		invocation.Machine = &hostname
	}

	if m.cwd != "" {
		cwd := "file://" + filepath.ToSlash(m.cwd)
		invocation.WorkingDirectory = sarif.NewArtifactLocation().WithURI(cwd)
	}

	props := sarif.NewPropertyBag()
	props.Add("runId", m.resp.RunID.String())
	if m.resp.Metadata.RequestID != "" {
		props.Add("requestId", m.resp.Metadata.RequestID)
	}
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

// addProperties adds summary statistics to run properties.
func (m *sarifMapper) addProperties(run *sarif.Run) {
	props := sarif.NewPropertyBag()
	props.Add("summary", SummaryView(m.resp.Summary))
	run.WithProperties(props)
}

func ptrBool(b bool) *bool {
	return &b
}
