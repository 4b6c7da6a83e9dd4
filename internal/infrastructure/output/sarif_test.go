package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSARIFFormatter_Format(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	formatter := NewSARIFFormatter(&buf, "1.2.3")
	require.NoError(t, formatter.Format(createTestResponse()))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	assert.Equal(t, "2.1.0", raw["version"])
	assert.Contains(t, raw, "$schema")

	runs := raw["runs"].([]interface{})
	require.Len(t, runs, 1)

	run := runs[0].(map[string]interface{})
	assert.Contains(t, run, "tool")
	assert.Contains(t, run, "results")
	assert.Contains(t, run, "invocations")
	assert.Contains(t, run, "artifacts")
}

func TestSARIFFormatter_ValidatesAgainstSchema(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, NewSARIFFormatter(&buf, "1.2.3").Format(createTestResponse()))

	report, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, report.Validate())
}

func TestSARIFFormatter_ToolMetadata(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, NewSARIFFormatter(&buf, "1.2.3").Format(createTestResponse()))

	report, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, report.Runs, 1)

	driver := report.Runs[0].Tool.Driver
	assert.Equal(t, "modelcheck", *driver.Name)
	assert.Equal(t, "1.2.3", *driver.Version)
	assert.Len(t, driver.Rules, len(sarifRules))
}

func TestSARIFFormatter_Results(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, NewSARIFFormatter(&buf, "").Format(createTestResponse()))

	report, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)

	results := report.Runs[0].Results
	require.Len(t, results, 4)

	var ruleIDs []string
	for _, r := range results {
		ruleIDs = append(ruleIDs, *r.RuleID)
	}
	assert.Equal(t, []string{"FormulaParseError", "UnresolvedMoleculeReference", "ValidationMessage", "ConfigurationLoadError"}, ruleIDs)

	assert.Equal(t, "error", results[0].Level)
	assert.Equal(t, "fail", results[0].Kind)
	require.Len(t, results[0].Locations, 1)
	assert.Equal(t, "invalid.yaml", *results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)

	assert.Equal(t, "warning", results[2].Level)
	assert.Equal(t, "warned.yaml", *results[2].Locations[0].PhysicalLocation.ArtifactLocation.URI)

	// invalid.yaml, warned.yaml and missing.yaml; valid.yaml has no results
	assert.Len(t, report.Runs[0].Artifacts, 3)
}

func TestSARIFFormatter_Invocation(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	require.NoError(t, NewSARIFFormatter(&buf, "").Format(createTestResponse()))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	run := raw["runs"].([]interface{})[0].(map[string]interface{})
	invocation := run["invocations"].([]interface{})[0].(map[string]interface{})

	assert.Equal(t, false, invocation["executionSuccessful"])
	assert.Equal(t, "2026-03-01T11:59:59.980Z", invocation["startTimeUtc"])
	assert.Equal(t, "2026-03-01T12:00:00.000Z", invocation["endTimeUtc"])

	props := invocation["properties"].(map[string]interface{})
	assert.Equal(t, testRunID, props["runId"])
	assert.Equal(t, "req-42", props["requestId"])
}

func TestSARIF_NotificationMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         values.NotificationType
		wantLevel string
		wantKind  string
	}{
		{"error", values.NotifyError, "error", "fail"},
		{"warning", values.NotifyWarning, "warning", "fail"},
		{"info", values.NotifyInfo, "note", "informational"},
		{"debug", values.NotifyDebug, "note", "informational"},
		{"none", values.NotifyNone, "none", "informational"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantLevel, mapNotificationToLevel(tc.n))
			assert.Equal(t, tc.wantKind, mapNotificationToKind(tc.n))
		})
	}
}

func TestSARIFFormatter_EmptyRun(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	resp := &dto.ValidateResponse{Reports: []dto.ConfigurationReport{
		{Path: "ok.yaml", Result: entities.NewValidationResult()},
	}}
	require.NoError(t, NewSARIFFormatter(&buf, "").Format(resp))

	report, err := sarif.FromBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, report.Runs[0].Results)
}
