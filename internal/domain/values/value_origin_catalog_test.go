package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseValueOriginSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ValueOriginSource
		wantErr bool
	}{
		{"empty", "", SourceUndefined, false},
		{"exact", "Database", SourceDatabase, false},
		{"lowercase", "publication", SourcePublication, false},
		{"spaced", "Parameter Identification", SourceParameterIdentification, false},
		{"snake", "parameter_identification", SourceParameterIdentification, false},
		{"unknown member", "Unknown", SourceUnknown, false},
		{"invalid", "Rumour", ValueOriginSource{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValueOriginSource(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParseValueOriginDeterminationMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ValueOriginDeterminationMethod
		wantErr bool
	}{
		{"empty", "  ", MethodUndefined, false},
		{"kebab", "in-vitro", MethodInVitro, false},
		{"display form", "Manual Fit", MethodManualFit, false},
		{"invalid", "Divination", ValueOriginDeterminationMethod{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValueOriginDeterminationMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ValueOriginCatalog_IDsAreUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, s := range AllValueOriginSources() {
		assert.False(t, seen[s.ID], "duplicate source id %d", s.ID)
		seen[s.ID] = true
	}

	seen = map[int]bool{}
	for _, m := range AllValueOriginDeterminationMethods() {
		assert.False(t, seen[m.ID], "duplicate method id %d", m.ID)
		seen[m.ID] = true
	}

	assert.True(t, SourceUndefined.IsUndefined())
	assert.True(t, MethodUndefined.IsUndefined())
	assert.Empty(t, SourceUndefined.Display)
	assert.Empty(t, MethodUndefined.Display)
}
