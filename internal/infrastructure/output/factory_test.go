package output

import (
	"bytes"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/application/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterFactory_Create(t *testing.T) {
	factory := NewFormatterFactory()
	buf := &bytes.Buffer{}

	tests := []struct {
		name        string
		format      string
		options     ports.FormatterOptions
		wantErr     bool
		wantType    interface{}
		errContains string
	}{
		{
			name:     "table format",
			format:   "table",
			wantType: &TableFormatter{},
		},
		{
			name:     "json format",
			format:   "json",
			options:  ports.FormatterOptions{Indent: true},
			wantType: &JSONFormatter{},
		},
		{
			name:     "yaml format",
			format:   "yaml",
			wantType: &YAMLFormatter{},
		},
		{
			name:     "junit format",
			format:   "junit",
			wantType: &JUnitFormatter{},
		},
		{
			name:     "sarif format",
			format:   "sarif",
			options:  ports.FormatterOptions{ToolVersion: "1.0.0"},
			wantType: &SARIFFormatter{},
		},
		{
			name:        "unknown format",
			format:      "invalid",
			wantErr:     true,
			errContains: "unknown format: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, err := factory.Create(tt.format, buf, tt.options)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, formatter)
			assert.IsType(t, tt.wantType, formatter)
		})
	}
}

func TestFormatterFactory_TableColor(t *testing.T) {
	factory := NewFormatterFactory()

	formatter, err := factory.Create("table", &bytes.Buffer{}, ports.FormatterOptions{Color: false})
	require.NoError(t, err)
	assert.False(t, formatter.(*TableFormatter).EnableColor)

	formatter, err = factory.Create("table", &bytes.Buffer{}, ports.FormatterOptions{Color: true})
	require.NoError(t, err)
	assert.True(t, formatter.(*TableFormatter).EnableColor)
}

func TestFormatterFactory_CreateOriginFormatter(t *testing.T) {
	factory := NewFormatterFactory()

	for _, format := range factory.SupportedOriginFormats() {
		t.Run(format, func(t *testing.T) {
			formatter, err := factory.CreateOriginFormatter(format, &bytes.Buffer{}, ports.FormatterOptions{})
			require.NoError(t, err)
			assert.NotNil(t, formatter)
		})
	}

	_, err := factory.CreateOriginFormatter("sarif", &bytes.Buffer{}, ports.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown origin format: sarif")
}

func TestFormatterFactory_SupportedFormats(t *testing.T) {
	factory := NewFormatterFactory()
	formats := factory.SupportedFormats()

	assert.Equal(t, []string{"table", "json", "yaml", "junit", "sarif"}, formats)
	assert.Equal(t, []string{"table", "json", "yaml"}, factory.SupportedOriginFormats())
}

var (
	_ ports.OutputFormatterFactory = (*FormatterFactory)(nil)
	_ ports.OutputFormatter        = (*SARIFFormatter)(nil)
	_ ports.OutputFormatter        = (*JUnitFormatter)(nil)
	_ ports.OriginFormatter        = (*TableFormatter)(nil)
	_ ports.OriginFormatter        = (*JSONFormatter)(nil)
	_ ports.OriginFormatter        = (*YAMLFormatter)(nil)
)
