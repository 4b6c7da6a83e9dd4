package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/services"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/config"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldDocument(t *testing.T) {
	tests := []struct {
		name          string
		opts          InitOptions
		wantMolecules []string
		wantEvents    bool
		wantErr       string
	}{
		{
			name:          "molecules deduplicated",
			opts:          InitOptions{Name: "glucose", Version: "1.0.0", Molecules: []string{"Glucose", " Insulin", "Glucose", ""}, WithEvents: true},
			wantMolecules: []string{"Glucose", "Insulin"},
			wantEvents:    true,
		},
		{
			name:          "default molecule",
			opts:          InitOptions{Name: "empty", Version: "0.1.0"},
			wantMolecules: []string{"Drug"},
		},
		{
			name:    "missing name",
			opts:    InitOptions{Version: "0.1.0"},
			wantErr: "model name is required",
		},
		{
			name:    "bad version",
			opts:    InitOptions{Name: "x", Version: "one"},
			wantErr: `invalid version "one"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := scaffoldDocument(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, m := range doc.Molecules.Molecules {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.wantMolecules, names)
			assert.Equal(t, tt.wantEvents, doc.EventGroups != nil)
		})
	}
}

func TestWriteScaffold_ValidatesClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")

	doc, err := scaffoldDocument(InitOptions{Name: "glucose", Version: "1.0.0", Molecules: []string{"Glucose"}, WithEvents: true})
	require.NoError(t, err)
	require.NoError(t, writeScaffold(path, doc, false))

	cfg, err := config.NewConfigurationLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "glucose", cfg.Metadata.Name)

	for _, dialect := range []string{formula.DialectExpr, formula.DialectHCL} {
		parser, err := formula.NewParser(formula.Options{Dialect: dialect})
		require.NoError(t, err)

		result := services.NewBuildConfigurationValidator(parser).Validate(cfg)
		assert.Equal(t, entities.StateValid, result.State(), dialect)
	}
}

func TestWriteScaffold_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0600))

	doc, err := scaffoldDocument(InitOptions{Name: "x", Version: "1.0.0"})
	require.NoError(t, err)

	err = writeScaffold(path, doc, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, writeScaffold(path, doc, true))
	_, err = config.NewConfigurationLoader().Load(path)
	require.NoError(t, err)
}
