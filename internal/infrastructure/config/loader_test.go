package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Fixture(t *testing.T) {
	cfg, err := NewConfigurationLoader().Load(filepath.Join("testdata", "glucose.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "glucose-insulin", cfg.Metadata.Name)
	assert.Equal(t, "1.2.0", cfg.Metadata.Version)

	require.NotNil(t, cfg.Molecules)
	assert.Equal(t, []string{"Glucose", "Insulin"}, cfg.Molecules.Names())
	assert.Equal(t, 2, cfg.Molecules.FormulaCache().Len())

	start, ok := cfg.Molecules.FormulaCache().Get("StartGlucose").(*entities.ExplicitFormula)
	require.True(t, ok)
	assert.Equal(t, "C0 * V", start.Expression())
	assert.Equal(t, []string{"C0", "V"}, start.Aliases(), "aliases are sorted")

	glucose := cfg.Molecules.Molecules()[0]
	assert.True(t, glucose.IsFloating)
	require.Len(t, glucose.Parameters, 1)
	origin := &glucose.Parameters[0].ValueOrigin
	assert.Equal(t, values.SourcePublication, origin.Source())
	assert.Equal(t, values.MethodInVivo, origin.Method())
	assert.Equal(t, "4-5-Fasting level", origin.Key())

	kcat := cfg.Reactions.Reactions()[0].Parameters[0]
	require.NotNil(t, kcat.ValueOrigin.ID)
	assert.Equal(t, 17, *kcat.ValueOrigin.ID)
	assert.True(t, kcat.ValueOrigin.Equals(origin), "catalog names are matched loosely")
	assert.Equal(t, 1.0, cfg.Reactions.Reactions()[0].Educts[0].Stoichiometry)

	require.NotNil(t, cfg.EventGroups)
	groups := cfg.EventGroups.EventGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Oral", groups[0].EventGroupType)
	apps := cfg.EventGroups.ApplicationBuilders(groups[0])
	require.Len(t, apps, 1)
	assert.Equal(t, "Glucose", apps[0].MoleculeName())
	events := entities.AllContainersAndSelf[*entities.EventBuilder](groups[0])
	require.Len(t, events, 1)
	assert.True(t, events[0].OneTime)

	msv := cfg.MoleculeStartValues.StartValues()[0]
	assert.True(t, msv.IsPresent, "present defaults to true")
	assert.True(t, msv.ValueOrigin.IsUndefined())

	require.Len(t, cfg.CalculationMethods, 1)
	assert.Equal(t, "DistributionCategory", cfg.CalculationMethods[0].Category)
	assert.Equal(t, 6, cfg.FormulaCount())
}

func Test_LoadFromReader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty document",
			yaml:    "  \n",
			wantErr: "configuration is empty",
		},
		{
			name:    "missing metadata",
			yaml:    "molecules: {name: M}\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "unknown top-level key",
			yaml:    "metadata: {name: a, version: 1.0.0}\nsurprise: true\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "unknown formula type",
			yaml:    "metadata: {name: a, version: 1.0.0}\nmolecules:\n  name: M\n  formulas: [{name: f, type: spline}]\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "application without molecule",
			yaml:    "metadata: {name: a, version: 1.0.0}\nevent_groups:\n  name: E\n  groups: [{name: G, children: [{kind: application, name: A}]}]\n",
			wantErr: "schema validation failed",
		},
		{
			name:    "bad version",
			yaml:    "metadata: {name: a, version: not-a-version}\n",
			wantErr: "is not valid semver",
		},
		{
			name:    "unknown value origin source",
			yaml:    "metadata: {name: a, version: 1.0.0}\nmolecules:\n  name: M\n  molecules: [{name: G, parameters: [{name: p, value_origin: {source: Rumour}}]}]\n",
			wantErr: "invalid value origin source: Rumour",
		},
		{
			name:    "duplicate formula",
			yaml:    "metadata: {name: a, version: 1.0.0}\nmolecules:\n  name: M\n  formulas: [{name: f, type: constant}, {name: f, type: constant}]\n",
			wantErr: "block \"M\"",
		},
	}

	loader := NewConfigurationLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loader.LoadFromReader(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := NewConfigurationLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open configuration")
}

func Test_WriteDocument_RoundTrip(t *testing.T) {
	value := 1.5
	doc := &Document{
		Metadata: MetadataDocument{Name: "scaffold", Version: "0.1.0"},
		Molecules: &MoleculesDocument{
			BlockDocument: BlockDocument{Name: "Molecules"},
			Molecules: []MoleculeDocument{{
				Name:       "Glucose",
				Parameters: []ParameterDocument{{Name: "MW", Value: &value, ValueOrigin: &ValueOriginDocument{Source: "Database", Method: "Other"}}},
			}},
		},
		EventGroups: &EventGroupsDocument{
			BlockDocument: BlockDocument{Name: "Events"},
			Groups:        []NodeDocument{{Name: "Dosing", Children: []NodeDocument{{Kind: KindApplication, Name: "Oral", Molecule: "Glucose"}}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))

	path := filepath.Join(t.TempDir(), "scaffold.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	cfg, err := NewConfigurationLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Glucose"}, cfg.Molecules.Names())
	assert.Equal(t, "1-6", cfg.Molecules.Molecules()[0].Parameters[0].ValueOrigin.Key())
}

func Test_WriteDocument_RejectsBadMetadata(t *testing.T) {
	err := WriteDocument(&bytes.Buffer{}, &Document{Metadata: MetadataDocument{Name: "x", Version: "one"}})
	assert.Error(t, err)
}

func Test_DocumentSchema_IsACopy(t *testing.T) {
	s := DocumentSchema()
	s[0] = 'X'
	assert.Equal(t, byte('{'), DocumentSchema()[0])
}
