package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParser rejects any expression containing "??".
type fakeParser struct {
	calls int
}

func (p *fakeParser) Parse(expression string, _ []string) error {
	p.calls++
	if strings.Contains(expression, "??") {
		return errors.New("unexpected token ??")
	}
	return nil
}

func moleculeBlock(names ...string) *entities.MoleculeBuildingBlock {
	b := entities.NewMoleculeBuildingBlock("Molecules")
	for _, n := range names {
		b.Add(&entities.MoleculeBuilder{Name: n})
	}
	return b
}

func texts(r *entities.ValidationResult) []string {
	out := []string{}
	for _, m := range r.Messages() {
		out = append(out, m.Text)
	}
	return out
}

func Test_Validate_EmptyConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  *entities.BuildConfiguration
	}{
		{"nil configuration", nil},
		{"no blocks", &entities.BuildConfiguration{}},
		{"only non-explicit formulas", func() *entities.BuildConfiguration {
			m := moleculeBlock("Glucose")
			_ = m.AddFormula(entities.NewConstantFormula("C", 1))
			_ = m.AddFormula(entities.NewTableFormula("T"))
			return &entities.BuildConfiguration{Molecules: m, EventGroups: entities.NewEventGroupBuildingBlock("Events")}
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &fakeParser{}
			result := NewBuildConfigurationValidator(parser).Validate(tt.cfg)

			require.NotNil(t, result)
			assert.Equal(t, 0, result.Len())
			assert.Equal(t, entities.StateValid, result.State())
			assert.Equal(t, 0, parser.calls)
		})
	}
}

func Test_Validate_UnresolvedMoleculeReference(t *testing.T) {
	events := entities.NewEventGroupBuildingBlock("Events")
	events.Add(entities.NewEventGroupBuilder("Dosing",
		entities.NewApplicationBuilder("Oral", "Glucose"),
	))

	cfg := &entities.BuildConfiguration{
		Molecules:   moleculeBlock("Insulin"),
		EventGroups: events,
	}

	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(cfg)

	msgs := result.Messages()
	require.Len(t, msgs, 1)
	msg := msgs[0]
	assert.Equal(t, entities.CodeUnresolvedMoleculeReference, msg.Code)
	assert.True(t, msg.Type.Equals(values.NotifyError))
	assert.Equal(t, "Oral", msg.SubjectName())
	assert.Same(t, events, msg.BuildingBlock)
	assert.Equal(t,
		`Molecule "Glucose" used in application "Oral" is not defined in molecule building block "Molecules"`,
		msg.Text)
}

func Test_Validate_ResolvedReferencesProduceNothing(t *testing.T) {
	events := entities.NewEventGroupBuildingBlock("Events")
	events.Add(entities.NewEventGroupBuilder("Dosing",
		entities.NewApplicationBuilder("Oral", "Glucose",
			entities.NewApplicationBuilder("Nested", "Insulin"),
		),
	))

	cfg := &entities.BuildConfiguration{
		Molecules:   moleculeBlock("Glucose", "Insulin"),
		EventGroups: events,
	}

	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(cfg)
	assert.Equal(t, 0, result.Len())
}

func Test_Validate_MissingMoleculeBlock(t *testing.T) {
	events := entities.NewEventGroupBuildingBlock("Events")
	events.Add(entities.NewEventGroupBuilder("G", entities.NewApplicationBuilder("A", "Glucose")))

	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(&entities.BuildConfiguration{EventGroups: events})

	require.Equal(t, 1, result.Len())
	assert.Equal(t,
		`Molecule "Glucose" used in application "A" is not defined in molecule building block ""`,
		result.Messages()[0].Text)
}

func Test_Validate_OneMessagePerFailingFormula(t *testing.T) {
	reactions := entities.NewReactionBuildingBlock("Reactions")
	require.NoError(t, reactions.AddFormula(entities.NewExplicitFormula("Good", "k * A")))
	require.NoError(t, reactions.AddFormula(entities.NewExplicitFormula("Bad1", "k ?? A")))
	require.NoError(t, reactions.AddFormula(entities.NewConstantFormula("Const", 2)))
	require.NoError(t, reactions.AddFormula(entities.NewExplicitFormula("Bad2", "??")))

	observers := entities.NewObserverBuildingBlock("Observers")
	require.NoError(t, observers.AddFormula(entities.NewExplicitFormula("Obs", "??")))

	cfg := &entities.BuildConfiguration{Reactions: reactions, Observers: observers}
	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(cfg)

	msgs := result.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"Bad1", "Bad2", "Obs"}, []string{msgs[0].SubjectName(), msgs[1].SubjectName(), msgs[2].SubjectName()})
	assert.Equal(t, "Reactions", msgs[0].BuildingBlockName())
	assert.Equal(t, "Observers", msgs[2].BuildingBlockName())
	assert.Equal(t,
		`Formula "Bad1" in building block "Reactions" is not valid: unexpected token ??`,
		msgs[0].Text)
	assert.Equal(t, 3, result.CountByCode(entities.CodeFormulaParseError))
}

// opaqueFormula claims to be explicit but offers no way to check itself.
type opaqueFormula struct{ name string }

func (f opaqueFormula) Name() string       { return f.name }
func (f opaqueFormula) ObjectType() string { return "OpaqueFormula" }
func (f opaqueFormula) IsExplicit() bool   { return true }

func Test_Validate_ExplicitFormulaWithoutParserSupport(t *testing.T) {
	molecules := moleculeBlock("Glucose")
	require.NoError(t, molecules.AddFormula(opaqueFormula{name: "Opaque"}))

	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(&entities.BuildConfiguration{Molecules: molecules})

	require.Equal(t, 1, result.Len())
	msg := result.Messages()[0]
	assert.Equal(t, entities.CodeFormulaParseError, msg.Code)
	assert.Equal(t, "Opaque", msg.SubjectName())
	assert.Equal(t, "OpaqueFormula", msg.SubjectType())
	assert.Equal(t,
		`Formula "Opaque" in building block "Molecules" is not valid: formula cannot be parsed`,
		msg.Text)
}

func Test_Validate_TraversalOrder(t *testing.T) {
	bad := func(name string) *entities.ExplicitFormula {
		return entities.NewExplicitFormula(name, "??")
	}

	molecules := moleculeBlock("Glucose")
	require.NoError(t, molecules.AddFormula(bad("m")))
	reactions := entities.NewReactionBuildingBlock("R")
	require.NoError(t, reactions.AddFormula(bad("r")))
	spatial := entities.NewSpatialStructure("S")
	require.NoError(t, spatial.AddFormula(bad("s")))
	transports := entities.NewPassiveTransportBuildingBlock("T")
	require.NoError(t, transports.AddFormula(bad("t")))
	observers := entities.NewObserverBuildingBlock("O")
	require.NoError(t, observers.AddFormula(bad("o")))
	events := entities.NewEventGroupBuildingBlock("E")
	events.Add(entities.NewEventGroupBuilder("G", entities.NewApplicationBuilder("app", "Missing")))
	require.NoError(t, events.AddFormula(bad("e")))
	msv := entities.NewMoleculeStartValuesBuildingBlock("MSV")
	require.NoError(t, msv.AddFormula(bad("msv")))
	psv := entities.NewParameterStartValuesBuildingBlock("PSV")
	require.NoError(t, psv.AddFormula(bad("psv")))
	cm1 := entities.NewCalculationMethod("CM1", "Cat")
	require.NoError(t, cm1.AddFormula(bad("cm1")))
	cm2 := entities.NewCalculationMethod("CM2", "Cat")
	require.NoError(t, cm2.AddFormula(bad("cm2")))

	cfg := &entities.BuildConfiguration{
		Molecules:            molecules,
		Reactions:            reactions,
		SpatialStructure:     spatial,
		PassiveTransports:    transports,
		Observers:            observers,
		EventGroups:          events,
		MoleculeStartValues:  msv,
		ParameterStartValues: psv,
		CalculationMethods:   []*entities.CalculationMethod{cm1, cm2},
	}

	result := NewBuildConfigurationValidator(&fakeParser{}).Validate(cfg)

	var subjects []string
	for _, m := range result.Messages() {
		subjects = append(subjects, m.SubjectName())
	}
	assert.Equal(t, []string{"m", "r", "s", "t", "o", "app", "e", "msv", "psv", "cm1", "cm2"}, subjects)
}

func Test_Validate_DeterministicAndIdempotent(t *testing.T) {
	molecules := moleculeBlock("Insulin")
	require.NoError(t, molecules.AddFormula(entities.NewExplicitFormula("Broken", "??")))
	events := entities.NewEventGroupBuildingBlock("Events")
	events.Add(
		entities.NewEventGroupBuilder("G1", entities.NewApplicationBuilder("A1", "Glucose")),
		entities.NewEventGroupBuilder("G2", entities.NewApplicationBuilder("A2", "Insulin"), entities.NewApplicationBuilder("A3", "Water")),
	)
	cfg := &entities.BuildConfiguration{Molecules: molecules, EventGroups: events}

	validator := NewBuildConfigurationValidator(&fakeParser{})
	first := validator.Validate(cfg)
	second := validator.Validate(cfg)

	assert.Equal(t, texts(first), texts(second))
	assert.Len(t, first.Messages(), 3)
	assert.Len(t, molecules.FormulaCache().All(), 1, "input is not mutated")
}

func Test_Validate_NilParserReportsEveryExplicitFormula(t *testing.T) {
	m := moleculeBlock()
	require.NoError(t, m.AddFormula(entities.NewExplicitFormula("F", "1")))

	result := NewBuildConfigurationValidator(nil).Validate(&entities.BuildConfiguration{Molecules: m})

	require.Equal(t, 1, result.Len())
	assert.Contains(t, result.Messages()[0].Text, "no expression parser configured")
}
