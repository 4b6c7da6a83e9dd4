package entities

import (
	"testing"

	"github.com/simkit-dev/modelcheck/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidationResult_AppendOnlyOrder(t *testing.T) {
	block := NewReactionBuildingBlock("Reactions")
	f1 := NewExplicitFormula("F1", "a")
	f2 := NewExplicitFormula("F2", "b")

	result := NewValidationResult()
	assert.Equal(t, StateValid, result.State())

	result.AddMessage(values.NotifyWarning, f2, "second first", block)
	result.Add(ValidationMessage{Type: values.NotifyError, Code: CodeFormulaParseError, Subject: f1, Text: "then first", BuildingBlock: block})
	result.AddMessage(values.NotifyWarning, f2, "second first", block)

	msgs := result.Messages()
	require.Len(t, msgs, 3, "duplicates are kept")
	assert.Equal(t, "F2", msgs[0].SubjectName())
	assert.Equal(t, "F1", msgs[1].SubjectName())
	assert.Equal(t, "ExplicitFormula", msgs[1].SubjectType())
	assert.Equal(t, "Reactions", msgs[1].BuildingBlockName())

	assert.Equal(t, 1, result.Count(values.NotifyError))
	assert.Equal(t, 2, result.Count(values.NotifyWarning))
	assert.Equal(t, 1, result.CountByCode(CodeFormulaParseError))
	assert.Equal(t, StateInvalid, result.State())
}

func Test_ValidationResult_States(t *testing.T) {
	warnOnly := NewValidationResult()
	warnOnly.AddMessage(values.NotifyWarning, nil, "careful", nil)
	assert.Equal(t, StateValidWithWarnings, warnOnly.State())

	infoOnly := NewValidationResult()
	infoOnly.AddMessage(values.NotifyInfo, nil, "fyi", nil)
	assert.Equal(t, StateValid, infoOnly.State())
}

func Test_ValidationResult_AddMessagesFrom(t *testing.T) {
	a := NewValidationResult()
	a.AddMessage(values.NotifyError, nil, "a1", nil)

	b := NewValidationResult()
	b.AddMessage(values.NotifyError, nil, "b1", nil)
	b.AddMessage(values.NotifyInfo, nil, "b2", nil)

	a.AddMessagesFrom(b)
	a.AddMessagesFrom(nil)

	texts := []string{}
	for _, m := range a.Messages() {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"a1", "b1", "b2"}, texts)
}

func Test_ValidationMessage_NilSafeAccessors(t *testing.T) {
	m := ValidationMessage{Text: "orphan"}
	assert.Empty(t, m.SubjectName())
	assert.Empty(t, m.SubjectType())
	assert.Empty(t, m.BuildingBlockName())
}

func Test_BuildConfiguration_BuildingBlocksOrder(t *testing.T) {
	cfg := &BuildConfiguration{
		Molecules:            NewMoleculeBuildingBlock("M"),
		Observers:            NewObserverBuildingBlock("O"),
		EventGroups:          NewEventGroupBuildingBlock("E"),
		ParameterStartValues: NewParameterStartValuesBuildingBlock("PSV"),
		CalculationMethods:   []*CalculationMethod{NewCalculationMethod("CM1", "Cat"), nil, NewCalculationMethod("CM2", "Cat")},
	}
	require.NoError(t, cfg.Molecules.AddFormula(NewConstantFormula("c", 1)))
	require.NoError(t, cfg.CalculationMethods[2].AddFormula(NewExplicitFormula("e", "x")))

	var names []string
	for _, b := range cfg.BuildingBlocks() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"M", "O", "E", "PSV", "CM1", "CM2"}, names)
	assert.Len(t, cfg.AllCalculationMethods(), 2)
	assert.Equal(t, 2, cfg.FormulaCount())
}

func Test_MoleculeBuildingBlock_Names(t *testing.T) {
	block := NewMoleculeBuildingBlock("Molecules")
	block.Add(&MoleculeBuilder{Name: "Glucose"}, &MoleculeBuilder{Name: "Insulin"})

	assert.Equal(t, []string{"Glucose", "Insulin"}, block.Names())
	assert.Equal(t, "Molecules", block.BuildingBlockType())
	assert.Len(t, block.Molecules(), 2)
}
