// Package services contains domain services that encapsulate business logic
// spanning multiple entities. These services are stateless apart from their
// injected collaborators and can be called from any use case.
package services

import (
	"errors"
	"fmt"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// BuildConfigurationValidator checks a build configuration before a model is
// built from it: every explicit formula must parse and every application in
// an event group must apply a declared molecule.
//
// The validator never fails. Every problem becomes a message of the returned
// result, and the pass always visits every building block.
type BuildConfigurationValidator struct {
	parser entities.ExpressionParser
}

// NewBuildConfigurationValidator creates a validator that checks explicit
// formulas with the given parser.
func NewBuildConfigurationValidator(parser entities.ExpressionParser) *BuildConfigurationValidator {
	return &BuildConfigurationValidator{parser: parser}
}

// Validate walks the configuration and returns the accumulated messages.
//
// Blocks are visited in canonical order (see BuildConfiguration.BuildingBlocks).
// For the event group block, molecule references are checked before its
// formula cache.
func (v *BuildConfigurationValidator) Validate(cfg *entities.BuildConfiguration) *entities.ValidationResult {
	result := entities.NewValidationResult()
	if cfg == nil {
		return result
	}

	for _, block := range cfg.BuildingBlocks() {
		if eventGroups, ok := block.(*entities.EventGroupBuildingBlock); ok {
			result.AddMessagesFrom(v.validateMoleculeReferences(eventGroups, cfg.Molecules))
		}
		result.AddMessagesFrom(v.validateFormulaCache(block))
	}

	return result
}

// validateFormulaCache parses every explicit formula of the block.
func (v *BuildConfigurationValidator) validateFormulaCache(block entities.BuildingBlock) *entities.ValidationResult {
	result := entities.NewValidationResult()

	for _, formula := range block.FormulaCache().Explicit() {
		err := formula.Validate(v.parser)
		if err == nil {
			continue
		}

		result.Add(entities.ValidationMessage{
			Type:          values.NotifyError,
			Code:          entities.CodeFormulaParseError,
			Subject:       formula,
			Text:          FormulaParseErrorText(formula.Name(), block.Name(), parseMessage(err)),
			BuildingBlock: block,
		})
	}

	return result
}

// validateMoleculeReferences reports every application builder below an event
// group whose molecule is not declared in the molecule block.
func (v *BuildConfigurationValidator) validateMoleculeReferences(eventGroups *entities.EventGroupBuildingBlock, molecules *entities.MoleculeBuildingBlock) *entities.ValidationResult {
	result := entities.NewValidationResult()

	var moleculeBlockName string
	known := make(map[string]struct{})
	if molecules != nil {
		moleculeBlockName = molecules.Name()
		for _, name := range molecules.Names() {
			known[name] = struct{}{}
		}
	}

	for _, group := range eventGroups.EventGroups() {
		for _, app := range eventGroups.ApplicationBuilders(group) {
			if _, ok := known[app.MoleculeName()]; ok {
				continue
			}

			result.Add(entities.ValidationMessage{
				Type:          values.NotifyError,
				Code:          entities.CodeUnresolvedMoleculeReference,
				Subject:       app,
				Text:          UnresolvedMoleculeText(app.MoleculeName(), app.Name(), moleculeBlockName),
				BuildingBlock: eventGroups,
			})
		}
	}

	return result
}

// FormulaParseErrorText renders the message for a formula that failed to parse.
func FormulaParseErrorText(formula, block, parserMessage string) string {
	return fmt.Sprintf("Formula %q in building block %q is not valid: %s", formula, block, parserMessage)
}

// UnresolvedMoleculeText renders the message for an application of an unknown molecule.
func UnresolvedMoleculeText(molecule, application, moleculeBlock string) string {
	return fmt.Sprintf("Molecule %q used in application %q is not defined in molecule building block %q", molecule, application, moleculeBlock)
}

// parseMessage extracts the parser's own message from a validation error.
func parseMessage(err error) string {
	var parseErr *entities.FormulaParseError
	if errors.As(err, &parseErr) && parseErr.Message != "" {
		return parseErr.Message
	}
	return err.Error()
}
