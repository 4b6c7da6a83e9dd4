package entities

// ConfigurationMetadata identifies a build configuration.
type ConfigurationMetadata struct {
	Name        string
	Version     string
	Description string
}

// BuildConfiguration is the set of building blocks a model is built from.
// This is the aggregate root of the configuration; any role may be nil.
type BuildConfiguration struct {
	Metadata             ConfigurationMetadata
	Molecules            *MoleculeBuildingBlock
	Reactions            *ReactionBuildingBlock
	SpatialStructure     *SpatialStructure
	PassiveTransports    *PassiveTransportBuildingBlock
	Observers            *ObserverBuildingBlock
	EventGroups          *EventGroupBuildingBlock
	MoleculeStartValues  *MoleculeStartValuesBuildingBlock
	ParameterStartValues *ParameterStartValuesBuildingBlock
	CalculationMethods   []*CalculationMethod
}

// AllCalculationMethods returns the non-nil calculation methods in order.
func (c *BuildConfiguration) AllCalculationMethods() []*CalculationMethod {
	out := make([]*CalculationMethod, 0, len(c.CalculationMethods))
	for _, cm := range c.CalculationMethods {
		if cm != nil {
			out = append(out, cm)
		}
	}
	return out
}

// BuildingBlocks returns every non-nil building block in canonical order:
// molecules, reactions, spatial structure, passive transports, observers,
// event groups, molecule start values, parameter start values, then the
// calculation methods.
func (c *BuildConfiguration) BuildingBlocks() []BuildingBlock {
	var blocks []BuildingBlock
	if c.Molecules != nil {
		blocks = append(blocks, c.Molecules)
	}
	if c.Reactions != nil {
		blocks = append(blocks, c.Reactions)
	}
	if c.SpatialStructure != nil {
		blocks = append(blocks, c.SpatialStructure)
	}
	if c.PassiveTransports != nil {
		blocks = append(blocks, c.PassiveTransports)
	}
	if c.Observers != nil {
		blocks = append(blocks, c.Observers)
	}
	if c.EventGroups != nil {
		blocks = append(blocks, c.EventGroups)
	}
	if c.MoleculeStartValues != nil {
		blocks = append(blocks, c.MoleculeStartValues)
	}
	if c.ParameterStartValues != nil {
		blocks = append(blocks, c.ParameterStartValues)
	}
	for _, cm := range c.AllCalculationMethods() {
		blocks = append(blocks, cm)
	}
	return blocks
}

// FormulaCount returns the number of formulas across all building blocks.
func (c *BuildConfiguration) FormulaCount() int {
	total := 0
	for _, b := range c.BuildingBlocks() {
		total += b.FormulaCache().Len()
	}
	return total
}
