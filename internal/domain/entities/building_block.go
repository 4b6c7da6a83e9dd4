package entities

// BuildingBlock is a named collection of domain objects together with the
// formulas they reference.
//
// Invariant (maintained by whoever assembles the block): every formula
// referenced by a contained object is present in the formula cache.
type BuildingBlock interface {
	Name() string
	BuildingBlockType() string
	FormulaCache() *FormulaCache
}

// buildingBlock carries the parts every concrete block shares.
type buildingBlock struct {
	name        string
	description string
	formulas    *FormulaCache
}

func newBuildingBlock(name string) buildingBlock {
	return buildingBlock{name: name, formulas: NewFormulaCache()}
}

func (b *buildingBlock) Name() string                { return b.name }
func (b *buildingBlock) Description() string         { return b.description }
func (b *buildingBlock) SetDescription(d string)     { b.description = d }
func (b *buildingBlock) FormulaCache() *FormulaCache { return b.formulas }

// AddFormula adds a formula to the block's cache.
func (b *buildingBlock) AddFormula(f Formula) error {
	return b.formulas.Add(f)
}

// MoleculeBuildingBlock declares the molecules of the model.
type MoleculeBuildingBlock struct {
	buildingBlock
	molecules []*MoleculeBuilder
}

// NewMoleculeBuildingBlock creates an empty molecule block.
func NewMoleculeBuildingBlock(name string) *MoleculeBuildingBlock {
	return &MoleculeBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *MoleculeBuildingBlock) BuildingBlockType() string { return "Molecules" }

// Add appends molecules.
func (b *MoleculeBuildingBlock) Add(molecules ...*MoleculeBuilder) {
	b.molecules = append(b.molecules, molecules...)
}

// Molecules returns the declared molecules in order.
func (b *MoleculeBuildingBlock) Molecules() []*MoleculeBuilder {
	out := make([]*MoleculeBuilder, len(b.molecules))
	copy(out, b.molecules)
	return out
}

// Names returns the molecule names in declaration order.
func (b *MoleculeBuildingBlock) Names() []string {
	names := make([]string, 0, len(b.molecules))
	for _, m := range b.molecules {
		names = append(names, m.Name)
	}
	return names
}

// ReactionBuildingBlock declares the reactions of the model.
type ReactionBuildingBlock struct {
	buildingBlock
	reactions []*ReactionBuilder
}

// NewReactionBuildingBlock creates an empty reaction block.
func NewReactionBuildingBlock(name string) *ReactionBuildingBlock {
	return &ReactionBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *ReactionBuildingBlock) BuildingBlockType() string { return "Reactions" }

// Add appends reactions.
func (b *ReactionBuildingBlock) Add(reactions ...*ReactionBuilder) {
	b.reactions = append(b.reactions, reactions...)
}

// Reactions returns the reactions in order.
func (b *ReactionBuildingBlock) Reactions() []*ReactionBuilder {
	out := make([]*ReactionBuilder, len(b.reactions))
	copy(out, b.reactions)
	return out
}

// SpatialStructure declares the compartments of the model and how they connect.
type SpatialStructure struct {
	buildingBlock
	containers    []*SpatialContainer
	neighborhoods []Neighborhood
}

// NewSpatialStructure creates an empty spatial structure.
func NewSpatialStructure(name string) *SpatialStructure {
	return &SpatialStructure{buildingBlock: newBuildingBlock(name)}
}

func (b *SpatialStructure) BuildingBlockType() string { return "SpatialStructure" }

// AddContainers appends containers.
func (b *SpatialStructure) AddContainers(containers ...*SpatialContainer) {
	b.containers = append(b.containers, containers...)
}

// AddNeighborhoods appends neighborhoods.
func (b *SpatialStructure) AddNeighborhoods(neighborhoods ...Neighborhood) {
	b.neighborhoods = append(b.neighborhoods, neighborhoods...)
}

// Containers returns the compartments in order.
func (b *SpatialStructure) Containers() []*SpatialContainer {
	out := make([]*SpatialContainer, len(b.containers))
	copy(out, b.containers)
	return out
}

// Neighborhoods returns the connections in order.
func (b *SpatialStructure) Neighborhoods() []Neighborhood {
	out := make([]Neighborhood, len(b.neighborhoods))
	copy(out, b.neighborhoods)
	return out
}

// PassiveTransportBuildingBlock declares passive transports.
type PassiveTransportBuildingBlock struct {
	buildingBlock
	transports []*TransportBuilder
}

// NewPassiveTransportBuildingBlock creates an empty transport block.
func NewPassiveTransportBuildingBlock(name string) *PassiveTransportBuildingBlock {
	return &PassiveTransportBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *PassiveTransportBuildingBlock) BuildingBlockType() string { return "PassiveTransports" }

// Add appends transports.
func (b *PassiveTransportBuildingBlock) Add(transports ...*TransportBuilder) {
	b.transports = append(b.transports, transports...)
}

// Transports returns the transports in order.
func (b *PassiveTransportBuildingBlock) Transports() []*TransportBuilder {
	out := make([]*TransportBuilder, len(b.transports))
	copy(out, b.transports)
	return out
}

// ObserverBuildingBlock declares observers.
type ObserverBuildingBlock struct {
	buildingBlock
	observers []*ObserverBuilder
}

// NewObserverBuildingBlock creates an empty observer block.
func NewObserverBuildingBlock(name string) *ObserverBuildingBlock {
	return &ObserverBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *ObserverBuildingBlock) BuildingBlockType() string { return "Observers" }

// Add appends observers.
func (b *ObserverBuildingBlock) Add(observers ...*ObserverBuilder) {
	b.observers = append(b.observers, observers...)
}

// Observers returns the observers in order.
func (b *ObserverBuildingBlock) Observers() []*ObserverBuilder {
	out := make([]*ObserverBuilder, len(b.observers))
	copy(out, b.observers)
	return out
}

// EventGroupBuildingBlock declares the event groups of the model.
type EventGroupBuildingBlock struct {
	buildingBlock
	groups []*EventGroupBuilder
}

// NewEventGroupBuildingBlock creates an empty event group block.
func NewEventGroupBuildingBlock(name string) *EventGroupBuildingBlock {
	return &EventGroupBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *EventGroupBuildingBlock) BuildingBlockType() string { return "EventGroups" }

// Add appends top-level event groups.
func (b *EventGroupBuildingBlock) Add(groups ...*EventGroupBuilder) {
	b.groups = append(b.groups, groups...)
}

// EventGroups returns the top-level event groups in order.
func (b *EventGroupBuildingBlock) EventGroups() []*EventGroupBuilder {
	out := make([]*EventGroupBuilder, len(b.groups))
	copy(out, b.groups)
	return out
}

// ApplicationBuilders returns every application builder below group, group
// included, in depth-first pre-order.
func (b *EventGroupBuildingBlock) ApplicationBuilders(group *EventGroupBuilder) []*ApplicationBuilder {
	if group == nil {
		return nil
	}
	return AllContainersAndSelf[*ApplicationBuilder](group)
}

// MoleculeStartValuesBuildingBlock sets initial molecule amounts.
type MoleculeStartValuesBuildingBlock struct {
	buildingBlock
	startValues []*MoleculeStartValue
}

// NewMoleculeStartValuesBuildingBlock creates an empty molecule start values block.
func NewMoleculeStartValuesBuildingBlock(name string) *MoleculeStartValuesBuildingBlock {
	return &MoleculeStartValuesBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *MoleculeStartValuesBuildingBlock) BuildingBlockType() string { return "MoleculeStartValues" }

// Add appends start values.
func (b *MoleculeStartValuesBuildingBlock) Add(startValues ...*MoleculeStartValue) {
	b.startValues = append(b.startValues, startValues...)
}

// StartValues returns the start values in order.
func (b *MoleculeStartValuesBuildingBlock) StartValues() []*MoleculeStartValue {
	out := make([]*MoleculeStartValue, len(b.startValues))
	copy(out, b.startValues)
	return out
}

// ParameterStartValuesBuildingBlock overrides parameter values.
type ParameterStartValuesBuildingBlock struct {
	buildingBlock
	startValues []*ParameterStartValue
}

// NewParameterStartValuesBuildingBlock creates an empty parameter start values block.
func NewParameterStartValuesBuildingBlock(name string) *ParameterStartValuesBuildingBlock {
	return &ParameterStartValuesBuildingBlock{buildingBlock: newBuildingBlock(name)}
}

func (b *ParameterStartValuesBuildingBlock) BuildingBlockType() string { return "ParameterStartValues" }

// Add appends start values.
func (b *ParameterStartValuesBuildingBlock) Add(startValues ...*ParameterStartValue) {
	b.startValues = append(b.startValues, startValues...)
}

// StartValues returns the start values in order.
func (b *ParameterStartValuesBuildingBlock) StartValues() []*ParameterStartValue {
	out := make([]*ParameterStartValue, len(b.startValues))
	copy(out, b.startValues)
	return out
}

// CalculationMethod is a named set of alternative formulas for one category
// (e.g. a partition-coefficient method).
type CalculationMethod struct {
	buildingBlock
	Category string
}

// NewCalculationMethod creates an empty calculation method.
func NewCalculationMethod(name, category string) *CalculationMethod {
	return &CalculationMethod{buildingBlock: newBuildingBlock(name), Category: category}
}

func (b *CalculationMethod) BuildingBlockType() string { return "CalculationMethod" }
