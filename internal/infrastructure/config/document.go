package config

// Document is the YAML shape of a build configuration file.
type Document struct {
	Metadata             MetadataDocument              `yaml:"metadata" json:"metadata"`
	Molecules            *MoleculesDocument            `yaml:"molecules,omitempty" json:"molecules,omitempty"`
	Reactions            *ReactionsDocument            `yaml:"reactions,omitempty" json:"reactions,omitempty"`
	SpatialStructure     *SpatialStructureDocument     `yaml:"spatial_structure,omitempty" json:"spatial_structure,omitempty"`
	PassiveTransports    *TransportsDocument           `yaml:"passive_transports,omitempty" json:"passive_transports,omitempty"`
	Observers            *ObserversDocument            `yaml:"observers,omitempty" json:"observers,omitempty"`
	EventGroups          *EventGroupsDocument          `yaml:"event_groups,omitempty" json:"event_groups,omitempty"`
	MoleculeStartValues  *MoleculeStartValuesDocument  `yaml:"molecule_start_values,omitempty" json:"molecule_start_values,omitempty"`
	ParameterStartValues *ParameterStartValuesDocument `yaml:"parameter_start_values,omitempty" json:"parameter_start_values,omitempty"`
	CalculationMethods   []CalculationMethodDocument   `yaml:"calculation_methods,omitempty" json:"calculation_methods,omitempty"`
}

// MetadataDocument identifies the configuration.
type MetadataDocument struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// BlockDocument holds the fields shared by every building block.
type BlockDocument struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Formulas    []FormulaDocument `yaml:"formulas,omitempty" json:"formulas,omitempty"`
}

// Formula types.
const (
	FormulaExplicit = "explicit"
	FormulaConstant = "constant"
	FormulaTable    = "table"
)

// FormulaDocument describes one formula of a block's formula cache.
type FormulaDocument struct {
	Name       string            `yaml:"name" json:"name"`
	Type       string            `yaml:"type" json:"type"`
	Expression string            `yaml:"expression,omitempty" json:"expression,omitempty"`
	Dimension  string            `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Value      float64           `yaml:"value,omitempty" json:"value,omitempty"`
	References map[string]string `yaml:"references,omitempty" json:"references,omitempty"`
	Points     []PointDocument   `yaml:"points,omitempty" json:"points,omitempty"`
}

// PointDocument is one sample of a table formula.
type PointDocument struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// ValueOriginDocument is the serialized form of a value origin. Source and
// method are catalog names.
type ValueOriginDocument struct {
	ID          *int   `yaml:"id,omitempty" json:"id,omitempty"`
	Source      string `yaml:"source,omitempty" json:"source,omitempty"`
	Method      string `yaml:"method,omitempty" json:"method,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     bool   `yaml:"default,omitempty" json:"default,omitempty"`
}

// ParameterDocument describes a parameter.
type ParameterDocument struct {
	Name        string               `yaml:"name" json:"name"`
	Formula     string               `yaml:"formula,omitempty" json:"formula,omitempty"`
	Value       *float64             `yaml:"value,omitempty" json:"value,omitempty"`
	Dimension   string               `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	ValueOrigin *ValueOriginDocument `yaml:"value_origin,omitempty" json:"value_origin,omitempty"`
}

// MoleculesDocument is the molecule building block.
type MoleculesDocument struct {
	BlockDocument `yaml:",inline"`
	Molecules     []MoleculeDocument `yaml:"molecules,omitempty" json:"molecules,omitempty"`
}

// MoleculeDocument describes a molecule.
type MoleculeDocument struct {
	Name         string              `yaml:"name" json:"name"`
	Floating     bool                `yaml:"floating,omitempty" json:"floating,omitempty"`
	StartFormula string              `yaml:"start_formula,omitempty" json:"start_formula,omitempty"`
	Parameters   []ParameterDocument `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// ReactionsDocument is the reaction building block.
type ReactionsDocument struct {
	BlockDocument `yaml:",inline"`
	Reactions     []ReactionDocument `yaml:"reactions,omitempty" json:"reactions,omitempty"`
}

// PartnerDocument is an educt or product.
type PartnerDocument struct {
	Molecule      string  `yaml:"molecule" json:"molecule"`
	Stoichiometry float64 `yaml:"stoichiometry,omitempty" json:"stoichiometry,omitempty"`
}

// ReactionDocument describes a reaction.
type ReactionDocument struct {
	Name       string              `yaml:"name" json:"name"`
	Kinetic    string              `yaml:"kinetic,omitempty" json:"kinetic,omitempty"`
	Educts     []PartnerDocument   `yaml:"educts,omitempty" json:"educts,omitempty"`
	Products   []PartnerDocument   `yaml:"products,omitempty" json:"products,omitempty"`
	Parameters []ParameterDocument `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// SpatialStructureDocument is the spatial structure building block.
type SpatialStructureDocument struct {
	BlockDocument `yaml:",inline"`
	Containers    []SpatialContainerDocument `yaml:"containers,omitempty" json:"containers,omitempty"`
	Neighborhoods []NeighborhoodDocument     `yaml:"neighborhoods,omitempty" json:"neighborhoods,omitempty"`
}

// SpatialContainerDocument describes a compartment.
type SpatialContainerDocument struct {
	Path       string              `yaml:"path" json:"path"`
	Parameters []ParameterDocument `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// NeighborhoodDocument connects two compartments.
type NeighborhoodDocument struct {
	Name   string `yaml:"name" json:"name"`
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`
}

// TransportsDocument is the passive transport building block.
type TransportsDocument struct {
	BlockDocument `yaml:",inline"`
	Transports    []TransportDocument `yaml:"transports,omitempty" json:"transports,omitempty"`
}

// TransportDocument describes a passive transport.
type TransportDocument struct {
	Name           string              `yaml:"name" json:"name"`
	Kinetic        string              `yaml:"kinetic,omitempty" json:"kinetic,omitempty"`
	SourceCriteria []string            `yaml:"source_criteria,omitempty" json:"source_criteria,omitempty"`
	TargetCriteria []string            `yaml:"target_criteria,omitempty" json:"target_criteria,omitempty"`
	Parameters     []ParameterDocument `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// ObserversDocument is the observer building block.
type ObserversDocument struct {
	BlockDocument `yaml:",inline"`
	Observers     []ObserverDocument `yaml:"observers,omitempty" json:"observers,omitempty"`
}

// ObserverDocument describes an observer.
type ObserverDocument struct {
	Name      string   `yaml:"name" json:"name"`
	Formula   string   `yaml:"formula,omitempty" json:"formula,omitempty"`
	Dimension string   `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Molecules []string `yaml:"molecules,omitempty" json:"molecules,omitempty"`
}

// Event group node kinds.
const (
	KindEventGroup  = "event_group"
	KindEvent       = "event"
	KindApplication = "application"
	KindContainer   = "container"
)

// EventGroupsDocument is the event group building block.
type EventGroupsDocument struct {
	BlockDocument `yaml:",inline"`
	Groups        []NodeDocument `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// NodeDocument is one node of an event group tree. Top-level groups are
// always event groups; nested nodes default to plain containers.
type NodeDocument struct {
	Kind      string         `yaml:"kind,omitempty" json:"kind,omitempty"`
	Name      string         `yaml:"name" json:"name"`
	Type      string         `yaml:"type,omitempty" json:"type,omitempty"`
	Molecule  string         `yaml:"molecule,omitempty" json:"molecule,omitempty"`
	Condition string         `yaml:"condition,omitempty" json:"condition,omitempty"`
	OneTime   bool           `yaml:"one_time,omitempty" json:"one_time,omitempty"`
	Children  []NodeDocument `yaml:"children,omitempty" json:"children,omitempty"`
}

// MoleculeStartValuesDocument is the molecule start value building block.
type MoleculeStartValuesDocument struct {
	BlockDocument `yaml:",inline"`
	StartValues   []MoleculeStartValueDocument `yaml:"start_values,omitempty" json:"start_values,omitempty"`
}

// MoleculeStartValueDocument sets the initial amount of a molecule.
type MoleculeStartValueDocument struct {
	Path        string               `yaml:"path" json:"path"`
	Molecule    string               `yaml:"molecule" json:"molecule"`
	Value       *float64             `yaml:"value,omitempty" json:"value,omitempty"`
	Formula     string               `yaml:"formula,omitempty" json:"formula,omitempty"`
	Present     *bool                `yaml:"present,omitempty" json:"present,omitempty"`
	ValueOrigin *ValueOriginDocument `yaml:"value_origin,omitempty" json:"value_origin,omitempty"`
}

// ParameterStartValuesDocument is the parameter start value building block.
type ParameterStartValuesDocument struct {
	BlockDocument `yaml:",inline"`
	StartValues   []ParameterStartValueDocument `yaml:"start_values,omitempty" json:"start_values,omitempty"`
}

// ParameterStartValueDocument overrides a parameter value.
type ParameterStartValueDocument struct {
	Path        string               `yaml:"path" json:"path"`
	Value       *float64             `yaml:"value,omitempty" json:"value,omitempty"`
	Formula     string               `yaml:"formula,omitempty" json:"formula,omitempty"`
	ValueOrigin *ValueOriginDocument `yaml:"value_origin,omitempty" json:"value_origin,omitempty"`
}

// CalculationMethodDocument is a calculation method.
type CalculationMethodDocument struct {
	BlockDocument `yaml:",inline"`
	Category      string `yaml:"category" json:"category"`
}
