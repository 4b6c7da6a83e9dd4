package entities

import "github.com/simkit-dev/modelcheck/internal/domain/values"

// Parameter is a named quantity. Either Value or Formula defines it.
type Parameter struct {
	Name        string
	Formula     string
	Value       *float64
	Dimension   string
	ValueOrigin values.ValueOrigin
}

// MoleculeBuilder declares a molecule available to the model.
type MoleculeBuilder struct {
	Name                string
	IsFloating          bool
	DefaultStartFormula string
	Parameters          []*Parameter
}

// ReactionPartner is one educt or product of a reaction.
type ReactionPartner struct {
	Molecule      string
	Stoichiometry float64
}

// ReactionBuilder declares a reaction and its kinetics.
type ReactionBuilder struct {
	Name           string
	KineticFormula string
	Educts         []ReactionPartner
	Products       []ReactionPartner
	Parameters     []*Parameter
}

// SpatialContainer is a physical compartment of the spatial structure.
type SpatialContainer struct {
	Path       string
	Parameters []*Parameter
}

// Neighborhood connects two spatial containers.
type Neighborhood struct {
	Name   string
	First  string
	Second string
}

// TransportBuilder declares a passive transport between containers.
type TransportBuilder struct {
	Name           string
	KineticFormula string
	SourceCriteria []string
	TargetCriteria []string
	Parameters     []*Parameter
}

// ObserverBuilder declares a derived output of the model.
type ObserverBuilder struct {
	Name      string
	Formula   string
	Dimension string
	Molecules []string
}

// MoleculeStartValue sets the initial amount of a molecule in a container.
type MoleculeStartValue struct {
	Path         string
	MoleculeName string
	Value        *float64
	Formula      string
	IsPresent    bool
	ValueOrigin  values.ValueOrigin
}

// ParameterStartValue overrides a parameter value at a path.
type ParameterStartValue struct {
	Path        string
	Value       *float64
	Formula     string
	ValueOrigin values.ValueOrigin
}
