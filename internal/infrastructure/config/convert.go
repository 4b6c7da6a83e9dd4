package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// ToEntities converts a document into a build configuration.
// All conversion problems are collected and reported together.
func ToEntities(doc *Document) (*entities.BuildConfiguration, error) {
	if doc == nil {
		return nil, fmt.Errorf("configuration document is nil")
	}

	c := &converter{}
	cfg := &entities.BuildConfiguration{
		Metadata: entities.ConfigurationMetadata{
			Name:        doc.Metadata.Name,
			Version:     doc.Metadata.Version,
			Description: doc.Metadata.Description,
		},
	}

	if d := doc.Molecules; d != nil {
		b := entities.NewMoleculeBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, m := range d.Molecules {
			b.Add(&entities.MoleculeBuilder{
				Name:                m.Name,
				IsFloating:          m.Floating,
				DefaultStartFormula: m.StartFormula,
				Parameters:          c.parameters(d.Name, m.Name, m.Parameters),
			})
		}
		cfg.Molecules = b
	}

	if d := doc.Reactions; d != nil {
		b := entities.NewReactionBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, r := range d.Reactions {
			b.Add(&entities.ReactionBuilder{
				Name:           r.Name,
				KineticFormula: r.Kinetic,
				Educts:         partners(r.Educts),
				Products:       partners(r.Products),
				Parameters:     c.parameters(d.Name, r.Name, r.Parameters),
			})
		}
		cfg.Reactions = b
	}

	if d := doc.SpatialStructure; d != nil {
		b := entities.NewSpatialStructure(d.Name)
		c.block(b, d.BlockDocument)
		for _, sc := range d.Containers {
			b.AddContainers(&entities.SpatialContainer{
				Path:       sc.Path,
				Parameters: c.parameters(d.Name, sc.Path, sc.Parameters),
			})
		}
		for _, n := range d.Neighborhoods {
			b.AddNeighborhoods(entities.Neighborhood{Name: n.Name, First: n.First, Second: n.Second})
		}
		cfg.SpatialStructure = b
	}

	if d := doc.PassiveTransports; d != nil {
		b := entities.NewPassiveTransportBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, t := range d.Transports {
			b.Add(&entities.TransportBuilder{
				Name:           t.Name,
				KineticFormula: t.Kinetic,
				SourceCriteria: slices.Clone(t.SourceCriteria),
				TargetCriteria: slices.Clone(t.TargetCriteria),
				Parameters:     c.parameters(d.Name, t.Name, t.Parameters),
			})
		}
		cfg.PassiveTransports = b
	}

	if d := doc.Observers; d != nil {
		b := entities.NewObserverBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, o := range d.Observers {
			b.Add(&entities.ObserverBuilder{
				Name:      o.Name,
				Formula:   o.Formula,
				Dimension: o.Dimension,
				Molecules: slices.Clone(o.Molecules),
			})
		}
		cfg.Observers = b
	}

	if d := doc.EventGroups; d != nil {
		b := entities.NewEventGroupBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, g := range d.Groups {
			group := entities.NewEventGroupBuilder(g.Name)
			group.EventGroupType = g.Type
			for _, child := range g.Children {
				group.Add(c.node(d.Name, child))
			}
			b.Add(group)
		}
		cfg.EventGroups = b
	}

	if d := doc.MoleculeStartValues; d != nil {
		b := entities.NewMoleculeStartValuesBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, sv := range d.StartValues {
			present := true
			if sv.Present != nil {
				present = *sv.Present
			}
			msv := &entities.MoleculeStartValue{
				Path:         sv.Path,
				MoleculeName: sv.Molecule,
				Value:        sv.Value,
				Formula:      sv.Formula,
				IsPresent:    present,
			}
			c.valueOrigin(&msv.ValueOrigin, sv.ValueOrigin, d.Name, sv.Path+"|"+sv.Molecule)
			b.Add(msv)
		}
		cfg.MoleculeStartValues = b
	}

	if d := doc.ParameterStartValues; d != nil {
		b := entities.NewParameterStartValuesBuildingBlock(d.Name)
		c.block(b, d.BlockDocument)
		for _, sv := range d.StartValues {
			psv := &entities.ParameterStartValue{
				Path:    sv.Path,
				Value:   sv.Value,
				Formula: sv.Formula,
			}
			c.valueOrigin(&psv.ValueOrigin, sv.ValueOrigin, d.Name, sv.Path)
			b.Add(psv)
		}
		cfg.ParameterStartValues = b
	}

	for _, d := range doc.CalculationMethods {
		cm := entities.NewCalculationMethod(d.Name, d.Category)
		c.block(cm, d.BlockDocument)
		cfg.CalculationMethods = append(cfg.CalculationMethods, cm)
	}

	if len(c.errs) > 0 {
		return nil, fmt.Errorf("configuration conversion failed:\n  - %s", strings.Join(c.errs, "\n  - "))
	}
	return cfg, nil
}

// describedBlock is the mutable surface shared by every building block.
type describedBlock interface {
	Name() string
	SetDescription(string)
	AddFormula(entities.Formula) error
}

type converter struct {
	errs []string
}

func (c *converter) fail(format string, args ...interface{}) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func (c *converter) block(b describedBlock, d BlockDocument) {
	b.SetDescription(d.Description)
	for _, fd := range d.Formulas {
		f, err := formula(fd)
		if err != nil {
			c.fail("block %q: %v", b.Name(), err)
			continue
		}
		if err := b.AddFormula(f); err != nil {
			c.fail("block %q: %v", b.Name(), err)
		}
	}
}

func formula(d FormulaDocument) (entities.Formula, error) {
	switch d.Type {
	case FormulaExplicit:
		aliases := make([]string, 0, len(d.References))
		for alias := range d.References {
			aliases = append(aliases, alias)
		}
		slices.Sort(aliases)

		refs := make([]entities.FormulaReference, 0, len(aliases))
		for _, alias := range aliases {
			refs = append(refs, entities.FormulaReference{Alias: alias, Path: d.References[alias]})
		}
		return entities.NewExplicitFormula(d.Name, d.Expression, refs...).WithDimension(d.Dimension), nil
	case FormulaConstant:
		return entities.NewConstantFormula(d.Name, d.Value), nil
	case FormulaTable:
		points := make([]entities.TablePoint, 0, len(d.Points))
		for _, p := range d.Points {
			points = append(points, entities.TablePoint{X: p.X, Y: p.Y})
		}
		return entities.NewTableFormula(d.Name, points...), nil
	default:
		return nil, fmt.Errorf("formula %q has unknown type %q", d.Name, d.Type)
	}
}

func (c *converter) parameters(block, owner string, docs []ParameterDocument) []*entities.Parameter {
	if len(docs) == 0 {
		return nil
	}
	out := make([]*entities.Parameter, 0, len(docs))
	for _, d := range docs {
		p := &entities.Parameter{
			Name:      d.Name,
			Formula:   d.Formula,
			Value:     d.Value,
			Dimension: d.Dimension,
		}
		c.valueOrigin(&p.ValueOrigin, d.ValueOrigin, block, owner+"|"+d.Name)
		out = append(out, p)
	}
	return out
}

// valueOrigin fills target from d, looking source and method up in the catalog.
func (c *converter) valueOrigin(target *values.ValueOrigin, d *ValueOriginDocument, block, location string) {
	if d == nil {
		return
	}

	source, err := values.ParseValueOriginSource(d.Source)
	if err != nil {
		c.fail("block %q, %s: %v", block, location, err)
		return
	}
	method, err := values.ParseValueOriginDeterminationMethod(d.Method)
	if err != nil {
		c.fail("block %q, %s: %v", block, location, err)
		return
	}

	origin := values.NewValueOrigin(source, method, d.Description)
	origin.ID = d.ID
	origin.Default = d.Default
	target.UpdateFrom(origin, true)
}

func (c *converter) node(block string, d NodeDocument) entities.Container {
	children := make([]entities.Container, 0, len(d.Children))
	for _, child := range d.Children {
		children = append(children, c.node(block, child))
	}

	switch d.Kind {
	case KindApplication:
		return entities.NewApplicationBuilder(d.Name, d.Molecule, children...)
	case KindEventGroup:
		g := entities.NewEventGroupBuilder(d.Name, children...)
		g.EventGroupType = d.Type
		return g
	case KindEvent:
		e := entities.NewEventBuilder(d.Name, d.Condition)
		e.OneTime = d.OneTime
		e.Add(children...)
		return e
	case KindContainer, "":
		return entities.NewContainer(d.Name, children...)
	default:
		c.fail("block %q: node %q has unknown kind %q", block, d.Name, d.Kind)
		return entities.NewContainer(d.Name, children...)
	}
}

func partners(docs []PartnerDocument) []entities.ReactionPartner {
	if len(docs) == 0 {
		return nil
	}
	out := make([]entities.ReactionPartner, 0, len(docs))
	for _, d := range docs {
		s := d.Stoichiometry
		if s == 0 {
			s = 1
		}
		out = append(out, entities.ReactionPartner{Molecule: d.Molecule, Stoichiometry: s})
	}
	return out
}
