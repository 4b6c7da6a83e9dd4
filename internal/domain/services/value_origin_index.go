package services

import (
	"slices"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// ValueOriginUsage locates one value that carries an origin.
type ValueOriginUsage struct {
	BuildingBlock string
	Owner         string
	Quantity      string
}

// ValueOriginEntry is one distinct origin of a configuration together with
// every value that uses it.
type ValueOriginEntry struct {
	Origin *values.ValueOrigin
	Usages []ValueOriginUsage
}

// Key returns the identity key shared by every usage of the entry.
func (e ValueOriginEntry) Key() string {
	return e.Origin.Key()
}

// ValueOriginIndex deduplicates the value origins of a configuration.
// Two origins collapse when they are equal; the first one seen is kept as
// the representative.
type ValueOriginIndex struct {
	entries   []*ValueOriginEntry
	byKey     map[string]*ValueOriginEntry
	undefined int
}

// NewValueOriginIndex creates an empty index.
func NewValueOriginIndex() *ValueOriginIndex {
	return &ValueOriginIndex{byKey: make(map[string]*ValueOriginEntry)}
}

// BuildValueOriginIndex indexes every parameter and start value origin of cfg.
// Parameters are visited in block order: molecules, reactions, spatial
// structure, passive transports, then molecule and parameter start values.
func BuildValueOriginIndex(cfg *entities.BuildConfiguration) *ValueOriginIndex {
	idx := NewValueOriginIndex()
	if cfg == nil {
		return idx
	}

	if b := cfg.Molecules; b != nil {
		for _, m := range b.Molecules() {
			idx.addParameters(b.Name(), m.Name, m.Parameters)
		}
	}
	if b := cfg.Reactions; b != nil {
		for _, r := range b.Reactions() {
			idx.addParameters(b.Name(), r.Name, r.Parameters)
		}
	}
	if b := cfg.SpatialStructure; b != nil {
		for _, c := range b.Containers() {
			idx.addParameters(b.Name(), c.Path, c.Parameters)
		}
	}
	if b := cfg.PassiveTransports; b != nil {
		for _, t := range b.Transports() {
			idx.addParameters(b.Name(), t.Name, t.Parameters)
		}
	}
	if b := cfg.MoleculeStartValues; b != nil {
		for _, sv := range b.StartValues() {
			idx.Add(&sv.ValueOrigin, ValueOriginUsage{BuildingBlock: b.Name(), Owner: sv.Path, Quantity: sv.MoleculeName})
		}
	}
	if b := cfg.ParameterStartValues; b != nil {
		for _, sv := range b.StartValues() {
			idx.Add(&sv.ValueOrigin, ValueOriginUsage{BuildingBlock: b.Name(), Owner: sv.Path})
		}
	}

	return idx
}

func (i *ValueOriginIndex) addParameters(block, owner string, params []*entities.Parameter) {
	for _, p := range params {
		if p == nil {
			continue
		}
		i.Add(&p.ValueOrigin, ValueOriginUsage{BuildingBlock: block, Owner: owner, Quantity: p.Name})
	}
}

// Add records one usage of origin. Undefined origins are only counted.
func (i *ValueOriginIndex) Add(origin *values.ValueOrigin, usage ValueOriginUsage) {
	if origin == nil || origin.IsUndefined() {
		i.undefined++
		return
	}

	key := origin.Key()
	entry, ok := i.byKey[key]
	if !ok {
		entry = &ValueOriginEntry{Origin: origin.Clone()}
		i.byKey[key] = entry
		i.entries = append(i.entries, entry)
	}
	entry.Usages = append(entry.Usages, usage)
}

// Entries returns the distinct origins ordered by their identity key.
func (i *ValueOriginIndex) Entries() []ValueOriginEntry {
	out := make([]ValueOriginEntry, 0, len(i.entries))
	for _, e := range i.entries {
		usages := make([]ValueOriginUsage, len(e.Usages))
		copy(usages, e.Usages)
		out = append(out, ValueOriginEntry{Origin: e.Origin, Usages: usages})
	}
	slices.SortStableFunc(out, func(a, b ValueOriginEntry) int {
		return a.Origin.Compare(b.Origin)
	})
	return out
}

// Len returns the number of distinct defined origins.
func (i *ValueOriginIndex) Len() int {
	return len(i.entries)
}

// UndefinedCount returns how many values carry no origin at all.
func (i *ValueOriginIndex) UndefinedCount() int {
	return i.undefined
}

// Lookup returns the entry equal to origin, if any.
func (i *ValueOriginIndex) Lookup(origin *values.ValueOrigin) (ValueOriginEntry, bool) {
	if origin == nil {
		return ValueOriginEntry{}, false
	}
	e, ok := i.byKey[origin.Key()]
	if !ok {
		return ValueOriginEntry{}, false
	}
	return *e, true
}
