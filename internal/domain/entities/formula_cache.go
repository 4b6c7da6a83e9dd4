package entities

import "fmt"

// FormulaCache holds the formulas referenced inside a building block.
// Formulas are unique by name and iterate in insertion order.
type FormulaCache struct {
	formulas []Formula
	byName   map[string]Formula
}

// NewFormulaCache creates a cache holding the given formulas.
// Panics on a duplicate name; use Add to handle that case gracefully.
func NewFormulaCache(formulas ...Formula) *FormulaCache {
	c := &FormulaCache{byName: make(map[string]Formula)}
	for _, f := range formulas {
		if err := c.Add(f); err != nil {
			panic(err)
		}
	}
	return c
}

// Add appends a formula. Names must be unique within the cache.
func (c *FormulaCache) Add(f Formula) error {
	if f == nil {
		return fmt.Errorf("cannot add nil formula")
	}
	if c.byName == nil {
		c.byName = make(map[string]Formula)
	}
	if _, exists := c.byName[f.Name()]; exists {
		return fmt.Errorf("duplicate formula name: %s", f.Name())
	}
	c.formulas = append(c.formulas, f)
	c.byName[f.Name()] = f
	return nil
}

// Get returns the formula with the given name, or nil.
func (c *FormulaCache) Get(name string) Formula {
	if c == nil {
		return nil
	}
	return c.byName[name]
}

// Contains reports whether a formula with the given name is cached.
func (c *FormulaCache) Contains(name string) bool {
	return c.Get(name) != nil
}

// All returns the formulas in insertion order.
func (c *FormulaCache) All() []Formula {
	if c == nil {
		return nil
	}
	out := make([]Formula, len(c.formulas))
	copy(out, c.formulas)
	return out
}

// Explicit returns the explicit formulas in insertion order. An explicit
// formula that cannot check its own expression is returned wrapped so that
// validating it always fails.
func (c *FormulaCache) Explicit() []ParsableFormula {
	if c == nil {
		return nil
	}
	var out []ParsableFormula
	for _, f := range c.formulas {
		if !f.IsExplicit() {
			continue
		}
		if explicit, ok := f.(ParsableFormula); ok {
			out = append(out, explicit)
			continue
		}
		out = append(out, unparsableFormula{Formula: f})
	}
	return out
}

// Len returns the number of cached formulas.
func (c *FormulaCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.formulas)
}

// unparsableFormula is an explicit formula without an expression check.
type unparsableFormula struct {
	Formula
}

func (f unparsableFormula) Validate(ExpressionParser) error {
	return &FormulaParseError{Formula: f.Name(), Message: "formula cannot be parsed"}
}
