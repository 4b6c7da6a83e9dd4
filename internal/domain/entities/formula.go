// Package entities contains domain entities for the model-building domain.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Subject is any configuration object a validation message can point at.
type Subject interface {
	Name() string
	ObjectType() string
}

// Formula is a named computation attached to a building block.
type Formula interface {
	Subject

	// IsExplicit reports whether the formula is backed by an expression that
	// must be parsed before the model can be built.
	IsExplicit() bool
}

// ParsableFormula is an explicit formula that can check its own expression.
type ParsableFormula interface {
	Formula
	Validate(parser ExpressionParser) error
}

// ExpressionParser checks that an expression is syntactically valid and only
// references the given aliases. Implementations live in infrastructure.
type ExpressionParser interface {
	Parse(expression string, aliases []string) error
}

// FormulaReference binds an alias used inside an expression to an object path
// in the model (e.g. "V" -> "Organism|Liver|Volume").
type FormulaReference struct {
	Alias string
	Path  string
}

// ExplicitFormula is a formula defined by a textual expression.
type ExplicitFormula struct {
	name       string
	expression string
	dimension  string
	references []FormulaReference
}

// NewExplicitFormula creates an explicit formula.
func NewExplicitFormula(name, expression string, references ...FormulaReference) *ExplicitFormula {
	refs := make([]FormulaReference, len(references))
	copy(refs, references)
	return &ExplicitFormula{
		name:       name,
		expression: expression,
		references: refs,
	}
}

// WithDimension sets the dimension of the formula result.
func (f *ExplicitFormula) WithDimension(dimension string) *ExplicitFormula {
	f.dimension = dimension
	return f
}

func (f *ExplicitFormula) Name() string       { return f.name }
func (f *ExplicitFormula) ObjectType() string { return "ExplicitFormula" }
func (f *ExplicitFormula) IsExplicit() bool   { return true }

// Expression returns the formula text.
func (f *ExplicitFormula) Expression() string { return f.expression }

// Dimension returns the dimension of the formula result.
func (f *ExplicitFormula) Dimension() string { return f.dimension }

// References returns a copy of the alias bindings.
func (f *ExplicitFormula) References() []FormulaReference {
	out := make([]FormulaReference, len(f.references))
	copy(out, f.references)
	return out
}

// Aliases returns the aliases usable inside the expression, in declaration order.
func (f *ExplicitFormula) Aliases() []string {
	aliases := make([]string, 0, len(f.references))
	for _, ref := range f.references {
		aliases = append(aliases, ref.Alias)
	}
	return aliases
}

// Validate parses the expression with the given parser.
// Any failure is reported as a *FormulaParseError.
func (f *ExplicitFormula) Validate(parser ExpressionParser) error {
	if parser == nil {
		return &FormulaParseError{Formula: f.name, Expression: f.expression, Message: "no expression parser configured"}
	}

	if strings.TrimSpace(f.expression) == "" {
		return &FormulaParseError{Formula: f.name, Expression: f.expression, Message: "formula string is empty"}
	}

	if err := parser.Parse(f.expression, f.Aliases()); err != nil {
		var parseErr *FormulaParseError
		if errors.As(err, &parseErr) {
			named := *parseErr
			if named.Formula == "" {
				named.Formula = f.name
			}
			if named.Expression == "" {
				named.Expression = f.expression
			}
			return &named
		}
		return &FormulaParseError{Formula: f.name, Expression: f.expression, Message: err.Error(), Cause: err}
	}

	return nil
}

// ConstantFormula always evaluates to a fixed value.
type ConstantFormula struct {
	name  string
	value float64
}

// NewConstantFormula creates a constant formula.
func NewConstantFormula(name string, value float64) *ConstantFormula {
	return &ConstantFormula{name: name, value: value}
}

func (f *ConstantFormula) Name() string       { return f.name }
func (f *ConstantFormula) ObjectType() string { return "ConstantFormula" }
func (f *ConstantFormula) IsExplicit() bool   { return false }

// Value returns the constant.
func (f *ConstantFormula) Value() float64 { return f.value }

// TablePoint is one sample of a table formula.
type TablePoint struct {
	X float64
	Y float64
}

// TableFormula interpolates between sampled points.
type TableFormula struct {
	name   string
	points []TablePoint
}

// NewTableFormula creates a table formula.
func NewTableFormula(name string, points ...TablePoint) *TableFormula {
	p := make([]TablePoint, len(points))
	copy(p, points)
	return &TableFormula{name: name, points: p}
}

func (f *TableFormula) Name() string       { return f.name }
func (f *TableFormula) ObjectType() string { return "TableFormula" }
func (f *TableFormula) IsExplicit() bool   { return false }

// Points returns a copy of the sampled points.
func (f *TableFormula) Points() []TablePoint {
	out := make([]TablePoint, len(f.points))
	copy(out, f.points)
	return out
}

// FormulaParseError indicates an explicit formula could not be parsed.
type FormulaParseError struct {
	Cause      error
	Formula    string
	Expression string
	Message    string
}

func (e *FormulaParseError) Error() string {
	if e.Formula == "" {
		return fmt.Sprintf("formula parse error: %s", e.Message)
	}
	return fmt.Sprintf("formula %s: parse error: %s", e.Formula, e.Message)
}

func (e *FormulaParseError) Unwrap() error {
	return e.Cause
}
