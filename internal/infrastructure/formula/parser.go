// Package formula provides the expression parsers used to check explicit
// formulas. Two dialects are supported: expr (the default) and hcl.
package formula

import (
	"fmt"
	"strings"

	"github.com/simkit-dev/modelcheck/internal/domain/entities"
)

// Supported dialects.
const (
	DialectExpr = "expr"
	DialectHCL  = "hcl"
)

// Default limits.
const (
	DefaultMaxLength = 2000
	DefaultMaxNodes  = 500
)

// MathFunctions are the only functions either dialect accepts.
var MathFunctions = []string{"exp", "ln", "log10", "sqrt", "pow", "sin", "cos", "tan", "abs", "min", "max"}

// Options configures a parser.
type Options struct {
	Dialect   string
	MaxLength int
	MaxNodes  int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Dialect:   DialectExpr,
		MaxLength: DefaultMaxLength,
		MaxNodes:  DefaultMaxNodes,
	}
}

func (o Options) withDefaults() Options {
	if o.Dialect == "" {
		o.Dialect = DialectExpr
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	return o
}

// NewParser returns the parser for the configured dialect.
func NewParser(opts Options) (entities.ExpressionParser, error) {
	opts = opts.withDefaults()

	switch strings.ToLower(opts.Dialect) {
	case DialectExpr:
		return NewExprParser(opts), nil
	case DialectHCL:
		return NewHCLParser(opts), nil
	default:
		return nil, fmt.Errorf("unsupported formula dialect %q (supported: %s, %s)", opts.Dialect, DialectExpr, DialectHCL)
	}
}

// checkLength rejects expressions longer than max characters.
func checkLength(expression string, max int) error {
	if n := len(expression); n > max {
		return &entities.FormulaParseError{
			Expression: expression,
			Message:    fmt.Sprintf("expression too long (max %d chars): %d chars", max, n),
		}
	}
	return nil
}

// firstLine trims a multi-line diagnostic down to its headline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
