package formula

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
)

// ExprParser checks formulas with expr-lang. Every alias is declared as a
// float64 variable; any other identifier fails compilation.
//
// Outcomes are cached per expression and alias set, so the same formula
// shared by several blocks compiles once.
type ExprParser struct {
	opts    Options
	cache   map[string]error // compile outcome per key, nil on success
	cacheMu sync.RWMutex
}

// NewExprParser creates an expr-lang parser.
func NewExprParser(opts Options) *ExprParser {
	return &ExprParser{
		opts:  opts.withDefaults(),
		cache: make(map[string]error),
	}
}

// Parse implements entities.ExpressionParser.
func (p *ExprParser) Parse(expression string, aliases []string) error {
	if err := checkLength(expression, p.opts.MaxLength); err != nil {
		return err
	}

	key := cacheKey(expression, aliases)

	p.cacheMu.RLock()
	outcome, found := p.cache[key]
	p.cacheMu.RUnlock()
	if found {
		return outcome
	}

	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()

	// Another goroutine may have compiled it while we waited.
	if outcome, found := p.cache[key]; found {
		return outcome
	}

	outcome = p.compile(expression, aliases)
	p.cache[key] = outcome
	return outcome
}

// CacheSize returns the number of cached outcomes.
func (p *ExprParser) CacheSize() int {
	p.cacheMu.RLock()
	defer p.cacheMu.RUnlock()
	return len(p.cache)
}

func (p *ExprParser) compile(expression string, aliases []string) error {
	env := make(map[string]interface{}, len(aliases))
	for _, alias := range aliases {
		env[alias] = float64(0)
	}

	options := []expr.Option{
		expr.Env(env),
		expr.MaxNodes(uint(p.opts.MaxNodes)),
		expr.DisableAllBuiltins(),
		expr.EnableBuiltin("abs"),
		expr.EnableBuiltin("min"),
		expr.EnableBuiltin("max"),
	}
	options = append(options, mathFunctions()...)

	if _, err := expr.Compile(expression, options...); err != nil {
		return &entities.FormulaParseError{
			Cause:      err,
			Expression: expression,
			Message:    firstLine(err.Error()),
		}
	}
	return nil
}

// mathFunctions declares the unary and binary math functions. abs, min and
// max are the only expr built-ins left enabled.
func mathFunctions() []expr.Option {
	unary := map[string]func(float64) float64{
		"exp":   math.Exp,
		"ln":    math.Log,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
	}

	names := make([]string, 0, len(unary))
	for name := range unary {
		names = append(names, name)
	}
	slices.Sort(names)

	opts := make([]expr.Option, 0, len(names)+1)
	for _, name := range names {
		fn := unary[name]
		opts = append(opts, expr.Function(name, func(params ...interface{}) (interface{}, error) {
			x, err := toFloat(name, params[0])
			if err != nil {
				return nil, err
			}
			return fn(x), nil
		}, new(func(float64) float64)))
	}

	opts = append(opts, expr.Function("pow", func(params ...interface{}) (interface{}, error) {
		base, err := toFloat("pow", params[0])
		if err != nil {
			return nil, err
		}
		exponent, err := toFloat("pow", params[1])
		if err != nil {
			return nil, err
		}
		return math.Pow(base, exponent), nil
	}, new(func(float64, float64) float64)))

	return opts
}

func toFloat(fn string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%s: argument must be a number, got %T", fn, v)
	}
}

func cacheKey(expression string, aliases []string) string {
	sorted := slices.Clone(aliases)
	slices.Sort(sorted)
	return expression + "\x00" + strings.Join(sorted, "\x00")
}
