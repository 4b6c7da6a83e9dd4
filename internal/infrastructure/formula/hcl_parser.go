package formula

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
)

// HCLParser checks formulas written as HCL expressions. Every variable must
// be a declared alias and every function call one of MathFunctions.
type HCLParser struct {
	opts      Options
	functions map[string]struct{}
}

// NewHCLParser creates an HCL expression parser.
func NewHCLParser(opts Options) *HCLParser {
	fns := make(map[string]struct{}, len(MathFunctions))
	for _, f := range MathFunctions {
		fns[f] = struct{}{}
	}
	return &HCLParser{opts: opts.withDefaults(), functions: fns}
}

// Parse implements entities.ExpressionParser.
func (p *HCLParser) Parse(expression string, aliases []string) error {
	if err := checkLength(expression, p.opts.MaxLength); err != nil {
		return err
	}

	parsed, diags := hclsyntax.ParseExpression([]byte(expression), "formula", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return &entities.FormulaParseError{
			Cause:      diags,
			Expression: expression,
			Message:    diagnosticsMessage(diags),
		}
	}

	functions := make(map[string]struct{})
	nodes := 0
	if diags := hclsyntax.VisitAll(parsed, func(node hclsyntax.Node) hcl.Diagnostics {
		nodes++
		return checkNode(node, functions)
	}); diags.HasErrors() {
		return &entities.FormulaParseError{
			Expression: expression,
			Message:    diagnosticsMessage(diags),
		}
	}

	if nodes > p.opts.MaxNodes {
		return &entities.FormulaParseError{
			Expression: expression,
			Message:    fmt.Sprintf("expression exceeds maximum allowed nodes (%d)", p.opts.MaxNodes),
		}
	}

	declared := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		declared[a] = struct{}{}
	}

	var undeclared []string
	for _, traversal := range parsed.Variables() {
		name := traversal.RootName()
		if _, ok := declared[name]; !ok && !slices.Contains(undeclared, name) {
			undeclared = append(undeclared, name)
		}
	}
	if len(undeclared) > 0 {
		return &entities.FormulaParseError{
			Expression: expression,
			Message:    fmt.Sprintf("unknown name %s", strings.Join(undeclared, ", ")),
		}
	}

	names := make([]string, 0, len(functions))
	for f := range functions {
		names = append(names, f)
	}
	slices.Sort(names)
	for _, f := range names {
		if _, ok := p.functions[f]; !ok {
			return &entities.FormulaParseError{
				Expression: expression,
				Message:    fmt.Sprintf("unknown function %s", f),
			}
		}
	}

	return nil
}

// checkNode accepts the arithmetic subset of HCL and records called functions.
// Collections, comprehensions, splats, templates and attribute or index
// access on aliases are rejected.
func checkNode(node hclsyntax.Node, functions map[string]struct{}) hcl.Diagnostics {
	switch x := node.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[x.Name] = struct{}{}
		return nil
	case *hclsyntax.ScopeTraversalExpr:
		if len(x.Traversal) > 1 {
			return unsupportedNode(node, "attribute or index access")
		}
		return nil
	case *hclsyntax.RelativeTraversalExpr, *hclsyntax.IndexExpr:
		return unsupportedNode(node, "attribute or index access")
	case *hclsyntax.LiteralValueExpr, *hclsyntax.BinaryOpExpr, *hclsyntax.UnaryOpExpr,
		*hclsyntax.ConditionalExpr, *hclsyntax.ParenthesesExpr:
		return nil
	case *hclsyntax.ObjectConsExpr, *hclsyntax.ObjectConsKeyExpr:
		return unsupportedNode(node, "object")
	case *hclsyntax.TupleConsExpr:
		return unsupportedNode(node, "tuple")
	case *hclsyntax.ForExpr:
		return unsupportedNode(node, "for expression")
	case *hclsyntax.SplatExpr, *hclsyntax.AnonSymbolExpr:
		return unsupportedNode(node, "splat expression")
	case *hclsyntax.TemplateExpr, *hclsyntax.TemplateWrapExpr, *hclsyntax.TemplateJoinExpr:
		return unsupportedNode(node, "string template")
	default:
		return unsupportedNode(node, fmt.Sprintf("%T", node))
	}
}

func unsupportedNode(node hclsyntax.Node, kind string) hcl.Diagnostics {
	rng := node.Range()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unsupported expression",
		Detail:   fmt.Sprintf("%s is not allowed in a formula", kind),
		Subject:  &rng,
	}}
}

func diagnosticsMessage(diags hcl.Diagnostics) string {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Detail != "" {
			return fmt.Sprintf("%s: %s", d.Summary, d.Detail)
		}
		return d.Summary
	}
	return firstLine(diags.Error())
}
