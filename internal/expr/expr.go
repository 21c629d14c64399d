// Package expr provides static analysis of guard expressions: which
// configuration flags they reference and which functions they call.
package expr

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Inspectable is implemented by guards that can report the configuration
// flags they reference and the functions they call without being evaluated.
// The registry uses it to check guards against a profile's vocabulary before
// any selection runs.
type Inspectable interface {
	FlagRefs() []string
	FuncCalls() []string
}

// Collect walks the given expressions and returns the unique root variable
// names they reference and the unique function names they call. Both slices
// are sorted to ensure a deterministic order.
func Collect(exprs ...hcl.Expression) (refs, funcs []string) {
	rootSet := make(map[string]struct{})
	funcSet := make(map[string]struct{})

	for _, e := range exprs {
		if e == nil {
			continue
		}

		// Use the built-in Variables() method for robust variable collection.
		for _, traversal := range e.Variables() {
			rootSet[traversal.RootName()] = struct{}{}
		}

		// Walk the syntax tree for what Variables() doesn't give us: function calls.
		if syntaxExpr, ok := e.(hclsyntax.Expression); ok {
			walkForFunctions(syntaxExpr, funcSet)
		}
	}

	return sortedKeys(rootSet), sortedKeys(funcSet)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// walkForFunctions recursively walks the AST, looking only for function calls.
func walkForFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, functions)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, functions)
		walkForFunctions(e.RHS, functions)
	case *hclsyntax.ConditionalExpr:
		walkForFunctions(e.Condition, functions)
		walkForFunctions(e.TrueResult, functions)
		walkForFunctions(e.FalseResult, functions)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, functions)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			walkForFunctions(part, functions)
		}
	case *hclsyntax.TemplateWrapExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			walkForFunctions(item, functions)
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			walkForFunctions(item.KeyExpr, functions)
			walkForFunctions(item.ValueExpr, functions)
		}
	case *hclsyntax.ForExpr:
		walkForFunctions(e.CollExpr, functions)
		walkForFunctions(e.KeyExpr, functions)
		walkForFunctions(e.ValExpr, functions)
		walkForFunctions(e.CondExpr, functions)
	case *hclsyntax.IndexExpr:
		walkForFunctions(e.Collection, functions)
		walkForFunctions(e.Key, functions)
	case *hclsyntax.SplatExpr:
		walkForFunctions(e.Source, functions)
		walkForFunctions(e.Each, functions)
	case *hclsyntax.RelativeTraversalExpr:
		walkForFunctions(e.Source, functions)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, functions)
	}
}
