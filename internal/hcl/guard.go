package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/condgen/internal/expr"
	"github.com/vk/condgen/internal/model"
)

// guard adapts one `when` expression to the model.Guard interface. Flag
// references and function calls are collected once at construction so the
// registry can validate whole chains without evaluating anything.
type guard struct {
	expr  hcl.Expression
	refs  []string
	funcs []string
}

func newGuard(e hcl.Expression) *guard {
	refs, funcs := expr.Collect(e)
	return &guard{expr: e, refs: refs, funcs: funcs}
}

// FlagRefs returns the configuration flags the guard references.
func (g *guard) FlagRefs() []string { return g.refs }

// FuncCalls returns the functions the guard calls.
func (g *guard) FuncCalls() []string { return g.funcs }

// Eval evaluates the guard against the given scope. Flag lookups are strict:
// referencing a flag the scope does not declare is an UnknownFlagError, even
// when the verdict could be reached without it. A non-boolean result is a
// GuardTypeError; there is no truthiness coercion.
func (g *guard) Eval(_ context.Context, scope *hcl.EvalContext) (bool, error) {
	for _, root := range g.refs {
		if !scopeDeclares(scope, root) {
			return false, &model.UnknownFlagError{Flag: root}
		}
	}

	v, diags := g.expr.Value(scope)
	if diags.HasErrors() {
		return false, fmt.Errorf("guard at %s: %w", g.expr.Range(), diags)
	}
	if v.IsNull() {
		return false, &model.GuardTypeError{Type: "null"}
	}
	if !v.Type().Equals(cty.Bool) {
		return false, &model.GuardTypeError{Type: v.Type().FriendlyName()}
	}
	return v.True(), nil
}

func scopeDeclares(scope *hcl.EvalContext, name string) bool {
	for ec := scope; ec != nil; ec = ec.Parent() {
		if _, ok := ec.Variables[name]; ok {
			return true
		}
	}
	return false
}
