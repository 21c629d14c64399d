package model

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Fragment is an opaque unit of source text. The renderer emits fragment
// bodies verbatim; nothing in the pipeline parses or rewrites them.
type Fragment struct {
	Body string
}

// Guard is a boolean predicate over build-configuration flags. Guards are
// supplied by the definition loader; the selector treats them as opaque and
// only ever asks for a verdict against an evaluation scope.
type Guard interface {
	Eval(ctx context.Context, scope *hcl.EvalContext) (bool, error)
}

// Branch pairs a guard with the fragment it protects.
type Branch struct {
	Guard    Guard
	Fragment Fragment
}

// Cascade is an ordered chain of guarded branches with an optional trailing
// default fragment. Branch order is declaration order and is significant:
// selection honors the first matching branch only, so reordering branches
// changes meaning.
type Cascade struct {
	Name     string
	Branches []Branch
	Default  *Fragment
}

// NewCascade validates and constructs a cascade. A cascade with no branches
// and no default can never select anything, so construction fails instead of
// deferring the mistake to every future selection.
func NewCascade(name string, branches []Branch, def *Fragment) (*Cascade, error) {
	if name == "" {
		return nil, &DefinitionError{Kind: "cascade", Detail: "name is empty"}
	}
	if len(branches) == 0 && def == nil {
		return nil, &DefinitionError{Kind: "cascade", Name: name, Detail: "no branches and no default block"}
	}
	for i, b := range branches {
		if b.Guard == nil {
			return nil, &DefinitionError{Kind: "cascade", Name: name, Detail: fmt.Sprintf("branch %d has no guard", i+1)}
		}
	}
	return &Cascade{Name: name, Branches: branches, Default: def}, nil
}
