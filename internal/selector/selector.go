// Package selector implements cascade evaluation: the first branch whose
// guard holds wins, and later guards are never consulted.
package selector

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/model"
)

// Selection records the outcome of evaluating one cascade: which branch won,
// whether the default was taken, and the fragment to emit. Fragment is nil
// when nothing matched and no default exists.
type Selection struct {
	Cascade  *model.Cascade
	Branch   int // index of the winning branch, -1 otherwise
	Default  bool
	Fragment *model.Fragment
}

// Selector evaluates cascades against a single immutable evaluation scope.
// Selection has no other inputs: the same cascade against the same scope
// always picks the same fragment.
type Selector struct {
	scope *hcl.EvalContext
}

// New creates a Selector bound to the given scope.
func New(scope *hcl.EvalContext) *Selector {
	return &Selector{scope: scope}
}

// Select walks the cascade's branches in declaration order and returns the
// first whose guard holds. Guards past the winner are not evaluated, so an
// error hiding in a later guard cannot affect the outcome. When no branch
// matches, the default is taken if present; otherwise the selection is
// empty.
func (s *Selector) Select(ctx context.Context, c *model.Cascade) (*Selection, error) {
	logger := ctxlog.FromContext(ctx).With("cascade", c.Name)

	for i := range c.Branches {
		ok, err := c.Branches[i].Guard.Eval(ctx, s.scope)
		if err != nil {
			return nil, fmt.Errorf("cascade %q branch %d: %w", c.Name, i+1, err)
		}
		if ok {
			logger.Debug("Branch selected.", "branch", i+1)
			return &Selection{Cascade: c, Branch: i, Fragment: &c.Branches[i].Fragment}, nil
		}
	}

	if c.Default != nil {
		logger.Debug("Default selected.")
		return &Selection{Cascade: c, Branch: -1, Default: true, Fragment: c.Default}, nil
	}

	logger.Debug("No branch matched and no default exists.")
	return &Selection{Cascade: c, Branch: -1}, nil
}
