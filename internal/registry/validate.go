package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/expr"
	"github.com/vk/condgen/internal/profile"
)

// ValidateGuards performs a strict parity check between guard vocabulary and
// the active profile before anything is evaluated: every flag a guard
// references must be declared by the profile, and every function it calls
// must exist. All violations are collected in one pass rather than failing
// one guard per run.
func (r *Registry) ValidateGuards(ctx context.Context, pctx *profile.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, u := range r.unitOrder {
		for _, c := range u.Cascades {
			for i, b := range c.Branches {
				insp, ok := b.Guard.(expr.Inspectable)
				if !ok {
					logger.Warn("Guard is not statically inspectable; unknown flags will only surface at selection time.", "unit", u.Name, "cascade", c.Name, "branch", i+1)
					continue
				}
				for _, flag := range insp.FlagRefs() {
					if !pctx.Declares(flag) {
						errs = append(errs, fmt.Sprintf("unit '%s', cascade '%s', branch %d: unknown configuration flag %q (known flags: %s)",
							u.Name, c.Name, i+1, flag, strings.Join(pctx.Vocabulary(), ", ")))
					}
				}
				for _, fn := range insp.FuncCalls() {
					if !pctx.HasFunction(fn) {
						errs = append(errs, fmt.Sprintf("unit '%s', cascade '%s', branch %d: unknown function %q", u.Name, c.Name, i+1, fn))
					}
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("guard validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
