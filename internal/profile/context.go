// Package profile resolves build profiles and compiles them into the
// evaluation scope that guards run against.
package profile

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/condgen/internal/model"
)

// unixLike lists the operating systems for which the derived `unix` flag is
// true. Mirrors the Go toolchain's notion of a Unix-like GOOS.
var unixLike = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// Context is a resolved profile compiled into its guard-evaluation form: the
// variable scope, the function table, and with them the vocabulary of flags
// that guards may reference.
type Context struct {
	profile *model.Profile
	scope   *hcl.EvalContext
}

// NewContext compiles a resolved profile. The profile must be complete at
// this point: a pointer width outside 16/32/64 or a user var shadowing a
// built-in flag name is a definition error.
func NewContext(p *model.Profile) (*Context, error) {
	switch p.PtrBits {
	case 16, 32, 64:
	default:
		return nil, &model.DefinitionError{Kind: "profile", Name: p.Name, Detail: fmt.Sprintf("ptr_bits must be 16, 32 or 64, got %d", p.PtrBits)}
	}

	features := dedupe(p.Features)
	vars := map[string]cty.Value{
		"os":       cty.StringVal(p.OS),
		"arch":     cty.StringVal(p.Arch),
		"ptr_bits": cty.NumberIntVal(int64(p.PtrBits)),
		"unix":     cty.BoolVal(unixLike[p.OS]),
		"features": featureList(features),
	}
	for name, v := range p.Vars {
		if _, builtin := vars[name]; builtin {
			return nil, &model.DefinitionError{Kind: "profile", Name: p.Name, Detail: fmt.Sprintf("var %q shadows a built-in flag", name)}
		}
		vars[name] = v
	}

	enabled := make(map[string]bool, len(features))
	for _, f := range features {
		enabled[f] = true
	}

	scope := &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			"feature":  featureFunc(enabled),
			"contains": stdlib.ContainsFunc,
			"length":   stdlib.LengthFunc,
			"upper":    stdlib.UpperFunc,
			"lower":    stdlib.LowerFunc,
		},
	}
	return &Context{profile: p, scope: scope}, nil
}

// Scope returns the evaluation scope guards run against.
func (c *Context) Scope() *hcl.EvalContext {
	return c.scope
}

// Profile returns the resolved profile this context was compiled from.
func (c *Context) Profile() *model.Profile {
	return c.profile
}

// Declares reports whether name is a configuration flag guards may reference
// under this profile.
func (c *Context) Declares(name string) bool {
	_, ok := c.scope.Variables[name]
	return ok
}

// HasFunction reports whether name is callable from guards.
func (c *Context) HasFunction(name string) bool {
	_, ok := c.scope.Functions[name]
	return ok
}

// Vocabulary returns the sorted names of every flag guards may reference.
// Used for hints in unknown-flag messages.
func (c *Context) Vocabulary() []string {
	names := make([]string, 0, len(c.scope.Variables))
	for name := range c.scope.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func featureList(features []string) cty.Value {
	if len(features) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(features))
	for _, f := range features {
		vals = append(vals, cty.StringVal(f))
	}
	return cty.ListVal(vals)
}

func dedupe(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
