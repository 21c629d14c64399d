package registry

import (
	"fmt"

	"github.com/vk/condgen/internal/model"
)

// Registry holds the loaded units and profiles for a single generator run,
// indexed by name, with unit declaration order preserved because render
// output follows it.
type Registry struct {
	UnitRegistry    map[string]*model.Unit
	ProfileRegistry map[string]*model.Profile

	unitOrder []*model.Unit
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		UnitRegistry:    make(map[string]*model.Unit),
		ProfileRegistry: make(map[string]*model.Profile),
	}
}

// Populate copies a loaded definition set into the registry. Cross-object
// invariants are enforced here: unit and profile names must be unique across
// all definition files, and no two units may write the same output path.
func (r *Registry) Populate(set *model.Set) error {
	outputs := make(map[string]string, len(set.Units))
	for _, u := range set.Units {
		if _, dup := r.UnitRegistry[u.Name]; dup {
			return &model.DefinitionError{Kind: "unit", Name: u.Name, Detail: "declared more than once"}
		}
		if owner, clash := outputs[u.Output]; clash {
			return &model.DefinitionError{Kind: "unit", Name: u.Name, Detail: fmt.Sprintf("output path %q already written by unit %q", u.Output, owner)}
		}
		r.UnitRegistry[u.Name] = u
		r.unitOrder = append(r.unitOrder, u)
		outputs[u.Output] = u.Name
	}
	for _, p := range set.Profiles {
		if _, dup := r.ProfileRegistry[p.Name]; dup {
			return &model.DefinitionError{Kind: "profile", Name: p.Name, Detail: "declared more than once"}
		}
		r.ProfileRegistry[p.Name] = p
	}
	return nil
}

// UnitsInOrder returns the units in declaration order.
func (r *Registry) UnitsInOrder() []*model.Unit {
	return r.unitOrder
}

// Profile looks up a profile by name. The caller gets a copy: resolution
// overlays overrides onto the result, and the registry's entry must stay
// pristine so repeated runs resolve identically.
func (r *Registry) Profile(name string) (*model.Profile, bool) {
	p, ok := r.ProfileRegistry[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}
