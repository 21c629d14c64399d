package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/schema"
)

// translateUnit converts the HCL-specific unit schema into the agnostic
// model, constructing cascades as it goes so a definition error surfaces
// with the owning unit still known.
func (l *Loader) translateUnit(u *schema.Unit) (*model.Unit, error) {
	cascades := make([]*model.Cascade, 0, len(u.Cascades))
	for _, c := range u.Cascades {
		cascade, err := l.translateCascade(c)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", u.Name, err)
		}
		cascades = append(cascades, cascade)
	}
	return model.NewUnit(u.Name, u.Output, u.Prelude, cascades)
}

// translateCascade converts a cascade block, preserving branch declaration
// order exactly. Order is meaning here.
func (l *Loader) translateCascade(c *schema.Cascade) (*model.Cascade, error) {
	branches := make([]model.Branch, 0, len(c.Branches))
	for _, b := range c.Branches {
		branches = append(branches, model.Branch{
			Guard:    newGuard(b.When),
			Fragment: model.Fragment{Body: b.Body},
		})
	}
	var def *model.Fragment
	if c.Default != nil {
		def = &model.Fragment{Body: c.Default.Body}
	}
	return model.NewCascade(c.Name, branches, def)
}

// translateProfile converts a profile block. The vars expression must be a
// constant object: it is evaluated with no variable scope at all, so a
// reference to anything is already an error.
func (l *Loader) translateProfile(p *schema.Profile) (*model.Profile, error) {
	if p.Name == "" {
		return nil, &model.DefinitionError{Kind: "profile", Detail: "name is empty"}
	}
	prof := &model.Profile{
		Name:     p.Name,
		OS:       p.OS,
		Arch:     p.Arch,
		PtrBits:  p.PtrBits,
		Features: p.Features,
	}
	if p.Vars == nil {
		return prof, nil
	}

	val, diags := p.Vars.Value(nil)
	if diags.HasErrors() {
		return nil, &model.DefinitionError{Kind: "profile", Name: p.Name, Detail: fmt.Sprintf("vars must be a constant object: %s", diags.Error())}
	}
	if val.IsNull() {
		return prof, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, &model.DefinitionError{Kind: "profile", Name: p.Name, Detail: fmt.Sprintf("vars must be an object, got %s", val.Type().FriendlyName())}
	}

	prof.Vars = make(map[string]cty.Value, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		prof.Vars[k.AsString()] = v
	}
	return prof, nil
}
