package model

import (
	"github.com/zclconf/go-cty/cty"
)

// Profile is a named build configuration: the target platform facts and
// user-defined variables that guards are evaluated against.
//
// A zero field means "unset". Profile resolution overlays set fields onto
// host defaults, so a profile only has to name what differs from the machine
// running the generator.
type Profile struct {
	Name     string
	OS       string
	Arch     string
	PtrBits  int
	Features []string
	Vars     map[string]cty.Value
}

// Clone returns an independent copy of the profile. Resolution mutates its
// input while applying overrides, and the registry's copy must stay pristine
// so repeated runs resolve identically.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		Name:    p.Name,
		OS:      p.OS,
		Arch:    p.Arch,
		PtrBits: p.PtrBits,
	}
	if len(p.Features) > 0 {
		out.Features = append([]string(nil), p.Features...)
	}
	if len(p.Vars) > 0 {
		out.Vars = make(map[string]cty.Value, len(p.Vars))
		for k, v := range p.Vars {
			out.Vars[k] = v
		}
	}
	return out
}
