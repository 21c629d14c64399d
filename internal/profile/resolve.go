package profile

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/condgen/internal/model"
)

// Host returns a profile describing the machine the generator runs on. Every
// resolution starts from it, so a definition file with no profiles still
// generates something sensible.
func Host() *model.Profile {
	return &model.Profile{
		Name:    "host",
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		PtrBits: strconv.IntSize,
	}
}

// Overrides carries command-line adjustments applied on top of a base
// profile. Zero-valued fields leave the base untouched; Features and Vars
// are additive, with override vars winning on a name clash.
type Overrides struct {
	OS       string
	Arch     string
	PtrBits  int
	Features []string
	Vars     map[string]cty.Value
}

// Resolve produces the effective profile: host defaults, overlaid with the
// base profile's set fields, overlaid with overrides. The base may be nil
// when no named profile was requested.
func Resolve(base *model.Profile, ov Overrides) *model.Profile {
	eff := Host()
	if base != nil {
		eff.Name = base.Name
		overlay(eff, base.OS, base.Arch, base.PtrBits, base.Features, base.Vars)
	}
	overlay(eff, ov.OS, ov.Arch, ov.PtrBits, ov.Features, ov.Vars)
	return eff
}

func overlay(eff *model.Profile, os, arch string, ptrBits int, features []string, vars map[string]cty.Value) {
	if os != "" {
		eff.OS = os
	}
	if arch != "" {
		eff.Arch = arch
	}
	if ptrBits != 0 {
		eff.PtrBits = ptrBits
	}
	eff.Features = append(eff.Features, features...)
	if len(vars) > 0 && eff.Vars == nil {
		eff.Vars = make(map[string]cty.Value, len(vars))
	}
	for k, v := range vars {
		eff.Vars[k] = v
	}
}

// ParseVar parses one NAME=VALUE variable assignment. The value is tried as
// a boolean literal, then as a number, and falls back to a string, so
// `-set vendor=acme` and `-set simd_lanes=4` both do what they look like.
func ParseVar(arg string) (string, cty.Value, error) {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", cty.NilVal, fmt.Errorf("malformed variable %q, want NAME=VALUE", arg)
	}
	if !hclsyntax.ValidIdentifier(name) {
		return "", cty.NilVal, fmt.Errorf("variable name %q is not a valid identifier", name)
	}
	switch raw {
	case "true":
		return name, cty.True, nil
	case "false":
		return name, cty.False, nil
	}
	if n, err := cty.ParseNumberVal(raw); err == nil {
		return name, n, nil
	}
	return name, cty.StringVal(raw), nil
}
