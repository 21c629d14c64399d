package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Definition File Structures ---

// Branch represents a `branch` block within a cascade. The guard expression
// is captured unevaluated; it is only ever evaluated against the active
// profile's scope.
type Branch struct {
	When hcl.Expression `hcl:"when"`
	Body string         `hcl:"body"`
}

// Default represents the optional terminal `default` block of a cascade.
type Default struct {
	Body string `hcl:"body"`
}

// Cascade represents a `cascade` block: an ordered chain of guarded branches
// with an optional default.
type Cascade struct {
	Name     string    `hcl:"name,label"`
	Branches []*Branch `hcl:"branch,block"`
	Default  *Default  `hcl:"default,block"`
}

// Unit represents a `unit` block from a definition file. It describes one
// generated output file.
type Unit struct {
	Name     string     `hcl:"name,label"`
	Output   string     `hcl:"output"`
	Prelude  string     `hcl:"prelude,optional"`
	Cascades []*Cascade `hcl:"cascade,block"`
}

// Profile represents a `profile` block: a named build configuration that
// guards can be evaluated against. Unset fields fall back to the host values
// at resolution time. The vars expression must be a constant object; its
// entries become additional root variables in the guard scope.
type Profile struct {
	Name     string         `hcl:"name,label"`
	OS       string         `hcl:"os,optional"`
	Arch     string         `hcl:"arch,optional"`
	PtrBits  int            `hcl:"ptr_bits,optional"`
	Features []string       `hcl:"features,optional"`
	Vars     hcl.Expression `hcl:"vars,optional"`
}

// Root represents the top-level structure of a definition file. Unknown
// blocks and attributes are deliberately not tolerated: a misspelled block
// name should fail the load, not silently drop a cascade.
type Root struct {
	Units    []*Unit    `hcl:"unit,block"`
	Profiles []*Profile `hcl:"profile,block"`
}
