package model

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Unit is one generated output file: an optional literal prelude followed by
// the fragments its cascades select, in declaration order.
type Unit struct {
	Name     string
	Output   string
	Prelude  string
	Cascades []*Cascade
}

// NewUnit validates unit-local invariants: a usable relative output path and
// cascade names that are unique within the unit. Cross-unit invariants, such
// as output path collisions, are the registry's job.
func NewUnit(name, output, prelude string, cascades []*Cascade) (*Unit, error) {
	if name == "" {
		return nil, &DefinitionError{Kind: "unit", Detail: "name is empty"}
	}
	if output == "" {
		return nil, &DefinitionError{Kind: "unit", Name: name, Detail: "output path is required"}
	}
	if filepath.IsAbs(output) {
		return nil, &DefinitionError{Kind: "unit", Name: name, Detail: fmt.Sprintf("output path %q must be relative to the output directory", output)}
	}
	clean := path.Clean(filepath.ToSlash(output))
	if clean == "." {
		return nil, &DefinitionError{Kind: "unit", Name: name, Detail: fmt.Sprintf("output path %q is not a file path", output)}
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return nil, &DefinitionError{Kind: "unit", Name: name, Detail: fmt.Sprintf("output path %q escapes the output directory", output)}
	}
	seen := make(map[string]struct{}, len(cascades))
	for _, c := range cascades {
		if _, dup := seen[c.Name]; dup {
			return nil, &DefinitionError{Kind: "unit", Name: name, Detail: fmt.Sprintf("duplicate cascade %q", c.Name)}
		}
		seen[c.Name] = struct{}{}
	}
	return &Unit{Name: name, Output: clean, Prelude: prelude, Cascades: cascades}, nil
}
