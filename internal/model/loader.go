package model

import "context"

// Set is the unified, format-agnostic result of loading definition files:
// the render units and the named build profiles they declare, in declaration
// order.
type Set struct {
	Units    []*Unit
	Profiles []*Profile
}

// Loader is the interface for a format-specific definition loader.
type Loader interface {
	// Load reads definitions from path, which may be a single file or a
	// directory tree, and translates them into the format-agnostic model.
	Load(ctx context.Context, path string) (*Set, error)
}
