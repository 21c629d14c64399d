package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/fsutil"
	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/schema"
)

// Loader is the HCL-specific implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file at or under path and translates the discovered
// blocks into the agnostic model. Files are processed in sorted path order,
// so unit declaration order, and with it render order, does not depend on
// directory walk quirks.
func (l *Loader) Load(ctx context.Context, path string) (*model.Set, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl definition files found under %s", path)
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	parser := hclparse.NewParser()
	set := &model.Set{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		if err := checkDefaultTerminal(hclFile.Body); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		var root schema.Root
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, u := range root.Units {
			unit, err := l.translateUnit(u)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			set.Units = append(set.Units, unit)
		}
		for _, p := range root.Profiles {
			prof, err := l.translateProfile(p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			set.Profiles = append(set.Profiles, prof)
		}
	}

	logger.Debug("Definition loading complete.", "units", len(set.Units), "profiles", len(set.Profiles))
	return set, nil
}
