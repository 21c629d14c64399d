package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/emit"
	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/profile"
	"github.com/vk/condgen/internal/selector"
)

// Run executes one full generation pass: resolve the active profile,
// validate every guard against its vocabulary, then render all units.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	prof, err := a.resolveProfile()
	if err != nil {
		return err
	}
	a.logger.Info("Profile resolved.", "profile", prof.Name, "os", prof.OS, "arch", prof.Arch, "ptr_bits", prof.PtrBits, "features", prof.Features)

	pctx, err := profile.NewContext(prof)
	if err != nil {
		return err
	}

	if err := a.registry.ValidateGuards(ctx, pctx); err != nil {
		return err
	}
	a.logger.Debug("Guard validation passed.")

	units := a.registry.UnitsInOrder()
	if len(units) == 0 {
		a.logger.Warn("No units defined, nothing to render.")
		return nil
	}

	a.logger.Info("🚀 Starting render...", "units", len(units), "workers", a.config.WorkerCount, "dry_run", a.config.DryRun)
	renderer := emit.NewRenderer(selector.New(pctx.Scope()), emit.Options{
		OutDir:  a.config.OutDir,
		Workers: a.config.WorkerCount,
		DryRun:  a.config.DryRun,
	})
	plans, err := renderer.Render(ctx, units)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if a.config.DryRun {
		emit.WritePlan(a.outW, plans)
	}

	written := 0
	for _, p := range plans {
		if !p.Skipped {
			written++
		}
	}
	a.logger.Info("🏁 Render finished.", "written", written, "skipped", len(plans)-written)
	return nil
}

// resolveProfile assembles the effective profile from the registry and the
// command-line overrides.
func (a *App) resolveProfile() (*model.Profile, error) {
	var base *model.Profile
	if a.config.ProfileName != "" {
		p, ok := a.registry.Profile(a.config.ProfileName)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q (defined: %s)", a.config.ProfileName, a.definedProfiles())
		}
		base = p
	}

	var vars map[string]cty.Value
	if len(a.config.SetVars) > 0 {
		vars = make(map[string]cty.Value, len(a.config.SetVars))
		for _, assignment := range a.config.SetVars {
			name, v, err := profile.ParseVar(assignment)
			if err != nil {
				return nil, err
			}
			vars[name] = v
		}
	}

	return profile.Resolve(base, profile.Overrides{
		OS:       a.config.OS,
		Arch:     a.config.Arch,
		PtrBits:  a.config.PtrBits,
		Features: a.config.Features,
		Vars:     vars,
	}), nil
}

func (a *App) definedProfiles() string {
	if len(a.registry.ProfileRegistry) == 0 {
		return "none"
	}
	names := make([]string, 0, len(a.registry.ProfileRegistry))
	for name := range a.registry.ProfileRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
