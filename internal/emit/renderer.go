// Package emit renders units to disk: it runs each unit's cascades through
// the selector, assembles prelude and selected fragments, formats Go
// outputs, and writes files atomically.
package emit

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/selector"
)

// Renderer renders units against one bound selector.
type Renderer struct {
	sel     *selector.Selector
	outDir  string
	workers int
	dryRun  bool
}

// Options configures a Renderer.
type Options struct {
	OutDir  string
	Workers int
	DryRun  bool
}

// NewRenderer creates a Renderer. A worker count below one is clamped to a
// single worker.
func NewRenderer(sel *selector.Selector, opts Options) *Renderer {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Renderer{
		sel:     sel,
		outDir:  opts.OutDir,
		workers: workers,
		dryRun:  opts.DryRun,
	}
}

// Render evaluates and renders all units. Units are independent of one
// another, so they are spread across a worker pool; plans and errors are
// reported in declaration order no matter which worker finished first.
func (r *Renderer) Render(ctx context.Context, units []*model.Unit) ([]*UnitPlan, error) {
	logger := ctxlog.FromContext(ctx)

	plans := make([]*UnitPlan, len(units))
	errs := make([]error, len(units))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := r.workers
	if workers > len(units) {
		workers = len(units)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			workerLogger.Debug("Render worker started.")
			for i := range jobs {
				if ctx.Err() != nil {
					errs[i] = ctx.Err()
					continue
				}
				plans[i], errs[i] = r.renderUnit(ctx, units[i])
			}
			workerLogger.Debug("Render worker finished.")
		}(w)
	}

	for i := range units {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", units[i].Name, err)
		}
	}
	return plans, nil
}

// renderUnit assembles one unit: prelude first, then each cascade's selected
// fragment in declaration order, newline-terminated. A unit whose assembled
// content is blank is skipped with a warning instead of producing an empty
// file.
func (r *Renderer) renderUnit(ctx context.Context, u *model.Unit) (*UnitPlan, error) {
	logger := ctxlog.FromContext(ctx).With("unit", u.Name)

	plan := &UnitPlan{Unit: u, Selections: make([]*selector.Selection, 0, len(u.Cascades))}
	var b strings.Builder
	if u.Prelude != "" {
		writePiece(&b, u.Prelude)
	}
	for _, c := range u.Cascades {
		sel, err := r.sel.Select(ctx, c)
		if err != nil {
			return nil, err
		}
		plan.Selections = append(plan.Selections, sel)
		if sel.Fragment == nil {
			continue
		}
		writePiece(&b, sel.Fragment.Body)
	}

	if strings.TrimSpace(b.String()) == "" {
		logger.Warn("Unit selected nothing; no file will be written.", "output", u.Output)
		plan.Skipped = true
		return plan, nil
	}

	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	content := []byte(b.String())
	if strings.HasSuffix(u.Output, ".go") {
		formatted, err := formatGo(u.Output, content)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", u.Output, err)
		}
		content = formatted
	}
	plan.Content = content

	if r.dryRun {
		logger.Debug("Dry run; skipping write.", "output", u.Output)
		return plan, nil
	}

	dest := filepath.Join(r.outDir, filepath.FromSlash(u.Output))
	if err := writeFileAtomic(dest, content); err != nil {
		return nil, err
	}
	logger.Debug("Unit rendered.", "output", dest, "bytes", len(content))
	return plan, nil
}

// writePiece appends one piece, inserting a newline when the previous piece
// did not end with one. Fragments stay verbatim otherwise.
func writePiece(b *strings.Builder, piece string) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString(piece)
}
