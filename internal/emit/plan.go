package emit

import (
	"fmt"
	"io"

	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/selector"
)

// UnitPlan records what one unit resolved to: the per-cascade selections and
// the final content. Skipped is true when the assembled content was blank
// and no file was (or would be) written.
type UnitPlan struct {
	Unit       *model.Unit
	Selections []*selector.Selection
	Content    []byte
	Skipped    bool
}

// WritePlan prints a human-readable selection report for the given plans, in
// unit declaration order. This is the dry-run output.
func WritePlan(w io.Writer, plans []*UnitPlan) {
	for _, p := range plans {
		if p.Skipped {
			fmt.Fprintf(w, "unit %q -> %s (skipped: nothing selected)\n", p.Unit.Name, p.Unit.Output)
		} else {
			fmt.Fprintf(w, "unit %q -> %s\n", p.Unit.Name, p.Unit.Output)
		}
		for _, sel := range p.Selections {
			switch {
			case sel.Default:
				fmt.Fprintf(w, "  cascade %q: default\n", sel.Cascade.Name)
			case sel.Branch >= 0:
				fmt.Fprintf(w, "  cascade %q: branch %d of %d\n", sel.Cascade.Name, sel.Branch+1, len(sel.Cascade.Branches))
			default:
				fmt.Fprintf(w, "  cascade %q: no match\n", sel.Cascade.Name)
			}
		}
	}
}
