package expr

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	e, diags := hclsyntax.ParseExpression([]byte(src), "guard.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), "parse %q: %s", src, diags.Error())
	return e
}

func TestCollect(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		wantRefs  []string
		wantFuncs []string
	}{
		{
			name:     "simple comparison",
			src:      `os == "linux"`,
			wantRefs: []string{"os"},
		},
		{
			name:      "function call only",
			src:       `feature("simd")`,
			wantFuncs: []string{"feature"},
		},
		{
			name:      "boolean combination",
			src:       `contains(features, "neon") && ptr_bits == 64`,
			wantRefs:  []string{"features", "ptr_bits"},
			wantFuncs: []string{"contains"},
		},
		{
			name:      "nested calls and duplicates collapse",
			src:       `upper(os) == upper(os) || feature("a")`,
			wantRefs:  []string{"os"},
			wantFuncs: []string{"feature", "upper"},
		},
		{
			name:     "index traversal reports root",
			src:      `vendor["id"] == 3`,
			wantRefs: []string{"vendor"},
		},
		{
			name:      "conditional expression",
			src:       `unix ? feature("mmap") : false`,
			wantRefs:  []string{"unix"},
			wantFuncs: []string{"feature"},
		},
		{
			name: "literal has neither",
			src:  `true`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			refs, funcs := Collect(parseExpr(t, tc.src))

			assert.Equal(t, tc.wantRefs, refs)
			assert.Equal(t, tc.wantFuncs, funcs)
		})
	}
}

func TestCollectMultipleExpressions(t *testing.T) {
	refs, funcs := Collect(
		parseExpr(t, `os == "linux"`),
		nil,
		parseExpr(t, `length(features) > 0 && arch == "arm64"`),
	)

	assert.Equal(t, []string{"arch", "features", "os"}, refs, "Roots should merge sorted across expressions")
	assert.Equal(t, []string{"length"}, funcs)
}
