package integration_tests

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/condgen/internal/app"
	"github.com/vk/condgen/internal/testutil"
)

// Test for: many units render correctly through the worker pool
func TestRendering_ManyUnits_AllRenderThroughThePool(t *testing.T) {
	// --- Arrange ---
	// More units than workers, spread over two files, so the pool has to
	// reuse workers and the loader has to merge the directory.
	files := map[string]string{}
	for i := 0; i < 8; i++ {
		file := "defs/a.hcl"
		if i >= 4 {
			file = "defs/b.hcl"
		}
		files[file] += fmt.Sprintf(`
			unit "unit_%d" {
				output = "unit_%d.txt"

				cascade "impl" {
					branch {
						when = os == "linux"
						body = "content %d"
					}
				}
			}
		`, i, i, i)
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, func(c *app.Config) {
		c.WorkerCount = 3
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	for i := 0; i < 8; i++ {
		testutil.AssertFileRendered(t, result,
			fmt.Sprintf("unit_%d.txt", i), fmt.Sprintf("content %d\n", i))
	}
}
