package testutil

import (
	"testing"

	"github.com/vk/condgen/internal/app"
)

// RunHCLDefsTest provides a simplified harness for running a single definition
// string. It wraps the main integration test harness, placing the string where
// the loader expects to discover it.
func RunHCLDefsTest(t *testing.T, defsHCL string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"defs/main.hcl": defsHCL,
	}

	return RunIntegrationTest(t, files)
}

// RunHCLDefsDryRun is RunHCLDefsTest with writing disabled, for tests that
// only care about the selection plan.
func RunHCLDefsDryRun(t *testing.T, defsHCL string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"defs/main.hcl": defsHCL,
	}

	return RunIntegrationTestWithConfig(t, files, func(c *app.Config) {
		c.DryRun = true
	})
}
