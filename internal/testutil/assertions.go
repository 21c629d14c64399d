package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFileRendered checks that a unit produced the given file under the
// harness output directory and that its content matches exactly.
func AssertFileRendered(t *testing.T, result *HarnessResult, relPath, wantContent string) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(result.OutDir, filepath.FromSlash(relPath)))
	require.NoError(t, err, "expected rendered file %q to exist", relPath)
	require.Equal(t, wantContent, string(data), "rendered content mismatch for %q", relPath)
}

// AssertFileAbsent checks that no file was written at the given path, which is
// how skipped and dry-run units must behave.
func AssertFileAbsent(t *testing.T, result *HarnessResult, relPath string) {
	t.Helper()

	_, err := os.Stat(filepath.Join(result.OutDir, filepath.FromSlash(relPath)))
	require.True(t, os.IsNotExist(err), "expected %q not to be written", relPath)
}

// AssertBranchSelected checks the log output within a HarnessResult to confirm
// that a specific branch won its cascade. It abstracts the underlying log
// format, making tests more resilient to internal refactoring.
func AssertBranchSelected(t *testing.T, result *HarnessResult, cascadeName string, branch int) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("msg=\"Branch selected.\" cascade=%s branch=%d", cascadeName, branch)

	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for branch %d of cascade %q was not found in logs", branch, cascadeName,
	)
}

// AssertDefaultSelected checks the log output to confirm that a cascade fell
// through every branch and used its default block.
func AssertDefaultSelected(t *testing.T, result *HarnessResult, cascadeName string) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("msg=\"Default selected.\" cascade=%s", cascadeName)

	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for the default of cascade %q was not found in logs", cascadeName,
	)
}
