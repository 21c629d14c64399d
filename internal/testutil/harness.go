package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/condgen/internal/app"
	"github.com/vk/condgen/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// LogOutput captures everything the app wrote, logs and dry-run plans alike.
	LogOutput string
	Err       error
	App       *app.App
	OutDir    string
}

// RunIntegrationTest provides a standardized harness for running an end-to-end
// generation pass over the given definition files. The target is pinned to
// linux/amd64/64 so results do not depend on the host the tests run on.
func RunIntegrationTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithConfig(t, files, nil)
}

// RunIntegrationTestWithConfig is like RunIntegrationTest but lets the caller
// adjust the app configuration before the run.
func RunIntegrationTestWithConfig(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	defsDir := filepath.Join(tmpDir, "defs")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(defsDir, 0755))
	require.NoError(t, os.Mkdir(outDir, 0755))

	// 2. Write all definition files to the temporary directory. The test
	//    provides relative paths (e.g. "defs/main.hcl"), which naturally
	//    creates the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		dir := filepath.Dir(filePath)
		require.NoError(t, os.MkdirAll(dir, 0755))
		err = os.WriteFile(filePath, []byte(content), 0644)
		require.NoError(t, err)
	}

	// 3. Configure the app against the dedicated, non-overlapping subdirectories.
	appConfig := &app.Config{
		ConfigPath:  defsDir,
		OutDir:      outDir,
		OS:          "linux",
		Arch:        "amd64",
		PtrBits:     64,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}
	if mutate != nil {
		mutate(appConfig)
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("CONDGEN_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.New(logBuffer, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			App:       nil,
			OutDir:    outDir,
		}
	}

	runErr := testApp.Run(context.Background())

	if os.Getenv("CONDGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutDir:    outDir,
	}
}
