package emit

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// formatGo runs generated Go source through goimports-style processing:
// gofmt layout plus import grouping and pruning. A formatting failure is
// surfaced as an error because syntactically broken generated Go is a
// definition bug, not something to write to disk.
func formatGo(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("goimports: %w", err)
	}
	return out, nil
}
