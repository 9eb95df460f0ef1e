package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes content to <dir>/.tint/<name>, creating parent directories.
// Returns the written path.
func WriteConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".tint", name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
