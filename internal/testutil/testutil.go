// Package testutil provides shared test helpers for setting up Makefiles.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempMakefile writes content to a Makefile in a fresh temp directory and
// returns the directory path.
func TempMakefile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	WriteMakefile(t, dir, content)
	return dir
}

// WriteMakefile writes content to dir/Makefile.
func WriteMakefile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
