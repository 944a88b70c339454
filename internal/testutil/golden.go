// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Golden compares got with testdata/<name>.golden and reports the first
// differing line. Setting GOLDEN_UPDATE rewrites the file instead.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		WriteFile(t, "testdata", name+".golden", got)
		return
	}

	want := ReadFile(t, filepath.Join("testdata", name+".golden"))
	if line, ok := firstDiff(string(want), string(got)); !ok {
		t.Errorf("%s differs at line %d\nwant:\n%s\ngot:\n%s", name, line, want, got)
	}
}

// firstDiff returns the 1-based line where want and got diverge.
func firstDiff(want, got string) (int, bool) {
	if want == got {
		return 0, true
	}
	wantLines := strings.SplitAfter(want, "\n")
	gotLines := strings.SplitAfter(got, "\n")
	for i := 0; i < len(wantLines) && i < len(gotLines); i++ {
		if wantLines[i] != gotLines[i] {
			return i + 1, false
		}
	}
	return min(len(wantLines), len(gotLines)) + 1, false
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}

// WriteFile creates dir/name with data and returns its path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
