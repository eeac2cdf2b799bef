package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIgnoreFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Match("anything") {
		t.Error("empty matcher should match nothing")
	}
	if len(m.Patterns()) != 0 {
		t.Errorf("patterns = %v", m.Patterns())
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	dir := writeIgnoreFile(t, "# internal packages\n\n@acme/*\n  lodash  \n")

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := m.Patterns(); len(got) != 2 || got[0] != "@acme/*" || got[1] != "lodash" {
		t.Errorf("patterns = %v", got)
	}
}

func TestLoadInvalidPattern(t *testing.T) {
	dir := writeIgnoreFile(t, "valid-*\n[unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Error("Load() should reject an unparseable pattern")
	}
}

func TestMatch(t *testing.T) {
	dir := writeIgnoreFile(t, "@types/*\nlodash\ntest-*\n")
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"lodash", true},
		{"lodash-es", false},
		{"@types/node", true},
		{"@types/react-dom", true},
		{"@acme/types", false},
		{"test-helpers", true},
		{"latest", false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.name); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
