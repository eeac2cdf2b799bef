package license

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain identifier", "MIT", true},
		{"spdx compound", "BSD-3-Clause", true},
		{"suffixed", "MIT License", true},
		{"combined with slash", "MIT/X11", true},
		{"apache", "Apache-2.0", true},
		{"free text with url", `See LICENSE file: http://example.com/license`, false},
		{"quoted text", `"THE BEER-WARE LICENSE"`, false},
		{"unknown but plausible", "EUPL-1.2", true},
		{"lowercase not matched", "mit", true}, // no disallowed chars, passes through
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLocalFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"COPYING", "LICENSE.md", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// LICENSE.md precedes COPYING in the probe order.
	if got := FindLocalFile(dir); got != "LICENSE.md" {
		t.Errorf("FindLocalFile() = %q, want LICENSE.md", got)
	}
}

func TestFindLocalFileCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "LiCeNsE"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindLocalFile(dir); got != "" {
		t.Errorf("FindLocalFile() = %q, want no match for unconventional casing", got)
	}
}

func TestFindLocalFileMissingDir(t *testing.T) {
	if got := FindLocalFile(filepath.Join(t.TempDir(), "nope")); got != "" {
		t.Errorf("FindLocalFile() = %q, want empty for missing dir", got)
	}
}

func TestFindLocalFileIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "LICENSE"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindLocalFile(dir); got != "" {
		t.Errorf("FindLocalFile() = %q, want empty when LICENSE is a directory", got)
	}
}

func TestScrape(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{"mit page", `<span class="license">MIT</span>`, "MIT"},
		{"word boundary", `COMMITTED TRANSMIT`, ""},
		{"priority order", `dual licensed: BSD and MIT`, "MIT"},
		{"apache", `Licensed under the Apache License 2.0`, "Apache"},
		{"nothing", `no license info here`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scrape(tt.page); got != tt.want {
				t.Errorf("Scrape() = %q, want %q", got, tt.want)
			}
		})
	}
}
