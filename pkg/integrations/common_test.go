package integrations

import (
	"testing"
)

func TestNormalizePkgName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FastAPI", "fastapi"},
		{"my_package", "my-package"},
		{"  Spaces  ", "spaces"},
		{"already-normal", "already-normal"},
	}
	for _, tt := range tests {
		if got := NormalizePkgName(tt.input); got != tt.want {
			t.Errorf("NormalizePkgName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"scp style remote", "git@github.com:acme/widget.git", "https://github.com/acme/widget"},
		{"git protocol", "git://github.com/acme/widget", "https://github.com/acme/widget"},
		{"git plus https", "git+https://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"github shorthand", "github:acme/widget", "https://github.com/acme/widget"},
		{"gitlab shorthand", "gitlab:acme/widget", "https://gitlab.com/acme/widget"},
		{"bitbucket shorthand", "bitbucket:acme/widget", "https://bitbucket.org/acme/widget"},
		{"host colon form", "github.com:acme/widget", "https://github.com/acme/widget"},
		{"canonical passthrough", "https://github.com/acme/widget", "https://github.com/acme/widget"},
		{"unknown host passthrough", "https://example.com/foo", "https://example.com/foo"},
		{"whitespace trimmed", "  https://github.com/acme/widget  ", "https://github.com/acme/widget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.input); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalizing twice must yield the same result as normalizing once.
func TestNormalizeRepoURLIdempotent(t *testing.T) {
	inputs := []string{
		"git@github.com:acme/widget.git",
		"github:acme/widget",
		"git+https://gitlab.com/acme/widget.git",
		"https://bitbucket.org/acme/widget",
		"not a url at all",
	}
	for _, input := range inputs {
		once := NormalizeRepoURL(input)
		twice := NormalizeRepoURL(once)
		if once != twice {
			t.Errorf("NormalizeRepoURL not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSplitRepoURL(t *testing.T) {
	tests := []struct {
		input string
		host  string
		owner string
		repo  string
	}{
		{"https://github.com/acme/widget", "github.com", "acme", "widget"},
		{"https://gitlab.com/acme/widget/tree/main", "gitlab.com", "acme", "widget"},
		{"https://github.com/acme/widget.git", "github.com", "acme", "widget"},
		{"https://github.com/acme", "", "", ""},
		{"not a url", "", "", ""},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		host, owner, repo := SplitRepoURL(tt.input)
		if host != tt.host || owner != tt.owner || repo != tt.repo {
			t.Errorf("SplitRepoURL(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.input, host, owner, repo, tt.host, tt.owner, tt.repo)
		}
	}
}

func TestBrowsePathSegment(t *testing.T) {
	if got := BrowsePathSegment("bitbucket.org"); got != "src" {
		t.Errorf("BrowsePathSegment(bitbucket.org) = %q, want src", got)
	}
	if got := BrowsePathSegment("github.com"); got != "blob" {
		t.Errorf("BrowsePathSegment(github.com) = %q, want blob", got)
	}
	if got := BrowsePathSegment("gitlab.com"); got != "blob" {
		t.Errorf("BrowsePathSegment(gitlab.com) = %q, want blob", got)
	}
}
