package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when a registry or API answers with 429.
	ErrRateLimited = errors.New("rate limited")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// NormalizePkgName converts a package name to its canonical form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI and other registries.
func NormalizePkgName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// hostShorthands maps repository-reference shorthand prefixes to the
// canonical "<host>/" form. Both the bare shorthand ("github:") and the
// host-colon form ("github.com:") appear in the wild, the latter mostly
// as leftovers of scp-style git remotes.
var hostShorthands = []struct{ from, to string }{
	{"github.com:", "github.com/"},
	{"github:", "github.com/"},
	{"gitlab.com:", "gitlab.com/"},
	{"gitlab:", "gitlab.com/"},
	{"bitbucket.org:", "bitbucket.org/"},
	{"bitbucket:", "bitbucket.org/"},
}

// NormalizeRepoURL converts various repository reference formats to a
// canonical https:// browsing URL.
//
// Applied transformations, in order: strip a "git+" prefix, rewrite "git@"
// and "git://" remotes to "https://", expand host shorthands ("github:",
// "gitlab.com:", ...) to "<host>/", and strip a trailing ".git".
//
// The function never fails: input that matches no known hosting prefix is
// returned unchanged (aside from whitespace trimming), and an empty string
// maps to an empty string. Running it on an already-canonical URL is a
// no-op, so it is safe to apply twice.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")

	if rest, ok := strings.CutPrefix(s, "git@"); ok {
		s = "https://" + rest
	} else if rest, ok := strings.CutPrefix(s, "git://"); ok {
		s = "https://" + rest
	}

	for _, sh := range hostShorthands {
		var done bool
		if rest, ok := strings.CutPrefix(s, sh.from); ok {
			s = "https://" + sh.to + rest
			done = true
		} else if rest, ok := strings.CutPrefix(s, "https://"+sh.from); ok {
			s = "https://" + sh.to + rest
			done = true
		} else if rest, ok := strings.CutPrefix(s, "http://"+sh.from); ok {
			s = "http://" + sh.to + rest
			done = true
		}
		if done {
			break
		}
	}

	return strings.TrimSuffix(s, ".git")
}

// SplitRepoURL breaks a canonical repository URL into host, owner and repo.
// Unparseable input degrades to empty fields rather than an error; callers
// treat an empty host the same as having no repository URL at all.
func SplitRepoURL(repoURL string) (host, owner, repo string) {
	u, err := url.Parse(repoURL)
	if err != nil || u.Host == "" {
		return "", "", ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ""
	}
	return u.Host, parts[0], strings.TrimSuffix(parts[1], ".git")
}

// BrowsePathSegment returns the path segment hosting providers use between
// the branch name and a file path when browsing a repository. Bitbucket
// uses "src", GitHub and GitLab use "blob".
func BrowsePathSegment(host string) string {
	if strings.Contains(host, "bitbucket") {
		return "src"
	}
	return "blob"
}

