// Package license holds the static knowledge used during license
// resolution: the set of recognized license identifiers, the conventional
// license filenames probed on disk and in repositories, and a best-effort
// scraper for registry landing pages.
package license

import (
	"os"
	"regexp"
	"strings"
)

// Known is the flat allow-list of license identifiers a manifest or API
// response may plausibly declare. Matching is substring-based and
// case-sensitive: "BSD-3-Clause" matches via "BSD", "MIT License" via "MIT".
var Known = []string{
	"MIT",
	"ISC",
	"BSD",
	"Apache",
	"Artistic",
	"CC0",
	"CDDL",
	"EPL",
	"GPL",
	"LGPL",
	"MPL",
	"Python",
	"Public Domain",
	"Unlicense",
	"WTFPL",
	"Zlib",
	"X11",
}

// disallowed are characters that indicate a license field holds free text
// (a sentence, a URL, or the full license body) rather than an identifier.
const disallowed = `/":`

// ValidName reports whether s is plausible as a license identifier.
//
// A string matching any allow-listed identifier is always accepted, even
// when it carries extra punctuation ("MIT/X11" passes via "MIT"). A string
// matching nothing is rejected only when it contains a slash, quote or
// colon; short unknown identifiers pass through so uncommon licenses are
// not silently dropped.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, id := range Known {
		if strings.Contains(s, id) {
			return true
		}
	}
	return !strings.ContainsAny(s, disallowed)
}

// FileNames are the conventional names of license files, probed in order;
// the first match wins. Membership is case-sensitive: "LICENSE" and
// "license" are distinct entries.
var FileNames = []string{
	"LICENSE",
	"LICENSE.md",
	"LICENSE.txt",
	"license",
	"LICENCE",
	"License.md",
	"COPYING",
	"COPYING.md",
	"UNLICENSE",
}

// Branches are the repository branch names tried when building remote
// license-file URLs, in order.
var Branches = []string{"main", "master"}

// FindLocalFile returns the first conventional license filename present in
// dir, in [FileNames] order. Returns "" when none is present or the
// directory cannot be read.
func FindLocalFile(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			present[e.Name()] = true
		}
	}
	for _, name := range FileNames {
		if present[name] {
			return name
		}
	}
	return ""
}

// scrapeIDs are the identifiers looked for on registry landing pages, in
// priority order. Kept shorter than [Known]: scraping matches whole words
// of page text, so only unambiguous tokens belong here.
var scrapeIDs = []string{
	"MIT",
	"ISC",
	"Apache",
	"BSD",
	"LGPL",
	"GPL",
	"MPL",
	"Unlicense",
	"WTFPL",
}

var scrapePatterns = func() []*regexp.Regexp {
	ps := make([]*regexp.Regexp, len(scrapeIDs))
	for i, id := range scrapeIDs {
		ps[i] = regexp.MustCompile(`\b` + id + `\b`)
	}
	return ps
}()

// Scrape performs word-boundary matching of common license identifiers
// against a registry landing page. Returns the first identifier (in
// [scrapeIDs] order) found in the page, or "".
func Scrape(page string) string {
	for i, p := range scrapePatterns {
		if p.MatchString(page) {
			return scrapeIDs[i]
		}
	}
	return ""
}
