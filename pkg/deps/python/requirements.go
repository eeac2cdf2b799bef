package python

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/licensescout/pkg/deps"
)

var depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// enumerate reads requirements.txt and returns one dependency per unique
// normalized package name. Comments, pip options, and direct URL references
// are skipped; version specifiers, extras, and environment markers are
// stripped. The deep flag is ignored: a requirements file has no notion of
// transitive dependencies.
func enumerate(root string, _ bool) ([]deps.Dependency, error) {
	f, err := os.Open(filepath.Join(root, Ecosystem.ManifestFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var found []deps.Dependency

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '-' {
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}
		if m := depNameRE.FindStringSubmatch(line); len(m) > 1 {
			name := normalize(m[1])
			if !seen[name] {
				seen[name] = true
				found = append(found, deps.Dependency{Name: name})
			}
		}
	}
	return found, scanner.Err()
}
