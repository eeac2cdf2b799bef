// Package ignore loads the optional .licenseignore file and matches
// dependency names against its gitignore-style glob patterns.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file looked up in the scanned directory.
const FileName = ".licenseignore"

// Matcher holds the loaded ignore patterns. The zero value matches nothing.
type Matcher struct {
	patterns []string
}

// Load reads dir's ignore file. A missing file yields an empty matcher;
// blank lines and #-comments are skipped. Patterns that fail to parse are
// rejected so typos surface immediately instead of silently matching
// nothing.
func Load(dir string) (*Matcher, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	defer f.Close()

	m := &Matcher{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("invalid pattern %q in %s", line, FileName)
		}
		m.patterns = append(m.patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return m, nil
}

// Match reports whether name matches any loaded pattern.
func (m *Matcher) Match(name string) bool {
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Patterns returns the loaded patterns in file order.
func (m *Matcher) Patterns() []string { return m.patterns }
