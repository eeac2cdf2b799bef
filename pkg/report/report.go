// Package report renders resolved dependency records into the markdown
// report file and computes the console summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/licensescout/pkg/resolver"
)

// FileName is the report file written into the scanned directory.
const FileName = "installed-packages.md"

// Render serializes records deterministically: sorted by name (stable, so
// equal names keep insertion order), one block per record with a header line
// and the non-empty detail fields, blank line between blocks.
func Render(records []*resolver.Record) string {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *resolver.Record) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	for _, r := range sorted {
		license := r.License
		if license == "" {
			license = "no license found"
		}
		fmt.Fprintf(&b, "%s (%s)\n", r.Name, license)
		if r.Description != "" {
			b.WriteString(r.Description + "\n")
		}
		if r.RepositoryURL != "" {
			b.WriteString(r.RepositoryURL + "\n")
		}
		if r.LicenseURL != "" {
			b.WriteString(r.LicenseURL + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Write renders records and writes the report into dir, returning the file's
// path.
func Write(dir string, records []*resolver.Record) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(Render(records)), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Summary aggregates a run's outcome for console display.
type Summary struct {
	// Total is the number of records processed.
	Total int
	// Resolved counts records that reached a successful terminal state.
	Resolved int
	// Named counts records with a license identifier.
	Named int
	// ValidatedURLs counts records whose license URL was confirmed remote.
	ValidatedURLs int
	// Unresolved holds the failed records, sorted by name.
	Unresolved []*resolver.Record
}

// Summarize computes the run summary from raw records.
func Summarize(records []*resolver.Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Resolved() {
			s.Resolved++
		} else {
			s.Unresolved = append(s.Unresolved, r)
		}
		if r.License != "" {
			s.Named++
		}
		if r.LicenseURLValidated == resolver.ValidationValid {
			s.ValidatedURLs++
		}
	}
	slices.SortStableFunc(s.Unresolved, func(a, b *resolver.Record) int {
		return strings.Compare(a.Name, b.Name)
	})
	return s
}
