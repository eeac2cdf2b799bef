package deps

import (
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/resolver"
)

// DefaultCacheTTL is the HTTP cache duration for registry lookups.
const DefaultCacheTTL = 24 * time.Hour

// Dependency names one package discovered in a project.
type Dependency struct {
	// Name is the package identifier as the registry knows it.
	Name string
	// InstallLocation is the package's on-disk directory, or "" for
	// ecosystems that install nothing locally.
	InstallLocation string
}

// Ecosystem describes one supported package ecosystem. Each ecosystem
// subpackage exports a single descriptor; the CLI lists them explicitly.
type Ecosystem struct {
	// Name identifies the ecosystem, e.g. "javascript".
	Name string

	// ManifestFile is the project-root file whose presence selects this
	// ecosystem.
	ManifestFile string

	// SupportsDeep reports whether the enumerator can include transitive
	// dependencies.
	SupportsDeep bool

	// Enumerate lists the project's dependencies from the manifest at
	// root. With deep set, ecosystems that support it include transitive
	// dependencies as well.
	Enumerate func(root string, deep bool) ([]Dependency, error)

	// NewSource builds the resolver source backed by the given HTTP cache.
	NewSource func(backend cache.Cache, ttl time.Duration) resolver.Source
}

// Present reports whether root contains the ecosystem's manifest.
func (e *Ecosystem) Present(root string) bool {
	info, err := os.Stat(filepath.Join(root, e.ManifestFile))
	return err == nil && !info.IsDir()
}

// Detect returns the ecosystems from candidates whose manifest exists in
// root, preserving candidate order.
func Detect(root string, candidates []*Ecosystem) []*Ecosystem {
	var found []*Ecosystem
	for _, e := range candidates {
		if e.Present(root) {
			found = append(found, e)
		}
	}
	return found
}

// Jobs converts dependencies into resolver pool jobs.
func Jobs(dependencies []Dependency) []resolver.Job {
	jobs := make([]resolver.Job, len(dependencies))
	for i, d := range dependencies {
		jobs[i] = resolver.Job{Name: d.Name, InstallLocation: d.InstallLocation}
	}
	return jobs
}
