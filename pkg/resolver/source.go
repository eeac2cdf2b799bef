package resolver

import (
	"context"
	"errors"
)

// ErrNoManifest is returned by Source.Lookup when the package's manifest is
// absent from its install location. It is a terminal condition for the record.
var ErrNoManifest = errors.New("no local manifest")

// Metadata is the manifest- or registry-level information a source can
// provide for a package. Empty fields mean the source had nothing.
type Metadata struct {
	Description string
	License     string
	Repository  string
}

// Source adapts one ecosystem to the resolver. Implementations live next to
// the ecosystem's dependency enumerator and wrap its registry client.
type Source interface {
	// Ecosystem returns the source's name, e.g. "javascript".
	Ecosystem() string

	// Lookup reads package metadata. Node-backed ecosystems read the
	// installed manifest at installDir and return ErrNoManifest when it is
	// missing; registry-only ecosystems query the registry (installDir is
	// "" for those). Other errors degrade to partial metadata rather than
	// failing the record.
	Lookup(ctx context.Context, name, installDir string) (Metadata, error)

	// Repository asks the registry for the package's repository URL. It is
	// only consulted when Lookup produced none; errors are non-fatal.
	Repository(ctx context.Context, name string) (string, error)

	// LandingPage fetches the raw HTML of the package's registry page for
	// license scraping.
	LandingPage(ctx context.Context, name string) (string, error)
}
