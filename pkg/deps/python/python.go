package python

import (
	"context"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/deps"
	"github.com/matzehuels/licensescout/pkg/integrations"
	"github.com/matzehuels/licensescout/pkg/integrations/pypi"
	"github.com/matzehuels/licensescout/pkg/resolver"
)

// Ecosystem describes Python projects: requirements.txt manifest, no local
// installs, PyPI registry metadata.
var Ecosystem = &deps.Ecosystem{
	Name:         "python",
	ManifestFile: "requirements.txt",
	NewSource:    newSource,
}

// Enumerate is assigned in init to break the initialization cycle between
// Ecosystem and enumerate, which reads Ecosystem.ManifestFile.
func init() {
	Ecosystem.Enumerate = enumerate
}

func newSource(backend cache.Cache, ttl time.Duration) resolver.Source {
	return &source{client: pypi.NewClient(backend, ttl)}
}

// source resolves everything through PyPI; there is no per-package install
// directory to inspect.
type source struct {
	client *pypi.Client
}

func (s *source) Ecosystem() string { return "python" }

func (s *source) Lookup(ctx context.Context, name, _ string) (resolver.Metadata, error) {
	p, err := s.client.FetchPackage(ctx, name, false)
	if err != nil {
		return resolver.Metadata{}, err
	}
	return resolver.Metadata{
		Description: p.Summary,
		License:     p.License,
		Repository:  p.Repository,
	}, nil
}

func (s *source) Repository(ctx context.Context, name string) (string, error) {
	p, err := s.client.FetchPackage(ctx, name, false)
	if err != nil {
		return "", err
	}
	return p.Repository, nil
}

func (s *source) LandingPage(ctx context.Context, name string) (string, error) {
	return s.client.LandingPage(ctx, name)
}

func normalize(name string) string {
	return integrations.NormalizePkgName(name)
}
