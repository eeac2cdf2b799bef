package rust

import (
	"context"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/deps"
	"github.com/matzehuels/licensescout/pkg/integrations/crates"
	"github.com/matzehuels/licensescout/pkg/resolver"
)

// Ecosystem describes Rust projects: Cargo.toml manifest, no local installs,
// crates.io registry metadata.
var Ecosystem = &deps.Ecosystem{
	Name:         "rust",
	ManifestFile: "Cargo.toml",
	SupportsDeep: true,
	NewSource:    newSource,
}

// Enumerate is assigned in init to break the initialization cycle between
// Ecosystem and enumerate, which reads Ecosystem.ManifestFile.
func init() {
	Ecosystem.Enumerate = enumerate
}

func newSource(backend cache.Cache, ttl time.Duration) resolver.Source {
	return &source{client: crates.NewClient(backend, ttl)}
}

// source resolves everything through crates.io.
type source struct {
	client *crates.Client
}

func (s *source) Ecosystem() string { return "rust" }

func (s *source) Lookup(ctx context.Context, name, _ string) (resolver.Metadata, error) {
	cr, err := s.client.FetchCrate(ctx, name, false)
	if err != nil {
		return resolver.Metadata{}, err
	}
	return resolver.Metadata{
		Description: cr.Description,
		License:     cr.License,
		Repository:  cr.Repository,
	}, nil
}

func (s *source) Repository(ctx context.Context, name string) (string, error) {
	cr, err := s.client.FetchCrate(ctx, name, false)
	if err != nil {
		return "", err
	}
	return cr.Repository, nil
}

func (s *source) LandingPage(ctx context.Context, name string) (string, error) {
	return s.client.LandingPage(ctx, name)
}
