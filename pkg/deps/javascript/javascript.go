package javascript

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/deps"
	"github.com/matzehuels/licensescout/pkg/integrations/npm"
	"github.com/matzehuels/licensescout/pkg/resolver"
)

// Ecosystem describes JavaScript projects: package.json manifest,
// node_modules-backed installs, npm registry metadata.
var Ecosystem = &deps.Ecosystem{
	Name:         "javascript",
	ManifestFile: "package.json",
	SupportsDeep: true,
	Enumerate:    enumerate,
	NewSource:    newSource,
}

func newSource(backend cache.Cache, ttl time.Duration) resolver.Source {
	return &source{client: npm.NewClient(backend, ttl)}
}

// source reads metadata from the installed package's own package.json and
// falls back to the npm registry for missing repository fields.
type source struct {
	client *npm.Client
}

func (s *source) Ecosystem() string { return "javascript" }

func (s *source) Lookup(ctx context.Context, name, installDir string) (resolver.Metadata, error) {
	if installDir == "" {
		return s.registryLookup(ctx, name)
	}
	data, err := os.ReadFile(filepath.Join(installDir, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return resolver.Metadata{}, resolver.ErrNoManifest
		}
		return resolver.Metadata{}, err
	}
	var m struct {
		Description string `json:"description"`
		License     any    `json:"license"`
		Repository  any    `json:"repository"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return resolver.Metadata{}, err
	}
	return resolver.Metadata{
		Description: m.Description,
		License:     npm.ExtractField(m.License, "type"),
		Repository:  npm.ExtractField(m.Repository, "url"),
	}, nil
}

func (s *source) registryLookup(ctx context.Context, name string) (resolver.Metadata, error) {
	p, err := s.client.FetchPackage(ctx, name, false)
	if err != nil {
		return resolver.Metadata{}, err
	}
	return resolver.Metadata{
		Description: p.Description,
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
