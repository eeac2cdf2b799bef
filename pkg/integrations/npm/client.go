package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/integrations"
)

// PackageInfo holds metadata for an npm package, as published in the
// registry document's latest version.
type PackageInfo struct {
	Name        string
	Version     string
	Description string
	License     string
	Author      string
	Repository  string // canonical https form, may be empty
	HomePage    string
}

// Client provides access to the npm registry API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	webURL  string
}

// NewClient creates an npm registry client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "npm:", cacheTTL, nil),
		baseURL: "https://registry.npmjs.org",
		webURL:  "https://www.npmjs.com/package",
	}
}

// SetBaseURLs points the client at different registry and web roots.
// Used by tests.
func (c *Client) SetBaseURLs(api, web string) {
	c.baseURL = api
	c.webURL = web
}

// FetchPackage retrieves metadata for an npm package.
//
// If refresh is true, the cache is bypassed and a fresh API call is made.
// Returns [integrations.ErrNotFound] if the package doesn't exist.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = strings.TrimSpace(pkg)
	if !strings.HasPrefix(pkg, "@") {
		pkg = strings.ToLower(pkg)
	}

	var info PackageInfo
	err := c.Cached(ctx, pkg, refresh, &info, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// LandingPage fetches the package's page on npmjs.com as raw HTML.
// Used as a last-resort source for license scraping.
func (c *Client) LandingPage(ctx context.Context, pkg string) (string, error) {
	var page string
	err := c.Cached(ctx, "page:"+pkg, false, &page, func() error {
		var err error
		page, err = c.GetText(ctx, c.webURL+"/"+pkg)
		return err
	})
	return page, err
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+pkg, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return err
	}

	latest := data.DistTags.Latest
	v, ok := data.Versions[latest]
	if !ok {
		return fmt.Errorf("version %s not found", latest)
	}

	*info = PackageInfo{
		Name:        data.Name,
		Version:     latest,
		Description: v.Description,
		License:     ExtractField(v.License, "type"),
		Author:      ExtractField(v.Author, "name"),
		Repository:  integrations.NormalizeRepoURL(ExtractField(v.Repository, "url")),
		HomePage:    v.HomePage,
	}
	return nil
}

// ExtractField pulls a string out of a value that npm metadata publishes
// either as a plain string or as an object ({"type": ..., "url": ...}).
func ExtractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}

type registryResponse struct {
	Name     string                    `json:"name"`
	DistTags distTags                  `json:"dist-tags"`
	Versions map[string]versionDetails `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionDetails struct {
	Description string `json:"description"`
	License     any    `json:"license"`
	Author      any    `json:"author"`
	Repository  any    `json:"repository"`
	HomePage    string `json:"homepage"`
}
