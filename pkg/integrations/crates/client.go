package crates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/integrations"
)

// CrateInfo holds metadata for a Rust crate from crates.io.
type CrateInfo struct {
	Name        string
	Version     string // max_version reported by the registry
	Description string
	License     string // may be an expression like "MIT OR Apache-2.0"
	Repository  string // canonical https form, may be empty
	HomePage    string
}

// Client provides access to the crates.io package registry API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Note: crates.io requires a User-Agent header; this client sets one
// automatically.
type Client struct {
	*integrations.Client
	baseURL string
	webURL  string
}

// NewClient creates a crates.io client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	headers := map[string]string{
		"User-Agent": "licensescout/1.0 (https://github.com/matzehuels/licensescout)",
	}
	return &Client{
		Client:  integrations.NewClient(backend, "crates:", cacheTTL, headers),
		baseURL: "https://crates.io/api/v1",
		webURL:  "https://crates.io/crates",
	}
}

// SetBaseURLs points the client at different API and web roots. Used by tests.
func (c *Client) SetBaseURLs(api, web string) {
	c.baseURL = api
	c.webURL = web
}

// FetchCrate retrieves metadata for a Rust crate from crates.io.
//
// The crate parameter is case-sensitive and must match the published crate
// name exactly. If refresh is true, the cache is bypassed.
// Returns [integrations.ErrNotFound] if the crate doesn't exist.
func (c *Client) FetchCrate(ctx context.Context, crate string, refresh bool) (*CrateInfo, error) {
	var info CrateInfo
	err := c.Cached(ctx, crate, refresh, &info, func() error {
		return c.fetch(ctx, crate, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// LandingPage fetches the crate's page on crates.io as raw HTML.
// Used as a last-resort source for license scraping.
func (c *Client) LandingPage(ctx context.Context, crate string) (string, error) {
	var page string
	err := c.Cached(ctx, "page:"+crate, false, &page, func() error {
		var err error
		page, err = c.GetText(ctx, c.webURL+"/"+crate)
		return err
	})
	return page, err
}

func (c *Client) fetch(ctx context.Context, crate string, info *CrateInfo) error {
	var data crateResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/crates/%s", c.baseURL, crate), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: crate %s", err, crate)
		}
		return err
	}

	*info = CrateInfo{
		Name:        data.Crate.Name,
		Version:     data.Crate.MaxVersion,
		Description: data.Crate.Description,
		License:     data.Crate.License,
		Repository:  integrations.NormalizeRepoURL(data.Crate.Repository),
		HomePage:    data.Crate.HomePage,
	}
	return nil
}

type crateResponse struct {
	Crate struct {
		Name        string `json:"name"`
		MaxVersion  string `json:"max_version"`
		Description string `json:"description"`
		License     string `json:"license"`
		Repository  string `json:"repository"`
		HomePage    string `json:"homepage"`
	} `json:"crate"`
}
