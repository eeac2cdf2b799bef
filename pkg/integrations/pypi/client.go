package pypi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/integrations"
)

// PackageInfo holds metadata for a Python package from PyPI.
//
// Package names are normalized following PEP 503 (lowercase,
// underscores to hyphens).
type PackageInfo struct {
	Name       string
	Version    string
	Summary    string
	License    string // short identifier, see extractLicenseType
	Author     string
	Repository string // canonical https form, may be empty
	HomePage   string
}

// Client provides access to the PyPI package registry API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	webURL  string
}

// NewClient creates a PyPI client with the given cache backend.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "pypi:", cacheTTL, nil),
		baseURL: "https://pypi.org/pypi",
		webURL:  "https://pypi.org/project",
	}
}

// SetBaseURLs points the client at different API and web roots. Used by tests.
func (c *Client) SetBaseURLs(api, web string) {
	c.baseURL = api
	c.webURL = web
}

// FetchPackage retrieves metadata for a Python package from PyPI.
//
// The pkg parameter is normalized automatically (case-insensitive,
// underscores to hyphens). If refresh is true, the cache is bypassed.
// Returns [integrations.ErrNotFound] if the package doesn't exist.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = integrations.NormalizePkgName(pkg)

	var info PackageInfo
	err := c.Cached(ctx, pkg, refresh, &info, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// LandingPage fetches the package's project page on pypi.org as raw HTML.
// Used as a last-resort source for license scraping.
func (c *Client) LandingPage(ctx context.Context, pkg string) (string, error) {
	pkg = integrations.NormalizePkgName(pkg)

	var page string
	err := c.Cached(ctx, "page:"+pkg, false, &page, func() error {
		var err error
		page, err = c.GetText(ctx, c.webURL+"/"+pkg+"/")
		return err
	})
	return page, err
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return err
	}

	urls := make(map[string]string, len(data.Info.ProjectURLs))
	for k, v := range data.Info.ProjectURLs {
		if s, ok := v.(string); ok {
			urls[k] = s
		}
	}

	*info = PackageInfo{
		Name:       data.Info.Name,
		Version:    data.Info.Version,
		Summary:    data.Info.Summary,
		License:    extractLicenseType(data.Info.License, data.Info.Classifiers),
		Author:     data.Info.Author,
		Repository: repositoryURL(urls, data.Info.HomePage),
		HomePage:   data.Info.HomePage,
	}
	return nil
}

// repositoryURL finds a hosting URL among the project URLs and truncates it
// to the owner/repo root. Project URLs often point at docs or issue pages.
func repositoryURL(urls map[string]string, homepage string) string {
	candidates := make([]string, 0, len(urls)+1)
	for _, key := range []string{"Source", "Repository", "Code", "Homepage"} {
		if u, ok := urls[key]; ok {
			candidates = append(candidates, u)
		}
	}
	for _, u := range urls {
		candidates = append(candidates, u)
	}
	candidates = append(candidates, homepage)

	for _, raw := range candidates {
		u := integrations.NormalizeRepoURL(raw)
		if host, owner, repo := integrations.SplitRepoURL(u); host != "" && knownHost(host) {
			return fmt.Sprintf("https://%s/%s/%s", host, owner, repo)
		}
	}
	return ""
}

func knownHost(host string) bool {
	switch host {
	case "github.com", "gitlab.com", "bitbucket.org":
		return true
	}
	return false
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Summary     string         `json:"summary"`
	License     string         `json:"license"`
	Classifiers []string       `json:"classifiers"`
	ProjectURLs map[string]any `json:"project_urls"`
	HomePage    string         `json:"home_page"`
	Author      string         `json:"author"`
}

// extractLicenseType extracts a short license identifier from PyPI data.
// It prefers the classifier (e.g., "License :: OSI Approved :: MIT License"
// -> "MIT License") and falls back to the license field if it's short enough.
func extractLicenseType(license string, classifiers []string) string {
	for _, c := range classifiers {
		if strings.HasPrefix(c, "License :: ") {
			parts := strings.Split(c, " :: ")
			if len(parts) >= 3 {
				return parts[len(parts)-1]
			}
		}
	}

	// If the license field is short it is likely just the identifier
	if license != "" && len(license) < 100 && !strings.Contains(license, "\n") {
		return strings.TrimSpace(license)
	}

	// Otherwise, try the first line of the license text
	if license != "" {
		firstLine := strings.TrimSpace(strings.Split(license, "\n")[0])
		if len(firstLine) < 50 {
			return firstLine
		}
	}

	return ""
}
