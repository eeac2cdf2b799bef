package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/integrations"
)

// Client provides access to the GitHub API for repository license lookup.
// It handles HTTP requests with caching, automatic retries, and optional
// authentication.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	http    *http.Client
	token   string
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits).
func NewClient(backend cache.Cache, token string, cacheTTL time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(backend, "github:", cacheTTL, headers),
		http:    integrations.NewHTTPClient(),
		token:   token,
		baseURL: "https://api.github.com",
	}
}

// SetBaseURL points the client at a different API root. Used by tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// ResultKind tags a LicenseResult.
type ResultKind int

const (
	// LicenseFound means the API returned a license for the repository.
	LicenseFound ResultKind = iota
	// LicenseNotFound means the repository exists but GitHub detected no
	// license, or the repository does not exist.
	LicenseNotFound
	// LicenseRateLimited means the request was throttled; the lookup may
	// succeed later.
	LicenseRateLimited
	// LicenseAuthError means authentication failed or the quota is
	// exhausted. Callers disable further API lookups for the run.
	LicenseAuthError
)

// LicenseResult is the tagged outcome of a repository license lookup.
// Exactly one kind applies; License and URL are set only for LicenseFound.
type LicenseResult struct {
	Kind    ResultKind
	License string // SPDX identifier (e.g., "MIT")
	URL     string // direct download URL of the license file
	Message string // API error message, set for LicenseAuthError
}

// FetchLicense looks up the license GitHub detected for owner/repo.
//
// The lookup never returns a Go error: every failure mode is folded into
// the result's Kind so the caller can drive its fallback chain off a single
// switch. Only successful lookups are cached.
func (c *Client) FetchLicense(ctx context.Context, owner, repo string, refresh bool) LicenseResult {
	key := "license:" + owner + "/" + repo

	var res LicenseResult
	if !refresh && c.CacheGet(ctx, key, &res) {
		return res
	}

	res = c.fetchLicense(ctx, owner, repo)
	if res.Kind == LicenseFound {
		c.CacheSet(ctx, key, res)
	}
	return res
}

func (c *Client) fetchLicense(ctx context.Context, owner, repo string) LicenseResult {
	url := fmt.Sprintf("%s/repos/%s/%s/license", c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return LicenseResult{Kind: LicenseNotFound}
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return LicenseResult{Kind: LicenseNotFound}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data licenseResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return LicenseResult{Kind: LicenseNotFound}
		}
		id := data.License.SPDXID
		if id == "" || id == "NOASSERTION" {
			id = data.License.Name
		}
		u := data.DownloadURL
		if u == "" {
			u = data.HTMLURL
		}
		if id == "" {
			return LicenseResult{Kind: LicenseNotFound}
		}
		return LicenseResult{Kind: LicenseFound, License: id, URL: u}

	case http.StatusUnauthorized:
		return LicenseResult{Kind: LicenseAuthError, Message: apiMessage(resp)}

	case http.StatusForbidden:
		// GitHub reports quota exhaustion as 403 with a rate-limit message.
		// Both exhausted quota and bad credentials disable the API for the
		// rest of the run, so they share a kind.
		return LicenseResult{Kind: LicenseAuthError, Message: apiMessage(resp)}

	case http.StatusTooManyRequests:
		return LicenseResult{Kind: LicenseRateLimited}

	default:
		return LicenseResult{Kind: LicenseNotFound}
	}
}

// Rate describes the remaining API quota.
type Rate struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"-"`
}

// RateLimit fetches the current core API quota.
func (c *Client) RateLimit(ctx context.Context) (Rate, error) {
	var data rateLimitResponse
	if err := c.Get(ctx, c.baseURL+"/rate_limit", &data); err != nil {
		return Rate{}, err
	}
	r := Rate{Limit: data.Resources.Core.Limit, Remaining: data.Resources.Core.Remaining}
	if data.Resources.Core.Reset > 0 {
		r.Reset = time.Unix(data.Resources.Core.Reset, 0)
	}
	return r, nil
}

// ValidateToken checks whether the configured token is accepted by the API.
// A nil error means the token works (or no token is set and unauthenticated
// access is available).
func (c *Client) ValidateToken(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rate_limit", nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("invalid token: %s", apiMessage(resp))
	}
	return nil
}

func apiMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.Status
	}
	if body.Message == "" {
		return resp.Status
	}
	return body.Message
}

type licenseResponse struct {
	DownloadURL string `json:"download_url"`
	HTMLURL     string `json:"html_url"`
	License     struct {
		Key    string `json:"key"`
		Name   string `json:"name"`
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}

type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}
