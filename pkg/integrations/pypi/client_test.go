package pypi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/integrations"
)

const apiDoc = `{
	"info": {
		"name": "requests",
		"version": "2.32.0",
		"summary": "Python HTTP for Humans.",
		"license": "Apache-2.0",
		"classifiers": ["License :: OSI Approved :: Apache Software License"],
		"project_urls": {
			"Documentation": "https://requests.readthedocs.io",
			"Source": "https://github.com/psf/requests"
		},
		"home_page": "https://requests.readthedocs.io",
		"author": "Kenneth Reitz"
	}
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := NewClient(cache.NewNullCache(), time.Hour)
	c.SetBaseURLs(server.URL+"/pypi", server.URL+"/project")
	return c
}

func TestFetchPackage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pypi/requests/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, apiDoc)
	}))

	info, err := c.FetchPackage(context.Background(), "Requests", false)
	if err != nil {
		t.Fatalf("FetchPackage() error: %v", err)
	}
	if info.Summary != "Python HTTP for Humans." {
		t.Errorf("summary = %q", info.Summary)
	}
	if info.License != "Apache Software License" {
		t.Errorf("license = %q, want classifier to win", info.License)
	}
	if info.Repository != "https://github.com/psf/requests" {
		t.Errorf("repository = %q", info.Repository)
	}
}

func TestFetchPackageNotFound(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	_, err := c.FetchPackage(context.Background(), "no-such-pkg", false)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLandingPage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/project/typing-extensions/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, "<html>MIT</html>")
	}))

	page, err := c.LandingPage(context.Background(), "Typing_Extensions")
	if err != nil {
		t.Fatalf("LandingPage() error: %v", err)
	}
	if page != "<html>MIT</html>" {
		t.Errorf("page = %q", page)
	}
}

func TestRepositoryURL(t *testing.T) {
	tests := []struct {
		name     string
		urls     map[string]string
		homepage string
		want     string
	}{
		{
			name: "source key preferred",
			urls: map[string]string{
				"Documentation": "https://example.readthedocs.io",
				"Source":        "https://github.com/psf/requests",
			},
			want: "https://github.com/psf/requests",
		},
		{
			name: "issue page truncated to repo root",
			urls: map[string]string{"Repository": "https://github.com/pallets/flask/issues"},
			want: "https://github.com/pallets/flask",
		},
		{
			name:     "homepage fallback",
			urls:     nil,
			homepage: "https://gitlab.com/org/proj",
			want:     "https://gitlab.com/org/proj",
		},
		{
			name: "unknown host rejected",
			urls: map[string]string{"Source": "https://git.example.org/org/proj"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repositoryURL(tt.urls, tt.homepage); got != tt.want {
				t.Errorf("repositoryURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractLicenseType(t *testing.T) {
	longText := "Apache License\nVersion 2.0, January 2004\nhttp://www.apache.org/licenses/"

	tests := []struct {
		name        string
		license     string
		classifiers []string
		want        string
	}{
		{"classifier wins", longText, []string{"License :: OSI Approved :: MIT License"}, "MIT License"},
		{"short field", "BSD-3-Clause", nil, "BSD-3-Clause"},
		{"first line of text", longText, nil, "Apache License"},
		{"nothing usable", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractLicenseType(tt.license, tt.classifiers); got != tt.want {
				t.Errorf("extractLicenseType() = %q, want %q", got, tt.want)
			}
		})
	}
}
