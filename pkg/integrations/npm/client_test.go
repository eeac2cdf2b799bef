package npm

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

const registryDoc = `{
	"name": "left-pad",
	"dist-tags": {"latest": "1.3.0"},
	"versions": {
		"1.3.0": {
			"description": "String left pad",
			"license": "WTFPL",
			"author": {"name": "azer"},
			"repository": {"type": "git", "url": "git+https://github.com/stevemao/left-pad.git"},
			"homepage": "https://github.com/stevemao/left-pad#readme"
		}
	}
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := NewClient(cache.NewNullCache(), time.Hour)
	c.SetBaseURLs(server.URL, server.URL+"/package")
	return c, server
}

func TestFetchPackage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/left-pad" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, registryDoc)
	}))

	info, err := c.FetchPackage(context.Background(), "Left-Pad", false)
	if err != nil {
		t.Fatalf("FetchPackage() error: %v", err)
	}
	if info.Version != "1.3.0" {
		t.Errorf("version = %q", info.Version)
	}
	if info.License != "WTFPL" {
		t.Errorf("license = %q", info.License)
	}
	if info.Author != "azer" {
		t.Errorf("author = %q", info.Author)
	}
	if info.Repository != "https://github.com/stevemao/left-pad" {
		t.Errorf("repository = %q", info.Repository)
	}
}

func TestFetchPackagePreservesScopedCase(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"name": "@Types/Node", "dist-tags": {"latest": "1.0.0"}, "versions": {"1.0.0": {}}}`)
	}))

	if _, err := c.FetchPackage(context.Background(), "@Types/Node", false); err != nil {
		t.Fatalf("FetchPackage() error: %v", err)
	}
	if gotPath != "/@Types/Node" {
		t.Errorf("path = %q, scoped names must not be lowercased", gotPath)
	}
}

func TestFetchPackageNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())

	_, err := c.FetchPackage(context.Background(), "no-such-pkg", false)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLandingPage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/package/left-pad" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, "<html>MIT</html>")
	}))

	page, err := c.LandingPage(context.Background(), "left-pad")
	if err != nil {
		t.Fatalf("LandingPage() error: %v", err)
	}
	if page != "<html>MIT</html>" {
		t.Errorf("page = %q", page)
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		name  string
		value any
		field string
		want  string
	}{
		{"plain string", "MIT", "type", "MIT"},
		{"object", map[string]any{"type": "ISC", "url": "x"}, "type", "ISC"},
		{"missing field", map[string]any{"url": "x"}, "type", ""},
		{"non-string field", map[string]any{"type": 7}, "type", ""},
		{"nil", nil, "type", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractField(tt.value, tt.field); got != tt.want {
				t.Errorf("ExtractField() = %q, want %q", got, tt.want)
			}
		})
	}
}
