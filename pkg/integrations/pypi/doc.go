// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// This package fetches package metadata from PyPI (https://pypi.org), the
// official repository for Python packages, along with project landing pages
// for license scraping.
//
// # Usage
//
//	client := pypi.NewClient(backend, 24*time.Hour)
//
//	pkg, err := client.FetchPackage(ctx, "fastapi", false)  // false = use cache
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pkg.License, pkg.Repository)
//
// # PackageInfo
//
// [Client.FetchPackage] returns a [PackageInfo] containing:
//
//   - Name, Version: package identity
//   - Summary: one-line package description
//   - License: short identifier, preferring trove classifiers over the
//     free-text license field
//   - Author, HomePage: package metadata
//   - Repository: a hosting URL recovered from the project URLs and
//     truncated to the owner/repo root
//
// # Caching
//
// Responses are cached in the backend passed at construction. The cache TTL
// is set when creating the client; pass refresh=true to bypass the cache.
//
// # Name Normalization
//
// Package names are normalized following PEP 503 (lowercase, underscores to
// hyphens) before any request.
package pypi
