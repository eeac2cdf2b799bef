// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package metadata from the npm registry
// (https://registry.npmjs.org) and package landing pages from npmjs.com,
// the sources used when resolving JavaScript dependency licenses.
//
// # Usage
//
//	client := npm.NewClient(backend, 24*time.Hour)
//
//	pkg, err := client.FetchPackage(ctx, "express", false)  // false = use cache
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pkg.License, pkg.Repository)
//
// # PackageInfo
//
// [Client.FetchPackage] returns a [PackageInfo] for the version tagged
// "latest" in dist-tags:
//
//   - Name, Version: package identity
//   - Description: package description
//   - License, Author: flattened metadata (npm publishes both as either a
//     string or an object; see [ExtractField])
//   - Repository, HomePage: URLs for the resolution pipeline
//
// # Landing Pages
//
// [Client.LandingPage] fetches the package's npmjs.com page as raw HTML for
// last-resort license scraping.
//
// # Caching
//
// Responses are cached in the backend passed at construction. The cache TTL
// is set when creating the client; pass refresh=true to bypass the cache.
package npm
