// Package crates provides an HTTP client for the crates.io API.
//
// # Overview
//
// This package fetches crate metadata from crates.io (https://crates.io),
// the Rust community's package registry, along with crate landing pages for
// license scraping.
//
// # Usage
//
//	client := crates.NewClient(backend, 24*time.Hour)
//
//	crate, err := client.FetchCrate(ctx, "serde", false)  // false = use cache
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(crate.License, crate.Repository)
//
// # CrateInfo
//
// [Client.FetchCrate] returns a [CrateInfo] containing:
//
//   - Name, Version: crate identity (max_version from the API)
//   - Description: crate description
//   - License: SPDX identifier or expression ("MIT OR Apache-2.0")
//   - Repository, HomePage: URLs for the resolution pipeline
//
// # Caching
//
// Responses are cached in the backend passed at construction. The cache TTL
// is set when creating the client; pass refresh=true to bypass the cache.
//
// # User-Agent
//
// The client includes a User-Agent header as requested by crates.io policy.
package crates
