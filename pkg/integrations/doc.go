// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains low-level API clients for fetching package metadata
// used during license resolution. Each remote service has its own subpackage:
//
//   - [npm]: Node Package Manager registry
//   - [pypi]: Python Package Index
//   - [crates]: Rust crates.io
//   - [github]: GitHub API for repository license lookup
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := npm.NewClient(backend, 24*time.Hour)
//	pkg, err := client.FetchPackage(ctx, "express", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry for transient failures
//   - Response caching (file-based, configurable TTL)
//   - API-specific parsing and normalization
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all registry
// clients, including response caching via [cache.Cache]. [NormalizeRepoURL]
// and [SplitRepoURL] turn the heterogeneous repository references found in
// package metadata into canonical browsing URLs.
//
// # Adding a New Registry
//
// To add support for a new package registry:
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with a FetchPackage method
//  4. Use [NewClient] for HTTP with caching
//  5. Wire into [deps] as a new ecosystem
//
// [npm]: github.com/matzehuels/licensescout/pkg/integrations/npm
// [pypi]: github.com/matzehuels/licensescout/pkg/integrations/pypi
// [crates]: github.com/matzehuels/licensescout/pkg/integrations/crates
// [github]: github.com/matzehuels/licensescout/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/licensescout/pkg/cache.Cache
// [deps]: github.com/matzehuels/licensescout/pkg/deps
package integrations
