// Package github provides an HTTP client for the GitHub API.
//
// # Overview
//
// This package looks up the license GitHub detected for a repository
// (https://api.github.com/repos/{owner}/{repo}/license). It is the primary
// remote source during license resolution: when a dependency's manifest
// carries no usable license field, the detected SPDX identifier and the
// license file's download URL come from here.
//
// # Usage
//
//	client := github.NewClient(backend, os.Getenv("GITHUB_TOKEN"), 24*time.Hour)
//
//	res := client.FetchLicense(ctx, "pallets", "flask", false)
//	switch res.Kind {
//	case github.LicenseFound:
//	    fmt.Println(res.License, res.URL)
//	case github.LicenseAuthError:
//	    // disable API lookups for the rest of the run
//	}
//
// # Authentication
//
// A GitHub personal access token is optional but recommended. Without a
// token, the client is limited to 60 requests/hour; with one, 5000.
// [Client.ValidateToken] checks a token cheaply before a run;
// [Client.RateLimit] reports the remaining quota.
//
// # Result Shape
//
// [Client.FetchLicense] never returns a Go error. Every outcome, including
// transport failures, is folded into [LicenseResult.Kind] so that the
// resolver can drive its fallback chain off a single switch.
//
// # Caching
//
// Successful lookups are cached with the TTL set at construction. Failures
// and auth errors are never cached.
package github
