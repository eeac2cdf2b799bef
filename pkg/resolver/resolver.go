package resolver

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/licensescout/pkg/errors"
	"github.com/matzehuels/licensescout/pkg/integrations"
	"github.com/matzehuels/licensescout/pkg/integrations/github"
	"github.com/matzehuels/licensescout/pkg/license"
	"github.com/matzehuels/licensescout/pkg/probe"
)

// Resolver runs the license-resolution pipeline for single records. It is
// safe for concurrent use; per-run state is limited to the GitHub latch.
type Resolver struct {
	source Source
	prober *probe.Prober
	github *github.Client
	logger *log.Logger

	// githubDown latches true after the first auth or quota failure so the
	// rest of the run skips the API instead of burning requests.
	githubDown atomic.Bool
	warnOnce   sync.Once

	refresh bool
}

// NewResolver builds a resolver over the given source. The GitHub client may
// be nil to disable API lookups entirely.
func NewResolver(source Source, prober *probe.Prober, gh *github.Client, logger *log.Logger, refresh bool) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		source:  source,
		prober:  prober,
		github:  gh,
		logger:  logger,
		refresh: refresh,
	}
}

// Resolve runs the full pipeline on rec, mutating it in place. On return the
// record is terminal: either rec.Resolved() or rec.Missing is set, never
// both, never neither.
func (r *Resolver) Resolve(ctx context.Context, rec *Record) {
	md, err := r.source.Lookup(ctx, rec.Name, rec.InstallLocation)
	if err != nil {
		if ctx.Err() == nil && err == ErrNoManifest {
			rec.Missing = ReasonNoLocalManifest
			return
		}
		r.logger.Debug("metadata lookup failed", "package", rec.Name, "error", err)
	}
	rec.Description = md.Description
	if license.ValidName(md.License) {
		rec.License = md.License
	}

	repo := integrations.NormalizeRepoURL(md.Repository)
	if apperrors.ValidateURL(repo) != nil {
		// Free-text repository fields that normalization could not turn
		// into an http(s) URL are treated as no repository at all.
		repo = ""
	}
	if repo == "" {
		if alt, err := r.source.Repository(ctx, rec.Name); err == nil {
			repo = integrations.NormalizeRepoURL(alt)
			if apperrors.ValidateURL(repo) != nil {
				repo = ""
			}
		}
	}
	if repo == "" {
		if rec.License != "" {
			return
		}
		rec.Missing = ReasonNoRepository
		return
	}
	rec.RepositoryURL = repo
	host, owner, name := integrations.SplitRepoURL(repo)

	// A license file shipped with the install wins: map it to the repo's
	// browsing URL and confirm that URL actually exists.
	if rec.InstallLocation != "" {
		if fname := license.FindLocalFile(rec.InstallLocation); fname != "" {
			if url, ok := r.validateRemote(ctx, rec, host, owner, name, fname); ok {
				rec.LicenseURL = url
			} else {
				rec.LicenseURL = filepath.Join(rec.InstallLocation, fname)
			}
		}
	}

	if rec.License == "" || rec.LicenseURL == "" {
		r.resolveGitHub(ctx, rec, host, owner, name)
	}

	if rec.LicenseURL == "" && host != "" && rec.LicenseURLValidated == ValidationUnknown {
		r.probeFilenames(ctx, rec, host, owner, name)
	}

	if rec.License == "" {
		if page, err := r.source.LandingPage(ctx, rec.Name); err == nil {
			if id := license.Scrape(page); id != "" {
				rec.License = id
			}
		} else {
			r.logger.Debug("landing page fetch failed", "package", rec.Name, "error", err)
		}
	}

	// A record succeeds when it found either a license identifier or a
	// license URL. Only records with neither are marked missing.
	if rec.License == "" && rec.LicenseURL == "" {
		rec.Missing = ReasonNoWebMatch
	}
}

// validateRemote checks whether fname is reachable under the repository's
// browsing URL, trying each well-known branch in order. The verdict is
// written to rec.LicenseURLValidated exactly once.
func (r *Resolver) validateRemote(ctx context.Context, rec *Record, host, owner, name, fname string) (string, bool) {
	if rec.LicenseURLValidated != ValidationUnknown {
		return "", rec.LicenseURLValidated == ValidationValid
	}
	if host == "" {
		rec.LicenseURLValidated = ValidationInvalid
		return "", false
	}
	seg := integrations.BrowsePathSegment(host)
	for _, branch := range license.Branches {
		url := fmt.Sprintf("https://%s/%s/%s/%s/%s/%s", host, owner, name, seg, branch, fname)
		if final, ok := r.prober.PingWithRetry(ctx, url); ok {
			rec.LicenseURLValidated = ValidationValid
			return final, true
		}
	}
	rec.LicenseURLValidated = ValidationInvalid
	return "", false
}

// resolveGitHub fills in license name and URL from the GitHub license API.
// It is skipped for non-GitHub repositories, when no client is configured,
// and after the run's latch has tripped.
func (r *Resolver) resolveGitHub(ctx context.Context, rec *Record, host, owner, name string) {
	if r.github == nil || host != "github.com" || r.githubDown.Load() {
		return
	}
	if err := github.ValidateRepoRef(owner, name); err != nil {
		r.logger.Debug("skipping github lookup", "package", rec.Name, "error", err)
		return
	}
	res := r.github.FetchLicense(ctx, owner, name, r.refresh)
	switch res.Kind {
	case github.LicenseFound:
		if rec.License == "" && license.ValidName(res.License) {
			rec.License = res.License
		}
		if rec.LicenseURL == "" && res.URL != "" {
			rec.LicenseURL = res.URL
			if rec.LicenseURLValidated == ValidationUnknown {
				rec.LicenseURLValidated = ValidationValid
			}
		}
	case github.LicenseAuthError:
		r.githubDown.Store(true)
		r.warnOnce.Do(func() {
			r.logger.Warn("github api unavailable, continuing without it", "reason", res.Message)
		})
	case github.LicenseRateLimited:
		r.githubDown.Store(true)
		r.warnOnce.Do(func() {
			r.logger.Warn("github api rate limited, continuing without it")
		})
	}
}

// probeFilenames tries the well-known license filenames against the
// repository's browsing URL, first match wins.
func (r *Resolver) probeFilenames(ctx context.Context, rec *Record, host, owner, name string) {
	seg := integrations.BrowsePathSegment(host)
	for _, fname := range license.FileNames {
		for _, branch := range license.Branches {
			url := fmt.Sprintf("https://%s/%s/%s/%s/%s/%s", host, owner, name, seg, branch, fname)
			if final, ok := r.prober.PingWithRetry(ctx, url); ok {
				rec.LicenseURL = final
				rec.LicenseURLValidated = ValidationValid
				return
			}
		}
	}
	rec.LicenseURLValidated = ValidationInvalid
}
