package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensescout/pkg/cache"
	"github.com/matzehuels/licensescout/pkg/deps"
	"github.com/matzehuels/licensescout/pkg/deps/javascript"
	"github.com/matzehuels/licensescout/pkg/deps/python"
	"github.com/matzehuels/licensescout/pkg/deps/rust"
	"github.com/matzehuels/licensescout/pkg/ignore"
	"github.com/matzehuels/licensescout/pkg/integrations/github"
	"github.com/matzehuels/licensescout/pkg/probe"
	"github.com/matzehuels/licensescout/pkg/report"
	"github.com/matzehuels/licensescout/pkg/resolver"
)

// ecosystems is the list of supported package ecosystems, in detection order.
var ecosystems = []*deps.Ecosystem{
	javascript.Ecosystem,
	python.Ecosystem,
	rust.Ecosystem,
}

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	cwd         string        // project root to scan
	deep        bool          // include transitive dependencies
	ecosystem   string        // ecosystem override, skips detection/picker
	output      string        // report path override
	concurrency int           // parallel resolver invocations
	refresh     bool          // bypass HTTP cache
	noGitHub    bool          // disable the GitHub license API
	cacheTTL    time.Duration // HTTP cache duration
}

// newScanCmd creates the scan command, which is also what the bare binary
// runs.
func newScanCmd() *cobra.Command {
	opts := scanOpts{
		concurrency: resolver.DefaultConcurrency,
		cacheTTL:    deps.DefaultCacheTTL,
	}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the project's dependencies and resolve their licenses",
		Long: `Scan the project's dependencies and resolve their licenses.

The scan detects the project's ecosystem from its manifest file, enumerates
its dependencies, and resolves each one's license through installed package
metadata, shipped license files, registry metadata, the GitHub license API,
and repository URL probing. Results are written to ` + report.FileName + `.

Examples:
  licensescout                      # scan the current directory
  licensescout scan --deep          # include transitive dependencies
  licensescout scan --cwd ~/app     # scan another project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.cwd, "cwd", "", "project root to scan (default: current directory)")
	cmd.Flags().BoolVar(&opts.deep, "deep", false, "include transitive dependencies where supported")
	cmd.Flags().StringVar(&opts.ecosystem, "ecosystem", "", "ecosystem to scan (javascript, python, rust)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report file path (default: <cwd>/"+report.FileName+")")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", opts.concurrency, "parallel license resolutions")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noGitHub, "no-github", false, "disable GitHub license API lookups")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "HTTP cache duration")

	return cmd
}

func runScan(ctx context.Context, opts *scanOpts) error {
	logger := loggerFromContext(ctx)
	verbose := logger.GetLevel() <= charmlog.DebugLevel

	root := opts.cwd
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	eco, err := chooseEcosystem(root, opts.ecosystem)
	if err != nil || eco == nil {
		return err
	}
	printInfo("Scanning %s dependencies in %s", StyleHighlight.Render(eco.Name), root)
	if opts.deep && !eco.SupportsDeep {
		printWarning("%s does not support deep scans, using the direct dependency list", eco.Name)
	}

	dependencies, err := eco.Enumerate(root, opts.deep)
	if err != nil {
		return fmt.Errorf("enumerating dependencies: %w", err)
	}
	dependencies, err = applyIgnores(root, dependencies)
	if err != nil {
		return err
	}
	if len(dependencies) == 0 {
		printError("No dependencies found")
		return nil
	}

	backend := openCache(logger, opts.refresh)
	defer backend.Close()

	gh := newGitHubClient(ctx, logger, backend, opts)
	pool := resolver.NewPool(ctx, resolver.Config{
		Source:      eco.NewSource(backend, opts.cacheTTL),
		Prober:      probe.New(),
		GitHub:      gh,
		Concurrency: opts.concurrency,
		Refresh:     opts.refresh,
		Logger:      logger,
	})

	records := resolveAll(ctx, pool, dependencies, logger, verbose)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	summary := report.Summarize(records)
	printSummary(summary)

	path := opts.output
	if path == "" {
		path, err = report.Write(root, records)
	} else {
		err = os.WriteFile(path, []byte(report.Render(records)), 0o644)
	}
	if err != nil {
		return err
	}
	printFile(path)
	return nil
}

// chooseEcosystem picks the ecosystem to scan: an explicit --ecosystem wins,
// a single detected manifest is used directly, and multiple manifests open
// the interactive picker. A nil result with nil error means there is nothing
// to scan (already reported to the user).
func chooseEcosystem(root, name string) (*deps.Ecosystem, error) {
	if name != "" {
		for _, eco := range ecosystems {
			if eco.Name != name {
				continue
			}
			if !eco.Present(root) {
				printError("No %s manifest (%s) found in %s", eco.Name, eco.ManifestFile, root)
				return nil, nil
			}
			return eco, nil
		}
		return nil, fmt.Errorf("unknown ecosystem %q", name)
	}

	found := deps.Detect(root, ecosystems)
	switch len(found) {
	case 0:
		printError("No supported manifest file found in %s", root)
		return nil, nil
	case 1:
		return found[0], nil
	}

	eco, err := pickEcosystem(found)
	if err != nil {
		// No usable terminal; fall back to the first detected manifest.
		return found[0], nil
	}
	if eco == nil {
		printInfo("No ecosystem selected")
	}
	return eco, nil
}

// applyIgnores filters out dependencies matching the project's ignore file,
// reporting the excluded names before processing begins.
func applyIgnores(root string, dependencies []deps.Dependency) ([]deps.Dependency, error) {
	matcher, err := ignore.Load(root)
	if err != nil {
		return nil, err
	}
	if len(matcher.Patterns()) == 0 {
		return dependencies, nil
	}

	kept := dependencies[:0]
	var ignored []string
	for _, d := range dependencies {
		if matcher.Match(d.Name) {
			ignored = append(ignored, d.Name)
			continue
		}
		kept = append(kept, d)
	}
	if len(ignored) > 0 {
		printInfo("Ignoring %d dependencies via %s", len(ignored), ignore.FileName)
		for _, name := range ignored {
			printDetail("%s", name)
		}
	}
	return kept, nil
}

// openCache opens the shared HTTP response cache. Refresh runs use a null
// cache so every request hits the network; cache setup failures degrade to
// the null cache with a warning instead of failing the scan.
func openCache(logger *charmlog.Logger, refresh bool) cache.Cache {
	if refresh {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err == nil {
		var backend cache.Cache
		if backend, err = cache.NewFileCache(dir); err == nil {
			return backend
		}
	}
	logger.Warn("http cache unavailable, requests will not be cached", "error", err)
	return cache.NewNullCache()
}

// newGitHubClient builds the license-API client. An invalid token degrades
// to unauthenticated access; --no-github disables the API entirely.
func newGitHubClient(ctx context.Context, logger *charmlog.Logger, backend cache.Cache, opts *scanOpts) *github.Client {
	if opts.noGitHub {
		return nil
	}
	token := os.Getenv("GITHUB_TOKEN")
	gh := github.NewClient(backend, token, opts.cacheTTL)
	if token != "" {
		if err := gh.ValidateToken(ctx); err != nil {
			printWarning("GITHUB_TOKEN rejected, continuing unauthenticated")
			logger.Debug("token validation failed", "error", err)
			gh = github.NewClient(backend, "", opts.cacheTTL)
		}
	}
	if rate, err := gh.RateLimit(ctx); err == nil {
		logger.Debug("github api quota", "remaining", rate.Remaining, "limit", rate.Limit)
	}
	return gh
}

// resolveAll runs the pool over all dependencies, showing a live progress
// spinner unless verbose tracing is on.
func resolveAll(ctx context.Context, pool *resolver.Pool, dependencies []deps.Dependency, logger *charmlog.Logger, verbose bool) []*resolver.Record {
	total := len(dependencies)
	var completed atomic.Int64

	var spinner *Spinner
	if verbose {
		pool.SetOnResult(func(rec *resolver.Record) {
			n := completed.Add(1)
			if rec.Resolved() {
				logger.Info("resolved", "package", rec.Name, "license", rec.License,
					"progress", fmt.Sprintf("%d/%d", n, total))
			} else {
				logger.Warn("unresolved", "package", rec.Name, "reason", string(rec.Missing),
					"progress", fmt.Sprintf("%d/%d", n, total))
			}
		})
	} else {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Resolving licenses 0/%d", total))
		pool.SetOnResult(func(rec *resolver.Record) {
			spinner.SetMessage(fmt.Sprintf("Resolving licenses %d/%d", completed.Add(1), total))
		})
		spinner.Start()
	}

	tracker := newProgress(logger)
	pool.Enqueue(ctx, deps.Jobs(dependencies)...)
	records := pool.Wait()
	if spinner != nil {
		spinner.Stop()
	}
	tracker.done(fmt.Sprintf("Processed %d dependencies", len(records)))
	return records
}

// printSummary prints the run's console summary: counts first, then an
// itemized list of unresolved dependencies with reason and recorded URLs.
func printSummary(s report.Summary) {
	printNewline()
	printSuccess("Resolved licenses for %s of %d dependencies",
		StyleNumber.Render(fmt.Sprintf("%d", s.Resolved)), s.Total)
	printDetail("%d with a license name, %d with a validated license URL", s.Named, s.ValidatedURLs)

	if len(s.Unresolved) > 0 {
		printWarning("%d without any license information:", len(s.Unresolved))
		for _, r := range s.Unresolved {
			printDetail("%s (%s)", r.Name, string(r.Missing))
			if r.RepositoryURL != "" {
				printDetail("  %s", r.RepositoryURL)
			}
			if r.LicenseURL != "" {
				printDetail("  %s", r.LicenseURL)
			}
		}
	}
}
