// Package probe issues lightweight existence checks against candidate URLs.
//
// The [Prober] performs a single HEAD-style request per call and classifies
// the response into one of five outcomes. [Prober.PingWithRetry] layers the
// policy used during license resolution on top: redirects are followed up to
// a fixed depth, and rate-limited responses are retried a bounded number of
// times with a fixed backoff.
package probe

import (
	"context"
	"net/http"
	"time"
)

// Outcome classifies the result of a single probe.
type Outcome int

const (
	// Exists means the URL answered 200.
	Exists Outcome = iota
	// Redirect means the URL answered 301/302/307/308 with a Location header.
	Redirect
	// NotFound covers 404 and every other status not explicitly classified.
	NotFound
	// RateLimited means the server answered 429.
	RateLimited
	// NetworkError covers transport failures and malformed URLs.
	// Callers treat it the same as NotFound; it is tracked separately only
	// for diagnostics.
	NetworkError
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case Exists:
		return "exists"
	case Redirect:
		return "redirect"
	case NotFound:
		return "not found"
	case RateLimited:
		return "rate limited"
	case NetworkError:
		return "network error"
	default:
		return "unknown"
	}
}

// Result is the classified outcome of one probe.
type Result struct {
	Outcome  Outcome
	Location string // redirect target, set only for Redirect
}

const (
	// maxRedirects bounds redirect chasing in PingWithRetry. Servers that
	// redirect in a loop would otherwise never terminate.
	maxRedirects = 5

	// rateLimitAttempts is the total number of probes against a URL that
	// keeps answering 429 before giving up.
	rateLimitAttempts = 3

	// rateLimitBackoff is the fixed wait between rate-limited attempts.
	rateLimitBackoff = 2 * time.Second
)

// Prober issues existence checks. The zero value is not usable; construct
// with [New]. Safe for concurrent use.
type Prober struct {
	http *http.Client
}

// New creates a Prober with a standard request timeout. Redirects are never
// followed by the transport; classification is left to the caller.
func New() *Prober {
	return &Prober{
		http: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SetHTTPClient replaces the underlying HTTP client. Used by tests.
// The replacement should not follow redirects.
func (p *Prober) SetHTTPClient(h *http.Client) { p.http = h }

// Probe performs one HEAD request against url and classifies the response.
//
// Status mapping: 200 is Exists; 301/302/307/308 is Redirect when a
// Location header is present, Exists otherwise; 429 is RateLimited; every
// other status is NotFound. Transport failures, including requests built
// from malformed URLs, are NetworkError.
func (p *Prober) Probe(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return Result{Outcome: NetworkError}
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return Result{Outcome: NetworkError}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Result{Outcome: Exists}
	case http.StatusMovedPermanently, http.StatusFound,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		if loc := resp.Header.Get("Location"); loc != "" {
			return Result{Outcome: Redirect, Location: loc}
		}
		return Result{Outcome: Exists}
	case http.StatusTooManyRequests:
		return Result{Outcome: RateLimited}
	default:
		return Result{Outcome: NotFound}
	}
}

// PingWithRetry probes url, following redirects and retrying rate-limited
// responses. It returns the final URL that answered 200 and true, or ""
// and false when the URL does not resolve.
//
// Redirects are followed up to 5 deep. A 429 answer is retried after a
// fixed 2 second backoff, for at most 3 probes total; the redirect and
// retry budgets are independent. NotFound and NetworkError end the chase
// immediately.
func (p *Prober) PingWithRetry(ctx context.Context, url string) (string, bool) {
	attempts := 0
	redirects := 0

	for {
		r := p.Probe(ctx, url)
		switch r.Outcome {
		case Exists:
			return url, true
		case Redirect:
			redirects++
			if redirects > maxRedirects {
				return "", false
			}
			url = r.Location
		case RateLimited:
			attempts++
			if attempts >= rateLimitAttempts {
				return "", false
			}
			select {
			case <-ctx.Done():
				return "", false
			case <-time.After(rateLimitBackoff):
			}
		default:
			return "", false
		}
	}
}
