package resolver

// MissingReason names the terminal failure state of a record that could not
// be resolved. The zero value means the record is not failed.
type MissingReason string

const (
	// ReasonNone marks a record that is not in a failure state.
	ReasonNone MissingReason = ""

	// ReasonNoLocalManifest means the package's manifest was missing from
	// its install location, so no metadata could be read at all.
	ReasonNoLocalManifest MissingReason = "no local manifest"

	// ReasonNoRepository means neither the manifest nor the registry
	// produced a repository URL, leaving nothing to probe.
	ReasonNoRepository MissingReason = "no repository"

	// ReasonNoWebMatch means a repository was known but no license could
	// be found through the API, URL probing, or landing-page scraping.
	ReasonNoWebMatch MissingReason = "no web match"
)

// Validation is the tri-state verdict on a record's license URL.
// It starts Unknown and is set at most once.
type Validation int

const (
	// ValidationUnknown means no probe has been attempted yet.
	ValidationUnknown Validation = iota
	// ValidationValid means a probe confirmed the URL exists.
	ValidationValid
	// ValidationInvalid means probing failed; the URL (if any) points at a
	// local file instead.
	ValidationInvalid
)

// Record tracks one dependency through license resolution.
//
// A record is created when its dependency is first enqueued and mutated
// exclusively by the resolver invocation that owns it, so no locking is
// needed while it is in flight. Once it lands in the pool's results it is
// read-only.
type Record struct {
	// Name is the package identifier, unique within a run.
	Name string

	// InstallLocation is the on-disk directory of the installed package,
	// or "" for registry-only ecosystems.
	InstallLocation string

	// Description is a short summary from the manifest or registry.
	Description string

	// RepositoryURL is the canonical https browsing URL, or "".
	RepositoryURL string

	// License is the resolved license identifier, or "" when only a
	// license URL (or nothing) was found.
	License string

	// LicenseURL points at the license text: a validated remote URL, or a
	// local file path when remote validation failed.
	LicenseURL string

	// LicenseURLValidated records the probe verdict for LicenseURL.
	LicenseURLValidated Validation

	// Missing is the terminal failure reason, set exactly when the run
	// found neither a license identifier nor a license URL.
	Missing MissingReason
}

// Resolved reports whether the record reached a successful terminal state:
// a license identifier, a license URL, or both. After resolution exactly one
// of Resolved() and Missing != ReasonNone holds. The count of identified
// license names is tracked separately by the report summary.
func (r *Record) Resolved() bool { return r.Missing == ReasonNone }
