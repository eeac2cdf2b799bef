// Package rust enumerates crate dependencies from Cargo.toml.
//
// Cargo installs crates into a shared registry cache rather than the project
// tree, so dependencies carry no install location and all metadata comes
// from crates.io. The shallow scan reads [dependencies]; a deep scan adds
// [dev-dependencies] and [build-dependencies].
package rust
