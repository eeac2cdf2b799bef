// Package deps discovers project dependencies from local manifest files.
//
// # Overview
//
// Each supported ecosystem lives in a subpackage and exports an [Ecosystem]
// descriptor that knows three things:
//
//   - which manifest file marks a project as belonging to the ecosystem
//   - how to enumerate the project's dependencies from that manifest
//   - how to build the [resolver.Source] that resolves those dependencies
//
// # Detecting and Enumerating
//
// The CLI passes the ecosystems it supports to [Detect]:
//
//	found := deps.Detect(root, []*deps.Ecosystem{
//	    javascript.Ecosystem,
//	    python.Ecosystem,
//	    rust.Ecosystem,
//	})
//
// and then enumerates the chosen one:
//
//	dependencies, _ := eco.Enumerate(root, deep)
//
// Enumerators are pure manifest parsing: they read local files only and never
// touch the network. Registry lookups happen later, in the resolution
// pipeline.
//
// # Install Locations
//
// Ecosystems that install packages on disk (javascript via node_modules)
// report each dependency's install directory so the resolver can read its
// installed manifest and look for shipped license files. Registry-only
// ecosystems (python, rust) leave InstallLocation empty and the resolver
// starts from registry metadata instead.
//
// # Supported Ecosystems
//
//   - [javascript]: package.json, node_modules-backed, supports deep scans
//   - [python]: requirements.txt, registry-only (PyPI)
//   - [rust]: Cargo.toml, registry-only (crates.io)
//
// [javascript]: github.com/matzehuels/licensescout/pkg/deps/javascript
// [python]: github.com/matzehuels/licensescout/pkg/deps/python
// [rust]: github.com/matzehuels/licensescout/pkg/deps/rust
// [resolver.Source]: github.com/matzehuels/licensescout/pkg/resolver.Source
package deps
