// Package javascript enumerates npm dependencies from package.json and
// node_modules.
//
// The shallow scan lists dependencies and devDependencies declared in the
// project manifest, each pointed at its node_modules install directory. The
// deep scan walks the installed node_modules tree instead, including scoped
// packages and installs nested under other packages.
//
// License metadata comes primarily from each installed package's own
// package.json; the npm registry serves as fallback for missing repository
// fields and for landing-page scraping.
package javascript
