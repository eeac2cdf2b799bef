package rust

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/licensescout/pkg/deps"
	apperrors "github.com/matzehuels/licensescout/pkg/errors"
)

type cargoFile struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// enumerate reads Cargo.toml and returns its declared crates. The shallow
// scan covers [dependencies] only; with deep set, [dev-dependencies] and
// [build-dependencies] are included as well.
func enumerate(root string, deep bool) ([]deps.Dependency, error) {
	data, err := os.ReadFile(filepath.Join(root, Ecosystem.ManifestFile))
	if err != nil {
		return nil, err
	}
	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parsing Cargo.toml")
	}

	seen := make(map[string]bool)
	var names []string
	add := func(m map[string]any) {
		for name := range m {
			if apperrors.ValidatePackageName(name) != nil {
				continue
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	add(cargo.Dependencies)
	if deep {
		add(cargo.DevDependencies)
		add(cargo.BuildDependencies)
	}
	slices.SortFunc(names, strings.Compare)

	found := make([]deps.Dependency, len(names))
	for i, name := range names {
		found[i] = deps.Dependency{Name: name}
	}
	return found, nil
}
