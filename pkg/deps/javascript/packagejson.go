package javascript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/licensescout/pkg/deps"
	apperrors "github.com/matzehuels/licensescout/pkg/errors"
)

type packageFile struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func readPackageFile(path string) (*packageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parsing %s", filepath.Base(path))
	}
	return &pkg, nil
}

// enumerate lists the project's dependencies. The shallow form returns the
// manifest's direct dependencies and devDependencies, each mapped to its
// expected node_modules directory. The deep form walks the installed
// node_modules tree instead, picking up transitive packages including
// scoped ones and nested installs.
func enumerate(root string, deep bool) ([]deps.Dependency, error) {
	pkg, err := readPackageFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, err
	}
	modules := filepath.Join(root, "node_modules")

	if deep {
		if found, err := walkModules(modules); err == nil {
			return found, nil
		} else if !os.IsNotExist(err) {
			return nil, err
		}
		// No node_modules installed; fall back to the direct list.
	}

	names := make([]string, 0, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		// Names come straight from the manifest and end up as path
		// components, so traversal sequences are rejected here.
		if apperrors.ValidatePackageName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	for name := range pkg.DevDependencies {
		if apperrors.ValidatePackageName(name) != nil {
			continue
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	found := make([]deps.Dependency, len(names))
	for i, name := range names {
		found[i] = deps.Dependency{
			Name:            name,
			InstallLocation: filepath.Join(modules, name),
		}
	}
	return found, nil
}

// walkModules traverses a node_modules tree with an explicit worklist, so
// arbitrarily nested installs cannot exhaust the call stack. Scoped package
// directories (@scope/name) count as one package; each package's own
// node_modules is pushed for later visits.
func walkModules(modules string) ([]deps.Dependency, error) {
	var found []deps.Dependency
	worklist := []string{modules}

	for len(worklist) > 0 {
		dir := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == modules {
				return nil, err
			}
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if strings.HasPrefix(entry.Name(), "@") {
				scoped, err := os.ReadDir(filepath.Join(dir, entry.Name()))
				if err != nil {
					continue
				}
				for _, sub := range scoped {
					if !sub.IsDir() {
						continue
					}
					name := entry.Name() + "/" + sub.Name()
					loc := filepath.Join(dir, entry.Name(), sub.Name())
					found = append(found, deps.Dependency{Name: name, InstallLocation: loc})
					worklist = append(worklist, filepath.Join(loc, "node_modules"))
				}
				continue
			}
			loc := filepath.Join(dir, entry.Name())
			found = append(found, deps.Dependency{Name: entry.Name(), InstallLocation: loc})
			worklist = append(worklist, filepath.Join(loc, "node_modules"))
		}
	}

	slices.SortFunc(found, func(a, b deps.Dependency) int {
		return strings.Compare(a.Name, b.Name)
	})
	return found, nil
}
