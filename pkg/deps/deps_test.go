package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresent(t *testing.T) {
	root := t.TempDir()
	eco := &Ecosystem{Name: "javascript", ManifestFile: "package.json"}

	if eco.Present(root) {
		t.Error("Present() without manifest should be false")
	}
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !eco.Present(root) {
		t.Error("Present() with manifest should be true")
	}
}

func TestPresentIgnoresDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "Cargo.toml"), 0o755); err != nil {
		t.Fatal(err)
	}
	eco := &Ecosystem{Name: "rust", ManifestFile: "Cargo.toml"}

	if eco.Present(root) {
		t.Error("a directory named like the manifest does not count")
	}
}

func TestDetect(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"package.json", "requirements.txt"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	candidates := []*Ecosystem{
		{Name: "javascript", ManifestFile: "package.json"},
		{Name: "python", ManifestFile: "requirements.txt"},
		{Name: "rust", ManifestFile: "Cargo.toml"},
	}

	found := Detect(root, candidates)
	if len(found) != 2 {
		t.Fatalf("Detect() found %d, want 2", len(found))
	}
	if found[0].Name != "javascript" || found[1].Name != "python" {
		t.Errorf("Detect() order = %s, %s", found[0].Name, found[1].Name)
	}
}

func TestJobs(t *testing.T) {
	jobs := Jobs([]Dependency{
		{Name: "express", InstallLocation: "/proj/node_modules/express"},
		{Name: "requests"},
	})
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d", len(jobs))
	}
	if jobs[0].Name != "express" || jobs[0].InstallLocation != "/proj/node_modules/express" {
		t.Errorf("jobs[0] = %+v", jobs[0])
	}
	if jobs[1].InstallLocation != "" {
		t.Errorf("jobs[1].InstallLocation = %q", jobs[1].InstallLocation)
	}
}
