package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/turingsoup/vm"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "soup.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing soup.toml: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "primordial"
version = "0.1.0"

[simulation]
region-size = 128
max-steps = 4096
head1-offset = 128
soup-size = 65536

[scoring]
compression-level = 6
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Project.Name != "primordial" {
		t.Errorf("project name = %q, want %q", m.Project.Name, "primordial")
	}
	if m.Simulation.RegionSize != 128 {
		t.Errorf("region size = %d, want 128", m.Simulation.RegionSize)
	}
	if m.Simulation.MaxSteps != 4096 {
		t.Errorf("max steps = %d, want 4096", m.Simulation.MaxSteps)
	}
	if m.Simulation.SoupSize != 65536 {
		t.Errorf("soup size = %d, want 65536", m.Simulation.SoupSize)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "minimal"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Simulation.RegionSize != 64 {
		t.Errorf("default region size = %d, want 64", m.Simulation.RegionSize)
	}
	if m.Simulation.MaxSteps != vm.MaxSteps {
		t.Errorf("default max steps = %d, want %d", m.Simulation.MaxSteps, vm.MaxSteps)
	}
	if m.Simulation.Head1Offset != 64 {
		t.Errorf("default head1 offset = %d, want the seam (64)", m.Simulation.Head1Offset)
	}
}

func TestLoadRejectsUnpinnedCompressionLevel(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[scoring]
compression-level = 9
`)

	if _, err := Load(dir); err == nil {
		t.Error("unpinned compression level accepted, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("missing soup.toml accepted, want error")
	}
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[project]
name = "walker"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest from ancestor dir")
	}
	if m.Project.Name != "walker" {
		t.Errorf("project name = %q, want %q", m.Project.Name, "walker")
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	if m.Simulation.RegionSize != 64 || m.Simulation.Head1Offset != 64 {
		t.Errorf("defaults = %+v, want 64-byte regions with seam offset", m.Simulation)
	}
}
