// Package manifest handles soup.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/turingsoup/complexity"
	"github.com/chazu/turingsoup/vm"
)

// Manifest represents a soup.toml configuration.
type Manifest struct {
	Project    Project    `toml:"project"`
	Simulation Simulation `toml:"simulation"`
	Scoring    Scoring    `toml:"scoring"`

	// Dir is the directory containing the soup.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Simulation configures the execution kernel defaults.
type Simulation struct {
	// RegionSize is the length of one soup region in bytes.
	RegionSize int `toml:"region-size"`

	// MaxSteps is the per-execution step budget.
	MaxSteps uint32 `toml:"max-steps"`

	// Head1Offset is the write head's initial position on a combined
	// tape. Zero means "the seam", i.e. RegionSize.
	Head1Offset int `toml:"head1-offset"`

	// SoupSize is the expected soup buffer length in bytes; informational
	// for tooling, the kernel takes whatever buffer it is handed.
	SoupSize int `toml:"soup-size"`
}

// Scoring configures complexity scoring.
type Scoring struct {
	// CompressionLevel documents the deflate level used for Kolmogorov
	// estimates. The estimator is pinned; any other value is rejected so
	// stale configs fail loudly instead of silently scoring differently.
	CompressionLevel int `toml:"compression-level"`
}

// Load parses a soup.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "soup.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a soup.toml file, then loads
// and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "soup.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Default returns the manifest used when no soup.toml is present.
func Default() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	if m.Simulation.RegionSize == 0 {
		m.Simulation.RegionSize = 64
	}
	if m.Simulation.MaxSteps == 0 {
		m.Simulation.MaxSteps = vm.MaxSteps
	}
	if m.Simulation.Head1Offset == 0 {
		m.Simulation.Head1Offset = m.Simulation.RegionSize
	}
	if m.Simulation.SoupSize == 0 {
		m.Simulation.SoupSize = 256 * m.Simulation.RegionSize
	}
	if m.Scoring.CompressionLevel == 0 {
		m.Scoring.CompressionLevel = complexity.CompressionLevel
	}
}

func (m *Manifest) validate() error {
	if m.Simulation.RegionSize < 0 {
		return fmt.Errorf("region-size must be positive, got %d", m.Simulation.RegionSize)
	}
	if m.Scoring.CompressionLevel != complexity.CompressionLevel {
		return fmt.Errorf("compression-level is pinned to %d, got %d",
			complexity.CompressionLevel, m.Scoring.CompressionLevel)
	}
	return nil
}
