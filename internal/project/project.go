// Package project discovers and reads the optional alusus.toml project
// manifest. A manifest contributes extra library directories to the
// import search paths.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked for when walking up from the working
// directory.
const ManifestName = "alusus.toml"

// Manifest is the parsed [package] section.
type Manifest struct {
	Name string
	dir  string
	libs []string
}

type manifestFile struct {
	Package struct {
		Name    string   `toml:"name"`
		LibDirs []string `toml:"lib-dirs"`
	} `toml:"package"`
}

// FindManifest walks up from startDir looking for alusus.toml. A missing
// manifest is reported through ok=false, not an error.
func FindManifest(startDir string) (Manifest, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Manifest{}, false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			m, err := LoadManifest(candidate)
			if err != nil {
				return Manifest{}, false, err
			}
			return m, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return Manifest{}, false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return Manifest{}, false, nil
}

// LoadManifest parses one manifest file.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return Manifest{
		Name: cfg.Package.Name,
		dir:  filepath.Dir(path),
		libs: cfg.Package.LibDirs,
	}, nil
}

// Dir returns the directory containing the manifest.
func (m Manifest) Dir() string { return m.dir }

// LibDirs returns the manifest's library directories resolved against
// the manifest's own directory.
func (m Manifest) LibDirs() []string {
	out := make([]string, 0, len(m.libs))
	for _, d := range m.libs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(m.dir, d)
		}
		out = append(out, d)
	}
	return out
}
