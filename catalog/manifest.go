package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk YAML form of a catalog:
//
//	images:
//	  - src: img/one.jpg
//	    name: Design - 1
type Manifest struct {
	Images []ImageEntry `yaml:"images"`
}

// LoadManifest reads a YAML manifest. Relative sources resolve against the
// manifest's directory; builtin references are kept as-is.
func LoadManifest(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data, filepath.Dir(path))
}

// ParseManifest parses manifest data, resolving relative sources against baseDir.
func ParseManifest(data []byte, baseDir string) (*Catalog, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	for i, e := range m.Images {
		if e.IsBuiltin() || e.Reference == "" || filepath.IsAbs(e.Reference) {
			continue
		}
		m.Images[i].Reference = filepath.Join(baseDir, e.Reference)
	}

	c, err := New(m.Images...)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return c, nil
}
