package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slider/ui"
	"slider/ui/layout"
)

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigDirEnvVar, dir)
	return dir
}

func TestLoadConfigWritesDefaults(t *testing.T) {
	dir := withConfigDir(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, *DefaultConfig(), onDisk)
}

func TestLoadConfigMergesWithDefaults(t *testing.T) {
	dir := withConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"cell_width": 10, "mouse": false}`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.CellWidth)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, ui.DefaultTitle, cfg.Title)
	assert.Equal(t, ui.DefaultDescription, cfg.Description)
}

func TestLoadConfigNormalizes(t *testing.T) {
	dir := withConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"cell_width": -3, "title": ""}`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, layout.DefaultCellWidth, cfg.CellWidth)
	assert.Equal(t, ui.DefaultTitle, cfg.Title)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	dir := withConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ConfigFileName+".corrupt.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestConfigCatalog(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "slides.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("images:\n  - src: builtin:one\n    name: One\n"), 0644))
	imageDir := filepath.Join(dir, "pics")
	require.NoError(t, os.MkdirAll(imageDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(imageDir, "beach.png"), []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantLen int
		first   string
		wantErr bool
	}{
		{name: "builtin default", cfg: Config{}, wantLen: 5, first: "Design - 1"},
		{name: "manifest wins", cfg: Config{Manifest: manifest, ImageDir: imageDir}, wantLen: 1, first: "One"},
		{name: "image dir", cfg: Config{ImageDir: imageDir}, wantLen: 1, first: "beach"},
		{name: "missing manifest", cfg: Config{Manifest: filepath.Join(dir, "nope.yaml")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.cfg.Catalog()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, c.Len())
			first, ok := c.At(0)
			require.True(t, ok)
			assert.Equal(t, tt.first, first.Name)
		})
	}
}
