package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slider/catalog"
	"slider/config"
	"slider/inspect"
	"slider/ui/layout"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv(config.ConfigDirEnvVar, t.TempDir())
	t.Cleanup(func() {
		dirFlag, manifestFlag, cellWidthFlag, noMouseFlag = "", "", 0, false
	})

	cfg := loadConfig()
	assert.True(t, cfg.Mouse)
	assert.Empty(t, cfg.ImageDir)

	dirFlag, cellWidthFlag, noMouseFlag = "/pics", 10, true
	cfg = loadConfig()
	assert.Equal(t, "/pics", cfg.ImageDir)
	assert.Equal(t, 10, cfg.CellWidth)
	assert.False(t, cfg.Mouse)

	manifestFlag = "/slides.yaml"
	cfg = loadConfig()
	assert.Equal(t, "/slides.yaml", cfg.Manifest)
}

func TestPrintCatalog(t *testing.T) {
	cat, err := catalog.New(
		catalog.ImageEntry{Reference: "builtin:a", Name: "Alpha"},
		catalog.ImageEntry{Reference: "/tmp/b.jpg", Name: "Beta", Detail: "Canon EOS R5"},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, cat))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Alpha")
	assert.Contains(t, string(lines[1]), "Canon EOS R5")
}

func TestSavedOverridesPersist(t *testing.T) {
	t.Setenv(config.ConfigDirEnvVar, t.TempDir())
	t.Cleanup(func() {
		dirFlag, cellWidthFlag = "", 0
	})

	dirFlag, cellWidthFlag = "/pics", 10
	require.NoError(t, config.SaveConfig(loadConfig()))

	dirFlag, cellWidthFlag = "", 0
	cfg := loadConfig()
	assert.Equal(t, 10, cfg.CellWidth)
	assert.Equal(t, "/pics", cfg.ImageDir)
	assert.Equal(t, layout.ViewportMobile, layout.DetermineViewport(layout.PixelWidth(76, cfg.CellWidth)))
}

func TestPrintInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.json")
	snap := inspect.NewSnapshot().
		WithTerminal(62, 30, 496).
		WithAppState(inspect.AppStateInfo{SelectedIndex: 2, Caption: "Design - 3", ImageCount: 5})
	require.NoError(t, inspect.WriteSnapshotToPath(snap, path))

	var buf bytes.Buffer
	require.NoError(t, printInspect(&buf, path))
	assert.Contains(t, buf.String(), "=== UI Snapshot ===")
	assert.Contains(t, buf.String(), "Terminal: 62x30 (496px)")
	assert.Contains(t, buf.String(), "Design - 3")

	assert.Error(t, printInspect(&buf, filepath.Join(t.TempDir(), "missing.json")))
}
