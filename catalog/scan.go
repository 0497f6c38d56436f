package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"

	"slider/log"
)

// imageExts lists the extensions ScanDir picks up.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ScanDir builds a catalog from the image files directly inside dir, in
// lexical order. Names are the file stems; Detail is filled from EXIF when
// the file carries any.
func ScanDir(dir string) (*Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(de.Name()))] {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	entries := make([]ImageEntry, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		entries = append(entries, ImageEntry{
			Reference: path,
			Name:      strings.TrimSuffix(name, filepath.Ext(name)),
			Detail:    exifDetail(path),
		})
	}

	c, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("no images in %s: %w", dir, err)
	}
	return c, nil
}

// exifDetail returns "Make Model · 2 Jan 2006" from EXIF, or "" when the file
// has no usable metadata.
func exifDetail(path string) string {
	f, err := os.Open(path)
	if err != nil {
		log.WarningLog.Printf("could not open %s for metadata: %v", path, err)
		return ""
	}
	defer f.Close()

	exif, err := imagemeta.Decode(f)
	if err != nil {
		log.InfoLog.Printf("no EXIF metadata in %s: %v", path, err)
		return ""
	}

	var taken time.Time
	switch {
	case !exif.DateTimeOriginal().IsZero():
		taken = exif.DateTimeOriginal()
	case !exif.CreateDate().IsZero():
		taken = exif.CreateDate()
	}

	return formatDetail(strings.TrimSpace(exif.Make), strings.TrimSpace(exif.Model), taken)
}

func formatDetail(cameraMake, model string, taken time.Time) string {
	camera := strings.TrimSpace(cameraMake + " " + model)
	if model != "" && cameraMake != "" && strings.HasPrefix(model, cameraMake) {
		camera = model
	}

	var parts []string
	if camera != "" {
		parts = append(parts, camera)
	}
	if !taken.IsZero() {
		parts = append(parts, taken.Format("2 Jan 2006"))
	}
	return strings.Join(parts, " · ")
}
