// Package catalog holds the fixed, ordered list of images the slider shows.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCatalog is returned when a catalog would have no entries.
	ErrEmptyCatalog = errors.New("catalog must contain at least one image")
	// ErrInvalidEntry is returned for an entry without a reference or name.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// BuiltinPrefix marks references that render a generated placeholder instead
// of a file.
const BuiltinPrefix = "builtin:"

// ImageEntry is one displayable image.
type ImageEntry struct {
	// Reference is an opaque image handle: a file path or a builtin key.
	Reference string `json:"reference" yaml:"src"`
	// Name is the display caption.
	Name string `json:"name" yaml:"name"`
	// Detail is optional secondary text, e.g. camera and date from EXIF.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// IsBuiltin reports whether the entry refers to a generated placeholder.
func (e ImageEntry) IsBuiltin() bool {
	return strings.HasPrefix(e.Reference, BuiltinPrefix)
}

// Catalog is an immutable, non-empty, ordered sequence of entries.
type Catalog struct {
	entries []ImageEntry
}

// New builds a catalog from entries. The input slice is copied.
func New(entries ...ImageEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Reference) == "" {
			return nil, fmt.Errorf("%w: entry %d has no reference", ErrInvalidEntry, i)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d (%s) has no name", ErrInvalidEntry, i, e.Reference)
		}
	}

	c := &Catalog{entries: make([]ImageEntry, len(entries))}
	copy(c.entries, entries)
	return c, nil
}

// Len returns the number of entries. Always at least one.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i.
func (c *Catalog) At(i int) (ImageEntry, bool) {
	if i < 0 || i >= len(c.entries) {
		return ImageEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all entries in order.
func (c *Catalog) Entries() []ImageEntry {
	out := make([]ImageEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Default returns the builtin five-image catalog.
func Default() *Catalog {
	entries := make([]ImageEntry, 5)
	for i := range entries {
		entries[i] = ImageEntry{
			Reference: fmt.Sprintf("%simg%d", BuiltinPrefix, i+1),
			Name:      fmt.Sprintf("Design - %d", i+1),
		}
	}
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}
