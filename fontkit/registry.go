// Package fontkit holds parsed font resources and answers glyph-coverage
// queries for the rendering pipeline. Parsing uses
// golang.org/x/image/font/opentype; the registry itself is append-only
// so partially applied asset resolutions are safe to leave in place.
package fontkit

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("fontkit: empty font data")

// Font describes one font resource before parsing.
type Font struct {
	// Name is the font family name used in style resolution.
	Name string

	// Data is the raw TTF or OTF file content.
	Data []byte

	// Weight and Style select among faces of the same family
	// ("400", "700", "normal", "italic", ...).
	Weight string
	Style  string
}

// Face is a parsed font resource queried for glyph coverage.
type Face interface {
	// Name returns the font family name.
	Name() string

	// HasGlyph reports whether the face has a glyph for the rune.
	HasGlyph(r rune) bool
}

// Parse parses a font descriptor into a Face.
func Parse(f Font) (Face, error) {
	if len(f.Data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := opentype.Parse(f.Data)
	if err != nil {
		return nil, fmt.Errorf("fontkit: failed to parse font %q: %w", f.Name, err)
	}
	name := f.Name
	if name == "" {
		if family, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
			name = family
		}
	}
	return &parsedFace{name: name, font: parsed}, nil
}

// parsedFace implements Face over an opentype font.
type parsedFace struct {
	name string
	font *opentype.Font
}

func (f *parsedFace) Name() string { return f.name }

// HasGlyph implements Face.HasGlyph. Glyph index zero is the missing
// glyph (.notdef).
func (f *parsedFace) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return false
	}
	return idx != 0
}

// Registry holds parsed font resources for one font list. Coverage
// queries consult faces in order, first face wins (fallback order).
//
// Registry is safe for concurrent use. Mutation is append-only.
type Registry struct {
	mu    sync.RWMutex
	faces []Face
}

// NewRegistry parses the given fonts into a registry. Parsing stops at
// the first failure.
func NewRegistry(fonts ...Font) (*Registry, error) {
	r := &Registry{}
	if err := r.AppendFonts(fonts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Append appends already-parsed faces to the registry.
func (r *Registry) Append(faces ...Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces = append(r.faces, faces...)
}

// AppendFonts parses and appends font descriptors in bulk.
func (r *Registry) AppendFonts(fonts ...Font) error {
	parsed := make([]Face, 0, len(fonts))
	for _, f := range fonts {
		face, err := Parse(f)
		if err != nil {
			return err
		}
		parsed = append(parsed, face)
	}
	r.Append(parsed...)
	return nil
}

// HasGlyph reports whether any face in the registry covers the rune.
func (r *Registry) HasGlyph(ch rune) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, face := range r.faces {
		if face.HasGlyph(ch) {
			return true
		}
	}
	return false
}

// Len returns the number of faces held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.faces)
}

// Faces returns a snapshot of the held faces in fallback order.
func (r *Registry) Faces() []Face {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Face, len(r.faces))
	copy(out, r.faces)
	return out
}
