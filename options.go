package scenery

import (
	"context"

	"github.com/scenery-dev/scenery/fontkit"
)

// AssetResult is what the asset loader resolves one bucket entry to:
// a font resource, an image URI for the exact text submitted, or
// nothing (zero value, unresolved).
type AssetResult struct {
	// Face is a parsed font resource; when non-nil it is appended to
	// the render's font registry.
	Face fontkit.Face

	// ImageURI, when non-empty, is inserted into the grapheme image map
	// keyed by the exact text submitted to the loader.
	ImageURI string
}

// AssetLoader resolves missing text grouped by detected language code.
// Loaders are called once per bucket entry, concurrently; any single
// failure aborts the whole render. Network and caching policy is owned
// by the loader.
type AssetLoader func(ctx context.Context, code, text string) (AssetResult, error)

// RenderOptions is the top-level render request.
type RenderOptions struct {
	// Width and Height are the output dimensions in pixels.
	Width  int
	Height int

	// Fonts is the font list for this render. The font registry built
	// from it is cached per list identity for the process lifetime: two
	// requests sharing the same slice share one registry, and mutations
	// from one are visible to the other. Callers must not mutate a font
	// list concurrently with an in-flight render using it.
	Fonts []fontkit.Font

	// EmbedFont embeds the font data into the output document as
	// @font-face rules.
	EmbedFont bool

	// Debug annotates the output document with render information.
	Debug bool

	// GraphemeImages maps grapheme clusters to image URIs substituted
	// for them. Asset resolution inserts into this map; a nil map is
	// allocated on demand.
	GraphemeImages map[string]string

	// DetectLanguage classifies one grapheme cluster into a short
	// language code. Nil selects the default detector.
	DetectLanguage func(grapheme string) string

	// LoadAdditionalAsset resolves text lacking glyph coverage. Nil
	// skips asset resolution entirely.
	LoadAdditionalAsset AssetLoader
}
