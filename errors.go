package scenery

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rendering pipeline.
var (
	// ErrNoFlexBackend is returned when no flex-layout engine has been
	// installed. Rendering is blocked until one is set via layout.SetEngine.
	ErrNoFlexBackend = errors.New("scenery: no flex layout engine installed")

	// ErrNoRasterizer is returned by RenderRaster when no rasterizer has
	// been installed via SetRasterizer.
	ErrNoRasterizer = errors.New("scenery: no rasterizer installed")

	// ErrNilElement is returned when the element tree root is nil.
	ErrNilElement = errors.New("scenery: element tree is nil")
)

// AssetLoadError wraps a failure from the caller-supplied asset loader.
// Any single loader failure aborts the whole render; registry and image
// map mutations already applied are append-only and safe to leave in place.
type AssetLoadError struct {
	Code string // detected language code of the failed bucket entry
	Text string // text submitted to the loader
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("scenery: asset load failed for %q (%s): %v", e.Text, e.Code, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }
