// Package scenery converts a declarative, styled element tree into an
// SVG document, and optionally into raster bytes.
//
// Box geometry is delegated to an external flex-layout engine and
// rasterization to an external renderer; both are installed process-wide
// through the [layout.SetEngine] and [SetRasterizer] hooks. The package
// itself owns the two-phase rendering pipeline: a first layout pass
// discovers text segments lacking glyph coverage, missing assets are
// resolved concurrently through a caller-supplied loader grouped by
// detected script, and a second pass produces the final document.
//
// Text preparation (segmentation, line-break opportunities, highlight
// reconciliation) lives in the text sub-package; CSS length and angle
// literals are resolved by the css sub-package.
package scenery
