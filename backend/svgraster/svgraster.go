// Package svgraster rasterizes vector documents to PNG with the
// srwiley/oksvg and srwiley/rasterx pure-Go SVG pipeline.
package svgraster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	scenery "github.com/scenery-dev/scenery"
)

// maxDim caps the raster dimensions so a huge viewBox cannot allocate
// an unbounded RGBA buffer.
const maxDim = 8192

// ErrNoIntrinsicSize is returned when the document's viewBox carries no
// usable dimensions.
var ErrNoIntrinsicSize = errors.New("svgraster: document has no intrinsic size")

// Rasterizer renders SVG documents to PNG bytes.
type Rasterizer struct{}

// Install makes a rasterizer the process-wide raster backend.
func Install() {
	scenery.SetRasterizer(Rasterizer{})
}

// Render rasterizes the document. A positive fitWidth scales the output
// to that pixel width preserving aspect ratio; zero keeps the intrinsic
// viewBox size.
func (Rasterizer) Render(document string, fitWidth int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(document))
	if err != nil {
		return nil, err
	}

	intrW := icon.ViewBox.W
	intrH := icon.ViewBox.H
	if intrW <= 0 || intrH <= 0 {
		return nil, ErrNoIntrinsicSize
	}

	w := int(math.Ceil(intrW))
	h := int(math.Ceil(intrH))
	if fitWidth > 0 {
		w = fitWidth
		h = int(math.Round(float64(fitWidth) * intrH / intrW))
	}
	if w > maxDim || h > maxDim {
		s := math.Min(float64(maxDim)/float64(w), float64(maxDim)/float64(h))
		w = int(math.Round(float64(w) * s))
		h = int(math.Round(float64(h) * s))
	}
	w = max(w, 1)
	h = max(h, 1)

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
