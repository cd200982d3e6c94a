package scenery

import (
	"errors"
	"sync/atomic"

	"github.com/scenery-dev/scenery/fontkit"
	"github.com/scenery-dev/scenery/layout"
)

// ErrNoBoxResolver is returned when no tree-to-box resolver has been
// installed via SetBoxResolver.
var ErrNoBoxResolver = errors.New("scenery: no tree-to-box resolver installed")

// ResolveRequest carries everything the tree-to-box resolver consumes.
type ResolveRequest struct {
	Element   *Element
	Inherited map[string]any

	// Registry and GraphemeImages are shared with asset resolution:
	// appends and inserts between the first and second pass are visible
	// to the resolver when it resumes.
	Registry       *fontkit.Registry
	GraphemeImages map[string]string

	// Container is the root flex container, already configured.
	Container layout.Node

	ViewportWidth  int
	ViewportHeight int
}

// BoxResolver lazily builds the box tree for an element tree and exposes
// the three-step resumable protocol: report text segments lacking glyph
// coverage, resume after asset resolution, then finalize geometry and
// serialize body content.
type BoxResolver interface {
	Resolve(req ResolveRequest) (layout.Session, error)
}

// Rasterizer turns a vector document into encoded raster bytes, scaled
// to fit the given width.
type Rasterizer interface {
	Render(document string, fitWidth int) ([]byte, error)
}

type resolverBox struct{ resolver BoxResolver }

type rasterizerBox struct{ rasterizer Rasterizer }

var (
	resolverPtr   atomic.Pointer[resolverBox]
	rasterizerPtr atomic.Pointer[rasterizerBox]
)

// SetBoxResolver installs the process-wide tree-to-box resolver. Pass
// nil to uninstall. Safe for concurrent use.
func SetBoxResolver(r BoxResolver) {
	resolverPtr.Store(&resolverBox{resolver: r})
}

func currentResolver() BoxResolver {
	if box := resolverPtr.Load(); box != nil {
		return box.resolver
	}
	return nil
}

// SetRasterizer installs the process-wide rasterizer used by
// RenderRaster. Pass nil to uninstall. Safe for concurrent use.
func SetRasterizer(r Rasterizer) {
	rasterizerPtr.Store(&rasterizerBox{rasterizer: r})
}

func currentRasterizer() Rasterizer {
	if box := rasterizerPtr.Load(); box != nil {
		return box.rasterizer
	}
	return nil
}
