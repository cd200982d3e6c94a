package scenery

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/scenery-dev/scenery/fontkit"
	"github.com/scenery-dev/scenery/layout"
	"github.com/scenery-dev/scenery/text"
)

// renderState names the pipeline phases for diagnostics.
type renderState uint8

const (
	stateInit renderState = iota
	stateFirstPass
	stateAssetResolution
	stateSecondPass
	stateDone
)

// String returns the string representation of the state.
func (s renderState) String() string {
	switch s {
	case stateInit:
		return "INIT"
	case stateFirstPass:
		return "FIRST_PASS"
	case stateAssetResolution:
		return "ASSET_RESOLUTION"
	case stateSecondPass:
		return "SECOND_PASS"
	case stateDone:
		return "DONE"
	default:
		return "FAILED"
	}
}

// Render converts the element tree into an SVG document of the
// requested size.
//
// Rendering runs in two phases: the first layout pass discovers text
// segments lacking glyph coverage; if a loader is supplied, missing
// segments are grouped by detected language code and resolved
// concurrently, mutating the shared font registry and grapheme image
// map; the second pass then computes final geometry and serializes the
// body content. Any loader failure aborts the whole render.
func Render(ctx context.Context, element *Element, opts RenderOptions) (string, error) {
	body, err := renderBody(ctx, element, opts)
	if err != nil {
		return "", err
	}
	Logger().Debug("render complete", slog.String("state", stateDone.String()))
	return assembleDocument(body, opts), nil
}

// RenderRaster renders the element tree and hands the resulting vector
// document to the installed rasterizer, configured to fit the requested
// width.
func RenderRaster(ctx context.Context, element *Element, opts RenderOptions) ([]byte, error) {
	rasterizer := currentRasterizer()
	if rasterizer == nil {
		return nil, ErrNoRasterizer
	}
	document, err := Render(ctx, element, opts)
	if err != nil {
		return nil, err
	}
	return rasterizer.Render(document, opts.Width)
}

func renderBody(ctx context.Context, element *Element, opts RenderOptions) (string, error) {
	log := Logger()

	// INIT: backends are process-wide preconditions, not retried per
	// request.
	if element == nil {
		return "", ErrNilElement
	}
	engine := layout.CurrentEngine()
	if engine == nil {
		return "", ErrNoFlexBackend
	}
	resolver := currentResolver()
	if resolver == nil {
		return "", ErrNoBoxResolver
	}

	registry, err := registries.lookup(opts.Fonts)
	if err != nil {
		return "", err
	}

	images := opts.GraphemeImages
	if images == nil {
		images = make(map[string]string)
	}

	// FIRST_PASS: fixed-size root container, row direction, wrapping,
	// start-aligned content, hidden overflow.
	width, height := float64(opts.Width), float64(opts.Height)
	container := engine.Construct(width, height)
	container.SetSize(width, height)
	container.SetFlexDirection(layout.FlexRow)
	container.SetFlexWrap(layout.WrapLines)
	container.SetAlignContent(layout.AlignStart)
	container.SetAlignItems(layout.AlignStart)
	container.SetOverflow(layout.OverflowHidden)

	// The engine's native tree is owned by this invocation and released
	// on every exit path, success or failure.
	defer container.Release()

	session, err := resolver.Resolve(ResolveRequest{
		Element:        element,
		Inherited:      opts.inheritedStyle(),
		Registry:       registry,
		GraphemeImages: images,
		Container:      container,
		ViewportWidth:  opts.Width,
		ViewportHeight: opts.Height,
	})
	if err != nil {
		return "", err
	}
	handle := layout.NewHandle(session)

	log.Debug("first pass", slog.String("state", stateFirstPass.String()))
	missing, err := handle.AdvanceSegments()
	if err != nil {
		return "", err
	}

	if opts.LoadAdditionalAsset != nil && len(missing) > 0 {
		log.Debug("resolving assets",
			slog.String("state", stateAssetResolution.String()),
			slog.Int("segments", len(missing)))
		if err := resolveAssets(ctx, missing, registry, images, opts); err != nil {
			return "", err
		}
	}

	// SECOND_PASS: resume with the updated registry and image map,
	// finalize geometry at the origin.
	log.Debug("second pass", slog.String("state", stateSecondPass.String()))
	if err := handle.AdvanceResume(); err != nil {
		return "", err
	}
	return handle.AdvanceFinalize(0, 0)
}

// resolveAssets groups the missing segments into language buckets and
// fans one loader call per bucket entry out concurrently. Completion of
// all calls is a barrier: the second pass never starts with resolution
// in flight, and any single failure aborts the render. Registry and
// image-map mutations are append-only, so partial application on abort
// is safe to leave in place.
func resolveAssets(ctx context.Context, missing []string, registry *fontkit.Registry, images map[string]string, opts RenderOptions) error {
	buckets, err := text.BucketMissing(missing, opts.DetectLanguage)
	if err != nil {
		return err
	}

	results := make([]AssetResult, len(buckets))
	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		g.Go(func() error {
			result, err := opts.LoadAdditionalAsset(gctx, bucket.Code, bucket.Text)
			if err != nil {
				return &AssetLoadError{Code: bucket.Code, Text: bucket.Text, Err: err}
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var faces []fontkit.Face
	for i, result := range results {
		if result.Face != nil {
			faces = append(faces, result.Face)
		}
		if result.ImageURI != "" {
			images[buckets[i].Text] = result.ImageURI
		}
	}
	registry.Append(faces...)
	return nil
}

// inheritedStyle builds the root inherited style handed to the resolver.
func (o RenderOptions) inheritedStyle() map[string]any {
	return map[string]any{
		"fontSize": float64(16),
		"color":    "black",
	}
}
