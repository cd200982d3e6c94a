package scenery

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/scenery-dev/scenery/fontkit"
	"github.com/scenery-dev/scenery/layout"
)

type fakeNode struct {
	released bool
	sized    bool
}

func (n *fakeNode) SetSize(w, h float64)                     { n.sized = true }
func (n *fakeNode) SetFlexDirection(layout.FlexDirection)    {}
func (n *fakeNode) SetFlexWrap(layout.Wrap)                  {}
func (n *fakeNode) SetAlignContent(layout.Align)             {}
func (n *fakeNode) SetAlignItems(layout.Align)               {}
func (n *fakeNode) SetOverflow(layout.Overflow)              {}
func (n *fakeNode) InsertChild(layout.Node, int)             {}
func (n *fakeNode) Compute(w, h float64, d layout.Direction) {}
func (n *fakeNode) Release()                                 { n.released = true }

type fakeLayoutEngine struct {
	root *fakeNode
}

func (e *fakeLayoutEngine) Construct(w, h float64) layout.Node {
	e.root = &fakeNode{}
	return e.root
}

type fakeSession struct {
	missing []string
	body    string
	calls   []string
}

func (s *fakeSession) MissingGlyphs() ([]string, error) {
	s.calls = append(s.calls, "missing")
	return s.missing, nil
}

func (s *fakeSession) Resume() error {
	s.calls = append(s.calls, "resume")
	return nil
}

func (s *fakeSession) Finalize(x, y float64) (string, error) {
	s.calls = append(s.calls, "finalize")
	return s.body, nil
}

type fakeResolver struct {
	session layout.Session
	req     ResolveRequest
}

func (r *fakeResolver) Resolve(req ResolveRequest) (layout.Session, error) {
	r.req = req
	return r.session, nil
}

type renderFace struct{ name string }

func (f renderFace) Name() string       { return f.name }
func (f renderFace) HasGlyph(rune) bool { return true }

func installBackends(t *testing.T, engine layout.Engine, resolver BoxResolver) {
	t.Helper()
	layout.SetEngine(engine)
	SetBoxResolver(resolver)
	t.Cleanup(func() {
		layout.SetEngine(nil)
		SetBoxResolver(nil)
	})
}

func TestRenderNoFlexBackend(t *testing.T) {
	installBackends(t, nil, &fakeResolver{})
	_, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 10, Height: 10})
	if !errors.Is(err, ErrNoFlexBackend) {
		t.Fatalf("err = %v, want ErrNoFlexBackend", err)
	}
}

func TestRenderNoBoxResolver(t *testing.T) {
	installBackends(t, &fakeLayoutEngine{}, nil)
	_, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 10, Height: 10})
	if !errors.Is(err, ErrNoBoxResolver) {
		t.Fatalf("err = %v, want ErrNoBoxResolver", err)
	}
}

func TestRenderNilElement(t *testing.T) {
	installBackends(t, &fakeLayoutEngine{}, &fakeResolver{session: &fakeSession{}})
	_, err := Render(context.Background(), nil, RenderOptions{Width: 10, Height: 10})
	if !errors.Is(err, ErrNilElement) {
		t.Fatalf("err = %v, want ErrNilElement", err)
	}
}

func TestRenderHappyPath(t *testing.T) {
	engine := &fakeLayoutEngine{}
	session := &fakeSession{body: `<g id="body"/>`}
	resolver := &fakeResolver{session: session}
	installBackends(t, engine, resolver)

	doc, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 200, Height: 100})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(doc, `<svg width="200" height="100" viewBox="0 0 200 100"`) {
		t.Errorf("document prefix = %q", doc)
	}
	if !strings.Contains(doc, session.body) {
		t.Errorf("document missing body content: %q", doc)
	}
	if !strings.HasSuffix(doc, `</svg>`) {
		t.Errorf("document suffix = %q", doc)
	}
	want := []string{"missing", "resume", "finalize"}
	if len(session.calls) != len(want) {
		t.Fatalf("session calls = %v, want %v", session.calls, want)
	}
	for i := range want {
		if session.calls[i] != want[i] {
			t.Fatalf("session calls = %v, want %v", session.calls, want)
		}
	}
	if !engine.root.released {
		t.Error("container not released")
	}
	if !engine.root.sized {
		t.Error("container never sized")
	}
}

func TestRenderAssetResolution(t *testing.T) {
	engine := &fakeLayoutEngine{}
	session := &fakeSession{missing: []string{"漢", "字", "😀"}, body: "<g/>"}
	resolver := &fakeResolver{session: session}
	installBackends(t, engine, resolver)

	var mu sync.Mutex
	calls := map[string]string{}
	loader := func(ctx context.Context, code, text string) (AssetResult, error) {
		mu.Lock()
		calls[code] = text
		mu.Unlock()
		switch code {
		case "ja":
			return AssetResult{Face: renderFace{name: "Noto Sans JP"}}, nil
		case "emoji":
			return AssetResult{ImageURI: "data:image/svg+xml;base64,xyz"}, nil
		}
		return AssetResult{}, nil
	}

	_, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{
		Width: 10, Height: 10,
		LoadAdditionalAsset: loader,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := calls["ja"]; got != "漢字" {
		t.Errorf(`calls["ja"] = %q, want "漢字"`, got)
	}
	if got := calls["emoji"]; got != "😀" {
		t.Errorf(`calls["emoji"] = %q, want the emoji grapheme`, got)
	}
	if len(calls) != 2 {
		t.Errorf("loader called for %d codes, want 2: %v", len(calls), calls)
	}
	if got := resolver.req.Registry.Len(); got != 1 {
		t.Errorf("registry length after resolution = %d, want 1", got)
	}
	if got := resolver.req.GraphemeImages["😀"]; got != "data:image/svg+xml;base64,xyz" {
		t.Errorf("grapheme image = %q", got)
	}
}

func TestRenderLoaderFailure(t *testing.T) {
	engine := &fakeLayoutEngine{}
	session := &fakeSession{missing: []string{"漢"}}
	installBackends(t, engine, &fakeResolver{session: session})

	boom := errors.New("fetch failed")
	loader := func(ctx context.Context, code, text string) (AssetResult, error) {
		return AssetResult{}, boom
	}

	doc, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{
		Width: 10, Height: 10,
		LoadAdditionalAsset: loader,
	})
	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *AssetLoadError", err)
	}
	if loadErr.Code != "ja" || loadErr.Text != "漢" {
		t.Errorf("AssetLoadError = %+v", loadErr)
	}
	if !errors.Is(err, boom) {
		t.Error("loader cause not wrapped")
	}
	if doc != "" {
		t.Errorf("document = %q, want empty on failure", doc)
	}
	if !engine.root.released {
		t.Error("container not released on failure")
	}
	for _, call := range session.calls {
		if call == "resume" || call == "finalize" {
			t.Errorf("second pass ran after loader failure: %v", session.calls)
		}
	}
}

func TestRenderSkipsResolutionWithoutLoader(t *testing.T) {
	engine := &fakeLayoutEngine{}
	session := &fakeSession{missing: []string{"漢"}, body: "<g/>"}
	installBackends(t, engine, &fakeResolver{session: session})

	if _, err := Render(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 10, Height: 10}); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

type fakeRasterizer struct {
	document string
	fitWidth int
	out      []byte
}

func (r *fakeRasterizer) Render(document string, fitWidth int) ([]byte, error) {
	r.document = document
	r.fitWidth = fitWidth
	return r.out, nil
}

func TestRenderRaster(t *testing.T) {
	engine := &fakeLayoutEngine{}
	installBackends(t, engine, &fakeResolver{session: &fakeSession{body: "<g/>"}})

	SetRasterizer(nil)
	if _, err := RenderRaster(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 10, Height: 10}); !errors.Is(err, ErrNoRasterizer) {
		t.Fatalf("err = %v, want ErrNoRasterizer", err)
	}

	raster := &fakeRasterizer{out: []byte{0x89, 'P', 'N', 'G'}}
	SetRasterizer(raster)
	t.Cleanup(func() { SetRasterizer(nil) })

	out, err := RenderRaster(context.Background(), &Element{Type: "div"}, RenderOptions{Width: 320, Height: 64})
	if err != nil {
		t.Fatalf("RenderRaster: %v", err)
	}
	if len(out) != 4 {
		t.Errorf("output length = %d, want 4", len(out))
	}
	if raster.fitWidth != 320 {
		t.Errorf("fitWidth = %d, want 320", raster.fitWidth)
	}
	if !strings.HasPrefix(raster.document, "<svg") {
		t.Errorf("rasterizer received %q", raster.document)
	}
}

func TestRegistryIdentityReuse(t *testing.T) {
	cache := newRegistryCache(func([]fontkit.Font) (*fontkit.Registry, error) {
		r := &fontkit.Registry{}
		r.Append(renderFace{name: "stub"})
		return r, nil
	})

	fonts := []fontkit.Font{{Name: "A", Data: []byte{1}}}
	first, err := cache.lookup(fonts)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	second, err := cache.lookup(fonts)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if first != second {
		t.Error("same slice identity produced distinct registries")
	}

	other := []fontkit.Font{{Name: "A", Data: []byte{1}}}
	third, err := cache.lookup(other)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if third == first {
		t.Error("distinct slices shared one registry")
	}

	empty, err := cache.lookup(nil)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if empty == first {
		t.Error("empty font list reused a cached registry")
	}
}

func TestAssembleDocumentEmbedAndDebug(t *testing.T) {
	opts := RenderOptions{
		Width: 50, Height: 40,
		EmbedFont: true,
		Debug:     true,
		Fonts:     []fontkit.Font{{Name: "Inter", Data: []byte("abc"), Weight: "700"}},
	}
	doc := assembleDocument("<g/>", opts)
	if !strings.Contains(doc, "@font-face") {
		t.Error("embedded font style missing")
	}
	if !strings.Contains(doc, "font-weight:700") {
		t.Error("font weight not carried into @font-face")
	}
	if !strings.Contains(doc, "base64,YWJj") {
		t.Error("font data not base64-embedded")
	}
	if !strings.Contains(doc, `stroke="magenta"`) {
		t.Error("debug annotation missing")
	}
}
