package scenery

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// assembleDocument wraps the rendered body content in an <svg> root
// element sized per the options. With EmbedFont set, the supplied fonts
// are inlined as base64 @font-face rules so the document renders
// without external font resources.
func assembleDocument(body string, opts RenderOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`,
		opts.Width, opts.Height, opts.Width, opts.Height)
	if opts.EmbedFont && len(opts.Fonts) > 0 {
		sb.WriteString(embeddedFontStyle(opts))
	}
	if opts.Debug {
		fmt.Fprintf(&sb,
			`<rect x="0" y="0" width="%d" height="%d" fill="none" stroke="magenta" stroke-width="1"/>`,
			opts.Width, opts.Height)
	}
	sb.WriteString(body)
	sb.WriteString(`</svg>`)
	return sb.String()
}

func embeddedFontStyle(opts RenderOptions) string {
	var sb strings.Builder
	sb.WriteString(`<style>`)
	for _, f := range opts.Fonts {
		if len(f.Data) == 0 {
			continue
		}
		weight := f.Weight
		if weight == "" {
			weight = "normal"
		}
		style := f.Style
		if style == "" {
			style = "normal"
		}
		fmt.Fprintf(&sb,
			"@font-face{font-family:%q;font-weight:%s;font-style:%s;src:url(data:font/otf;base64,%s)}",
			f.Name, weight, style, base64.StdEncoding.EncodeToString(f.Data))
	}
	sb.WriteString(`</style>`)
	return sb.String()
}
