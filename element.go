package scenery

// Element is a node in the declarative input tree. The style cascade and
// per-node renderers live in the tree-to-box resolver; the pipeline only
// carries the tree through to it.
type Element struct {
	// Type names the node kind ("div", "span", "img", ...).
	Type string

	// Style holds the node's style declarations. Length and angle values
	// may be numbers or CSS literals resolvable by the css package.
	Style map[string]any

	// Text is the text content of a text node. Text may contain
	// well-formed, non-overlapping [text.HighlightStart]/[text.HighlightEnd]
	// sentinel pairs marking externally designated highlighted subranges.
	Text string

	// Children are the node's ordered child elements.
	Children []*Element
}
