// Package yoga adapts the kjk/flex flexbox implementation, a Go port of
// Facebook's Yoga, to the layout.Engine interface.
package yoga

import (
	"github.com/kjk/flex"

	"github.com/scenery-dev/scenery/layout"
)

// Engine constructs flex nodes sharing one configuration.
type Engine struct {
	config *flex.Config
}

// New returns an engine with a fresh flex configuration.
func New() *Engine {
	return &Engine{config: flex.NewConfig()}
}

// Install makes a new engine the process-wide flex backend.
func Install() {
	layout.SetEngine(New())
}

// Construct returns a node sized to the given dimensions.
func (e *Engine) Construct(width, height float64) layout.Node {
	n := &node{inner: flex.NewNodeWithConfig(e.config)}
	n.SetSize(width, height)
	return n
}

type node struct {
	inner    *flex.Node
	children []*node
}

func (n *node) SetSize(width, height float64) {
	n.inner.StyleSetWidth(float32(width))
	n.inner.StyleSetHeight(float32(height))
}

func (n *node) SetFlexDirection(d layout.FlexDirection) {
	switch d {
	case layout.FlexColumn:
		n.inner.StyleSetFlexDirection(flex.FlexDirectionColumn)
	default:
		n.inner.StyleSetFlexDirection(flex.FlexDirectionRow)
	}
}

func (n *node) SetFlexWrap(w layout.Wrap) {
	switch w {
	case layout.WrapLines:
		n.inner.StyleSetFlexWrap(flex.WrapWrap)
	default:
		n.inner.StyleSetFlexWrap(flex.WrapNoWrap)
	}
}

func (n *node) SetAlignContent(a layout.Align) {
	n.inner.StyleSetAlignContent(alignOf(a))
}

func (n *node) SetAlignItems(a layout.Align) {
	n.inner.StyleSetAlignItems(alignOf(a))
}

func (n *node) SetOverflow(o layout.Overflow) {
	switch o {
	case layout.OverflowHidden:
		n.inner.StyleSetOverflow(flex.OverflowHidden)
	default:
		n.inner.StyleSetOverflow(flex.OverflowVisible)
	}
}

func (n *node) InsertChild(child layout.Node, index int) {
	c, ok := child.(*node)
	if !ok {
		return
	}
	n.inner.InsertChild(c.inner, index)
	n.children = append(n.children, c)
}

func (n *node) Compute(width, height float64, direction layout.Direction) {
	dir := flex.DirectionLTR
	if direction == layout.DirectionRTL {
		dir = flex.DirectionRTL
	}
	flex.CalculateLayout(n.inner, float32(width), float32(height), dir)
}

// Release detaches the subtree so the flex nodes become collectable.
// kjk/flex allocates on the Go heap, so detaching is all that is needed.
func (n *node) Release() {
	for _, c := range n.children {
		c.Release()
		n.inner.RemoveChild(c.inner)
	}
	n.children = nil
}

func alignOf(a layout.Align) flex.Align {
	switch a {
	case layout.AlignCenter:
		return flex.AlignCenter
	case layout.AlignEnd:
		return flex.AlignFlexEnd
	case layout.AlignStretch:
		return flex.AlignStretch
	default:
		return flex.AlignFlexStart
	}
}
