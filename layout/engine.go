// Package layout defines the interfaces the rendering pipeline consumes
// for box geometry: the external flex-layout engine, installed
// process-wide, and the resumable tree-to-box resolution protocol.
// The flexbox algorithm itself is never implemented here.
package layout

import "sync/atomic"

// Direction is the layout direction passed to Compute.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// FlexDirection is the main-axis direction of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Wrap controls line wrapping of a flex container.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
)

// Align positions lines and items on the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Overflow controls content clipping.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// Node is one box in the engine's native layout tree. The tree is
// exclusively owned by one render invocation and must be released on
// every exit path to avoid leaking native resources.
type Node interface {
	SetSize(width, height float64)
	SetFlexDirection(FlexDirection)
	SetFlexWrap(Wrap)
	SetAlignContent(Align)
	SetAlignItems(Align)
	SetOverflow(Overflow)
	InsertChild(child Node, index int)

	// Compute finalizes geometry for the subtree.
	Compute(width, height float64, direction Direction)

	// Release frees the node and its children recursively.
	Release()
}

// Engine constructs native flex containers. Exactly one engine is
// installed process-wide; rendering is blocked while none is.
type Engine interface {
	Construct(width, height float64) Node
}

// engineBox wraps the interface so clearing is distinguishable from the
// initial unset state.
type engineBox struct{ engine Engine }

var enginePtr atomic.Pointer[engineBox]

// SetEngine installs the process-wide flex-layout engine. Pass nil to
// uninstall. Safe for concurrent use.
func SetEngine(e Engine) {
	enginePtr.Store(&engineBox{engine: e})
}

// CurrentEngine returns the installed engine, or nil when none is
// installed.
func CurrentEngine() Engine {
	if box := enginePtr.Load(); box != nil {
		return box.engine
	}
	return nil
}
