package layout

import "errors"

// ErrHandleState is returned when a handle step is invoked out of order
// or a finished handle is reused.
var ErrHandleState = errors.New("layout: handle advanced out of order")

// Session is the resumable computation exposed by a tree-to-box
// resolver: step one reports raw text segments lacking glyph coverage
// without finalizing geometry, step two resumes after asset resolution,
// and step three computes final geometry and yields serialized body
// content for the given origin offset.
type Session interface {
	MissingGlyphs() ([]string, error)
	Resume() error
	Finalize(x, y float64) (string, error)
}

// HandleState tracks a handle's position in the fixed resumption order.
type HandleState uint8

const (
	// HandleCreated is the initial state.
	HandleCreated HandleState = iota
	// HandleSegments follows a successful AdvanceSegments.
	HandleSegments
	// HandleResumed follows a successful AdvanceResume.
	HandleResumed
	// HandleDone follows a successful AdvanceFinalize; the handle is spent.
	HandleDone
	// HandleFailed is terminal; the handle cannot advance further.
	HandleFailed
)

// String returns the string representation of the state.
func (s HandleState) String() string {
	switch s {
	case HandleCreated:
		return "Created"
	case HandleSegments:
		return "Segments"
	case HandleResumed:
		return "Resumed"
	case HandleDone:
		return "Done"
	case HandleFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Handle enforces the three-step resumption order over a Session
// structurally: each step is checked against the handle's state, so a
// skipped or repeated step fails instead of corrupting the resolver.
// A Handle is single-use and must not be shared between goroutines.
type Handle struct {
	session Session
	state   HandleState
}

// NewHandle wraps a resolver session in a checked handle.
func NewHandle(session Session) *Handle {
	return &Handle{session: session, state: HandleCreated}
}

// State returns the handle's current state.
func (h *Handle) State() HandleState { return h.state }

// AdvanceSegments performs step one: it yields the raw text segments
// lacking glyph coverage, without finalizing geometry.
func (h *Handle) AdvanceSegments() ([]string, error) {
	if h.state != HandleCreated {
		return nil, ErrHandleState
	}
	segments, err := h.session.MissingGlyphs()
	if err != nil {
		h.state = HandleFailed
		return nil, err
	}
	h.state = HandleSegments
	return segments, nil
}

// AdvanceResume performs step two, the no-op continuation separating
// asset resolution from final layout.
func (h *Handle) AdvanceResume() error {
	if h.state != HandleSegments {
		return ErrHandleState
	}
	if err := h.session.Resume(); err != nil {
		h.state = HandleFailed
		return err
	}
	h.state = HandleResumed
	return nil
}

// AdvanceFinalize performs step three: final geometry is computed and
// the serialized body content for the given origin offset is returned.
// The handle is spent afterwards.
func (h *Handle) AdvanceFinalize(x, y float64) (string, error) {
	if h.state != HandleResumed {
		return "", ErrHandleState
	}
	body, err := h.session.Finalize(x, y)
	if err != nil {
		h.state = HandleFailed
		return "", err
	}
	h.state = HandleDone
	return body, nil
}
