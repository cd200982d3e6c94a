// Package text prepares styled text for layout: locale-aware word and
// grapheme segmentation, Unicode line-break-opportunity resolution for
// the CSS word-break modes, highlight-span reconciliation across
// tokenization, and language/script detection for asset grouping.
package text

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/language"
)

// ErrNoSegmenter is returned when the process-wide segmentation engine
// has been cleared and no replacement was installed. This is a fatal
// configuration error: there is no fallback partitioning.
var ErrNoSegmenter = errors.New("text: no segmentation engine installed")

// Granularity selects the partition unit for Segment.
type Granularity uint8

const (
	// GranularityWord partitions into word units.
	GranularityWord Granularity = iota
	// GranularityGrapheme partitions into extended grapheme clusters.
	GranularityGrapheme
)

// String returns the string representation of the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityWord:
		return "Word"
	case GranularityGrapheme:
		return "Grapheme"
	default:
		return "Unknown"
	}
}

// Engine is the underlying segmentation capability. Both methods must
// produce a lossless partition: the concatenation of the returned tokens
// equals the input exactly.
//
// The default engine implements UAX #29 word and grapheme boundaries and
// ignores the locale; custom engines may tailor boundaries per locale.
type Engine interface {
	Words(s string, locale language.Tag) []string
	Graphemes(s string, locale language.Tag) []string
}

// engineBox wraps the Engine interface so a nil engine (cleared state)
// is distinguishable from an unset pointer (lazy default).
type engineBox struct{ engine Engine }

var (
	enginePtr      atomic.Pointer[engineBox]
	defaultEngine  Engine
	defaultBuildMu sync.Mutex
)

// SetEngine installs a process-wide segmentation engine, replacing the
// default. Pass nil to clear the engine entirely; subsequent Segment
// calls then fail with ErrNoSegmenter. Intended for tests substituting a
// deterministic fake.
//
// SetEngine is safe for concurrent use.
func SetEngine(e Engine) {
	enginePtr.Store(&engineBox{engine: e})
}

// currentEngine returns the installed engine, lazily constructing and
// memoizing the default on first use.
func currentEngine() Engine {
	if box := enginePtr.Load(); box != nil {
		return box.engine
	}
	defaultBuildMu.Lock()
	defer defaultBuildMu.Unlock()
	if box := enginePtr.Load(); box != nil {
		return box.engine
	}
	defaultEngine = uax29Engine{}
	enginePtr.Store(&engineBox{engine: defaultEngine})
	return defaultEngine
}

// Segment partitions s into tokens at the given granularity. The
// concatenation of the returned tokens equals s exactly, for any input,
// including the empty string (empty sequence).
//
// In word mode, a post-pass merges any lone non-breaking-space token with
// its previous and next tokens so two words joined only by a non-breaking
// space are not independently breakable.
//
// The locale is parsed as a BCP 47 tag; invalid or empty locales fall
// back to the undetermined language.
func Segment(s string, granularity Granularity, locale string) ([]string, error) {
	engine := currentEngine()
	if engine == nil {
		return nil, ErrNoSegmenter
	}
	tag := language.Und
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}

	switch granularity {
	case GranularityGrapheme:
		return engine.Graphemes(s, tag), nil
	default:
		return mergeNoBreakSpace(engine.Words(s, tag)), nil
	}
}

// mergeNoBreakSpace merges each lone non-breaking-space token with its
// neighbors into one combined token. At a sequence boundary the missing
// neighbor contributes an empty string.
func mergeNoBreakSpace(tokens []string) []string {
	const nbsp = " "

	merged := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if tokens[i] != nbsp {
			merged = append(merged, tokens[i])
			continue
		}
		prev := ""
		if len(merged) > 0 {
			prev = merged[len(merged)-1]
			merged = merged[:len(merged)-1]
		}
		next := ""
		if i+1 < len(tokens) {
			next = tokens[i+1]
			i++
		}
		merged = append(merged, prev+nbsp+next)
	}
	return merged
}

// uax29Engine is the default segmentation engine, implementing UAX #29
// word and extended grapheme cluster boundaries. The locale is accepted
// for interface compatibility but does not alter boundaries.
type uax29Engine struct{}

func (uax29Engine) Words(s string, _ language.Tag) []string {
	var tokens []string
	iter := words.FromString(s)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}

func (uax29Engine) Graphemes(s string, _ language.Tag) []string {
	var tokens []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}
