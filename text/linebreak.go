package text

import (
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
)

// WordBreak selects the CSS word-break mode used to resolve line-break
// opportunities.
type WordBreak uint8

const (
	// WordBreakNormal breaks at UAX #14 line-break opportunities (default).
	WordBreakNormal WordBreak = iota
	// WordBreakBreakAll allows a break after every grapheme cluster.
	WordBreakBreakAll
	// WordBreakKeepAll only breaks at word boundaries.
	WordBreakKeepAll
)

// String returns the string representation of the word-break mode.
func (w WordBreak) String() string {
	switch w {
	case WordBreakNormal:
		return "Normal"
	case WordBreakBreakAll:
		return "BreakAll"
	case WordBreakKeepAll:
		return "KeepAll"
	default:
		return "Unknown"
	}
}

// BreakOpportunities partitions content into tokens separated by
// line-break opportunities.
//
// In normal mode the highlight sentinels are stripped first (they are
// zero-width and must not influence break opportunities), the stripped
// text is partitioned at UAX #14 boundaries, and the returned flags have
// length len(tokens)+1: flags[0] is always false and flags[i] (i >= 1) is
// true iff a break is mandatory, not merely allowed, immediately after
// token i-1 (an embedded hard line break).
//
// In break-all mode tokens are the grapheme partition of the raw content
// and in keep-all mode the word partition of the raw content; neither
// mode reports required breaks (nil flags).
func BreakOpportunities(content string, mode WordBreak) ([]string, []bool, error) {
	switch mode {
	case WordBreakBreakAll:
		tokens, err := Segment(content, GranularityGrapheme, "")
		return tokens, nil, err
	case WordBreakKeepAll:
		tokens, err := Segment(content, GranularityWord, "")
		return tokens, nil, err
	}

	stripped := StripHighlights(content)

	var tokens []string
	required := []bool{false}

	var seg segmenter.Segmenter
	seg.Init([]rune(stripped))
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		token := string(line.Text)
		tokens = append(tokens, token)
		// The segmenter reports the implicit break at end of text as
		// mandatory (UAX #14 LB3); only an actual hard break character
		// makes the break required here.
		required = append(required, line.IsMandatoryBreak && endsWithHardBreak(token))
	}
	return tokens, required, nil
}

// endsWithHardBreak reports whether s ends with a mandatory line break
// character (UAX #14 classes BK, CR, LF, NL).
func endsWithHardBreak(s string) bool {
	if s == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	return strings.ContainsRune("\n\r\v\f  ", last)
}
