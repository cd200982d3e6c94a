package text

import (
	"strings"
	"unicode"
)

// Highlight sentinels: literal in-band substrings marking highlighted
// subranges of a text run before tokenization.
const (
	HighlightStart = "[s]"
	HighlightEnd   = "[e]"
)

// HighlightSection is one sentinel-delimited highlighted subrange of a
// text run. Start and End are byte offsets of the trimmed inner text
// within the original run. Sections are ordered and non-overlapping, and
// every start sentinel has a later end sentinel.
type HighlightSection struct {
	Start int
	End   int
	Text  string
}

// StripHighlights removes all highlight sentinels from s.
func StripHighlights(s string) string {
	s = strings.ReplaceAll(s, HighlightStart, "")
	return strings.ReplaceAll(s, HighlightEnd, "")
}

// ScanHighlightSections collects every sentinel pair in run, left to
// right, into ordered sections. A start sentinel without a later end
// sentinel terminates the scan.
func ScanHighlightSections(run string) []HighlightSection {
	var sections []HighlightSection
	pos := 0
	for {
		si := strings.Index(run[pos:], HighlightStart)
		if si < 0 {
			break
		}
		innerStart := pos + si + len(HighlightStart)
		ei := strings.Index(run[innerStart:], HighlightEnd)
		if ei < 0 {
			break
		}
		inner := run[innerStart : innerStart+ei]

		lead := strings.TrimLeftFunc(inner, unicode.IsSpace)
		trimmed := strings.TrimRightFunc(lead, unicode.IsSpace)
		start := innerStart + (len(inner) - len(lead))

		sections = append(sections, HighlightSection{
			Start: start,
			End:   start + len(trimmed),
			Text:  trimmed,
		})
		pos = innerStart + ei + len(HighlightEnd)
	}
	return sections
}

// ReconcileHighlights maps the sentinel-delimited highlight ranges of the
// original run onto a token sequence produced independently by
// BreakOpportunities (tokenization may have altered boundaries through
// trimming and merging). The token whose word run starts a highlighted
// section is prefixed with the start sentinel; the token whose word run
// closes it is suffixed with the end sentinel before its trailing
// punctuation. Tokens whose word run cannot be located in the remaining
// run pass through unchanged; a failed match is never fatal.
func ReconcileHighlights(run string, tokens []string, mode WordBreak) []string {
	sections := ScanHighlightSections(run)
	if len(sections) == 0 {
		return tokens
	}

	out := make([]string, 0, len(tokens))

	// Forward-search cursor into the run. It never regresses, bounding
	// total work to a single left-to-right pass when matches occur in
	// order.
	cursor := 0

	for _, token := range tokens {
		word, rest := splitWordRun(token)
		if word == "" {
			out = append(out, token)
			continue
		}

		rel := strings.Index(run[cursor:], word)
		if rel < 0 {
			out = append(out, token)
			continue
		}
		start := cursor + rel
		end := start + len(word)
		cursor = end

		section := sectionContaining(sections, start)
		if section == nil {
			out = append(out, token)
			continue
		}

		out = append(out, markToken(token, word, rest, start, end, section, mode))
	}
	return out
}

// markToken attaches the start or end sentinel to a token that matched
// inside a highlighted section, or returns the token unchanged for an
// interior match. The start check precedes the end check, so a highlight
// collapsing into a single output token receives the start marker.
func markToken(token, word, rest string, start, end int, section *HighlightSection, mode WordBreak) string {
	sub, _, err := BreakOpportunities(section.Text, mode)
	if err != nil || len(sub) == 0 {
		return token
	}

	if start == section.Start {
		return HighlightStart + token
	}

	last := sub[len(sub)-1]
	lastStart := section.Start + len(section.Text) - len(last)
	lastWord, _ := splitWordRun(last)

	if end == section.End || (lastWord != "" && end == lastStart+len(lastWord)) {
		return word + HighlightEnd + rest
	}

	// Interior token, still inside the open range.
	return token
}

// sectionContaining returns the section whose span contains the byte
// offset, or nil.
func sectionContaining(sections []HighlightSection, offset int) *HighlightSection {
	for i := range sections {
		if offset >= sections[i].Start && offset < sections[i].End {
			return &sections[i]
		}
	}
	return nil
}

// splitWordRun splits a token into its leading word-character run and
// the trailing non-word remainder.
func splitWordRun(token string) (word, rest string) {
	for i, r := range token {
		if !isWordRune(r) {
			return token[:i], token[i:]
		}
	}
	return token, ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
