package text

import (
	"strings"
	"testing"
)

// TestScanHighlightSections tests sentinel pair collection.
func TestScanHighlightSections(t *testing.T) {
	run := "The [s]quick brown[e] fox [s] jumps [e] over"
	sections := ScanHighlightSections(run)

	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(sections))
	}
	if sections[0].Text != "quick brown" {
		t.Errorf("Expected first section text %q, got %q", "quick brown", sections[0].Text)
	}
	if got := run[sections[0].Start:sections[0].End]; got != "quick brown" {
		t.Errorf("Expected first section span to cover %q, got %q", "quick brown", got)
	}
	if sections[1].Text != "jumps" {
		t.Errorf("Expected second section text trimmed to %q, got %q", "jumps", sections[1].Text)
	}
	if got := run[sections[1].Start:sections[1].End]; got != "jumps" {
		t.Errorf("Expected second section span to cover %q, got %q", "jumps", got)
	}
}

// TestScanHighlightSectionsDangling tests that a start without an end is
// ignored.
func TestScanHighlightSectionsDangling(t *testing.T) {
	if sections := ScanHighlightSections("oops [s]no close"); len(sections) != 0 {
		t.Errorf("Expected no sections, got %v", sections)
	}
}

// TestReconcileHighlightsRoundTrip tests the reference round trip:
// exactly one token gains the start marker aligned to "quick" and
// exactly one gains the end marker aligned to "brown".
func TestReconcileHighlightsRoundTrip(t *testing.T) {
	run := "The [s]quick brown[e] fox"
	tokens, _, err := BreakOpportunities(run, WordBreakNormal)
	if err != nil {
		t.Fatalf("BreakOpportunities: unexpected error %v", err)
	}

	out := ReconcileHighlights(run, tokens, WordBreakNormal)

	var starts, ends []string
	for _, token := range out {
		if strings.HasPrefix(token, HighlightStart) {
			starts = append(starts, token)
		}
		if strings.Contains(token, HighlightEnd) {
			ends = append(ends, token)
		}
	}

	if len(starts) != 1 || !strings.HasPrefix(starts[0], HighlightStart+"quick") {
		t.Errorf("Expected one start marker aligned to quick, got %q (all: %q)", starts, out)
	}
	if len(ends) != 1 || !strings.HasPrefix(ends[0], "brown"+HighlightEnd) {
		t.Errorf("Expected one end marker aligned to brown, got %q (all: %q)", ends, out)
	}
}

// TestReconcileHighlightsSingleToken tests that a highlight collapsing
// into one output token only receives the start marker (start check
// precedes end check).
func TestReconcileHighlightsSingleToken(t *testing.T) {
	run := "say [s]word[e] now"
	tokens, _, err := BreakOpportunities(run, WordBreakNormal)
	if err != nil {
		t.Fatalf("BreakOpportunities: unexpected error %v", err)
	}

	out := ReconcileHighlights(run, tokens, WordBreakNormal)

	joined := strings.Join(out, "")
	if !strings.Contains(joined, HighlightStart+"word") {
		t.Errorf("Expected start marker on the single highlighted token, got %q", out)
	}
	if strings.Contains(joined, HighlightEnd) {
		t.Errorf("Expected no end marker on a single-token highlight, got %q", out)
	}
}

// TestReconcileHighlightsTrailingPunctuation tests end-marker placement
// before the token's trailing punctuation.
func TestReconcileHighlightsTrailingPunctuation(t *testing.T) {
	run := "a [s]big deal![e] here"
	tokens, _, err := BreakOpportunities(run, WordBreakNormal)
	if err != nil {
		t.Fatalf("BreakOpportunities: unexpected error %v", err)
	}

	out := ReconcileHighlights(run, tokens, WordBreakNormal)

	found := false
	for _, token := range out {
		if strings.HasPrefix(token, "deal"+HighlightEnd) {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected end marker between word run and punctuation, got %q", out)
	}
}

// TestReconcileHighlightsNoSections tests pass-through without sentinels.
func TestReconcileHighlightsNoSections(t *testing.T) {
	tokens := []string{"plain ", "text"}
	out := ReconcileHighlights("plain text", tokens, WordBreakNormal)
	if len(out) != 2 || out[0] != "plain " || out[1] != "text" {
		t.Errorf("Expected pass-through, got %q", out)
	}
}

// TestReconcileHighlightsUnmatchedToken tests the pass-through fallback:
// tokens absent from the run pass through and do not move the cursor.
func TestReconcileHighlightsUnmatchedToken(t *testing.T) {
	run := "The [s]quick[e] fox"
	tokens := []string{"ghost ", "quick ", "fox"}

	out := ReconcileHighlights(run, tokens, WordBreakNormal)

	if out[0] != "ghost " {
		t.Errorf("Expected unmatched token to pass through, got %q", out[0])
	}
	if out[1] != HighlightStart+"quick " {
		t.Errorf("Expected start marker on quick despite earlier miss, got %q", out[1])
	}
}
