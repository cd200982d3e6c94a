package text

import (
	"github.com/go-text/typesetting/language"
)

// LanguageEmoji is the distinguished code returned by DetectLanguage for
// emoji grapheme clusters. During asset resolution, graphemes with this
// code are kept one per bucket entry instead of being concatenated.
const LanguageEmoji = "emoji"

// DetectLanguage classifies one grapheme cluster into a short language
// or script code. It is a pure function: emoji sequences map to
// [LanguageEmoji], other clusters map by the Unicode script of their
// first code point, with symbol and math ranges distinguished. Clusters
// that match nothing map to "unknown".
func DetectLanguage(grapheme string) string {
	if grapheme == "" {
		return "unknown"
	}
	if isEmojiGrapheme(grapheme) {
		return LanguageEmoji
	}

	var first rune
	for _, r := range grapheme {
		first = r
		break
	}

	switch language.LookupScript(first) {
	case language.Han, language.Hiragana, language.Katakana:
		return "ja"
	case language.Hangul:
		return "ko"
	case language.Thai:
		return "th"
	case language.Bengali:
		return "bn"
	case language.Arabic:
		return "ar"
	case language.Tamil:
		return "ta"
	case language.Malayalam:
		return "ml"
	case language.Hebrew:
		return "he"
	case language.Telugu:
		return "te"
	case language.Devanagari:
		return "devanagari"
	case language.Kannada:
		return "kannada"
	case language.Khmer:
		return "khmer"
	case language.Latin, language.Cyrillic, language.Greek:
		return "unknown"
	}

	switch {
	case first >= 0x2200 && first <= 0x22FF:
		return "math"
	case first >= 0x2000 && first <= 0x2BFF:
		return "symbol"
	}
	return "unknown"
}

// isEmojiGrapheme reports whether the grapheme cluster renders as emoji:
// it contains a default-emoji-presentation code point, an emoji variation
// selector, or a regional indicator (flag) pair.
func isEmojiGrapheme(g string) bool {
	for _, r := range g {
		if isEmojiPresentation(r) || isRegionalIndicator(r) || r == 0xFE0F {
			return true
		}
	}
	return false
}

// isEmojiPresentation reports whether the rune defaults to emoji
// presentation (displays as emoji without requiring U+FE0F).
func isEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // Miscellaneous Symbols and Pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map Symbols
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // Supplemental Symbols and Pictographs
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // Symbols and Pictographs Extended-A
		return true
	case r >= 0x2614 && r <= 0x2615: // Umbrella with rain, hot beverage
		return true
	case r >= 0x26F0 && r <= 0x26FF: // Miscellaneous symbols subset with emoji presentation
		return true
	case r >= 0x2700 && r <= 0x27BF && (r == 0x2705 || r == 0x270A || r == 0x270B || r == 0x2728):
		return true
	default:
		return false
	}
}

// isRegionalIndicator reports whether the rune is a Regional Indicator
// (A-Z). Two regional indicators form a flag emoji.
func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}
