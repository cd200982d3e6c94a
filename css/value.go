// Package css resolves CSS length, percentage and angle literals into
// plain numbers. It is intentionally not a general CSS parser: shorthand,
// multi-value and functional syntax is rejected and left for the style
// cascade to handle.
package css

import (
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// RootFontSize is the fixed font size used to resolve rem units.
const RootFontSize = 16

// LengthContext supplies the bases a length literal may resolve against.
type LengthContext struct {
	// BaseFontSize is the font size in pixels used for em units.
	BaseFontSize float64

	// BaseLength is the percentage basis in pixels.
	BaseLength float64

	// ViewportWidth and ViewportHeight are used for vw/vh units.
	ViewportWidth  float64
	ViewportHeight float64

	// AllowPercent enables percentage resolution against BaseLength.
	AllowPercent bool
}

// ResolveLength resolves a length value into pixels.
//
// Numeric values pass through unchanged. Strings resolve per CSS rules:
// bare decimal literals parse as numbers, em/rem/vw/vh scale against the
// context, angle units resolve to degrees, percentages resolve against
// BaseLength when AllowPercent is set, and any other length unit passes
// its numeric value through unit-less.
//
// The second return value is false when the value cannot be resolved.
// Parse failures are never errors: callers treat unresolved as
// "use default / inherit".
func ResolveLength(value any, ctx LengthContext) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return resolveLengthString(v, ctx)
	default:
		return 0, false
	}
}

func resolveLengthString(s string, ctx LengthContext) (float64, bool) {
	// Shorthand ("1px 2px"), slash pairs, function calls and comma lists
	// are multi-value syntax, not single lengths.
	if strings.ContainsAny(s, " /(,") {
		return 0, false
	}
	if s == "" {
		return 0, false
	}

	b := []byte(s)

	// A string that is exactly a bare decimal literal is that number.
	if n := parse.Number(b); n == len(b) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	// Percentages are their own token class in CSS; handle them before
	// dimensions.
	if strings.HasSuffix(s, "%") {
		num := s[:len(s)-1]
		if n := parse.Number([]byte(num)); n != len(num) {
			return 0, false
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || !ctx.AllowPercent {
			return 0, false
		}
		return f / 100 * ctx.BaseLength, true
	}

	n, m := parse.Dimension(b)
	if n == 0 || n+m != len(b) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, false
	}
	unit := strings.ToLower(s[n:])

	switch unit {
	case "em":
		return f * ctx.BaseFontSize, true
	case "rem":
		return f * RootFontSize, true
	case "vw":
		return math.Floor(f * ctx.ViewportWidth / 100), true
	case "vh":
		return math.Floor(f * ctx.ViewportHeight / 100), true
	case "deg", "rad", "turn", "grad":
		return ResolveAngle(s)
	default:
		// px, pt and any other length unit pass through unit-less.
		return f, true
	}
}
