package css

import (
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// ResolveAngle resolves a CSS angle literal into degrees.
// Supported units are deg, rad, turn and grad; anything else is
// unresolved. Parse failures are never errors.
func ResolveAngle(s string) (float64, bool) {
	b := []byte(s)
	n, m := parse.Dimension(b)
	if n == 0 || m == 0 || n+m != len(b) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(s[n:]) {
	case "deg":
		return f, true
	case "rad":
		return f * 180 / math.Pi, true
	case "turn":
		return f * 360, true
	case "grad":
		return f * 0.9, true
	default:
		return 0, false
	}
}
