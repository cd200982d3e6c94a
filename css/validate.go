package css

import (
	"fmt"
	"slices"
	"strings"
)

// StyleValueError reports a style property set to a value outside its
// allowed set. It aborts the current render.
type StyleValueError struct {
	Property string
	Value    string
	Allowed  []string
}

func (e *StyleValueError) Error() string {
	return fmt.Sprintf("css: invalid value %q for property %q (allowed: %s)",
		e.Value, e.Property, strings.Join(e.Allowed, ", "))
}

// OneOf validates a style value against the property's allowed set.
// It returns the value unchanged when allowed, or a *StyleValueError
// naming the property, the received value and the allowed set.
func OneOf(property, value string, allowed ...string) (string, error) {
	if slices.Contains(allowed, value) {
		return value, nil
	}
	return "", &StyleValueError{Property: property, Value: value, Allowed: allowed}
}
