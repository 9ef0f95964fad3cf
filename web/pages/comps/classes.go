package comps

import (
	"errors"
	"fmt"
	"strings"
)

// ColorVariant selects the text colour of a Heading.
// The zero value is not a valid variant.
type ColorVariant uint8

const (
	Red ColorVariant = iota + 1
	Blue
)

// Class tokens emitted for headings. The names are utility classes
// understood by the stylesheet served from /static/css/app.css.
const (
	headingBaseClasses = "mx-auto p-5 pt-5 text-5xl"
	textRedClass       = "text-red-700"
	textBlueClass      = "text-blue-700"
)

// String returns the variant name as used in routes and logs.
func (v ColorVariant) String() string {
	switch v {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("ColorVariant(%d)", uint8(v))
	}
}

// Valid reports whether v is one of the known variants
func (v ColorVariant) Valid() bool {
	return v == Red || v == Blue
}

// InvalidVariantError is returned for any colour outside Red and Blue.
// It signals a caller bug and is never retried.
type InvalidVariantError struct {
	Value string
}

func (e InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid colour variant %q, expected red or blue", e.Value)
}

// IsInvalidVariant reports whether err (or anything it wraps) is an InvalidVariantError.
func IsInvalidVariant(err error) bool {
	var ive InvalidVariantError
	return errors.As(err, &ive)
}

// ParseColorVariant maps "red" and "blue" to their variants.
// Matching is exact and case-sensitive.
func ParseColorVariant(s string) (ColorVariant, error) {
	switch s {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	}
	return 0, InvalidVariantError{Value: s}
}

// Classes joins class segments with single spaces.
// Empty segments are dropped, so a failed When() leaves no trace.
// A segment may itself hold several space separated tokens.
func Classes(segments ...string) string {
	tokens := make([]string, 0, len(segments)+4)
	for _, seg := range segments {
		tokens = append(tokens, strings.Fields(seg)...)
	}
	return strings.Join(tokens, " ")
}

// When returns class if cond holds, otherwise the empty segment.
func When(cond bool, class string) string {
	if !cond {
		return ""
	}
	return class
}

// Compose builds the class string for a heading of the given colour.
func Compose(v ColorVariant) (string, error) {
	if !v.Valid() {
		return "", InvalidVariantError{Value: v.String()}
	}

	return Classes(
		headingBaseClasses,
		When(v == Red, textRedClass),
		When(v == Blue, textBlueClass),
	), nil
}
