// Package codec converts single values and comma-separated lists between
// their namelist textual form and typed Go values. All functions are pure;
// the decoding side reports malformed tokens through FormatError.
package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a token that could not be decoded into the target
// kind.
type FormatError struct {
	Token  string
	Target string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot decode %q as %s", e.Token, e.Target)
}

// DecodeBool accepts exactly .true./.TRUE./.false./.FALSE. after trimming
// surrounding whitespace.
func DecodeBool(text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case ".true.", ".TRUE.":
		return true, nil
	case ".false.", ".FALSE.":
		return false, nil
	}
	return false, &FormatError{Token: text, Target: "bool"}
}

// DecodeInt trims whitespace and parses a base-10 integer.
func DecodeInt(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &FormatError{Token: text, Target: "int"}
	}
	return n, nil
}

// DecodeFloat trims whitespace and parses a float64.
func DecodeFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &FormatError{Token: text, Target: "float"}
	}
	return f, nil
}

// DecodeString strips one layer of surrounding single or double quotes if
// present, otherwise passes the trimmed text through unchanged. It never
// fails; the error return keeps the signature uniform with the other
// decoders so it can feed DecodeList.
func DecodeString(text string) (string, error) {
	s := strings.TrimSpace(text)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1], nil
		}
	}
	return s, nil
}

// EncodeBool renders lowercase .true./.false..
func EncodeBool(v bool) string {
	if v {
		return ".true."
	}
	return ".false."
}

// EncodeInt renders a base-10 integer.
func EncodeInt(v int) string { return strconv.Itoa(v) }

// EncodeFloat renders the shortest form that parses back to the same
// float64. This policy is fixed and covered by tests.
func EncodeFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// EncodeString wraps the value in single quotes. Embedded quote characters
// are not escaped; a value containing a single quote will not round-trip.
func EncodeString(v string) string { return "'" + v + "'" }
