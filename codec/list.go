package codec

import (
	"strings"
)

// DecodeList decodes a comma-separated list from one or more text fragments.
// Fragments from multi-line continuations are concatenated before splitting.
// Empty tokens left by a trailing comma are dropped.
func DecodeList[T any](fragments []string, elem func(string) (T, error)) ([]T, error) {
	joined := strings.Join(fragments, "")
	out := []T{}
	for _, tok := range strings.Split(joined, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		v, err := elem(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EncodeList renders values comma-separated. A one-element list renders as a
// bare scalar. When wrapWidth is positive, a line break is inserted after
// every wrapWidth-th item and continuation lines are indented by indent
// spaces so values align under the first one.
func EncodeList[T any](values []T, elem func(T) string, wrapWidth, indent int) string {
	if len(values) == 1 {
		return elem(values[0])
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = elem(v)
	}
	if wrapWidth <= 0 {
		return strings.Join(parts, ",")
	}
	b := &strings.Builder{}
	pad := strings.Repeat(" ", indent)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(",")
			if i%wrapWidth == 0 {
				b.WriteString("\n")
				b.WriteString(pad)
			}
		}
		b.WriteString(p)
	}
	return b.String()
}
