package gonml

import (
	"fmt"
)

// Kind enumerates the scalar kinds a parameter value can take.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// goType reports the Go type name a kind maps to, used in messages.
func (k Kind) goType() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}
	return "unknown"
}

// coerceScalar widens a scalar toward the declared kind without validating.
// Only int→float64 widening is performed; everything else passes through and
// is left for the type rule to reject.
func coerceScalar(v any, kind Kind) any {
	if kind == KindFloat {
		if i, ok := v.(int); ok {
			return float64(i)
		}
	}
	return v
}

// isList reports whether v holds one of the slice shapes the value model
// allows.
func isList(v any) bool {
	switch v.(type) {
	case []int, []float64, []bool, []string, []any:
		return true
	}
	return false
}

// elemsOf expands a list value into its elements. Scalars yield a
// single-element slice.
func elemsOf(v any) []any {
	switch xs := v.(type) {
	case []int:
		out := make([]any, len(xs))
		for i, x := range xs {
			out[i] = x
		}
		return out
	case []float64:
		out := make([]any, len(xs))
		for i, x := range xs {
			out[i] = x
		}
		return out
	case []bool:
		out := make([]any, len(xs))
		for i, x := range xs {
			out[i] = x
		}
		return out
	case []string:
		out := make([]any, len(xs))
		for i, x := range xs {
			out[i] = x
		}
		return out
	case []any:
		return xs
	case nil:
		return nil
	}
	return []any{v}
}

// ValueLen reports the element count of a list value. Scalars count as one;
// nil counts as zero.
func ValueLen(v any) int {
	if v == nil {
		return 0
	}
	switch xs := v.(type) {
	case []int:
		return len(xs)
	case []float64:
		return len(xs)
	case []bool:
		return len(xs)
	case []string:
		return len(xs)
	case []any:
		return len(xs)
	}
	return 1
}

// normalizeList coerces a value into the canonical list shape for the given
// kind: scalars are promoted to one-element slices, []any is narrowed to a
// typed slice when every element fits, and element-level int→float64
// widening is applied for KindFloat. Values that do not fit are returned
// as-is for the type rule to reject.
func normalizeList(v any, kind Kind) any {
	if v == nil {
		return nil
	}
	elems := elemsOf(v)
	switch kind {
	case KindInt:
		out := make([]int, 0, len(elems))
		for _, e := range elems {
			x, ok := e.(int)
			if !ok {
				return keepMixed(v, elems)
			}
			out = append(out, x)
		}
		return out
	case KindFloat:
		out := make([]float64, 0, len(elems))
		for _, e := range elems {
			switch x := e.(type) {
			case float64:
				out = append(out, x)
			case int:
				out = append(out, float64(x))
			default:
				return keepMixed(v, elems)
			}
		}
		return out
	case KindBool:
		out := make([]bool, 0, len(elems))
		for _, e := range elems {
			x, ok := e.(bool)
			if !ok {
				return keepMixed(v, elems)
			}
			out = append(out, x)
		}
		return out
	case KindString:
		out := make([]string, 0, len(elems))
		for _, e := range elems {
			x, ok := e.(string)
			if !ok {
				return keepMixed(v, elems)
			}
			out = append(out, x)
		}
		return out
	}
	return v
}

// keepMixed preserves a value that could not be narrowed so validation can
// point at the offending element rather than the whole slice.
func keepMixed(orig any, elems []any) any {
	if isList(orig) {
		return elems
	}
	return []any{orig}
}

// matchesKind reports whether a scalar element matches the declared kind.
func matchesKind(v any, kind Kind) bool {
	switch kind {
	case KindInt:
		_, ok := v.(int)
		return ok
	case KindFloat:
		_, ok := v.(float64)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	}
	return false
}

// numericOf extracts a float view of a numeric element for range checks.
func numericOf(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
