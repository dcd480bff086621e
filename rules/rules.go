// Package rules provides constructors for cross-parameter block rules:
// constraints that span two or more parameters of the same block, evaluated
// after every parameter has passed its own validation.
package rules

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reoring/gonml"
	"github.com/reoring/gonml/i18n"
)

// LenMatch requires the list parameter's length to equal the count
// parameter's value. When the count is unset the list must be unset too.
// With allowEmpty, a zero count requires the list to be unset; without it a
// zero count is itself a violation.
func LenMatch(countParam, listParam string, allowEmpty bool) gonml.BlockRule {
	return func(b *gonml.Block) *gonml.Issue {
		count := b.Value(countParam)
		list := b.Value(listParam)
		if count == nil {
			if list == nil {
				return nil
			}
			return &gonml.Issue{
				Code:    gonml.CodeIncompatibleValue,
				Param:   listParam,
				Rule:    "len_match",
				Value:   list,
				Message: fmt.Sprintf("%s cannot be set when %s is unset", listParam, countParam),
				Hint:    i18n.T(gonml.CodeIncompatibleValue, nil),
			}
		}
		c, ok := count.(int)
		if !ok {
			return nil
		}
		if c == 0 {
			if allowEmpty {
				if list == nil {
					return nil
				}
				return &gonml.Issue{
					Code:    gonml.CodeLengthMismatch,
					Param:   listParam,
					Rule:    "len_match",
					Value:   list,
					Message: fmt.Sprintf("%s is 0 but got %d %s item/s", countParam, gonml.ValueLen(list), listParam),
					Hint:    i18n.T(gonml.CodeLengthMismatch, nil),
				}
			}
			return &gonml.Issue{
				Code:    gonml.CodeLengthMismatch,
				Param:   countParam,
				Rule:    "len_match",
				Value:   count,
				Message: fmt.Sprintf("%s must be at least 1 as %s requires items. Got 0", countParam, listParam),
				Hint:    i18n.T(gonml.CodeLengthMismatch, nil),
			}
		}
		got := gonml.ValueLen(list)
		if list == nil || got != c {
			return &gonml.Issue{
				Code:    gonml.CodeLengthMismatch,
				Param:   listParam,
				Rule:    "len_match",
				Value:   list,
				Message: fmt.Sprintf("%s is %d but got %d %s item/s", countParam, c, got, listParam),
				Hint:    i18n.T(gonml.CodeLengthMismatch, nil),
			}
		}
		return nil
	}
}

// Incompatible forbids parameter b holding bVal while parameter a holds
// aVal. bVal of nil expresses "b must be set when a holds aVal".
func Incompatible(a string, aVal any, b string, bVal any) gonml.BlockRule {
	return IncompatibleIn(a, []any{aVal}, b, bVal)
}

// IncompatibleIn is Incompatible with a set of trigger values for a.
func IncompatibleIn(a string, aVals []any, b string, bVal any) gonml.BlockRule {
	return func(blk *gonml.Block) *gonml.Issue {
		av := blk.Value(a)
		if av == nil || !containsValue(aVals, av) {
			return nil
		}
		bv := blk.Value(b)
		if !reflect.DeepEqual(bv, bVal) {
			return nil
		}
		return &gonml.Issue{
			Code:    gonml.CodeIncompatibleValue,
			Param:   b,
			Rule:    "incompatible",
			Value:   bv,
			Message: fmt.Sprintf("%s cannot be %s when %s is set to %s", b, render(bVal), a, render(av)),
			Hint:    i18n.T(gonml.CodeIncompatibleValue, nil),
		}
	}
}

// Required demands the parameter be set whenever the block holds any value
// at all. Entirely empty blocks pass.
func Required(param string) gonml.BlockRule {
	return func(b *gonml.Block) *gonml.Issue {
		if b.IsEmpty() || b.Value(param) != nil {
			return nil
		}
		return &gonml.Issue{
			Code:    gonml.CodeRequired,
			Param:   param,
			Rule:    "required",
			Message: fmt.Sprintf("%s is required when %s is used", param, b.Name()),
			Hint:    i18n.T(gonml.CodeRequired, nil),
		}
	}
}

// When gates sub-rules on a parameter holding a specific value.
func When(param string, want any, sub ...gonml.BlockRule) gonml.BlockRule {
	return WhenIn(param, []any{want}, sub...)
}

// WhenIn gates sub-rules on a parameter holding one of the given values.
func WhenIn(param string, wants []any, sub ...gonml.BlockRule) gonml.BlockRule {
	return func(b *gonml.Block) *gonml.Issue {
		v := b.Value(param)
		if v == nil || !containsValue(wants, v) {
			return nil
		}
		for _, r := range sub {
			if it := r(b); it != nil {
				return it
			}
		}
		return nil
	}
}

func containsValue(set []any, v any) bool {
	for _, s := range set {
		if reflect.DeepEqual(s, v) {
			return true
		}
	}
	return false
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return "unset"
	case string:
		return "'" + x + "'"
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		if x {
			return ".true."
		}
		return ".false."
	}
	return fmt.Sprintf("%v", v)
}
