package gonml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/gonml/i18n"
)

// paramRule checks one element of a parameter's value. It returns nil when
// the element passes.
type paramRule struct {
	name  string
	check func(p *Param, elem any) *Issue
}

// Param is a named, typed, optionally list-valued configuration slot.
// Assignments coerce but never validate; call Validate explicitly once the
// owning block has been built up.
type Param struct {
	name   string
	kind   Kind
	list   bool
	units  string
	strict bool
	value  any
	rules  []paramRule
}

// NewParam declares a scalar parameter of the given kind.
func NewParam(name string, kind Kind) *Param {
	return &Param{name: name, kind: kind, strict: true}
}

// List marks the parameter as list-valued. Scalar assignments are promoted
// to one-element lists.
func (p *Param) List() *Param {
	p.list = true
	return p
}

// WithUnits attaches a documentation-only unit annotation.
func (p *Param) WithUnits(units string) *Param {
	p.units = units
	return p
}

// Name returns the declared parameter name.
func (p *Param) Name() string { return p.name }

// Kind returns the declared scalar kind.
func (p *Param) Kind() Kind { return p.kind }

// IsList reports whether the parameter is list-valued.
func (p *Param) IsList() bool { return p.list }

// Units returns the unit annotation, empty when none was declared.
func (p *Param) Units() string { return p.units }

// GT requires every element to be strictly greater than bound.
func (p *Param) GT(bound float64) *Param { return p.boundRule("gt", bound) }

// GTE requires every element to be greater than or equal to bound.
func (p *Param) GTE(bound float64) *Param { return p.boundRule("gte", bound) }

// LT requires every element to be strictly less than bound.
func (p *Param) LT(bound float64) *Param { return p.boundRule("lt", bound) }

// LTE requires every element to be less than or equal to bound.
func (p *Param) LTE(bound float64) *Param { return p.boundRule("lte", bound) }

func (p *Param) boundRule(rule string, bound float64) *Param {
	p.rules = append(p.rules, paramRule{
		name: rule,
		check: func(p *Param, elem any) *Issue {
			n, ok := numericOf(elem)
			if !ok {
				return nil
			}
			var pass bool
			var code, rel string
			switch rule {
			case "gt":
				pass, code, rel = n > bound, CodeTooSmall, "greater than"
			case "gte":
				pass, code, rel = n >= bound, CodeTooSmall, "greater than or equal to"
			case "lt":
				pass, code, rel = n < bound, CodeTooBig, "less than"
			case "lte":
				pass, code, rel = n <= bound, CodeTooBig, "less than or equal to"
			}
			if pass {
				return nil
			}
			return &Issue{
				Code:    code,
				Param:   p.name,
				Rule:    rule,
				Value:   elem,
				Message: fmt.Sprintf("%s must be %s %s. Got %s", p.name, rel, formatValue(bound), formatValue(elem)),
				Hint:    i18n.T(code, nil),
			}
		},
	})
	return p
}

// Switch restricts every element to the fixed set of allowed values.
func (p *Param) Switch(allowed ...any) *Param {
	p.rules = append(p.rules, paramRule{
		name: "switch",
		check: func(p *Param, elem any) *Issue {
			for _, a := range allowed {
				if elem == a {
					return nil
				}
			}
			set := make([]string, len(allowed))
			for i, a := range allowed {
				set[i] = formatValue(a)
			}
			return &Issue{
				Code:    CodeInvalidEnum,
				Param:   p.name,
				Rule:    "switch",
				Value:   elem,
				Message: fmt.Sprintf("%s must be one of [%s]. Got %s", p.name, strings.Join(set, ", "), formatValue(elem)),
				Hint:    i18n.T(CodeInvalidEnum, nil),
			}
		},
	})
	return p
}

// Datetime requires every string element to match at least one of the given
// time layouts.
func (p *Param) Datetime(layouts ...string) *Param {
	p.rules = append(p.rules, paramRule{
		name: "datetime",
		check: func(p *Param, elem any) *Issue {
			s, ok := elem.(string)
			if !ok {
				return nil
			}
			for _, layout := range layouts {
				if _, err := time.Parse(layout, s); err == nil {
					return nil
				}
			}
			return &Issue{
				Code:    CodeInvalidDatetime,
				Param:   p.name,
				Rule:    "datetime",
				Value:   elem,
				Message: fmt.Sprintf("%s must match one of the formats [%s]. Got '%s'", p.name, strings.Join(layouts, ", "), s),
				Hint:    i18n.T(CodeInvalidDatetime, nil),
			}
		},
	})
	return p
}

// SetStrict enables or disables validation. Promotion and coercion still
// run when strict is off.
func (p *Param) SetStrict(strict bool) { p.strict = strict }

// SetValue assigns a value, re-running coercion (int widening for float
// parameters, scalar promotion and slice narrowing for list parameters).
// Validation is deferred to Validate.
func (p *Param) SetValue(v any) {
	if v == nil {
		p.value = nil
		return
	}
	if p.list {
		p.value = normalizeList(v, p.kind)
		return
	}
	p.value = coerceScalar(v, p.kind)
}

// Value returns the current value, nil when unset.
func (p *Param) Value() any { return p.value }

// IsSet reports whether the parameter holds a value.
func (p *Param) IsSet() bool { return p.value != nil }

// Validate checks the type rule and then every attached rule, per element
// for lists, failing fast on the first violation. Unset parameters and
// non-strict parameters always pass.
func (p *Param) Validate() error {
	if p.value == nil || !p.strict {
		return nil
	}
	for _, elem := range elemsOf(p.value) {
		if !matchesKind(elem, p.kind) {
			return Issues{{
				Code:    CodeInvalidType,
				Param:   p.name,
				Rule:    "type",
				Value:   elem,
				Message: fmt.Sprintf("%s must be of type %s. Got %T", p.name, p.kind.goType(), elem),
				Hint:    i18n.T(CodeInvalidType, nil),
			}}
		}
		for _, r := range p.rules {
			if it := r.check(p, elem); it != nil {
				return Issues{*it}
			}
		}
	}
	if !p.list && isList(p.value) {
		return Issues{{
			Code:    CodeInvalidType,
			Param:   p.name,
			Rule:    "type",
			Value:   p.value,
			Message: fmt.Sprintf("%s must be a scalar %s. Got a list", p.name, p.kind.goType()),
			Hint:    i18n.T(CodeInvalidType, nil),
		}}
	}
	return nil
}

// formatValue renders a value for rule messages.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
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
