package gonml

import (
	"fmt"
	"strings"

	"github.com/reoring/gonml/i18n"
)

// BlockRule is a cross-parameter constraint evaluated by Block.Validate
// after every parameter has passed its own rules. It returns nil when the
// block satisfies the constraint. Constructors live in the rules package.
type BlockRule func(b *Block) *Issue

// Block is one named configuration section: an ordered set of declared
// parameters plus cross-parameter rules. Blocks are built with every
// parameter pre-declared (unset); values arrive through SetValue.
type Block struct {
	docKind  string
	name     string
	required bool
	strict   bool
	order    []string
	params   map[string]*Param
	rules    []BlockRule
}

// NewBlock declares a block for the given document kind with its full
// parameter set. Parameter order is preserved for writing.
func NewBlock(docKind, name string, params ...*Param) *Block {
	b := &Block{
		docKind: docKind,
		name:    name,
		strict:  true,
		params:  make(map[string]*Param, len(params)),
	}
	for _, p := range params {
		b.order = append(b.order, p.Name())
		b.params[p.Name()] = p
	}
	return b
}

// WithRules attaches cross-parameter rules, evaluated in order.
func (b *Block) WithRules(rules ...BlockRule) *Block {
	b.rules = append(b.rules, rules...)
	return b
}

// Require marks the block as mandatory within its document.
func (b *Block) Require() *Block {
	b.required = true
	return b
}

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// DocKind returns the document kind the block belongs to.
func (b *Block) DocKind() string { return b.docKind }

// Required reports whether the block is mandatory.
func (b *Block) Required() bool { return b.required }

// ParamNames returns the declared parameter names in declaration order. The
// returned slice is shared; callers must not mutate it.
func (b *Block) ParamNames() []string { return b.order }

// Param returns the declared parameter, nil for unknown names.
func (b *Block) Param(name string) *Param { return b.params[name] }

// SetValue assigns a value to a declared parameter. Undeclared names are an
// error listing the valid names.
func (b *Block) SetValue(name string, v any) error {
	p, ok := b.params[name]
	if !ok {
		return Issues{{
			Code:    CodeUnknownParam,
			Block:   b.name,
			Param:   name,
			Message: fmt.Sprintf("%s is not a parameter of %s. Valid parameters: %s", name, b.name, strings.Join(b.order, ", ")),
			Hint:    i18n.T(CodeUnknownParam, nil),
		}}
	}
	p.SetValue(v)
	return nil
}

// Value returns the current value of a declared parameter, nil when unset
// or undeclared.
func (b *Block) Value(name string) any {
	if p, ok := b.params[name]; ok {
		return p.Value()
	}
	return nil
}

// SetStrict toggles validation for the block and every parameter in it.
func (b *Block) SetStrict(strict bool) {
	b.strict = strict
	for _, p := range b.params {
		p.SetStrict(strict)
	}
}

// IsEmpty reports whether every parameter is unset.
func (b *Block) IsEmpty() bool {
	for _, p := range b.params {
		if p.IsSet() {
			return false
		}
	}
	return true
}

// Validate runs each parameter's rules in declaration order, then the
// block's cross-parameter rules, failing fast on the first violation. Every
// issue is stamped with the block name.
func (b *Block) Validate() error {
	if !b.strict {
		return nil
	}
	for _, name := range b.order {
		if err := b.params[name].Validate(); err != nil {
			iss, _ := AsIssues(err)
			for i := range iss {
				iss[i].Block = b.name
			}
			return iss
		}
	}
	for _, rule := range b.rules {
		if it := rule(b); it != nil {
			it.Block = b.name
			return Issues{*it}
		}
	}
	return nil
}

// ToDict renders the block as an ordered name→value mapping. Unset
// parameters are skipped unless includeUnset is true.
func (b *Block) ToDict(includeUnset bool) *Dict {
	d := NewDict()
	for _, name := range b.order {
		v := b.params[name].Value()
		if v == nil && !includeUnset {
			continue
		}
		d.Set(name, v)
	}
	return d
}

// FromDict assigns every entry of the mapping into the block. Unknown names
// fail with the SetValue error.
func (b *Block) FromDict(d *Dict) error {
	for _, name := range d.Keys() {
		v, _ := d.Get(name)
		if err := b.SetValue(name, v); err != nil {
			return err
		}
	}
	return nil
}
