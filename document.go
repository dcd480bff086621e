package gonml

import (
	"fmt"

	"github.com/reoring/gonml/i18n"
)

// Document is a complete configuration file: an ordered set of blocks under
// one document kind. Like blocks, documents tolerate transient invalidity
// between assignments; Validate is the commit point.
type Document struct {
	kind   string
	strict bool
	order  []string
	blocks map[string]*Block
}

// NewDocument assembles a document from its blocks, preserving their order
// for writing.
func NewDocument(kind string, blocks ...*Block) *Document {
	d := &Document{
		kind:   kind,
		strict: true,
		blocks: make(map[string]*Block, len(blocks)),
	}
	for _, b := range blocks {
		d.order = append(d.order, b.Name())
		d.blocks[b.Name()] = b
	}
	return d
}

// Kind returns the document kind.
func (d *Document) Kind() string { return d.kind }

// BlockNames returns the block names in declaration order. The returned
// slice is shared; callers must not mutate it.
func (d *Document) BlockNames() []string { return d.order }

// Block returns the named block, nil when absent.
func (d *Document) Block(name string) *Block { return d.blocks[name] }

// SetValue assigns a value to a parameter within a named block.
func (d *Document) SetValue(block, param string, v any) error {
	b, ok := d.blocks[block]
	if !ok {
		return Issues{{
			Code:    CodeUnknownSchema,
			Block:   block,
			Message: fmt.Sprintf("%s is not a block of document kind %s", block, d.kind),
			Hint:    i18n.T(CodeUnknownSchema, nil),
		}}
	}
	return b.SetValue(param, v)
}

// SetStrict toggles validation for every block and parameter.
func (d *Document) SetStrict(strict bool) {
	d.strict = strict
	for _, b := range d.blocks {
		b.SetStrict(strict)
	}
}

// Validate checks that every required block holds at least one value, then
// validates each block in order, failing fast.
func (d *Document) Validate() error {
	if !d.strict {
		return nil
	}
	for _, name := range d.order {
		b := d.blocks[name]
		if b.Required() && b.IsEmpty() {
			return Issues{{
				Code:    CodeMissingBlock,
				Block:   name,
				Message: fmt.Sprintf("required block %s is missing", name),
				Hint:    i18n.T(CodeMissingBlock, nil),
			}}
		}
	}
	for _, name := range d.order {
		if err := d.blocks[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToDict renders the document as an ordered block→params mapping. Blocks
// with no set parameter are skipped unless includeUnset is true.
func (d *Document) ToDict(includeUnset bool) *DocDict {
	out := NewDocDict()
	for _, name := range d.order {
		b := d.blocks[name]
		if b.IsEmpty() && !includeUnset {
			continue
		}
		out.Set(name, b.ToDict(includeUnset))
	}
	return out
}

// FromDict assigns every block of the mapping into the document. Block
// names with no declared schema fail with an unknown schema issue.
func (d *Document) FromDict(src *DocDict) error {
	for _, name := range src.Keys() {
		b, ok := d.blocks[name]
		if !ok {
			return Issues{{
				Code:    CodeUnknownSchema,
				Block:   name,
				Message: fmt.Sprintf("%s is not a block of document kind %s", name, d.kind),
				Hint:    i18n.T(CodeUnknownSchema, nil),
			}}
		}
		params, _ := src.Get(name)
		if err := b.FromDict(params); err != nil {
			return err
		}
	}
	return nil
}
