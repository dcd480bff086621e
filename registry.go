package gonml

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/reoring/gonml/i18n"
)

// BlockCtor builds a fresh, unset Block of one schema.
type BlockCtor func() *Block

// DocumentCtor builds a fresh Document with every block pre-declared.
type DocumentCtor func() *Document

type blockKey struct {
	kind string
	name string
}

// Registry maps (document kind, block name) pairs to their constructors.
// It is append-only: schema packages register during single-threaded
// initialization, readers consult it lock-free afterwards.
type Registry struct {
	blocks    map[blockKey]BlockCtor
	documents map[string]DocumentCtor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blocks:    map[blockKey]BlockCtor{},
		documents: map[string]DocumentCtor{},
	}
}

// DefaultRegistry is the process-wide registry schema packages register
// into.
var DefaultRegistry = NewRegistry()

// RegisterBlock installs a block constructor. Registering the same
// (kind, name) pair twice is a programming error and panics.
func (r *Registry) RegisterBlock(kind, name string, ctor BlockCtor) {
	key := blockKey{kind: kind, name: name}
	if _, exists := r.blocks[key]; exists {
		panic(Issues{{
			Code:    CodeDuplicateRegistration,
			Block:   name,
			Message: fmt.Sprintf("block %s already registered for document kind %s", name, kind),
		}})
	}
	r.blocks[key] = ctor
	log.Debug("registered block schema", "kind", kind, "block", name)
}

// RegisterDocument installs a document constructor. Registering the same
// kind twice is a programming error and panics.
func (r *Registry) RegisterDocument(kind string, ctor DocumentCtor) {
	if _, exists := r.documents[kind]; exists {
		panic(Issues{{
			Code:    CodeDuplicateRegistration,
			Message: fmt.Sprintf("document kind %s already registered", kind),
		}})
	}
	r.documents[kind] = ctor
	log.Debug("registered document schema", "kind", kind)
}

// LookupBlock returns the constructor for (kind, name).
func (r *Registry) LookupBlock(kind, name string) (BlockCtor, error) {
	ctor, ok := r.blocks[blockKey{kind: kind, name: name}]
	if !ok {
		return nil, Issues{{
			Code:    CodeUnknownSchema,
			Block:   name,
			Message: fmt.Sprintf("no block %s registered for document kind %s", name, kind),
			Hint:    i18n.T(CodeUnknownSchema, nil),
		}}
	}
	return ctor, nil
}

// LookupDocument returns the constructor for a document kind.
func (r *Registry) LookupDocument(kind string) (DocumentCtor, error) {
	ctor, ok := r.documents[kind]
	if !ok {
		return nil, Issues{{
			Code:    CodeUnknownSchema,
			Message: fmt.Sprintf("no document registered for kind %s", kind),
			Hint:    i18n.T(CodeUnknownSchema, nil),
		}}
	}
	return ctor, nil
}

// ConverterTable derives the reader's (block, param) converter table from
// every block registered under the given document kind.
func (r *Registry) ConverterTable(kind string) (ConverterTable, error) {
	table := ConverterTable{}
	for key, ctor := range r.blocks {
		if key.kind != kind {
			continue
		}
		b := ctor()
		row := map[string]Converter{}
		for _, name := range b.ParamNames() {
			p := b.Param(name)
			row[name] = converterFor(p.Kind(), p.IsList())
		}
		table[key.name] = row
	}
	if len(table) == 0 {
		return nil, Issues{{
			Code:    CodeUnknownSchema,
			Message: fmt.Sprintf("no blocks registered for document kind %s", kind),
			Hint:    i18n.T(CodeUnknownSchema, nil),
		}}
	}
	return table, nil
}
