// Package glm declares the General Lake Model configuration schema: the
// block definitions of a glm3.nml file, their per-parameter validators, and
// their cross-parameter rules.
//
// Call InitSchema once at startup to register the schema into
// gonml.DefaultRegistry; registration is explicit so startup stays
// deterministic.
package glm

import (
	"sync"

	"github.com/reoring/gonml"
)

// Kind is the document kind the schema registers under.
const Kind = "glm"

// dateLayouts are the timestamp formats GLM accepts.
var dateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

var initOnce sync.Once

// InitSchema registers every block and the document constructor into
// gonml.DefaultRegistry. Safe to call more than once.
func InitSchema() {
	initOnce.Do(register)
}

func register() {
	for _, entry := range blockCtors {
		gonml.DefaultRegistry.RegisterBlock(Kind, entry.name, entry.ctor)
	}
	gonml.DefaultRegistry.RegisterDocument(Kind, NewDocument)
}

type ctorEntry struct {
	name string
	ctor gonml.BlockCtor
}

// blockCtors lists every block in file order.
var blockCtors = []ctorEntry{
	{"glm_setup", NewSetupBlock},
	{"mixing", NewMixingBlock},
	{"wq_setup", NewWQSetupBlock},
	{"morphometry", NewMorphometryBlock},
	{"time", NewTimeBlock},
	{"output", NewOutputBlock},
	{"init_profiles", NewInitProfilesBlock},
	{"light", NewLightBlock},
	{"bird_model", NewBirdModelBlock},
	{"sediment", NewSedimentBlock},
	{"snowice", NewSnowIceBlock},
	{"meteorology", NewMeteorologyBlock},
	{"inflow", NewInflowBlock},
	{"outflow", NewOutflowBlock},
}

// NewDocument builds a glm document with every block declared and unset.
func NewDocument() *gonml.Document {
	blocks := make([]*gonml.Block, len(blockCtors))
	for i, entry := range blockCtors {
		blocks[i] = entry.ctor()
	}
	return gonml.NewDocument(Kind, blocks...)
}
