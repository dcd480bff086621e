package gonml_test

import (
	"strings"
	"testing"

	"github.com/reoring/gonml"
	"github.com/reoring/gonml/rules"
)

func morphometryBlock() *gonml.Block {
	return gonml.NewBlock("test", "morphometry",
		gonml.NewParam("bsn_vals", gonml.KindInt).GTE(0),
		gonml.NewParam("H", gonml.KindFloat).List(),
		gonml.NewParam("A", gonml.KindFloat).List(),
	).WithRules(
		rules.LenMatch("bsn_vals", "H", true),
		rules.LenMatch("bsn_vals", "A", true),
	)
}

func TestBlockLengthMismatch(t *testing.T) {
	b := morphometryBlock()
	if err := b.SetValue("bsn_vals", 3); err != nil {
		t.Fatal(err)
	}
	if err := b.SetValue("H", []float64{1.0, 2.0}); err != nil {
		t.Fatal(err)
	}
	err := b.Validate()
	if !gonml.HasCode(err, gonml.CodeLengthMismatch) {
		t.Fatalf("err = %v", err)
	}
	iss, _ := gonml.AsIssues(err)
	msg := iss[0].Message
	for _, want := range []string{"bsn_vals", "3", "H", "2"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q does not mention %q", msg, want)
		}
	}
	if iss[0].Block != "morphometry" {
		t.Fatalf("block = %q", iss[0].Block)
	}
}

func TestBlockLengthMatchPasses(t *testing.T) {
	b := morphometryBlock()
	b.SetValue("bsn_vals", 2)
	b.SetValue("H", []float64{1.0, 2.0})
	b.SetValue("A", []float64{10.0, 20.0})
	if err := b.Validate(); err != nil {
		t.Fatalf("consistent block rejected: %v", err)
	}
}

func TestBlockListWithoutCountIsIncompatible(t *testing.T) {
	b := morphometryBlock()
	b.SetValue("H", []float64{1.0})
	err := b.Validate()
	if !gonml.HasCode(err, gonml.CodeIncompatibleValue) {
		t.Fatalf("err = %v", err)
	}
}

func TestBlockIncompatibleRule(t *testing.T) {
	b := gonml.NewBlock("test", "time",
		gonml.NewParam("timefmt", gonml.KindInt).Switch(2, 3),
		gonml.NewParam("stop", gonml.KindString),
		gonml.NewParam("num_days", gonml.KindInt),
	).WithRules(
		rules.Incompatible("timefmt", 2, "stop", nil),
		rules.Incompatible("timefmt", 3, "num_days", nil),
	)
	b.SetValue("timefmt", 2)
	err := b.Validate()
	if !gonml.HasCode(err, gonml.CodeIncompatibleValue) {
		t.Fatalf("err = %v", err)
	}
	b.SetValue("stop", "2024-01-01")
	if err := b.Validate(); err != nil {
		t.Fatalf("satisfied rule still failed: %v", err)
	}
}

func TestBlockRequiredRule(t *testing.T) {
	b := gonml.NewBlock("test", "wq_setup",
		gonml.NewParam("wq_lib", gonml.KindString),
		gonml.NewParam("ode_method", gonml.KindInt),
	).WithRules(rules.Required("wq_lib"))
	if err := b.Validate(); err != nil {
		t.Fatalf("empty block rejected: %v", err)
	}
	b.SetValue("ode_method", 1)
	if err := b.Validate(); !gonml.HasCode(err, gonml.CodeRequired) {
		t.Fatalf("err = %v", err)
	}
	b.SetValue("wq_lib", "aed2")
	if err := b.Validate(); err != nil {
		t.Fatalf("satisfied block rejected: %v", err)
	}
}

func TestBlockUnknownParam(t *testing.T) {
	b := morphometryBlock()
	err := b.SetValue("depth", 10)
	if !gonml.HasCode(err, gonml.CodeUnknownParam) {
		t.Fatalf("err = %v", err)
	}
	iss, _ := gonml.AsIssues(err)
	if !strings.Contains(iss[0].Message, "bsn_vals") {
		t.Fatalf("message does not list valid names: %q", iss[0].Message)
	}
}

func TestBlockToDictSkipsUnset(t *testing.T) {
	b := morphometryBlock()
	b.SetValue("bsn_vals", 1)
	d := b.ToDict(false)
	if d.Len() != 1 {
		t.Fatalf("keys = %v", d.Keys())
	}
	all := b.ToDict(true)
	if all.Len() != 3 {
		t.Fatalf("keys = %v", all.Keys())
	}
}

func TestDocumentMissingRequiredBlock(t *testing.T) {
	doc := gonml.NewDocument("test",
		gonml.NewBlock("test", "setup",
			gonml.NewParam("name", gonml.KindString),
		).Require(),
		gonml.NewBlock("test", "extras",
			gonml.NewParam("x", gonml.KindInt),
		),
	)
	err := doc.Validate()
	if !gonml.HasCode(err, gonml.CodeMissingBlock) {
		t.Fatalf("err = %v", err)
	}
	doc.SetValue("setup", "name", "run")
	if err := doc.Validate(); err != nil {
		t.Fatalf("populated document rejected: %v", err)
	}
}

func TestDocumentFromDictRejectsUnknownBlock(t *testing.T) {
	doc := gonml.NewDocument("test",
		gonml.NewBlock("test", "setup", gonml.NewParam("name", gonml.KindString)),
	)
	src := gonml.NewDocDict()
	src.Set("mystery", gonml.NewDict())
	err := doc.FromDict(src)
	if !gonml.HasCode(err, gonml.CodeUnknownSchema) {
		t.Fatalf("err = %v", err)
	}
}

func TestDocumentNonStrictSkipsValidation(t *testing.T) {
	doc := gonml.NewDocument("test",
		gonml.NewBlock("test", "setup",
			gonml.NewParam("n", gonml.KindInt).Switch(1, 2),
		).Require(),
	)
	doc.SetValue("setup", "n", 99)
	doc.SetStrict(false)
	if err := doc.Validate(); err != nil {
		t.Fatalf("non-strict document validated: %v", err)
	}
}
