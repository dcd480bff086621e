package rules_test

import (
	"testing"

	"github.com/reoring/gonml"
	"github.com/reoring/gonml/rules"
)

func testBlock(blockRules ...gonml.BlockRule) *gonml.Block {
	return gonml.NewBlock("test", "blk",
		gonml.NewParam("n", gonml.KindInt),
		gonml.NewParam("xs", gonml.KindFloat).List(),
		gonml.NewParam("mode", gonml.KindInt),
	).WithRules(blockRules...)
}

func TestLenMatchUnsetCountForbidsList(t *testing.T) {
	b := testBlock(rules.LenMatch("n", "xs", true))
	b.SetValue("xs", []float64{1.0})
	if err := b.Validate(); !gonml.HasCode(err, gonml.CodeIncompatibleValue) {
		t.Fatalf("err = %v", err)
	}
}

func TestLenMatchZeroCount(t *testing.T) {
	relaxed := testBlock(rules.LenMatch("n", "xs", true))
	relaxed.SetValue("n", 0)
	if err := relaxed.Validate(); err != nil {
		t.Fatalf("zero count with allowEmpty rejected: %v", err)
	}
	relaxed.SetValue("xs", []float64{1.0})
	if err := relaxed.Validate(); !gonml.HasCode(err, gonml.CodeLengthMismatch) {
		t.Fatalf("err = %v", err)
	}

	strict := testBlock(rules.LenMatch("n", "xs", false))
	strict.SetValue("n", 0)
	if err := strict.Validate(); !gonml.HasCode(err, gonml.CodeLengthMismatch) {
		t.Fatalf("err = %v", err)
	}
}

func TestLenMatchExactCount(t *testing.T) {
	b := testBlock(rules.LenMatch("n", "xs", true))
	b.SetValue("n", 2)
	b.SetValue("xs", []float64{1.0, 2.0})
	if err := b.Validate(); err != nil {
		t.Fatalf("matching lengths rejected: %v", err)
	}
	b.SetValue("xs", []float64{1.0})
	if err := b.Validate(); !gonml.HasCode(err, gonml.CodeLengthMismatch) {
		t.Fatalf("err = %v", err)
	}
}

func TestWhenGatesSubRules(t *testing.T) {
	b := testBlock(rules.When("mode", 1, rules.LenMatch("n", "xs", false)))
	b.SetValue("mode", 2)
	if err := b.Validate(); err != nil {
		t.Fatalf("inactive gate fired: %v", err)
	}
	b.SetValue("mode", 1)
	if err := b.Validate(); !gonml.HasCode(err, gonml.CodeLengthMismatch) {
		t.Fatalf("err = %v", err)
	}
}

func TestWhenInMatchesAnyTrigger(t *testing.T) {
	b := testBlock(rules.WhenIn("mode", []any{2, 3}, rules.Incompatible("mode", 2, "n", nil)))
	b.SetValue("mode", 2)
	if err := b.Validate(); !gonml.HasCode(err, gonml.CodeIncompatibleValue) {
		t.Fatalf("err = %v", err)
	}
	b.SetValue("n", 1)
	if err := b.Validate(); err != nil {
		t.Fatalf("satisfied rule fired: %v", err)
	}
}
