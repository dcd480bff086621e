package scan_test

import (
	"testing"

	"github.com/reoring/gonml/internal/scan"
)

const sample = "!-------------------\n" +
	"! glm_setup section\n" +
	"&glm_setup\n" +
	"   sim_name = 'Sparkling Lake'   ! lake name\n" +
	"\n" +
	"   max_layers = 500\t\n" +
	"/\n"

func stripAll(text string) string {
	text = scan.StripComments(text)
	text = scan.StripEmptyLines(text)
	return scan.StripTrailingWhitespace(text)
}

func TestStripComments(t *testing.T) {
	got := scan.StripComments("! whole line\n  x = 1 ! trailing\n")
	want := "  x = 1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStripStagesAreIdempotent(t *testing.T) {
	once := stripAll(sample)
	twice := stripAll(once)
	if once != twice {
		t.Fatalf("second pass changed text:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestSplitBlocks(t *testing.T) {
	text := stripAll(sample)
	blocks := scan.SplitBlocks(text)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if blocks[0].Name != "glm_setup" {
		t.Fatalf("block name = %q", blocks[0].Name)
	}
}

func TestSplitBlocksDiscardsOutsideText(t *testing.T) {
	text := "stray text\n&a\n   x = 1\n/\nmore stray\n&b\n   y = 2\n/\n"
	blocks := scan.SplitBlocks(text)
	if len(blocks) != 2 || blocks[0].Name != "a" || blocks[1].Name != "b" {
		t.Fatalf("got %+v", blocks)
	}
}

// A block missing its closing slash is dropped, not an error.
func TestSplitBlocksDropsUnterminatedBlock(t *testing.T) {
	text := "&a\n   x = 1\n/\n&broken\n   y = 2\n"
	blocks := scan.SplitBlocks(text)
	if len(blocks) != 1 || blocks[0].Name != "a" {
		t.Fatalf("got %+v", blocks)
	}
}

func TestExtractParamsSingleLine(t *testing.T) {
	asns := scan.ExtractParams("   sim_name = 'Sparkling Lake'\n   max_layers = 500\n   x = 1")
	if len(asns) != 3 {
		t.Fatalf("got %d assignments: %+v", len(asns), asns)
	}
	if asns[0].Name != "sim_name" || asns[0].Fragments[0] != "'Sparkling Lake'" {
		t.Fatalf("first = %+v", asns[0])
	}
	if asns[2].Name != "x" || asns[2].Fragments[0] != "1" {
		t.Fatalf("third = %+v", asns[2])
	}
}

func TestExtractParamsMultiLine(t *testing.T) {
	body := "   A = 100.0, 3600.0,\n" +
		"       5600.0, 8400.0,\n" +
		"       22200.0\n" +
		"   bsn_vals = 5\n"
	asns := scan.ExtractParams(body)
	if len(asns) != 2 {
		t.Fatalf("got %d assignments: %+v", len(asns), asns)
	}
	if asns[0].Name != "A" {
		t.Fatalf("first name = %q", asns[0].Name)
	}
	wantFrags := []string{"100.0, 3600.0,", "5600.0, 8400.0,", "22200.0"}
	if len(asns[0].Fragments) != len(wantFrags) {
		t.Fatalf("fragments = %q", asns[0].Fragments)
	}
	for i, f := range wantFrags {
		if asns[0].Fragments[i] != f {
			t.Fatalf("fragment %d = %q, want %q", i, asns[0].Fragments[i], f)
		}
	}
	if asns[1].Name != "bsn_vals" || asns[1].Fragments[0] != "5" {
		t.Fatalf("second = %+v", asns[1])
	}
}

func TestExtractParamsPreservesSourceOrder(t *testing.T) {
	body := "   a = 1\n   b = 1.0,\n       2.0\n   c = 'x'\n"
	asns := scan.ExtractParams(body)
	names := make([]string, len(asns))
	for i, a := range asns {
		names[i] = a.Name
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v", names)
		}
	}
}
