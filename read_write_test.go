package gonml_test

import (
	"strings"
	"testing"

	"github.com/reoring/gonml"
)

const setupText = "&glm_setup\n" +
	"   sim_name = 'Sparkling Lake'\n" +
	"   max_layers = 500\n" +
	"   non_avg = .true.\n" +
	"/\n"

func setupTable() gonml.ConverterTable {
	return gonml.ConverterTable{
		"glm_setup": {
			"sim_name":   gonml.ConverterFor(gonml.KindString, false),
			"max_layers": gonml.ConverterFor(gonml.KindInt, false),
			"non_avg":    gonml.ConverterFor(gonml.KindBool, false),
		},
	}
}

func setupDict() *gonml.DocDict {
	params := gonml.NewDict()
	params.Set("sim_name", "Sparkling Lake")
	params.Set("max_layers", 500)
	params.Set("non_avg", true)
	doc := gonml.NewDocDict()
	doc.Set("glm_setup", params)
	return doc
}

func TestWriteSetupBlock(t *testing.T) {
	got, err := gonml.Write(setupDict())
	if err != nil {
		t.Fatal(err)
	}
	if got != setupText {
		t.Fatalf("got %q, want %q", got, setupText)
	}
}

func TestReadSetupBlock(t *testing.T) {
	got, err := gonml.Read(setupText, setupTable())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(setupDict()) {
		t.Fatalf("got %+v", got)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	text, err := gonml.Write(setupDict())
	if err != nil {
		t.Fatal(err)
	}
	back, err := gonml.Read(text, setupTable())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(setupDict()) {
		t.Fatalf("round trip changed the document: %+v", back)
	}
}

func TestReadSkipsUnknownNames(t *testing.T) {
	text := "&glm_setup\n   sim_name = 'x'\n   brand_new = 1\n/\n" +
		"&future_block\n   y = 2\n/\n"
	got, err := gonml.Read(text, setupTable())
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("blocks = %v", got.Keys())
	}
	params, _ := got.Get("glm_setup")
	if _, ok := params.Get("brand_new"); ok {
		t.Fatal("unknown parameter survived")
	}
	if v, _ := params.Get("sim_name"); v != "x" {
		t.Fatalf("sim_name = %v", v)
	}
}

func TestReadFormatErrorIsFatal(t *testing.T) {
	text := "&glm_setup\n   max_layers = many\n/\n"
	_, err := gonml.Read(text, setupTable())
	if err == nil {
		t.Fatal("malformed int accepted")
	}
	if !gonml.HasCode(err, gonml.CodeParse) {
		t.Fatalf("err = %v", err)
	}
	iss, _ := gonml.AsIssues(err)
	if iss[0].Block != "glm_setup" || iss[0].Param != "max_layers" {
		t.Fatalf("issue location = %s", iss[0].Path())
	}
}

func TestReadIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "! header\n\n&glm_setup\n   sim_name = 'x' ! inline\n\n/\n"
	got, err := gonml.Read(text, setupTable())
	if err != nil {
		t.Fatal(err)
	}
	params, ok := got.Get("glm_setup")
	if !ok {
		t.Fatal("block missing")
	}
	if v, _ := params.Get("sim_name"); v != "x" {
		t.Fatalf("sim_name = %v", v)
	}
}

func TestReadRawInfersTypes(t *testing.T) {
	text := "&b\n   i = 5\n   f = 1.5\n   t = .true.\n   s = 'hi'\n   xs = 1, 2, 3\n/\n"
	got, err := gonml.ReadRaw(text)
	if err != nil {
		t.Fatal(err)
	}
	params, _ := got.Get("b")
	if v, _ := params.Get("i"); v != 5 {
		t.Fatalf("i = %#v", v)
	}
	if v, _ := params.Get("f"); v != 1.5 {
		t.Fatalf("f = %#v", v)
	}
	if v, _ := params.Get("t"); v != true {
		t.Fatalf("t = %#v", v)
	}
	if v, _ := params.Get("s"); v != "hi" {
		t.Fatalf("s = %#v", v)
	}
	xs, _ := params.Get("xs")
	ints, ok := xs.([]int)
	if !ok || len(ints) != 3 {
		t.Fatalf("xs = %#v", xs)
	}
}

func TestWriteSkipsNilValues(t *testing.T) {
	params := gonml.NewDict()
	params.Set("a", 1)
	params.Set("b", nil)
	doc := gonml.NewDocDict()
	doc.Set("blk", params)
	got, err := gonml.Write(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "b =") {
		t.Fatalf("nil value written: %q", got)
	}
}

func TestWriteOneElementListAsBareScalar(t *testing.T) {
	params := gonml.NewDict()
	params.Set("H", []float64{1.5})
	doc := gonml.NewDocDict()
	doc.Set("blk", params)
	got, err := gonml.Write(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "&blk\n   H = 1.5\n/\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteWrapListsRoundTrips(t *testing.T) {
	xs := make([]float64, 11)
	for i := range xs {
		xs[i] = float64(i) + 0.5
	}
	params := gonml.NewDict()
	params.Set("A", xs)
	doc := gonml.NewDocDict()
	doc.Set("blk", params)
	text, err := gonml.Write(doc, gonml.WrapLists(4))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(text, "\n") <= 3 {
		t.Fatalf("no wrapping happened: %q", text)
	}
	table := gonml.ConverterTable{
		"blk": {"A": gonml.ConverterFor(gonml.KindFloat, true)},
	}
	back, err := gonml.Read(text, table)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(doc) {
		t.Fatalf("wrapped list changed: %+v", back)
	}
}

func TestWriteRejectsMixedList(t *testing.T) {
	params := gonml.NewDict()
	params.Set("xs", []any{1, "two"})
	doc := gonml.NewDocDict()
	doc.Set("blk", params)
	_, err := gonml.Write(doc)
	if !gonml.HasCode(err, gonml.CodeInvalidType) {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteExplicitTableSkipsUnregistered(t *testing.T) {
	params := gonml.NewDict()
	params.Set("known", 1)
	params.Set("unknown", 2)
	doc := gonml.NewDocDict()
	doc.Set("blk", params)
	table := gonml.EncoderTable{
		"blk": {"known": func(v any) (string, error) { return "1", nil }},
	}
	got, err := gonml.Write(doc, gonml.WithEncoders(table))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "unknown") {
		t.Fatalf("unregistered parameter written: %q", got)
	}
	if !strings.Contains(got, "known = 1") {
		t.Fatalf("registered parameter missing: %q", got)
	}
}
