package codec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/reoring/gonml/codec"
)

func TestDecodeListFragments(t *testing.T) {
	got, err := codec.DecodeList([]string{"1.0,", "2.0,", "3.0"}, codec.DecodeFloat)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDecodeListDropsTrailingComma(t *testing.T) {
	got, err := codec.DecodeList([]string{"1, 2, 3,"}, codec.DecodeInt)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeListPropagatesElementError(t *testing.T) {
	if _, err := codec.DecodeList([]string{"1, x, 3"}, codec.DecodeInt); err == nil {
		t.Fatal("bad element accepted")
	}
}

func TestEncodeListSingleElementIsBareScalar(t *testing.T) {
	got := codec.EncodeList([]float64{1.5}, codec.EncodeFloat, 4, 7)
	if got != "1.5" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeListWrapIndentsContinuations(t *testing.T) {
	got := codec.EncodeList([]int{1, 2, 3, 4, 5}, codec.EncodeInt, 2, 7)
	want := "1,2,\n       3,4,\n       5"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestListWrapFidelity(t *testing.T) {
	for n := 0; n <= 50; n++ {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i * 3
		}
		for k := 1; k <= 6; k++ {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				enc := codec.EncodeList(xs, codec.EncodeInt, k, 10)
				frags := strings.Split(enc, "\n")
				got, err := codec.DecodeList(frags, codec.DecodeInt)
				if err != nil {
					t.Fatal(err)
				}
				if len(got) != len(xs) {
					t.Fatalf("len %d, want %d", len(got), len(xs))
				}
				for i := range xs {
					if got[i] != xs[i] {
						t.Fatalf("element %d: got %d, want %d", i, got[i], xs[i])
					}
				}
			})
		}
	}
}
