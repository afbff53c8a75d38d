package corpus_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/dnapatterns/patternminer/corpus"
	"github.com/dnapatterns/patternminer/corpus/corpustest"
	"github.com/dnapatterns/patternminer/pattern"
)

func TestFastaProviderRestartability(t *testing.T) {
	dir := t.TempDir()
	want := []string{"ACGT", "TTTTCCCC", "GGGGAAAA"}
	path, err := corpustest.WriteFasta(dir, want)
	if err != nil {
		t.Fatalf("WriteFasta: %v", err)
	}
	provider := corpus.NewFastaProvider(path)

	for pass := 0; pass < 2; pass++ {
		var got []string
		err := provider.Sequences(context.Background(), func(id int, seq []pattern.Symbol) error {
			if id != len(got) {
				t.Errorf("pass %d: id = %d, want %d", pass, id, len(got))
			}
			got = append(got, pattern.SymbolsToString(seq))
			return nil
		})
		if err != nil {
			t.Fatalf("pass %d: Sequences: %v", pass, err)
		}
		if len(got) != len(want) {
			t.Fatalf("pass %d: got %v, want %v", pass, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: seq[%d] = %q, want %q", pass, i, got[i], want[i])
			}
		}
	}
}

func TestFastaProviderRejectsInvalidSymbol(t *testing.T) {
	dir := t.TempDir()
	path, err := corpustest.WriteFasta(dir, []string{"ACGN"})
	if err != nil {
		t.Fatalf("WriteFasta: %v", err)
	}
	provider := corpus.NewFastaProvider(path)
	err = provider.Sequences(context.Background(), func(int, []pattern.Symbol) error { return nil })
	if err == nil {
		t.Fatal("expected ErrInvalidSymbol for byte outside {A,C,T,G}")
	}
	if _, ok := err.(*corpus.ErrInvalidSymbol); !ok {
		t.Fatalf("error %v is not *corpus.ErrInvalidSymbol", err)
	}
}

func TestSampledProviderFiltersIDs(t *testing.T) {
	mem, err := corpus.NewMemoryProvider("AC", "CG", "GT", "TA")
	if err != nil {
		t.Fatalf("NewMemoryProvider: %v", err)
	}
	sampled := corpus.NewSampledProvider(mem, []int{1, 3})
	var ids []int
	err = sampled.Sequences(context.Background(), func(id int, _ []pattern.Symbol) error {
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		t.Fatalf("Sequences: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("ids = %v, want [1 3]", ids)
	}
}

func TestSampleIDsRespectsRateZeroAndOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if ids := corpus.SampleIDs(10, 0, rng); len(ids) != 0 {
		t.Errorf("rate 0: got %v, want empty", ids)
	}
	rng = rand.New(rand.NewSource(1))
	if ids := corpus.SampleIDs(10, 1, rng); len(ids) != 10 {
		t.Errorf("rate 1: got %v, want all 10 ids", ids)
	}
}
