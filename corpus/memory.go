package corpus

import (
	"context"
	"strings"

	"github.com/dnapatterns/patternminer/pattern"
)

// MemoryProvider is an in-memory pattern.SequenceProvider over a fixed
// list of raw sequence strings, validated once at construction. Mirrors
// testutil.GenerateTestLogFile's role in the teacher — a deterministic
// fixture provider for tests and benchmarks — but held in memory rather
// than written to a temp file, since sequences here are small strings
// rather than log lines.
type MemoryProvider struct {
	seqs [][]pattern.Symbol
}

// NewMemoryProvider validates every raw sequence and returns a provider
// that replays them, in order, on every call to Sequences.
func NewMemoryProvider(raw ...string) (*MemoryProvider, error) {
	seqs := make([][]pattern.Symbol, len(raw))
	for i, s := range raw {
		parsed, err := pattern.ParseSequence(s)
		if err != nil {
			b := byte(0)
			if ise, ok := err.(*pattern.InvalidSymbolError); ok {
				b = ise.Byte
			}
			return nil, &ErrInvalidSymbol{SequenceID: i, Offset: strings.IndexByte(s, b), Byte: b}
		}
		seqs[i] = parsed
	}
	return &MemoryProvider{seqs: seqs}, nil
}

// Sequences implements pattern.SequenceProvider.
func (p *MemoryProvider) Sequences(ctx context.Context, fn func(id int, seq []pattern.Symbol) error) error {
	for i, seq := range p.seqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(i, seq); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of sequences the provider holds.
func (p *MemoryProvider) Len() int {
	return len(p.seqs)
}
