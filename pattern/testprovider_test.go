package pattern

import "context"

// memSeqProvider is a minimal in-memory SequenceProvider for exercising
// the engines without pulling in package corpus (which itself depends on
// this package). corpus.MemoryProvider is the production equivalent.
type memSeqProvider struct {
	seqs [][]Symbol
}

func newMemProvider(raw ...string) (*memSeqProvider, error) {
	seqs := make([][]Symbol, len(raw))
	for i, s := range raw {
		parsed, err := ParseSequence(s)
		if err != nil {
			return nil, err
		}
		seqs[i] = parsed
	}
	return &memSeqProvider{seqs: seqs}, nil
}

func (p *memSeqProvider) Sequences(ctx context.Context, fn func(id int, seq []Symbol) error) error {
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
