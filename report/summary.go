package report

import (
	"context"

	"github.com/dnapatterns/patternminer/pattern"
)

// Summary holds basic corpus statistics: sequence count, the shortest
// and longest sequence length, and total nucleotide count. Mirrors
// Scripts/data_summary.py's summary of the Arabidopsis thaliana corpus.
type Summary struct {
	NumSequences     int
	MinLength        int
	MaxLength        int
	TotalNucleotides int
}

// NewSummary computes a Summary by making one pass over provider.
func NewSummary(ctx context.Context, provider pattern.SequenceProvider) (*Summary, error) {
	s := &Summary{}
	err := provider.Sequences(ctx, func(_ int, seq []pattern.Symbol) error {
		n := len(seq)
		if s.NumSequences == 0 || n < s.MinLength {
			s.MinLength = n
		}
		if n > s.MaxLength {
			s.MaxLength = n
		}
		s.TotalNucleotides += n
		s.NumSequences++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
