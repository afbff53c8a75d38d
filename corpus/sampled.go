package corpus

import (
	"context"
	"math/rand"

	"github.com/dnapatterns/patternminer/pattern"
)

// SampledProvider wraps another pattern.SequenceProvider, passing through
// only sequences whose id is in a fixed inclusion set. Mirrors
// Scripts/readfasta.py's samples function: a sub-corpus used to study how
// mining cost and results scale with corpus size, per
// Scripts/computational_costs.py's sampling experiment driver.
type SampledProvider struct {
	inner pattern.SequenceProvider
	ids   map[int]bool
}

// NewSampledProvider restricts inner to the given sequence ids.
func NewSampledProvider(inner pattern.SequenceProvider, ids []int) *SampledProvider {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return &SampledProvider{inner: inner, ids: set}
}

// Sequences implements pattern.SequenceProvider.
func (p *SampledProvider) Sequences(ctx context.Context, fn func(id int, seq []pattern.Symbol) error) error {
	return p.inner.Sequences(ctx, func(id int, seq []pattern.Symbol) error {
		if !p.ids[id] {
			return nil
		}
		return fn(id, seq)
	})
}

// SampleIDs draws each of the total sequence ids independently with
// probability rate, mirroring Scripts/computational_costs.py's Bernoulli
// sub-sampling of the corpus. The caller supplies rng so sampling is
// reproducible across runs of the same experiment.
func SampleIDs(total int, rate float64, rng *rand.Rand) []int {
	var ids []int
	for i := 0; i < total; i++ {
		if rng.Float64() < rate {
			ids = append(ids, i)
		}
	}
	return ids
}
