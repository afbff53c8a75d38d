package pattern

import "context"

// SequenceProvider enumerates a corpus's sequences in a fixed, repeatable
// order. Every engine rescan calls Sequences again and relies on it
// replaying the exact same (id, seq) pairs in the exact same order; a
// provider backed by a file must therefore reopen/reset itself on each
// call. Defined here, in the package that consumes it, rather than in
// package corpus, so that pattern never imports corpus.
type SequenceProvider interface {
	// Sequences calls fn once per sequence, in order, with its 0-based
	// sequence_id and parsed symbols. It returns fn's first error,
	// aborting iteration, or ctx.Err() if ctx is cancelled between
	// sequences.
	Sequences(ctx context.Context, fn func(id int, seq []Symbol) error) error
}

// Threshold supplies the minimum support required at a given pattern
// length. A single scalar threshold and a per-length mapping (as produced
// by Thresholds) both satisfy it.
type Threshold interface {
	At(length int) int
}

// ScalarThreshold applies the same minimum support at every pattern length.
type ScalarThreshold int

func (s ScalarThreshold) At(int) int { return int(s) }

// LengthThreshold applies Thresholds' {length -> T} mapping. A length with
// no entry has no frequent patterns — At returns maxSupportSentinel,
// larger than any attainable count, so FrequentAt/FilterResults callers
// never treat it as satisfied.
type LengthThreshold map[int]int

func (m LengthThreshold) At(length int) int {
	t, ok := m[length]
	if !ok {
		return maxSupportSentinel
	}
	return t
}

// maxSupportSentinel is larger than any support a real corpus can produce,
// used so a missing length-threshold entry excludes rather than admits.
const maxSupportSentinel = int(^uint(0) >> 1)
