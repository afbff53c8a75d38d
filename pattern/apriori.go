package pattern

import "context"

// windowsOf calls fn once for every contiguous length-long window of seq,
// in increasing offset order. A seq shorter than length contributes no
// windows, matching the boundary case in the testable properties.
func windowsOf(seq []Symbol, length int, fn func(offset int, window []Symbol)) {
	if length <= 0 || length > len(seq) {
		return
	}
	for off := 0; off+length <= len(seq); off++ {
		fn(off, seq[off:off+length])
	}
}

// aprioriInit performs the length-lMin initialization pass shared by all
// three methods: one full corpus traversal, inserting every length-lMin
// window with delta +1. Grounded on Scripts/freqsubseq.py's
// initialized_tree.
func aprioriInit(ctx context.Context, trie *Trie, provider SequenceProvider, length int, counter *PassCounter) error {
	one := 1
	err := provider.Sequences(ctx, func(_ int, seq []Symbol) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		windowsOf(seq, length, func(_ int, window []Symbol) {
			trie.InsertSuffix(window, &one, nil)
		})
		return nil
	})
	if err != nil {
		return err
	}
	counter.Increment()
	return nil
}

// joinCandidate is one (prefix, suffix)-joined length-(m+1) candidate, kept
// alongside the prefix's and suffix's level-m indices so the Position
// engine can build its join map from the same enumeration Apriori uses for
// candidate generation.
type joinCandidate struct {
	seq       []Symbol
	prefixIdx int
	suffixIdx int
}

// joinFrequentPairs enumerates length-(m+1) candidates from a trie whose
// level-m counts are finalized: for every frequent length-m node P, find
// the intersection node I = P.seq[1:], and for every frequent child S of
// I, emit P.seq ++ S.seq[m-1:]. Iterating P in nodes_at_level(m) order and
// I's children in alphabet order gives the deterministic candidate order
// both the Apriori and Position engines rely on. Grounded on
// Scripts/freqsubseq.py's candidates/candidate_mappings.
func joinFrequentPairs(trie *Trie, m, threshold int) []joinCandidate {
	var out []joinCandidate
	for _, p := range trie.FrequentAt(m, threshold) {
		pSeq := p.seq()
		intersection, err := trie.Lookup(pSeq[1:])
		if err != nil {
			continue
		}
		for _, s := range Children(intersection) {
			if !s.hasCount || s.count < threshold {
				continue
			}
			cand := make([]Symbol, m+1)
			copy(cand, pSeq)
			cand[m] = s.sym
			out = append(out, joinCandidate{seq: cand, prefixIdx: p.idx, suffixIdx: s.idx})
		}
	}
	return out
}

// aprioriCandidateSeqs is joinFrequentPairs stripped down to the sequences
// Apriori's extension step needs; the Position engine additionally uses
// the prefix/suffix indices (see position.go's candidateMappings).
func aprioriCandidateSeqs(trie *Trie, m, threshold int) [][]Symbol {
	pairs := joinFrequentPairs(trie, m, threshold)
	out := make([][]Symbol, len(pairs))
	for i, p := range pairs {
		out[i] = p.seq
	}
	return out
}

// aprioriExtend inserts the generated candidates structurally (no initial
// count), then rescans the corpus once, incrementing only paths that
// already exist — i.e. only the candidates. Grounded on
// Scripts/freqsubseq.py's run_apriori extension step.
func aprioriExtend(ctx context.Context, trie *Trie, provider SequenceProvider, candidates [][]Symbol, length int, counter *PassCounter) error {
	for _, c := range candidates {
		trie.InsertSuffix(c, nil, nil)
	}
	err := provider.Sequences(ctx, func(_ int, seq []Symbol) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		windowsOf(seq, length, func(_ int, window []Symbol) {
			trie.IncrementIfPresent(window, 1)
		})
		return nil
	})
	if err != nil {
		return err
	}
	counter.Increment()
	return nil
}
