package pattern

import "context"

// Method selects which growth algorithm Mine uses.
type Method string

const (
	MethodApriori  Method = "apriori"
	MethodPosition Method = "position"
	MethodHybrid   Method = "hybrid"
)

// DefaultMemoryBudgetBytes and DefaultRecordSizeBytes are the reference
// constants from the source system (budget 8e9 bytes / 80 bytes per
// record), used to compute the default MAX_QUEUE_SIZE. The per-record
// size this implementation actually stores (see queueRecord) is smaller,
// but the 80-byte figure is kept as the default so an unconfigured run
// behaves the same as the source system; callers who want to reflect
// queueRecord's true footprint should call MineWithMaxQueueSize directly.
const (
	DefaultMemoryBudgetBytes = 8_000_000_000
	DefaultRecordSizeBytes   = 80
)

// DefaultMaxQueueSize returns the reference MAX_QUEUE_SIZE derived from
// DefaultMemoryBudgetBytes and DefaultRecordSizeBytes.
func DefaultMaxQueueSize() int {
	return DefaultMemoryBudgetBytes / DefaultRecordSizeBytes
}

// Mine runs the Hybrid Controller's state machine over provider,
// producing every (pattern, support) pair whose length falls in
// [lMin, lMax] and whose support meets threshold at that length. method
// selects Apriori, Position, or Hybrid growth; counter, if non-nil,
// observes the number of full corpus passes performed. Grounded on
// Scripts/freqsubseq.py's run_apriori/run_position dispatch, unified here
// into the controller spec.md describes as S0/S_loop/S_end.
func Mine(ctx context.Context, provider SequenceProvider, lMin, lMax int, threshold Threshold, method Method, counter *PassCounter) ([]Result, error) {
	return MineWithMaxQueueSize(ctx, provider, lMin, lMax, threshold, method, counter, DefaultMaxQueueSize())
}

// MineWithMaxQueueSize is Mine with an explicit MAX_QUEUE_SIZE, for
// callers (see package config) that size the queue budget from their own
// memory-budget/record-size configuration rather than the defaults.
func MineWithMaxQueueSize(ctx context.Context, provider SequenceProvider, lMin, lMax int, threshold Threshold, method Method, counter *PassCounter, maxQueueSize int) ([]Result, error) {
	trie := NewTrie()

	// S0: Apriori initialization at lMin, always performed regardless of
	// method — Position and Hybrid both need the level-lMin counts before
	// they can do anything else.
	if err := aprioriInit(ctx, trie, provider, lMin, counter); err != nil {
		return nil, err
	}

	m := lMin
	useApriori := method != MethodPosition
	var queue []queueRecord

	if method == MethodPosition {
		t := threshold.At(m)
		if trie.CountFrequentOccurrences(m, t) > maxQueueSize {
			return nil, ErrExceedAllocatedMemory
		}
		q, err := preparePosition(ctx, trie, provider, m, t, counter)
		if err != nil {
			return nil, err
		}
		queue = q
	}

	for m < lMax {
		t := threshold.At(m)

		if method == MethodHybrid && useApriori && trie.CountFrequentOccurrences(m, t) <= maxQueueSize {
			q, err := preparePosition(ctx, trie, provider, m, t, counter)
			if err != nil {
				return nil, err
			}
			queue = q
			useApriori = false
		}

		runningApriori := method == MethodApriori || (method == MethodHybrid && useApriori)
		if runningApriori {
			candidates := aprioriCandidateSeqs(trie, m, t)
			if err := aprioriExtend(ctx, trie, provider, candidates, m+1, counter); err != nil {
				return nil, err
			}
		} else {
			joinMap, reverse := candidateMappings(trie, m, t)
			queue = extendQueue(trie, queue, joinMap, reverse)
		}
		m++
	}

	return FilterResults(trie, threshold), nil
}

// preparePosition performs the one-time Position preparation at level m:
// assign dense pattern indices to the level's frequent nodes, then rescan
// the corpus once to build the initial queue. Shared by the explicit
// Position method's S0 and the Hybrid switch, both of which perform
// exactly this step (+1 pass) per spec.md's state machine.
func preparePosition(ctx context.Context, trie *Trie, provider SequenceProvider, m, threshold int, counter *PassCounter) ([]queueRecord, error) {
	assignPatternIndex(trie, m, threshold)
	return buildInitialQueue(ctx, trie, provider, m, threshold, counter)
}
