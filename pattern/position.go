package pattern

import (
	"context"

	"github.com/alphadose/haxmap"
)

// queueRecord is one (sequence_id, offset, pattern_index) entry in the
// Position engine's queue. Kept as a plain fixed-width struct rather than
// the teacher's map-based IPStats record: the queue is a dense array by
// spec design (§9's "Queue representation" note), and a struct slice is
// the natural Go rendering of that.
type queueRecord struct {
	seqID      int
	offset     int
	patternIdx int
}

// assignPatternIndex walks nodes_at_level(m) in order and assigns a dense
// idx (0, 1, 2, ...) to every node with count >= threshold, leaving all
// others untouched. A previous level's idx values may still be set on
// some of these nodes; they are silently overwritten, never read.
func assignPatternIndex(trie *Trie, m, threshold int) {
	next := 0
	for _, n := range trie.NodesAtLevel(m) {
		if n.hasCount && n.count >= threshold {
			n.idx = next
			n.hasIdx = true
			next++
		}
	}
}

// buildInitialQueue rescans the corpus once: for every length-m window,
// it looks up the window's trie node and, if frequent, appends
// (sequence_id, offset, node.idx) to the queue in document order.
// Grounded on Scripts/freqsubseq.py's initialized_queue.
func buildInitialQueue(ctx context.Context, trie *Trie, provider SequenceProvider, m, threshold int, counter *PassCounter) ([]queueRecord, error) {
	var queue []queueRecord
	err := provider.Sequences(ctx, func(id int, seq []Symbol) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		windowsOf(seq, m, func(offset int, window []Symbol) {
			n, err := trie.Lookup(window)
			if err != nil {
				return
			}
			if n.hasCount && n.count >= threshold {
				queue = append(queue, queueRecord{seqID: id, offset: offset, patternIdx: n.idx})
			}
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	counter.Increment()
	return queue, nil
}

// joinKey packs a (prefixIdx, suffixIdx) pair into haxmap's key space.
// Both indices are dense and small (bounded by the queue itself, which is
// in turn bounded by MAX_QUEUE_SIZE), so they fit comfortably in 32 bits
// each.
func joinKey(prefixIdx, suffixIdx int) uint64 {
	return uint64(uint32(prefixIdx))<<32 | uint64(uint32(suffixIdx))
}

// candidateMappings iterates the same (prefix P, intersection I, suffix S)
// triples as Apriori's candidate generator, assigns each a fresh dense
// index, inserts the candidate node with that idx, and records the join
// from (P.idx, S.idx) to the new index. The join map is the structure the
// Position extension step probes on every adjacent queue pair, so it is
// backed by the teacher's concurrent map (re-homed here from the live
// sliding-window join it originally served; the engine itself stays
// single-threaded, but the map type is unchanged). Grounded on
// Scripts/freqsubseq.py's candidate_mappings.
func candidateMappings(trie *Trie, m, threshold int) (joinMap *haxmap.Map[uint64, int], reverse [][]Symbol) {
	joinMap = haxmap.New[uint64, int]()
	pairs := joinFrequentPairs(trie, m, threshold)
	reverse = make([][]Symbol, len(pairs))
	for cIdx, pair := range pairs {
		idx := cIdx
		trie.InsertSuffix(pair.seq, nil, &idx)
		joinMap.Set(joinKey(pair.prefixIdx, pair.suffixIdx), cIdx)
		reverse[cIdx] = pair.seq
	}
	return joinMap, reverse
}

// extendQueue walks the current queue with a single adjacent-pair pointer:
// for consecutive records on the same sequence one offset apart, if their
// (prev.idx, curr.idx) pair is in joinMap, the joined occurrence is
// appended to the new queue and its candidate node's count is incremented.
// No corpus rescan occurs. Grounded on Scripts/freqsubseq.py's run_position
// extension step.
func extendQueue(trie *Trie, queue []queueRecord, joinMap *haxmap.Map[uint64, int], reverse [][]Symbol) []queueRecord {
	var next []queueRecord
	for i := 1; i < len(queue); i++ {
		prev, curr := queue[i-1], queue[i]
		if prev.seqID != curr.seqID || curr.offset-prev.offset != 1 {
			continue
		}
		cIdx, ok := joinMap.Get(joinKey(prev.patternIdx, curr.patternIdx))
		if !ok {
			continue
		}
		next = append(next, queueRecord{seqID: prev.seqID, offset: prev.offset, patternIdx: cIdx})
		trie.IncrementIfPresent(reverse[cIdx], 1)
	}
	return next
}
