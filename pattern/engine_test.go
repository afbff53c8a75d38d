package pattern

import (
	"context"
	"sort"
	"testing"
)

// resultSet renders []Result as a map for order-independent comparison,
// matching the spec's "expected result set" framing.
func resultSet(t *testing.T, results []Result) map[string]int {
	t.Helper()
	out := make(map[string]int, len(results))
	for _, r := range results {
		if _, dup := out[r.Pattern]; dup {
			t.Fatalf("duplicate pattern %q in result set", r.Pattern)
		}
		out[r.Pattern] = r.Support
	}
	return out
}

func e2eACorpus(t *testing.T) *memSeqProvider {
	t.Helper()
	p, err := newMemProvider("ACGATTCGATCG", "ACGATTCGATCG")
	if err != nil {
		t.Fatalf("newMemProvider: %v", err)
	}
	return p
}

var e2eAExpected = map[string]int{
	"A": 6, "C": 6, "G": 6, "T": 6,
	"AT": 4, "CG": 6, "GA": 4, "TC": 4,
	"CGA": 4, "GAT": 4, "TCG": 4,
}

func TestE2E_A_AprioriTinyCorpus(t *testing.T) {
	provider := e2eACorpus(t)
	var counter PassCounter
	results, err := Mine(context.Background(), provider, 1, 3, ScalarThreshold(4), MethodApriori, &counter)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	got := resultSet(t, results)
	if len(got) != len(e2eAExpected) {
		t.Fatalf("result set size = %d, want %d (%v)", len(got), len(e2eAExpected), got)
	}
	for pattern, support := range e2eAExpected {
		if got[pattern] != support {
			t.Errorf("support[%q] = %d, want %d", pattern, got[pattern], support)
		}
	}
	if counter.Count != 3 {
		t.Errorf("pass count = %d, want 3", counter.Count)
	}
}

func TestE2E_B_PositionTinyCorpus(t *testing.T) {
	provider := e2eACorpus(t)
	var counter PassCounter
	results, err := Mine(context.Background(), provider, 1, 3, ScalarThreshold(4), MethodPosition, &counter)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	got := resultSet(t, results)
	for pattern, support := range e2eAExpected {
		if got[pattern] != support {
			t.Errorf("support[%q] = %d, want %d", pattern, got[pattern], support)
		}
	}
	if counter.Count != 2 {
		t.Errorf("pass count = %d, want 2", counter.Count)
	}
}

func TestE2E_C_HybridTinyCorpus(t *testing.T) {
	provider := e2eACorpus(t)
	var counter PassCounter
	results, err := Mine(context.Background(), provider, 1, 3, ScalarThreshold(4), MethodHybrid, &counter)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	got := resultSet(t, results)
	for pattern, support := range e2eAExpected {
		if got[pattern] != support {
			t.Errorf("support[%q] = %d, want %d", pattern, got[pattern], support)
		}
	}
	if counter.Count != 2 {
		t.Errorf("pass count = %d, want 2", counter.Count)
	}
}

func TestE2E_D_LevelTwoCountsAndCandidates(t *testing.T) {
	provider := e2eACorpus(t)
	trie := NewTrie()
	var counter PassCounter
	if err := aprioriInit(context.Background(), trie, provider, 2, &counter); err != nil {
		t.Fatalf("aprioriInit: %v", err)
	}

	wantCounts := map[string]int{"AC": 2, "AT": 4, "CG": 6, "GA": 4, "TT": 2, "TC": 4}
	for _, n := range trie.NodesAtLevel(2) {
		want, ok := wantCounts[n.seqString()]
		if !ok {
			t.Errorf("unexpected level-2 node %q", n.seqString())
			continue
		}
		if !n.hasCount || n.count != want {
			t.Errorf("count[%q] = %v (hasCount=%v), want %d", n.seqString(), n.count, n.hasCount, want)
		}
	}

	candidates := aprioriCandidateSeqs(trie, 2, 4)
	gotSet := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		gotSet[SymbolsToString(c)] = true
	}
	wantSet := map[string]bool{"ATC": true, "CGA": true, "GAT": true, "TCG": true}
	if len(gotSet) != len(wantSet) {
		t.Fatalf("candidate set = %v, want %v", gotSet, wantSet)
	}
	for c := range wantSet {
		if !gotSet[c] {
			t.Errorf("missing candidate %q", c)
		}
	}
}

func TestE2E_E_PositionQueueContent(t *testing.T) {
	provider := e2eACorpus(t)
	trie := NewTrie()
	var counter PassCounter
	if err := aprioriInit(context.Background(), trie, provider, 2, &counter); err != nil {
		t.Fatalf("aprioriInit: %v", err)
	}
	assignPatternIndex(trie, 2, 4)
	queue, err := buildInitialQueue(context.Background(), trie, provider, 2, 4, &counter)
	if err != nil {
		t.Fatalf("buildInitialQueue: %v", err)
	}

	idxToPattern := make(map[int]string)
	for _, n := range trie.FrequentAt(2, 4) {
		idxToPattern[n.idx] = n.seqString()
	}

	type rec struct {
		seqID, offset int
		pattern       string
	}
	want := []rec{
		{0, 1, "CG"}, {0, 2, "GA"}, {0, 3, "AT"}, {0, 5, "TC"}, {0, 6, "CG"},
		{0, 7, "GA"}, {0, 8, "AT"}, {0, 9, "TC"}, {0, 10, "CG"},
		{1, 1, "CG"}, {1, 2, "GA"}, {1, 3, "AT"}, {1, 5, "TC"}, {1, 6, "CG"},
		{1, 7, "GA"}, {1, 8, "AT"}, {1, 9, "TC"}, {1, 10, "CG"},
	}
	if len(queue) != len(want) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(want))
	}
	for i, r := range queue {
		gotPattern := idxToPattern[r.patternIdx]
		if r.seqID != want[i].seqID || r.offset != want[i].offset || gotPattern != want[i].pattern {
			t.Errorf("queue[%d] = (%d,%d,%s), want (%d,%d,%s)", i, r.seqID, r.offset, gotPattern, want[i].seqID, want[i].offset, want[i].pattern)
		}
	}
}

func TestE2E_F_ThresholdBound(t *testing.T) {
	n := 100_000_000
	m := 4
	lambda := (float64(n) - float64(m)) * 0.0625 * 0.25 * 0.25 // 0.25^4
	threshold, err := SignificantSupport(n-m, m, 0.9)
	if err != nil {
		t.Fatalf("SignificantSupport: %v", err)
	}
	if float64(threshold) <= lambda {
		t.Fatalf("T_4 = %d, want strictly greater than lambda %.2f", threshold, lambda)
	}
	q, err := regularizedGammaQ(float64(threshold), lambda)
	if err != nil {
		t.Fatalf("regularizedGammaQ: %v", err)
	}
	// Pr[X >= T] = 1 - Q(T, lambda) is the Poisson upper tail.
	if 1-q > 0.1+1e-6 {
		t.Errorf("1 - Q(T_4, lambda) = %v, want <= 0.1", 1-q)
	}
	qPrev, err := regularizedGammaQ(float64(threshold-1), lambda)
	if err != nil {
		t.Fatalf("regularizedGammaQ: %v", err)
	}
	if 1-qPrev <= 0.1 {
		t.Errorf("1 - Q(T_4-1, lambda) = %v, want > 0.1", 1-qPrev)
	}
}

func TestBoundary_EmptyCorpus(t *testing.T) {
	provider, err := newMemProvider()
	if err != nil {
		t.Fatalf("newMemProvider: %v", err)
	}
	var counter PassCounter
	results, err := Mine(context.Background(), provider, 1, 3, ScalarThreshold(1), MethodApriori, &counter)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
	if counter.Count != 3 {
		t.Errorf("pass count = %d, want 3 (one per level attempted)", counter.Count)
	}
}

func TestBoundary_ShortSequencesContributeNoWindows(t *testing.T) {
	provider, err := newMemProvider("AC", "ACGATCGATCGATCG")
	if err != nil {
		t.Fatalf("newMemProvider: %v", err)
	}
	results, err := Mine(context.Background(), provider, 4, 4, ScalarThreshold(1), MethodApriori, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	for _, r := range results {
		if len(r.Pattern) != 4 {
			t.Errorf("unexpected result length for %q", r.Pattern)
		}
	}
}

// TestMethodEquivalence checks that all three methods return the same
// (pattern, count) set over a less trivial corpus.
func TestMethodEquivalence(t *testing.T) {
	provider, err := newMemProvider("ACGTACGTACGTACGT", "TTTTACGTGGGGACGT", "ACGTTTTTCCCCGGGG")
	if err != nil {
		t.Fatalf("newMemProvider: %v", err)
	}
	const (
		lMin, lMax = 1, 3
		threshold  = 2
	)
	methods := []Method{MethodApriori, MethodPosition, MethodHybrid}
	var sets []map[string]int
	for _, m := range methods {
		results, err := Mine(context.Background(), provider, lMin, lMax, ScalarThreshold(threshold), m, nil)
		if err != nil {
			t.Fatalf("Mine(%s): %v", m, err)
		}
		sets = append(sets, resultSet(t, results))
	}
	for i := 1; i < len(sets); i++ {
		if len(sets[i]) != len(sets[0]) {
			t.Fatalf("method %s result size = %d, method %s = %d", methods[i], len(sets[i]), methods[0], len(sets[0]))
		}
		for pattern, support := range sets[0] {
			if sets[i][pattern] != support {
				t.Errorf("method %s: support[%q] = %d, want %d (from %s)", methods[i], pattern, sets[i][pattern], support, methods[0])
			}
		}
	}
}

// TestThresholdsMonotonicityAndStop exercises Thresholds' stopping rule
// and checks the returned thresholds never increase with length.
func TestThresholdsMonotonicityAndStop(t *testing.T) {
	out, err := Thresholds(1_000_000, 1, 2, 0.9)
	if err != nil {
		t.Fatalf("Thresholds: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Thresholds returned no entries")
	}
	lengths := make([]int, 0, len(out))
	for m := range out {
		lengths = append(lengths, m)
	}
	sort.Ints(lengths)
	for i, m := range lengths {
		if m != i+1 {
			t.Fatalf("lengths not contiguous from 1: got %v", lengths)
		}
		if out[m] < 2 {
			t.Errorf("Thresholds[%d] = %d, want >= lwrBd 2", m, out[m])
		}
	}
	for i := 1; i < len(lengths); i++ {
		if out[lengths[i]] > out[lengths[i-1]] {
			t.Errorf("threshold increased from length %d (%d) to %d (%d); lambda shrinks with length so thresholds should not increase", lengths[i-1], out[lengths[i-1]], lengths[i], out[lengths[i]])
		}
	}
}
