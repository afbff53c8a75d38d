// Package compare computes set-algebra comparisons between two frequent
// pattern result sets, grouped by pattern length. Grounded on
// Scripts/comparison.py's fraction_rel_comp/jaccard_similarity, which
// compares a genome's frequent patterns against a reference (RepBase TE)
// database the same way.
package compare

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dnapatterns/patternminer/pattern"
)

// Load reads a JSON array of pattern strings (as produced by
// report.JSONResult.Patterns, projected to pattern names) from path.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compare: read %s: %w", path, err)
	}
	var patterns []string
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("compare: parse %s: %w", path, err)
	}
	return patterns, nil
}

// byLength groups pattern strings into sets keyed by their length.
func byLength(patterns []string) map[int]map[string]bool {
	out := make(map[int]map[string]bool)
	for _, p := range patterns {
		m := len(p)
		if out[m] == nil {
			out[m] = make(map[string]bool)
		}
		out[m][p] = true
	}
	return out
}

// LengthComparison is one pattern length's set-algebra comparison between
// two result sets.
type LengthComparison struct {
	Length              int
	CountA              int
	CountB              int
	RelativeComplementA float64
	RelativeComplementB float64
	JaccardSimilarity   float64
}

// Compare groups a and b by pattern length and computes, for every length
// present in both, the relative-complement fractions and Jaccard
// similarity Scripts/comparison.py plots for genome vs. RepBase.
func Compare(a, b []pattern.Result) []LengthComparison {
	namesA := make([]string, len(a))
	for i, r := range a {
		namesA[i] = r.Pattern
	}
	namesB := make([]string, len(b))
	for i, r := range b {
		namesB[i] = r.Pattern
	}
	return CompareNames(namesA, namesB)
}

// CompareNames is Compare operating directly on pattern strings, used
// when comparing against an externally loaded reference set (see Load).
func CompareNames(a, b []string) []LengthComparison {
	setsA := byLength(a)
	setsB := byLength(b)

	lengths := make(map[int]bool)
	for l := range setsA {
		lengths[l] = true
	}
	for l := range setsB {
		lengths[l] = true
	}

	var out []LengthComparison
	for l := range lengths {
		sa, sb := setsA[l], setsB[l]
		if len(sa) == 0 || len(sb) == 0 {
			continue
		}
		out = append(out, LengthComparison{
			Length:              l,
			CountA:              len(sa),
			CountB:              len(sb),
			RelativeComplementA: relativeComplementFraction(sa, sb),
			RelativeComplementB: relativeComplementFraction(sb, sa),
			JaccardSimilarity:   jaccardSimilarity(sa, sb),
		})
	}
	return out
}

// relativeComplementFraction returns the fraction of elements in a that
// are not in b: |a \ b| / |a|. Mirrors fraction_rel_comp.
func relativeComplementFraction(a, b map[string]bool) float64 {
	if len(a) == 0 {
		return 0
	}
	diff := 0
	for p := range a {
		if !b[p] {
			diff++
		}
	}
	return float64(diff) / float64(len(a))
}

// jaccardSimilarity returns |a & b| / |a | b|. Mirrors jaccard_similarity.
func jaccardSimilarity(a, b map[string]bool) float64 {
	union := make(map[string]bool, len(a)+len(b))
	intersection := 0
	for p := range a {
		union[p] = true
		if b[p] {
			intersection++
		}
	}
	for p := range b {
		union[p] = true
	}
	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}
