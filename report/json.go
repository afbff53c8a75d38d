// Package report renders a completed mining run as JSON and as a
// go-echarts support curve, and summarizes a corpus's basic statistics.
package report

import (
	"encoding/json"
	"time"

	"github.com/dnapatterns/patternminer/pattern"
)

// JSONResult is the on-disk shape of one mining run. Mirrors the
// teacher's output.JSONOutput: a Metadata block, a General stats block,
// and the substantive payload — here Patterns instead of Tries.
type JSONResult struct {
	Metadata Metadata        `json:"metadata"`
	General  General         `json:"general"`
	Patterns []PatternResult `json:"patterns"`
}

// Metadata records when and how long a run took.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Method      string    `json:"method"`
	DurationMS  int64     `json:"duration_ms"`
}

// General holds overall run parameters and the pass count observed.
type General struct {
	LMin      int `json:"l_min"`
	LMax      int `json:"l_max"`
	PassCount int `json:"pass_count"`
}

// PatternResult is one (pattern, support) pair, JSON-rendered.
type PatternResult struct {
	Pattern string `json:"pattern"`
	Support int    `json:"support"`
}

// NewJSONResult builds a JSONResult from a completed run's output.
func NewJSONResult(method pattern.Method, lMin, lMax int, results []pattern.Result, counter *pattern.PassCounter, startedAt time.Time) *JSONResult {
	patterns := make([]PatternResult, len(results))
	for i, r := range results {
		patterns[i] = PatternResult{Pattern: r.Pattern, Support: r.Support}
	}
	passCount := 0
	if counter != nil {
		passCount = counter.Count
	}
	return &JSONResult{
		Metadata: Metadata{
			GeneratedAt: time.Now().UTC(),
			Method:      string(method),
			DurationMS:  time.Since(startedAt).Milliseconds(),
		},
		General: General{
			LMin:      lMin,
			LMax:      lMax,
			PassCount: passCount,
		},
		Patterns: patterns,
	}
}

// ToJSON renders pretty-printed JSON, mirroring output.JSONOutput.ToJSON.
func (r *JSONResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToCompactJSON renders compact JSON, mirroring
// output.JSONOutput.ToCompactJSON.
func (r *JSONResult) ToCompactJSON() ([]byte, error) {
	return json.Marshal(r)
}
