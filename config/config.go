// Package config loads the TOML run configuration for seqminer: a global
// section of memory/confidence defaults and a dynamically-named set of
// mining profiles, one per [mine.<name>] table. Grounded on the teacher's
// config.LoadConfig, which decodes into a raw map[string]any first and
// dispatches named sub-tables ([static.<name>], [live.<name>]) by hand
// rather than relying on toml's struct-tag decoding for the whole file —
// the same shape fits a dynamically-named set of mining profiles here.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// GlobalConfig holds defaults shared by every mining profile unless a
// profile overrides them.
type GlobalConfig struct {
	Confidence        float64 `toml:"confidence"`
	LowerBound        int     `toml:"lowerBound"`
	MemoryBudgetBytes int64   `toml:"memoryBudgetBytes"`
	RecordSizeBytes   int64   `toml:"recordSizeBytes"`
}

// MineProfile is one named mining run: a corpus path, a length range, and
// a method. Thresholds are computed at run time via the global confidence
// and lower bound unless ScalarThreshold is set.
type MineProfile struct {
	CorpusPath      string  `toml:"corpusPath"`
	LMin            int     `toml:"lMin"`
	LMax            int     `toml:"lMax"`
	Method          string  `toml:"method"`
	ScalarThreshold int     `toml:"scalarThreshold"`
	SampleRate      float64 `toml:"sampleRate"`
}

// Config is the top-level decoded TOML document.
type Config struct {
	Global  *GlobalConfig           `toml:"global"`
	Profile map[string]*MineProfile `toml:",remain"`
}

// LoadConfig reads and decodes the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := &Config{Profile: make(map[string]*MineProfile)}

	for key, value := range raw {
		switch key {
		case "global":
			m, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("config: [global] must be a table")
			}
			cfg.Global = parseGlobalConfig(m)
		case "mine":
			m, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("config: [mine] must be a table of named profiles")
			}
			for name, sub := range m {
				subMap, ok := sub.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("config: [mine.%s] must be a table", name)
				}
				profile, err := parseMineProfile(subMap)
				if err != nil {
					return nil, fmt.Errorf("config: [mine.%s]: %w", name, err)
				}
				cfg.Profile[name] = profile
			}
		}
	}

	if cfg.Global == nil {
		cfg.Global = &GlobalConfig{Confidence: 0.9, MemoryBudgetBytes: 8_000_000_000, RecordSizeBytes: 80}
	}

	return cfg, nil
}

func parseGlobalConfig(m map[string]any) *GlobalConfig {
	g := &GlobalConfig{Confidence: 0.9, MemoryBudgetBytes: 8_000_000_000, RecordSizeBytes: 80}
	if v, ok := asFloat(m["confidence"]); ok {
		g.Confidence = v
	}
	if v, ok := asInt(m["lowerBound"]); ok {
		g.LowerBound = int(v)
	}
	if v, ok := asInt(m["memoryBudgetBytes"]); ok {
		g.MemoryBudgetBytes = v
	}
	if v, ok := asInt(m["recordSizeBytes"]); ok {
		g.RecordSizeBytes = v
	}
	return g
}

func parseMineProfile(m map[string]any) (*MineProfile, error) {
	p := &MineProfile{Method: "hybrid"}
	if v, ok := m["corpusPath"].(string); ok {
		p.CorpusPath = v
	}
	if p.CorpusPath == "" {
		return nil, fmt.Errorf("corpusPath is required")
	}
	if v, ok := asInt(m["lMin"]); ok {
		p.LMin = int(v)
	}
	if v, ok := asInt(m["lMax"]); ok {
		p.LMax = int(v)
	}
	if p.LMin <= 0 || p.LMax < p.LMin {
		return nil, fmt.Errorf("lMin/lMax must satisfy 0 < lMin <= lMax")
	}
	if v, ok := m["method"].(string); ok && v != "" {
		p.Method = v
	}
	if v, ok := asInt(m["scalarThreshold"]); ok {
		p.ScalarThreshold = int(v)
	}
	if v, ok := asFloat(m["sampleRate"]); ok {
		p.SampleRate = v
	}
	return p, nil
}

// asInt and asFloat normalize BurntSushi/toml's raw decode types (int64,
// float64) the same way the teacher's parse* helpers do field by field.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// MaxQueueSize derives MAX_QUEUE_SIZE from the global memory budget and
// per-record size, per the spec's reference formula.
func (g *GlobalConfig) MaxQueueSize() int {
	if g.RecordSizeBytes <= 0 {
		return 0
	}
	return int(g.MemoryBudgetBytes / g.RecordSizeBytes)
}
