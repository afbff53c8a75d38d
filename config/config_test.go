package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dnapatterns/patternminer/config"
)

func TestLoadConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqminer.toml")
	doc := `
[global]
confidence = 0.95
lowerBound = 50
memoryBudgetBytes = 1600
recordSizeBytes = 16

[mine.sample]
corpusPath = "testdata/corpus.fasta"
lMin = 1
lMax = 6
method = "hybrid"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Global.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", cfg.Global.Confidence)
	}
	if cfg.Global.LowerBound != 50 {
		t.Errorf("LowerBound = %v, want 50", cfg.Global.LowerBound)
	}
	if got, want := cfg.Global.MaxQueueSize(), 100; got != want {
		t.Errorf("MaxQueueSize() = %d, want %d", got, want)
	}

	profile, ok := cfg.Profile["sample"]
	if !ok {
		t.Fatal("missing [mine.sample] profile")
	}
	if profile.LMin != 1 || profile.LMax != 6 || profile.Method != "hybrid" {
		t.Errorf("profile = %+v, want LMin=1 LMax=6 Method=hybrid", profile)
	}
}

func TestLoadConfigDefaultsWithoutGlobal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqminer.toml")
	doc := `
[mine.run1]
corpusPath = "x.fasta"
lMin = 2
lMax = 2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Global.Confidence != 0.9 {
		t.Errorf("default Confidence = %v, want 0.9", cfg.Global.Confidence)
	}
	if cfg.Profile["run1"].Method != "hybrid" {
		t.Errorf("default Method = %q, want hybrid", cfg.Profile["run1"].Method)
	}
}

func TestLoadConfigRejectsMissingCorpusPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqminer.toml")
	doc := `
[mine.bad]
lMin = 1
lMax = 2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := config.LoadConfig(path); err == nil {
		t.Fatal("expected error for missing corpusPath")
	}
}
