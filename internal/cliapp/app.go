// Package cliapp wires the seqminer command-line interface: mine,
// thresholds, summarize, compare, and browse subcommands. mine runs either
// from a TOML config profile or from flags directly; the other subcommands
// take flags only. Grounded on the teacher's cli.App: shared package-level
// flag vars, a handle*Command per subcommand (mine's dispatches between
// config mode and flags mode), and a validateConfigModeFlags guard restricting which flags may combine
// with --config.
package cliapp

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dnapatterns/patternminer/compare"
	"github.com/dnapatterns/patternminer/config"
	"github.com/dnapatterns/patternminer/corpus"
	"github.com/dnapatterns/patternminer/internal/browser"
	"github.com/dnapatterns/patternminer/pattern"
	"github.com/dnapatterns/patternminer/report"
	cli "github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML config file (mutually exclusive with the flags below)",
	}
	profileFlag = &cli.StringFlag{
		Name:  "profile",
		Usage: "Name of the [mine.<name>] profile to run (config mode only)",
	}

	corpusPathFlag = &cli.StringFlag{
		Name:  "corpusPath",
		Usage: "Path to a FASTA corpus file",
	}
	lMinFlag = &cli.IntFlag{
		Name:  "lMin",
		Usage: "Minimum pattern length to mine",
	}
	lMaxFlag = &cli.IntFlag{
		Name:  "lMax",
		Usage: "Maximum pattern length to mine",
	}
	methodFlag = &cli.StringFlag{
		Name:  "method",
		Usage: "Growth method: apriori, position, or hybrid",
		Value: "hybrid",
	}
	scalarThresholdFlag = &cli.IntFlag{
		Name:  "scalarThreshold",
		Usage: "Use one fixed minimum support at every length instead of the Poisson threshold",
	}
	confidenceFlag = &cli.Float64Flag{
		Name:  "confidence",
		Usage: "Confidence level for the Poisson significance threshold",
		Value: 0.9,
	}
	lowerBoundFlag = &cli.IntFlag{
		Name:  "lowerBound",
		Usage: "Stop raising pattern length once the computed threshold falls below this support",
	}
	sampleRateFlag = &cli.Float64Flag{
		Name:  "sampleRate",
		Usage: "Bernoulli sub-sample rate in (0,1]; omitted or 1 mines the full corpus",
		Value: 1,
	}

	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Path to write the JSON result to (default stdout)",
	}
	plotPathFlag = &cli.StringFlag{
		Name:  "plotPath",
		Usage: "Path to write a support-by-length chart HTML file (optional)",
	}
	compactFlag = &cli.BoolFlag{
		Name:  "compact",
		Usage: "Write compact JSON instead of pretty-printed",
	}

	aPatternsFlag = &cli.StringFlag{
		Name:  "a",
		Usage: "Path to the first JSON pattern-name array",
	}
	bPatternsFlag = &cli.StringFlag{
		Name:  "b",
		Usage: "Path to the second JSON pattern-name array",
	}

	resultFlag = &cli.StringFlag{
		Name:  "result",
		Usage: "Path to a JSON result file produced by 'mine --out'",
	}
)

// validateConfigModeFlags rejects any flag-mode flag set alongside
// --config, mirroring the teacher's same-named guard.
func validateConfigModeFlags(c *cli.Context, allowed []string) error {
	allow := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		allow[f] = true
	}
	flagsToCheck := []string{
		"profile", "corpusPath", "lMin", "lMax", "method", "scalarThreshold",
		"confidence", "lowerBound", "sampleRate", "plotPath",
	}
	for _, f := range flagsToCheck {
		if c.IsSet(f) && !allow[f] {
			return fmt.Errorf("when using --config, only %v flags are allowed", allowed)
		}
	}
	return nil
}

func resolveThreshold(nTotal int, p *config.MineProfile, g *config.GlobalConfig) (pattern.Threshold, error) {
	if p.ScalarThreshold > 0 {
		return pattern.ScalarThreshold(p.ScalarThreshold), nil
	}
	confidence := 0.9
	lwrBd := 0
	if g != nil {
		confidence = g.Confidence
		lwrBd = g.LowerBound
	}
	m, err := pattern.Thresholds(nTotal, p.LMin, lwrBd, confidence)
	if err != nil {
		return nil, fmt.Errorf("cliapp: computing thresholds: %w", err)
	}
	return pattern.LengthThreshold(m), nil
}

func providerFor(path string, sampleRate float64) pattern.SequenceProvider {
	var provider pattern.SequenceProvider = corpus.NewFastaProvider(path)
	if sampleRate > 0 && sampleRate < 1 {
		summary, err := report.NewSummary(context.Background(), provider)
		if err == nil && summary.NumSequences > 0 {
			rng := rand.New(rand.NewSource(1))
			ids := corpus.SampleIDs(summary.NumSequences, sampleRate, rng)
			provider = corpus.NewSampledProvider(provider, ids)
		}
	}
	return provider
}

func runMine(ctx context.Context, path string, lMin, lMax int, method pattern.Method, threshold pattern.Threshold, maxQueueSize int, sampleRate float64, plotPath, outPath string, compact bool) error {
	provider := providerFor(path, sampleRate)
	startedAt := time.Now()
	counter := &pattern.PassCounter{}

	var (
		results []pattern.Result
		err     error
	)
	if maxQueueSize > 0 {
		results, err = pattern.MineWithMaxQueueSize(ctx, provider, lMin, lMax, threshold, method, counter, maxQueueSize)
	} else {
		results, err = pattern.Mine(ctx, provider, lMin, lMax, threshold, method, counter)
	}
	if err != nil {
		return fmt.Errorf("cliapp: mine: %w", err)
	}

	out := report.NewJSONResult(method, lMin, lMax, results, counter, startedAt)
	var data []byte
	if compact {
		data, err = out.ToCompactJSON()
	} else {
		data, err = out.ToJSON()
	}
	if err != nil {
		return fmt.Errorf("cliapp: encoding result: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("cliapp: write %s: %w", outPath, err)
		}
	} else {
		fmt.Println(string(data))
	}

	if plotPath != "" {
		if err := report.PlotSupportCurve(results, plotPath); err != nil {
			return fmt.Errorf("cliapp: plot: %w", err)
		}
	}
	return nil
}

// handleMineCommand dispatches the mine subcommand between config mode
// and flags mode.
func handleMineCommand(c *cli.Context) error {
	if configPath := c.String("config"); configPath != "" {
		return handleMineConfigMode(c, configPath)
	}
	return handleMineFlagsMode(c)
}

func handleMineConfigMode(c *cli.Context, configPath string) error {
	if err := validateConfigModeFlags(c, []string{"profile", "out", "compact"}); err != nil {
		return err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("cliapp: %w", err)
	}

	name := c.String("profile")
	if name == "" {
		return fmt.Errorf("--profile is required in config mode")
	}
	p, ok := cfg.Profile[name]
	if !ok {
		return fmt.Errorf("no [mine.%s] profile in config", name)
	}

	summary, err := report.NewSummary(c.Context, corpus.NewFastaProvider(p.CorpusPath))
	if err != nil {
		return fmt.Errorf("cliapp: summarizing corpus: %w", err)
	}
	threshold, err := resolveThreshold(summary.TotalNucleotides, p, cfg.Global)
	if err != nil {
		return err
	}

	return runMine(c.Context, p.CorpusPath, p.LMin, p.LMax, pattern.Method(p.Method), threshold, cfg.Global.MaxQueueSize(), p.SampleRate, "", c.String("out"), c.Bool("compact"))
}

func handleMineFlagsMode(c *cli.Context) error {
	path := c.String("corpusPath")
	if path == "" || !c.IsSet("lMin") || !c.IsSet("lMax") {
		return fmt.Errorf("corpusPath, lMin, and lMax are required when not using --config")
	}
	lMin, lMax := c.Int("lMin"), c.Int("lMax")
	if lMin <= 0 || lMax < lMin {
		return fmt.Errorf("lMin/lMax must satisfy 0 < lMin <= lMax")
	}

	var threshold pattern.Threshold
	if c.IsSet("scalarThreshold") {
		threshold = pattern.ScalarThreshold(c.Int("scalarThreshold"))
	} else {
		summary, err := report.NewSummary(c.Context, corpus.NewFastaProvider(path))
		if err != nil {
			return fmt.Errorf("cliapp: summarizing corpus: %w", err)
		}
		m, err := pattern.Thresholds(summary.TotalNucleotides, lMin, c.Int("lowerBound"), c.Float64("confidence"))
		if err != nil {
			return fmt.Errorf("cliapp: computing thresholds: %w", err)
		}
		threshold = pattern.LengthThreshold(m)
	}

	return runMine(c.Context, path, lMin, lMax, pattern.Method(c.String("method")), threshold, 0, c.Float64("sampleRate"), c.String("plotPath"), c.String("out"), c.Bool("compact"))
}

// handleThresholdsCommand prints the {length -> support} table Thresholds
// computes for a corpus, without running a mining pass.
func handleThresholdsCommand(c *cli.Context) error {
	path := c.String("corpusPath")
	if path == "" || !c.IsSet("lMin") {
		return fmt.Errorf("corpusPath and lMin are required")
	}
	summary, err := report.NewSummary(c.Context, corpus.NewFastaProvider(path))
	if err != nil {
		return fmt.Errorf("cliapp: summarizing corpus: %w", err)
	}
	table, err := pattern.Thresholds(summary.TotalNucleotides, c.Int("lMin"), c.Int("lowerBound"), c.Float64("confidence"))
	if err != nil {
		return fmt.Errorf("cliapp: %w", err)
	}
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// handleSummarizeCommand prints a corpus's sequence-count/length/total
// statistics.
func handleSummarizeCommand(c *cli.Context) error {
	path := c.String("corpusPath")
	if path == "" {
		return fmt.Errorf("corpusPath is required")
	}
	summary, err := report.NewSummary(c.Context, corpus.NewFastaProvider(path))
	if err != nil {
		return fmt.Errorf("cliapp: %w", err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// handleCompareCommand prints the set-algebra comparison between two
// JSON pattern-name arrays.
func handleCompareCommand(c *cli.Context) error {
	aPath, bPath := c.String("a"), c.String("b")
	if aPath == "" || bPath == "" {
		return fmt.Errorf("both -a and -b are required")
	}
	a, err := compare.Load(aPath)
	if err != nil {
		return err
	}
	b, err := compare.Load(bPath)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(compare.CompareNames(a, b), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// handleBrowseCommand loads a JSON result file and launches the static
// results browser over it.
func handleBrowseCommand(c *cli.Context) error {
	path := c.String("result")
	if path == "" {
		return fmt.Errorf("--result is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cliapp: read %s: %w", path, err)
	}
	var result report.JSONResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("cliapp: parse %s: %w", path, err)
	}
	return browser.NewApp(&result).Run()
}

// App is the seqminer command-line application.
var App = &cli.App{
	Name:  "seqminer",
	Usage: "Mine statistically significant repeated nucleotide patterns from a FASTA corpus",
	Commands: []*cli.Command{
		{
			Name:  "mine",
			Usage: "Run Apriori, Position, or Hybrid mining over a corpus",
			Flags: []cli.Flag{
				configFlag, profileFlag,
				corpusPathFlag, lMinFlag, lMaxFlag, methodFlag,
				scalarThresholdFlag, confidenceFlag, lowerBoundFlag, sampleRateFlag,
				outFlag, plotPathFlag, compactFlag,
			},
			Action: handleMineCommand,
		},
		{
			Name:  "thresholds",
			Usage: "Print the Poisson significance threshold table for a corpus",
			Flags: []cli.Flag{corpusPathFlag, lMinFlag, confidenceFlag, lowerBoundFlag},
			Action: handleThresholdsCommand,
		},
		{
			Name:   "summarize",
			Usage:  "Print basic corpus statistics",
			Flags:  []cli.Flag{corpusPathFlag},
			Action: handleSummarizeCommand,
		},
		{
			Name:   "compare",
			Usage:  "Compare two mining runs' pattern sets by length",
			Flags:  []cli.Flag{aPatternsFlag, bPatternsFlag},
			Action: handleCompareCommand,
		},
		{
			Name:   "browse",
			Usage:  "Open a terminal browser over a mining run's result file",
			Flags:  []cli.Flag{resultFlag},
			Action: handleBrowseCommand,
		},
	},
}
