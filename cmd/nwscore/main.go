// Command nwscore prints the global alignment score of every pair of
// sequences found in one or more FASTA files.
//
// Usage:
//
//	nwscore [flags] FILE...    ("-" reads standard input)
//
// Exit status is 0 on success, 1 on a runtime failure and 2 on a usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/pairwise"
	"github.com/katalvlaran/seqalign/sequence"
	"github.com/katalvlaran/seqalign/table"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("nwscore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON config file; explicit flags override it")
	match := fs.Int64("match", cfg.Match, "score for identical symbols")
	mismatch := fs.Int64("mismatch", cfg.Mismatch, "score for differing symbols")
	gap := fs.Int64("gap", cfg.Gap, "score for a symbol aligned against a gap")
	strategy := fs.String("strategy", cfg.Strategy, "table fill strategy: sweep, descent or wavefront")
	workers := fs.Int("workers", cfg.Workers, "pairs scored concurrently (0 = GOMAXPROCS)")
	maxCells := fs.Int("max-cells", cfg.MaxCells, fmt.Sprintf("largest score table per pair in cells, (len1+1)*(len2+1); 0 = default %d", table.DefaultMaxCells))
	skipFailed := fs.Bool("skip-failed", cfg.SkipFailed, "skip pairs whose table cannot be allocated instead of aborting")
	timeout := fs.Duration("timeout", cfg.Timeout, "abandon the run after this long (0 = no limit)")
	logLevel := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: nwscore [flags] FILE...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintln(stderr, "nwscore:", err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			cfg.Match = *match
		case "mismatch":
			cfg.Mismatch = *mismatch
		case "gap":
			cfg.Gap = *gap
		case "strategy":
			cfg.Strategy = *strategy
		case "workers":
			cfg.Workers = *workers
		case "max-cells":
			cfg.MaxCells = *maxCells
		case "skip-failed":
			cfg.SkipFailed = *skipFailed
		case "timeout":
			cfg.Timeout = *timeout
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Timeout < 0 {
		fmt.Fprintf(stderr, "nwscore: timeout must be >= 0, got %v\n", cfg.Timeout)
		return exitUsage
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "nwscore"})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "nwscore: unknown log level %q\n", cfg.LogLevel)
		return exitUsage
	}
	logger.SetLevel(level)

	st, err := nw.ParseStrategy(cfg.Strategy)
	if err != nil {
		logger.Error("bad flag", "err", err)
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	store, err := readInputs(fs.Args(), stdin)
	if err != nil {
		logger.Error("reading sequences", "err", err)
		return exitFail
	}
	logger.Debug("sequences loaded", "count", store.Len(), "pairs", len(pairwise.Pairs(store.Len())))

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := pairwise.DefaultOptions()
	opts.Workers = cfg.Workers
	opts.SkipFailed = cfg.SkipFailed
	opts.Align.Strategy = st
	opts.Align.MaxCells = cfg.MaxCells
	opts.Logger = logger

	scoring := nw.Scoring{Match: cfg.Match, Mismatch: cfg.Mismatch, Gap: cfg.Gap}
	rep, err := pairwise.Run(ctx, store.All(), scoring, opts)
	if err != nil {
		logger.Error("alignment failed", "err", err)
		return exitFail
	}
	for _, r := range rep.Results {
		fmt.Fprintf(stdout, "Score for alignment of sequence %s to sequence %s is %d\n", r.Name1, r.Name2, r.Score)
	}
	if len(rep.Skipped) > 0 {
		logger.Warn("some pairs were skipped", "count", len(rep.Skipped))
	}

	return exitOK
}

// readInputs merges every FASTA input into one store; names must be unique
// across files.
func readInputs(paths []string, stdin io.Reader) (*sequence.Store, error) {
	merged := sequence.NewStore()
	for _, p := range paths {
		st, err := readOne(p, stdin)
		if err != nil {
			return nil, err
		}
		for _, s := range st.All() {
			if err = merged.Add(s); err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
		}
	}

	return merged, nil
}

func readOne(path string, stdin io.Reader) (*sequence.Store, error) {
	if path == "-" {
		return sequence.ReadFASTA(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := sequence.ReadFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return st, nil
}
