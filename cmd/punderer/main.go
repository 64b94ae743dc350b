package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/punderer/pkg/config"
	"github.com/japaniel/punderer/pkg/corpus"
	"github.com/japaniel/punderer/pkg/logging"
	"github.com/japaniel/punderer/pkg/present"
	"github.com/japaniel/punderer/pkg/pun"
	"github.com/japaniel/punderer/pkg/rhyme"
)

// usageError reports a missing or malformed command-line argument.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// newLogger is swapped in tests to observe what a run logs.
var newLogger = logging.New

type options struct {
	configPath string
	phrasesDir string
	phraseDB   string
	provider   string
	filter     string
	seed       int64
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "punderer <word> [count]",
		Short: "Generate puns by swapping rhymes of a word into well-known phrases",
		Long: `punderer looks up words that rhyme with <word>, then replaces each
rhyme wherever it appears as a whole word in the phrase corpus.

A random selection of [count] puns (default 10) is printed as a table.

Example:
  punderer flee
  punderer cat 5 --phrases ./titles`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) < 1:
				return &usageError{"missing required argument <word>"}
			case len(args) > 2:
				return &usageError{fmt.Sprintf("expected at most 2 arguments, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}

			count := cfg.Output.Count
			if len(args) > 1 {
				n, err := strconv.ParseUint(args[1], 10, 0)
				if err != nil {
					return &usageError{fmt.Sprintf("invalid count %q: %v", args[1], err)}
				}
				// Counts beyond the platform int mean "all of them".
				if n > math.MaxInt {
					n = math.MaxInt
				}
				count = int(n)
			}

			logger, err := newLogger(cfg.Logging.Level, opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(uint64(opts.seed), 0))
			}

			err = run(cmd.Context(), runParams{
				word:   args[0],
				count:  count,
				cfg:    cfg,
				rng:    rng,
				logger: logger,
				out:    stdout,
			})
			if err != nil {
				logger.Error("run failed", zap.Error(err))
			}
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	f.StringVar(&opts.phrasesDir, "phrases", "", "directory of .txt phrase files (default \"phrases\")")
	f.StringVar(&opts.phraseDB, "phrase-db", "", "optional SQLite phrase database")
	f.StringVar(&opts.provider, "provider", "", "rhyme service: datamuse or rhymebrain")
	f.StringVar(&opts.filter, "filter", "", "rhyme filter: single or best")
	f.Int64Var(&opts.seed, "seed", 0, "seed for reproducible sampling")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// buildConfig layers flags over the config file, env and defaults.
func buildConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("phrases") {
		cfg.Corpus.Dir = opts.phrasesDir
	}
	if flags.Changed("phrase-db") {
		cfg.Corpus.Database = opts.phraseDB
	}
	if flags.Changed("provider") {
		cfg.Rhyme.Provider = opts.provider
	}
	if flags.Changed("filter") {
		cfg.Rhyme.Filter = opts.filter
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

type runParams struct {
	word   string
	count  int
	cfg    *config.Config
	rng    *rand.Rand
	logger *zap.Logger
	out    io.Writer
}

// run is the pipeline: fetch, filter, load, generate, sample, print.
// Any failure aborts the run.
func run(ctx context.Context, p runParams) error {
	log := p.logger.With(zap.String("word", p.word))

	client := rhyme.NewClient(p.cfg.Endpoint(), p.cfg.GetRhymeTimeout(), p.logger)
	raw, err := client.Rhymes(ctx, p.word)
	if err != nil {
		return err
	}
	rhymes := p.cfg.Policy().Apply(raw)
	log.Info("filtered rhymes",
		zap.Int("fetched", len(raw)),
		zap.Int("kept", len(rhymes)),
		zap.String("filter", string(p.cfg.Policy())))

	var puns []pun.Pun
	if len(rhymes) > 0 {
		phrases, err := corpus.Load(ctx, p.logger, corpusSources(p.cfg)...)
		if err != nil {
			return err
		}
		puns = pun.Generate(phrases, rhymes, p.word)
		log.Info("generated puns",
			zap.Int("phrases", len(phrases)),
			zap.Int("puns", len(puns)))
	} else {
		log.Warn("no usable rhymes; nothing to generate")
	}

	return present.RenderTable(p.out, present.Sample(puns, p.count, p.rng))
}

func corpusSources(cfg *config.Config) []corpus.Source {
	var sources []corpus.Source
	if cfg.Corpus.Dir != "" {
		sources = append(sources, corpus.DirSource{
			Dir:     cfg.Corpus.Dir,
			Ext:     cfg.Corpus.Ext,
			Workers: cfg.Corpus.Workers,
		})
	}
	if cfg.Corpus.Database != "" {
		sources = append(sources, corpus.SQLiteSource{Path: cfg.Corpus.Database})
	}
	return sources
}

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
		}
		cancel()
		os.Exit(1)
	}
}
