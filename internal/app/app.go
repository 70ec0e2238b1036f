// SPDX-License-Identifier: MIT

// Package app wires configuration, logging, corpus ingestion and the rank
// estimators into the lvrank command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/crawl"
	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/internal/logger"
	"github.com/katalvlaran/lvrank/iterate"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/reference"
	"github.com/katalvlaran/lvrank/report"
	"github.com/katalvlaran/lvrank/sampling"
)

// Name is the command name shown in usage.
const Name = "lvrank"

// Exit statuses.
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes one invocation: args excludes the program name. Rank tables
// go to stdout; usage and logs go to stderr. It returns the process exit
// status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.New()
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "optional config file (yaml, toml or json)")
	envFile := fs.String("env-file", ".env", "dotenv file exported before reading LVRANK_* variables")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <corpus-dir>\n\nFlags:\n%s", Name, fs.FlagUsages())
	}

	fallback := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()
	if err := cfg.BindFlags(fs); err != nil {
		fallback.Error().Err(err).Msg("flag setup failed")
		return ExitError
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return ExitError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return ExitError
	}
	dir := fs.Arg(0)

	if err := cfg.LoadDotEnv(*envFile); err != nil {
		fallback.Error().Err(err).Msg("configuration")
		return ExitError
	}
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fallback.Error().Err(err).Msg("configuration")
			return ExitError
		}
	}
	if err := cfg.Validate(); err != nil {
		fallback.Error().Err(err).Msg("invalid configuration")
		return ExitError
	}

	base, err := logger.New(cfg.LogLevel(), cfg.LogFormat(), stderr)
	if err != nil {
		fallback.Error().Err(err).Msg("logger setup failed")
		return ExitError
	}
	log := base.With().Str("run_id", uuid.NewString()).Logger()

	if err := rankCorpus(ctx, cfg, log, dir, stdout); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("ranking failed")
		return ExitError
	}

	return ExitOK
}

// rankCorpus crawls dir and prints one block per estimator.
func rankCorpus(ctx context.Context, cfg *config.Config, log zerolog.Logger, dir string, stdout io.Writer) error {
	c, err := crawl.Crawl(dir,
		crawl.WithExtension(cfg.Extension()),
		crawl.WithWorkers(cfg.Workers()),
		crawl.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info().Int("pages", c.Len()).Int("links", c.Stats().Links).Msg("corpus loaded")

	d := cfg.Damping()

	sampled, err := sample(ctx, cfg, log, c, d)
	if err != nil {
		return err
	}
	if err := report.Write(stdout, report.SamplingTitle(cfg.Samples()), sampled); err != nil {
		return err
	}

	res, err := iterate.Iterate(c, d,
		iterate.WithContext(ctx),
		iterate.WithThreshold(cfg.Threshold()),
		iterate.WithMaxIterations(cfg.MaxIterations()),
		iterate.WithOnIteration(func(iter int, delta float64) {
			log.Debug().Int("iteration", iter).Float64("delta", delta).Msg("iterate")
		}),
	)
	if err != nil {
		return err
	}
	log.Info().Int("iterations", res.Iterations).Float64("delta", res.Delta).Msg("iteration converged")
	logAgreement(log, "sampling", sampled, res.Ranks)
	if err := report.Write(stdout, report.IterationTitle, res.Ranks); err != nil {
		return err
	}

	if !cfg.Reference() {
		return nil
	}
	ref, err := reference.PageRank(c, d, reference.WithTolerance(cfg.ReferenceTolerance()))
	if errors.Is(err, reference.ErrUnsupportedDamping) {
		log.Warn().Float64("damping", d).Msg("reference estimator skipped: damping factor must be below 1")
		return nil
	}
	if err != nil {
		return err
	}
	logAgreement(log, "reference", ref, res.Ranks)

	return report.Write(stdout, report.ReferenceTitle, ref)
}

func sample(ctx context.Context, cfg *config.Config, log zerolog.Logger, c *corpus.Corpus, d float64) (rank.Table, error) {
	opts := []sampling.Option{sampling.WithContext(ctx)}
	if seed := cfg.Seed(); seed != 0 {
		opts = append(opts, sampling.WithSeed(seed))
	}
	if log.GetLevel() <= zerolog.TraceLevel {
		opts = append(opts, sampling.WithOnVisit(func(page string, step int) {
			log.Trace().Int("step", step).Str("page", page).Msg("visit")
		}))
	}

	t, err := sampling.Sample(c, d, cfg.Samples(), opts...)
	if err != nil {
		return nil, err
	}
	log.Info().Int("samples", cfg.Samples()).Uint64("seed", cfg.Seed()).Msg("sampling done")

	return t, nil
}

// logAgreement reports the largest per-page gap between an estimate and
// the iterative ranks.
func logAgreement(log zerolog.Logger, name string, t, iterated rank.Table) {
	log.Info().Str("estimator", name).Float64("max_abs_diff", t.MaxAbsDiff(iterated)).Msg("agreement with iteration")
}
