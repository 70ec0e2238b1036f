// SPDX-License-Identifier: MIT

// Package config gathers the run parameters of lvrank from defaults, an
// optional config file, a .env file, LVRANK_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/crawl"
	"github.com/katalvlaran/lvrank/iterate"
	"github.com/katalvlaran/lvrank/reference"
	"github.com/katalvlaran/lvrank/sampling"
	"github.com/katalvlaran/lvrank/transition"
)

// EnvPrefix prefixes every environment variable, e.g. LVRANK_RANK_DAMPING.
const EnvPrefix = "LVRANK"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Keys.
const (
	KeyDamping            = "rank.damping"
	KeySamples            = "rank.samples"
	KeyThreshold          = "rank.threshold"
	KeyMaxIterations      = "rank.max_iterations"
	KeySeed               = "rank.seed"
	KeyReference          = "rank.reference"
	KeyReferenceTolerance = "rank.reference_tolerance"
	KeyExtension          = "crawl.extension"
	KeyWorkers            = "crawl.workers"
	KeyLogLevel           = "logging.level"
	KeyLogFormat          = "logging.format"
)

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration holding the defaults, with environment lookup
// enabled.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyDamping, transition.DefaultDamping)
	v.SetDefault(KeySamples, sampling.DefaultSamples)
	v.SetDefault(KeyThreshold, iterate.DefaultThreshold)
	v.SetDefault(KeyMaxIterations, iterate.DefaultMaxIterations)
	v.SetDefault(KeySeed, uint64(0))
	v.SetDefault(KeyReference, false)
	v.SetDefault(KeyReferenceTolerance, reference.DefaultTolerance)

	v.SetDefault(KeyExtension, crawl.DefaultExtension)
	v.SetDefault(KeyWorkers, runtime.NumCPU())

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// BindFlags registers one flag per key on fs and binds it, so a flag given
// on the command line overrides every other source.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.Float64(flagName(KeyDamping), transition.DefaultDamping, "damping factor d in [0,1]")
	fs.Int(flagName(KeySamples), sampling.DefaultSamples, "random-surfer walk length")
	fs.Float64(flagName(KeyThreshold), iterate.DefaultThreshold, "iteration convergence threshold (max per-page change)")
	fs.Int(flagName(KeyMaxIterations), iterate.DefaultMaxIterations, "iteration cap")
	fs.Uint64(flagName(KeySeed), 0, "sampling seed, 0 for a random one")
	fs.Bool(flagName(KeyReference), false, "also rank with gonum's network.PageRank")
	fs.Float64(flagName(KeyReferenceTolerance), reference.DefaultTolerance, "gonum convergence tolerance")
	fs.String(flagName(KeyExtension), crawl.DefaultExtension, "document file extension")
	fs.Int(flagName(KeyWorkers), runtime.NumCPU(), "documents parsed concurrently")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console or json)")

	binds := map[string]string{
		KeyDamping:            flagName(KeyDamping),
		KeySamples:            flagName(KeySamples),
		KeyThreshold:          flagName(KeyThreshold),
		KeyMaxIterations:      flagName(KeyMaxIterations),
		KeySeed:               flagName(KeySeed),
		KeyReference:          flagName(KeyReference),
		KeyReferenceTolerance: flagName(KeyReferenceTolerance),
		KeyExtension:          flagName(KeyExtension),
		KeyWorkers:            flagName(KeyWorkers),
		KeyLogLevel:           "log-level",
		KeyLogFormat:          "log-format",
	}
	for key, name := range binds {
		if err := c.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// flagName turns "rank.max_iterations" into "max-iterations".
func flagName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}

	return strings.ReplaceAll(key, "_", "-")
}

// LoadDotEnv exports the variables of the given .env files into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func (c *Config) LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	return nil
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Damping returns the damping factor d.
func (c *Config) Damping() float64 { return c.v.GetFloat64(KeyDamping) }

// Samples returns the random-surfer walk length.
func (c *Config) Samples() int { return c.v.GetInt(KeySamples) }

// Threshold returns the iterative estimator's convergence threshold.
func (c *Config) Threshold() float64 { return c.v.GetFloat64(KeyThreshold) }

// MaxIterations returns the iterative estimator's iteration cap.
func (c *Config) MaxIterations() int { return c.v.GetInt(KeyMaxIterations) }

// Seed returns the sampling seed; 0 means a fresh random one per run.
func (c *Config) Seed() uint64 { return c.v.GetUint64(KeySeed) }

// Reference reports whether the gonum estimator should run too.
func (c *Config) Reference() bool { return c.v.GetBool(KeyReference) }

// ReferenceTolerance returns gonum's convergence tolerance.
func (c *Config) ReferenceTolerance() float64 { return c.v.GetFloat64(KeyReferenceTolerance) }

// Extension returns the file suffix of corpus documents.
func (c *Config) Extension() string { return c.v.GetString(KeyExtension) }

// Workers returns how many documents are parsed at once.
func (c *Config) Workers() int { return c.v.GetInt(KeyWorkers) }

// LogLevel returns the zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// LogFormat returns "console" or "json".
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }

// Validate reports every out-of-range value at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, key string, val any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidConfig, key, val))
		}
	}

	d := c.Damping()
	check(transition.ValidateDamping(d) == nil, KeyDamping, d)
	check(c.Samples() >= 1, KeySamples, c.Samples())
	check(positiveFinite(c.Threshold()), KeyThreshold, c.Threshold())
	check(c.MaxIterations() >= 1, KeyMaxIterations, c.MaxIterations())
	check(positiveFinite(c.ReferenceTolerance()), KeyReferenceTolerance, c.ReferenceTolerance())
	check(c.Extension() != "", KeyExtension, c.Extension())
	check(c.Workers() >= 1, KeyWorkers, c.Workers())
	_, err := zerolog.ParseLevel(c.LogLevel())
	check(err == nil && c.LogLevel() != "", KeyLogLevel, c.LogLevel())
	f := c.LogFormat()
	check(f == "console" || f == "json", KeyLogFormat, f)

	return errors.Join(errs...)
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
