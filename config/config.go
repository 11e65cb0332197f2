// SPDX-License-Identifier: MIT

// Package config resolves the command-line tool's settings from flags,
// KNAPSACK_* environment variables and an optional YAML file, in that
// order of precedence (flag > env > file > default).
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/gwo"
	"github.com/katalvlaran/knapsack/logging"
)

// EnvPrefix prefixes every environment variable, e.g. KNAPSACK_WOLVES.
const EnvPrefix = "KNAPSACK"

// Algorithm keys accepted by --algorithms.
const (
	AlgHillClimb = "hc"
	AlgGWO       = "gwo"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the resolved settings of one invocation.
type Config struct {
	// Data is a .csv/.yaml dataset path; empty generates an instance.
	Data string
	Save string

	Kind  string
	Items int
	Ratio float64

	// Capacity and Iterations override the dataset's values when ≥ 0.
	Capacity   int
	Iterations int

	// Seed drives every random choice; 0 means time-seeded.
	Seed int64

	Algorithms []string
	Wolves     int
	Bound      float64
	Transfer   string

	Trials int

	ShowTrace   bool
	Chart       string
	MetricsFile string
	MetricsAddr string

	Log logging.Config
}

// Seeded reports whether runs are reproducible.
func (c Config) Seeded() bool { return c.Seed != 0 }

// Has reports whether algorithm key alg was requested.
func (c Config) Has(alg string) bool {
	for _, a := range c.Algorithms {
		if a == alg {
			return true
		}
	}
	return false
}

// NewFlagSet declares every flag with its default.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("config", "", "YAML file with default settings")
	fs.String("data", "", "dataset file (.csv, .yaml); empty generates one")
	fs.String("save", "", "write the instance to this .csv/.yaml file")

	fs.String("kind", builder.KindUncorrelated.String(), "generated instance family (uncorrelated, weak, strong)")
	fs.Int("items", 100, "generated instance size")
	fs.Float64("ratio", builder.DefaultCapacityRatio, "generated capacity as a share of total weight")

	fs.Int("capacity", -1, "knapsack capacity; negative keeps the dataset's")
	fs.Int("iterations", -1, "iteration budget; negative keeps the dataset's")
	fs.Int64("seed", 0, "random seed; 0 seeds from the clock")

	fs.StringSlice("algorithms", []string{AlgHillClimb, AlgGWO}, "algorithms to run (hc, gwo)")
	fs.Int("wolves", gwo.DefaultWolves, "grey wolf pack size")
	fs.Float64("bound", gwo.DefaultBound, "grey wolf initial position bound")
	fs.String("transfer", gwo.Sigmoid.String(), "grey wolf transfer (sigmoid, steep-repair)")

	fs.Int("trials", 0, "seeded trials per algorithm for statistics; 0 disables")

	fs.Bool("trace", false, "print the per-iteration trace")
	fs.String("chart", "", "write a convergence chart (.png, .svg)")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile")
	fs.String("metrics-addr", "", "serve /metrics on this address until interrupted")

	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log encoding (console, json)")
	fs.String("log-output", "stderr", "log destination (stdout, stderr, file path)")

	return fs
}

// Load parses args and resolves the configuration. A --help request
// returns pflag.ErrHelp after printing usage to out.
func Load(args []string, out io.Writer) (Config, error) {
	fs := NewFlagSet("knapsack")
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := Config{
		Data:        v.GetString("data"),
		Save:        v.GetString("save"),
		Kind:        v.GetString("kind"),
		Items:       v.GetInt("items"),
		Ratio:       v.GetFloat64("ratio"),
		Capacity:    v.GetInt("capacity"),
		Iterations:  v.GetInt("iterations"),
		Seed:        v.GetInt64("seed"),
		Algorithms:  normalize(v.GetStringSlice("algorithms")),
		Wolves:      v.GetInt("wolves"),
		Bound:       v.GetFloat64("bound"),
		Transfer:    v.GetString("transfer"),
		Trials:      v.GetInt("trials"),
		ShowTrace:   v.GetBool("trace"),
		Chart:       v.GetString("chart"),
		MetricsFile: v.GetString("metrics-file"),
		MetricsAddr: v.GetString("metrics-addr"),
		Log: logging.Config{
			Level:  v.GetString("log-level"),
			Format: v.GetString("log-format"),
			Output: v.GetString("log-output"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that flags cannot constrain. Engine parameters
// such as wolves and bound are validated again by the engines themselves.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidConfig)
	}
	for _, a := range c.Algorithms {
		if a != AlgHillClimb && a != AlgGWO {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, a)
		}
	}
	if c.Data == "" {
		if c.Items < builder.MinItems {
			return fmt.Errorf("%w: items=%d", ErrInvalidConfig, c.Items)
		}
		if _, err := builder.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := gwo.ParseTransfer(c.Transfer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Trials < 0 {
		return fmt.Errorf("%w: trials=%d", ErrInvalidConfig, c.Trials)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// normalize lowercases, trims and de-duplicates algorithm keys.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, entry := range keys {
		// Environment values arrive as one "hc,gwo" string.
		for _, k := range strings.Split(entry, ",") {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			dup := false
			for _, seen := range out {
				dup = dup || seen == k
			}
			if !dup {
				out = append(out, k)
			}
		}
	}
	return out
}
