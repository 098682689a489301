// Package config loads run settings from YAML and maps them onto the
// options of every stage.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/portal"
	"github.com/katalvlaran/keymaze/propagate"
	"github.com/katalvlaran/keymaze/search"
	"github.com/katalvlaran/keymaze/solver"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Variants accepted by Config.Variant.
const (
	VariantKeys    = "keys"
	VariantPortals = "portals"
)

// Config is the full run configuration, read as YAML over Default().
type Config struct {
	Variant   string          `yaml:"variant"`
	Timeout   time.Duration   `yaml:"timeout"`
	Parse     ParseConfig     `yaml:"parse"`
	Propagate PropagateConfig `yaml:"propagate"`
	Search    SearchConfig    `yaml:"search"`
	Portal    PortalConfig    `yaml:"portal"`
	Log       LogConfig       `yaml:"log"`
}

// ParseConfig maps onto grid parse options.
type ParseConfig struct {
	OrphanLocks bool `yaml:"orphan_locks"`
	Pad         bool `yaml:"pad"`
}

// PropagateConfig selects the sweep mode and its limits.
type PropagateConfig struct {
	Mode      string `yaml:"mode"`
	Workers   int    `yaml:"workers"`
	MaxSweeps int    `yaml:"max_sweeps"`
}

// SearchConfig tunes the key-order search.
type SearchConfig struct {
	Strategy      string `yaml:"strategy"`
	RepeatCeiling int    `yaml:"repeat_ceiling"`
	StopAtFirst   bool   `yaml:"stop_at_first"`
	Exhaustive    bool   `yaml:"exhaustive"`
	LowerBound    bool   `yaml:"lower_bound"`
	QueueCapacity int    `yaml:"queue_capacity"`
	MaxSteps      int    `yaml:"max_steps"`
}

// PortalConfig tunes the portal route search.
type PortalConfig struct {
	Recursive bool `yaml:"recursive"`
	MaxDepth  int  `yaml:"max_depth"`
	MaxSteps  int  `yaml:"max_steps"`
}

// LogConfig sets the logrus level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default mirrors the packages' own defaults.
func Default() Config {
	s := search.DefaultOptions()

	return Config{
		Variant:   VariantKeys,
		Propagate: PropagateConfig{Mode: propagate.Sequential.String()},
		Search: SearchConfig{
			Strategy:      s.Strategy.String(),
			RepeatCeiling: s.RepeatCeiling,
			Exhaustive:    s.Exhaustive,
			LowerBound:    s.LowerBound,
			QueueCapacity: s.QueueCapacity,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantKeys, VariantPortals:
	default:
		return fmt.Errorf("%w: variant %q", ErrInvalid, c.Variant)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %v", ErrInvalid, c.Timeout)
	}
	if _, err := c.mode(); err != nil {
		return err
	}
	if _, err := c.strategy(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	checks := []struct {
		name string
		v    int
		min  int
	}{
		{"propagate.workers", c.Propagate.Workers, 0},
		{"propagate.max_sweeps", c.Propagate.MaxSweeps, 0},
		{"search.repeat_ceiling", c.Search.RepeatCeiling, 0},
		{"search.queue_capacity", c.Search.QueueCapacity, 1},
		{"search.max_steps", c.Search.MaxSteps, 0},
		{"portal.max_depth", c.Portal.MaxDepth, 0},
		{"portal.max_steps", c.Portal.MaxSteps, 0},
	}
	for _, ch := range checks {
		if ch.v < ch.min {
			return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalid, ch.name, ch.min, ch.v)
		}
	}

	return nil
}

func (c Config) mode() (propagate.Mode, error) {
	switch c.Propagate.Mode {
	case propagate.Sequential.String():
		return propagate.Sequential, nil
	case propagate.Parallel.String():
		return propagate.Parallel, nil
	}

	return 0, fmt.Errorf("%w: propagate.mode %q", ErrInvalid, c.Propagate.Mode)
}

func (c Config) strategy() (search.Strategy, error) {
	switch c.Search.Strategy {
	case search.DepthFirst.String():
		return search.DepthFirst, nil
	case search.BestFirst.String():
		return search.BestFirst, nil
	}

	return 0, fmt.Errorf("%w: search.strategy %q", ErrInvalid, c.Search.Strategy)
}

// SolverOptions translates c into per-stage options. c must be valid; the
// logger is left for the caller to attach.
func (c Config) SolverOptions() solver.Options {
	var o solver.Options

	if c.Parse.OrphanLocks {
		o.Parse = append(o.Parse, grid.WithOrphanLocks())
	}
	if c.Parse.Pad {
		o.Parse = append(o.Parse, grid.WithPadding())
	}

	mode, _ := c.mode()
	o.Propagate = append(o.Propagate,
		propagate.WithMode(mode),
		propagate.WithMaxSweeps(c.Propagate.MaxSweeps),
	)
	if c.Propagate.Workers > 0 {
		o.Propagate = append(o.Propagate, propagate.WithWorkers(c.Propagate.Workers))
	}

	strategy, _ := c.strategy()
	o.Search = append(o.Search,
		search.WithStrategy(strategy),
		search.WithRepeatCeiling(c.Search.RepeatCeiling),
		search.WithExhaustive(c.Search.Exhaustive),
		search.WithLowerBound(c.Search.LowerBound),
		search.WithQueueCapacity(c.Search.QueueCapacity),
		search.WithMaxSteps(c.Search.MaxSteps),
	)
	if c.Search.StopAtFirst {
		o.Search = append(o.Search, search.WithStopAtFirst())
	}

	if c.Portal.Recursive {
		o.Portal = append(o.Portal, portal.WithRecursive())
	}
	o.Portal = append(o.Portal,
		portal.WithMaxDepth(c.Portal.MaxDepth),
		portal.WithMaxSteps(c.Portal.MaxSteps),
	)

	return o
}
