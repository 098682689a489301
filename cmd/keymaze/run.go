package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/config"
	"github.com/katalvlaran/keymaze/portal"
	"github.com/katalvlaran/keymaze/propagate"
	"github.com/katalvlaran/keymaze/search"
	"github.com/katalvlaran/keymaze/solver"
)

const (
	exitOK = iota
	exitError
	exitUsage
	exitNoSolution
	exitBudget
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keymaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "YAML config file (optional)")
		variant   = fs.String("variant", "", "maze variant: keys or portals (overrides config)")
		strategy  = fs.String("strategy", "", "key search: depth-first or best-first (overrides config)")
		recursive = fs.Bool("recursive", false, "portal maze: nest levels")
		parallel  = fs.Bool("parallel", false, "propagate with parallel sweeps")
		level     = fs.String("log-level", "", "log level (overrides config)")
		format    = fs.String("log-format", "", "log format: text or json (overrides config)")
		timeout   = fs.Duration("timeout", 0, "stop the search after this long (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "at most one maze file")
		return exitUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "load config:", err)
		return exitError
	}
	override(&cfg.Variant, *variant)
	override(&cfg.Search.Strategy, *strategy)
	override(&cfg.Log.Level, *level)
	override(&cfg.Log.Format, *format)
	if *recursive {
		cfg.Portal.Recursive = true
	}
	if *parallel {
		cfg.Propagate.Mode = "parallel"
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	entry := newLogger(cfg.Log, stderr).WithField("run", uuid.NewString())

	in, name, err := open(fs.Arg(0), stdin)
	if err != nil {
		entry.WithError(err).Error("open maze")
		return exitError
	}
	defer in.Close()
	entry = entry.WithField("maze", name)

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	opts := cfg.SolverOptions()
	opts.Log = entry
	var rep solver.Report
	if cfg.Variant == config.VariantPortals {
		rep, err = solver.SolvePortals(ctx, in, opts)
	} else {
		rep, err = solver.SolveKeys(ctx, in, opts)
	}
	for _, w := range rep.Warnings {
		fmt.Fprintln(stderr, "warning:", w)
	}

	switch code := classify(err, rep); {
	case code == exitOK && err != nil:
		entry.WithError(err).Warn("stopped early; best order so far follows")
	case code == exitBudget:
		entry.WithError(err).Error("stopped before any solution was found")
		return code
	case code == exitNoSolution:
		entry.WithError(err).Error("no solution")
		return code
	case code != exitOK:
		entry.WithError(err).Error("solve failed")
		return code
	}

	fmt.Fprintln(stdout, rep.Distance)
	fmt.Fprintln(stdout, strings.Join(rep.Path, " "))
	if !rep.Exact {
		fmt.Fprintln(stdout, "(not proven minimal)")
	}

	return exitOK
}

// classify maps a solve error to an exit code. A budget or deadline stop in
// any stage is exitBudget, unless the search already holds an order to print.
func classify(err error, rep solver.Report) int {
	switch {
	case err == nil:
		return exitOK
	case stopped(err) && len(rep.Path) > 0:
		return exitOK
	case stopped(err):
		return exitBudget
	case errors.Is(err, search.ErrNoSolution), errors.Is(err, portal.ErrNoRoute):
		return exitNoSolution
	default:
		return exitError
	}
}

func stopped(err error) bool {
	return errors.Is(err, search.ErrBudgetExceeded) ||
		errors.Is(err, portal.ErrBudgetExceeded) ||
		errors.Is(err, propagate.ErrCanceled)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func newLogger(c config.LogConfig, out io.Writer) *log.Entry {
	l := log.New()
	l.SetOutput(out)
	if c.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	lvl, _ := log.ParseLevel(c.Level)
	l.SetLevel(lvl)

	return log.NewEntry(l)
}

// open returns the maze source: stdin for "" or "-", otherwise the file,
// decompressed when its name ends in .zst.
func open(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, path, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, path, err
	}

	return &zstdFile{Decoder: dec, f: f}, path, nil
}

// zstdFile closes both the decoder and the file underneath.
type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}
