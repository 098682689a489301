package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/keymaze/grid"
)

// Sentinel errors for the order search.
var (
	// ErrNilTable is returned when Solve receives a nil table.
	ErrNilTable = errors.New("search: table is nil")
	// ErrOption is returned when an invalid Option is supplied.
	ErrOption = errors.New("search: invalid option supplied")
	// ErrNoSolution is the parent of every "no complete key set" outcome.
	ErrNoSolution = errors.New("search: no solution")
	// ErrUnsolvable means no lock-respecting path collects every key.
	ErrUnsolvable = fmt.Errorf("%w: keys cannot all be collected", ErrNoSolution)
	// ErrExhausted means the heuristic stages or a trimmed queue found nothing;
	// an unrestricted search might still succeed.
	ErrExhausted = fmt.Errorf("%w: search limits reached", ErrNoSolution)
	// ErrBudgetExceeded is returned, together with the best result so far,
	// when MaxSteps or the context stops the search.
	ErrBudgetExceeded = errors.New("search: step budget or deadline exceeded")
)

// Strategy selects the search algorithm.
type Strategy uint8

const (
	// DepthFirst is branch-and-bound with an escalating repeat budget,
	// followed by an exhaustive pass.
	DepthFirst Strategy = iota
	// BestFirst expands the most promising partial path first from a
	// bounded priority queue.
	BestFirst
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth-first"
	case BestFirst:
		return "best-first"
	}

	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// StageReport describes one finished depth-first stage.
type StageReport struct {
	// Budget is the repeat budget of a heuristic stage, -1 for the exhaustive pass.
	Budget int
	// Best is the incumbent distance after the stage, -1 if none yet.
	Best int
	// Expanded counts the states expanded during the stage.
	Expanded int
}

// Exhaustive reports whether this was the final unrestricted pass.
func (r StageReport) Exhaustive() bool { return r.Budget < 0 }

// Options configures Solve.
// Invalid options are recorded and surfaced as ErrOption.
type Options struct {
	// Ctx is polled every few thousand steps.
	Ctx context.Context

	// Strategy selects DepthFirst (default) or BestFirst.
	Strategy Strategy

	// RepeatCeiling is the highest repeat budget tried by the heuristic stages.
	RepeatCeiling int

	// StopAtFirst ends the search after the first stage that completes the
	// key set, skipping later stages and the exhaustive pass.
	StopAtFirst bool

	// Exhaustive runs a final pass with only provably safe pruning, which
	// makes the result exact.
	Exhaustive bool

	// LowerBound enables the closure-based admissible bound.
	LowerBound bool

	// QueueCapacity caps the BestFirst queue before it is trimmed.
	QueueCapacity int

	// MaxSteps bounds expansions across all stages; 0 means unlimited.
	MaxSteps int

	// OnIncumbent is called with every strictly better complete solution.
	OnIncumbent func(distance int, path []grid.LandmarkID)

	// OnTrim is called when the BestFirst queue is trimmed.
	OnTrim func(before, after int)

	// OnStage is called after every DepthFirst stage.
	OnStage func(StageReport)

	err error
}

// DefaultOptions returns depth-first search with repeat budgets 0..3, the
// exhaustive pass and the lower bound on, a 65536-entry queue for BestFirst,
// no step limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Strategy:      DepthFirst,
		RepeatCeiling: 3,
		Exhaustive:    true,
		LowerBound:    true,
		QueueCapacity: 1 << 16,
		OnIncumbent:   func(int, []grid.LandmarkID) {},
		OnTrim:        func(int, int) {},
		OnStage:       func(StageReport) {},
	}
}

// Option configures Options.
type Option func(*Options)

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects DepthFirst or BestFirst.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != DepthFirst && s != BestFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOption, s)
			return
		}
		o.Strategy = s
	}
}

// WithRepeatCeiling sets the highest repeat budget of the heuristic stages.
func WithRepeatCeiling(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: repeat ceiling cannot be negative (%d)", ErrOption, n)
			return
		}
		o.RepeatCeiling = n
	}
}

// WithStopAtFirst stops after the first stage that finds any solution.
func WithStopAtFirst() Option {
	return func(o *Options) { o.StopAtFirst = true }
}

// WithExhaustive toggles the final exact pass.
func WithExhaustive(on bool) Option {
	return func(o *Options) { o.Exhaustive = on }
}

// WithLowerBound toggles the closure-based lower bound.
func WithLowerBound(on bool) Option {
	return func(o *Options) { o.LowerBound = on }
}

// WithQueueCapacity caps the BestFirst queue.
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: queue capacity must be positive (%d)", ErrOption, n)
			return
		}
		o.QueueCapacity = n
	}
}

// WithMaxSteps bounds the number of expansions; 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOption, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnIncumbent registers a "new best distance found" hook. The path slice
// is a copy the hook may keep.
func WithOnIncumbent(fn func(distance int, path []grid.LandmarkID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIncumbent = fn
		}
	}
}

// WithOnTrim registers a "queue trimmed" hook.
func WithOnTrim(fn func(before, after int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrim = fn
		}
	}
}

// WithOnStage registers a per-stage hook.
func WithOnStage(fn func(StageReport)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// Stats counts search work.
type Stats struct {
	Strategy Strategy
	Expanded int // states expanded
	Pruned   int // branches cut by bound, dominance or heuristics
	Stages   int // depth-first stages run
	Trimmed  int // queue entries discarded by trimming
	Steps    int // expansions charged against MaxSteps
}

// Result is the outcome of Solve.
type Result struct {
	// Found reports whether a complete key set was reached.
	Found bool
	// Distance is the total walking distance of Path; meaningful only if Found.
	Distance int
	// Path lists the visited landmarks, starting at the start landmark.
	Path []grid.LandmarkID
	// Exact reports that no solution shorter than Distance exists.
	Exact bool
	Stats Stats
}

// Labels renders Path with the registry's landmark labels.
func (r Result) Labels(reg *grid.Registry) []string {
	out := make([]string, len(r.Path))
	for i, id := range r.Path {
		out[i] = reg.Landmark(id).Label()
	}

	return out
}
