package propagate

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/keymaze/grid"
)

// Sentinel errors for propagation.
var (
	// ErrNilGrid is returned when a nil grid is passed to New.
	ErrNilGrid = errors.New("propagate: grid is nil")
	// ErrOption is returned when an invalid Option is supplied.
	ErrOption = errors.New("propagate: invalid option supplied")
	// ErrNotConverged is returned when MaxSweeps is reached before the fixed point.
	ErrNotConverged = errors.New("propagate: fixed point not reached")
	// ErrCanceled wraps the context error when Run is cancelled between sweeps.
	ErrCanceled = errors.New("propagate: canceled")
)

// Mode selects the sweep strategy.
type Mode uint8

const (
	// Sequential updates cells in place, in reading order.
	Sequential Mode = iota
	// Parallel computes each sweep from a snapshot, rows split across workers.
	Parallel
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Parallel {
		return "parallel"
	}

	return "sequential"
}

// Entry is one known landmark distance.
type Entry struct {
	Landmark grid.LandmarkID
	Dist     int
}

// Stats summarises a Run.
type Stats struct {
	Sweeps  int // sweeps performed, the final quiet one included
	Updates int // cell changes summed over all sweeps
	Entries int // (cell, landmark) pairs known at the end
	Mode    Mode
	Workers int
}

// Option configures a Propagator.
// Invalid options are recorded and surfaced as ErrOption by New.
type Option func(*Options)

// Options holds propagation parameters.
type Options struct {
	// Ctx is checked between sweeps.
	Ctx context.Context

	// Mode selects in-place or snapshot sweeps.
	Mode Mode

	// Workers is the goroutine count for Parallel mode.
	Workers int

	// MaxSweeps bounds Run. Zero selects Rows×Cols+1.
	MaxSweeps int

	// OnSweep is called after every sweep with its 1-based number and the
	// number of cells it changed.
	OnSweep func(sweep, changed int)

	err error
}

// DefaultOptions returns sequential propagation with no hooks, a background
// context and GOMAXPROCS workers reserved for Parallel mode.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Mode:    Sequential,
		Workers: runtime.GOMAXPROCS(0),
		OnSweep: func(int, int) {},
	}
}

// WithContext sets a context for cancellation between sweeps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects Sequential or Parallel sweeps.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Sequential && m != Parallel {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOption, m)
			return
		}
		o.Mode = m
	}
}

// WithWorkers sets the number of goroutines used in Parallel mode.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOption, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxSweeps bounds the number of sweeps Run may perform.
//
//	n > 0: at most n sweeps
//	n == 0: default Rows×Cols+1
//	n < 0: invalid option → ErrOption
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSweeps cannot be negative (%d)", ErrOption, n)
			return
		}
		o.MaxSweeps = n
	}
}

// WithOnSweep registers a per-sweep diagnostic hook.
func WithOnSweep(fn func(sweep, changed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}
