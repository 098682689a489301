package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/keymaze/grid"
)

// Sentinel errors for the portal route search.
var (
	// ErrNilTable is returned when ShortestRoute receives a nil table.
	ErrNilTable = errors.New("portal: table is nil")

	// ErrNotPortalGrid indicates a key maze, or a portal maze without AA or ZZ.
	ErrNotPortalGrid = errors.New("portal: not a portal maze")

	// ErrNoRoute indicates that ZZ cannot be reached from AA under the
	// chosen rules and depth limit.
	ErrNoRoute = errors.New("portal: no route from AA to ZZ")

	// ErrBudgetExceeded is returned when MaxSteps or the context stops the search.
	ErrBudgetExceeded = errors.New("portal: step budget or deadline exceeded")

	// ErrOption is returned when an invalid Option is supplied.
	ErrOption = errors.New("portal: invalid option supplied")
)

// Options configures ShortestRoute.
//
// Recursive – inner portals descend one level, outer portals climb one; at
// level 0 outer portals are walls and AA/ZZ exist only at level 0.
// MaxDepth  – deepest level explored in recursive mode. 0 selects the number
// of portal endpoints, which bounds the search when no route exists.
// MaxSteps  – cap on settled states; 0 means unlimited.
type Options struct {
	Ctx       context.Context
	Recursive bool
	MaxDepth  int
	MaxSteps  int

	err error
}

// DefaultOptions returns a flat search with no step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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

// WithRecursive turns on the nested-level rules.
func WithRecursive() Option {
	return func(o *Options) { o.Recursive = true }
}

// WithMaxDepth bounds the recursion level.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOption, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithMaxSteps bounds the number of settled states.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOption, n)
			return
		}
		o.MaxSteps = n
	}
}

// Hop is one portal label walked onto, with the level it was entered at.
type Hop struct {
	Landmark grid.LandmarkID
	Label    string
	Depth    int
}

// Route is the outcome of ShortestRoute.
type Route struct {
	// Steps is the puzzle answer: moves from the floor next to AA to the
	// floor next to ZZ, each teleport counting as one move.
	Steps int
	// Hops lists AA, every portal entered, and ZZ.
	Hops []Hop
	// Deepest is the deepest level the route visits.
	Deepest int
	// Settled counts the (endpoint, level) states finalized.
	Settled int
}

// Labels renders Hops as "AA, JJ/out, ..., ZZ".
func (r Route) Labels() []string {
	out := make([]string, len(r.Hops))
	for i, h := range r.Hops {
		out[i] = h.Label
	}

	return out
}
