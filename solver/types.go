package solver

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/portal"
	"github.com/katalvlaran/keymaze/propagate"
	"github.com/katalvlaran/keymaze/search"
)

// Options bundles the options of every stage of a run.
//
// Log receives progress lines; nil keeps the run silent.
type Options struct {
	Parse     []grid.ParseOption
	Propagate []propagate.Option
	Search    []search.Option
	Portal    []portal.Option
	Log       *log.Entry
}

// Report is the outcome of one run.
type Report struct {
	Variant grid.Variant

	// Distance is the minimum key collection distance, or the number of
	// steps from AA to ZZ for a portal maze.
	Distance int
	// Path lists landmark labels in visiting order.
	Path []string
	// Exact reports that Distance is proven minimal.
	Exact bool

	// Warnings holds non-fatal findings, e.g. landmarks nothing can reach.
	Warnings []error

	Landmarks   int
	Propagation propagate.Stats
	Search      search.Stats
	// Deepest is the deepest level of a recursive portal route.
	Deepest int
}
