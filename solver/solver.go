package solver

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/landmark"
	"github.com/katalvlaran/keymaze/portal"
	"github.com/katalvlaran/keymaze/propagate"
	"github.com/katalvlaran/keymaze/search"
)

// SolveKeys parses a key maze from r and returns the shortest order in which
// to collect every key.
//
// Errors come from the stage that failed: *grid.ParseError and
// grid.ErrInvariant, propagate.ErrNotConverged or propagate.ErrCanceled, or
// the search errors. A key walled off from the start fails fast with
// search.ErrUnsolvable before any distances are computed. With
// search.ErrBudgetExceeded the Report still carries the best order found.
func SolveKeys(ctx context.Context, r io.Reader, opts Options) (Report, error) {
	g, err := grid.Parse(r, opts.Parse...)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Variant: g.Variant(), Landmarks: g.Registry().Len()}
	logf(opts.Log, rep.fields(g)).Info("maze parsed")

	if err = precheck(g); err != nil {
		return rep, err
	}

	tbl, err := table(ctx, g, opts, &rep)
	if err != nil {
		return rep, err
	}

	sopts := append(append([]search.Option(nil), opts.Search...), search.WithContext(ctx))
	if opts.Log != nil {
		sopts = append(sopts, search.WithLogger(opts.Log))
	}
	res, err := search.Solve(tbl, sopts...)
	rep.Search = res.Stats
	if res.Found {
		rep.Distance = res.Distance
		rep.Path = res.Labels(tbl.Registry())
		rep.Exact = res.Exact
	}
	if err != nil {
		return rep, err
	}
	logf(opts.Log, log.Fields{
		"distance": rep.Distance,
		"exact":    rep.Exact,
		"expanded": rep.Search.Expanded,
	}).Info("keys collected")

	return rep, nil
}

// SolvePortals parses a portal maze from r and returns the shortest route
// from AA to ZZ. Recursive levels are selected with portal.WithRecursive in
// opts.Portal.
func SolvePortals(ctx context.Context, r io.Reader, opts Options) (Report, error) {
	g, err := grid.ParsePortals(r, opts.Parse...)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Variant: g.Variant(), Landmarks: g.Registry().Len()}
	logf(opts.Log, rep.fields(g)).Info("maze parsed")

	tbl, err := table(ctx, g, opts, &rep)
	if err != nil {
		return rep, err
	}

	popts := append(append([]portal.Option(nil), opts.Portal...), portal.WithContext(ctx))
	route, err := portal.ShortestRoute(tbl, popts...)
	if err != nil {
		return rep, err
	}
	rep.Distance = route.Steps
	rep.Path = route.Labels()
	rep.Exact = true
	rep.Deepest = route.Deepest
	logf(opts.Log, log.Fields{
		"steps":   rep.Distance,
		"deepest": rep.Deepest,
		"settled": route.Settled,
	}).Info("route found")

	return rep, nil
}

// table propagates g to its fixed point and builds the landmark table,
// recording stats and warnings in rep.
func table(ctx context.Context, g *grid.Grid, opts Options, rep *Report) (*landmark.Table, error) {
	popts := append(append([]propagate.Option(nil), opts.Propagate...), propagate.WithContext(ctx))
	if opts.Log != nil {
		popts = append(popts, propagate.WithLogger(opts.Log))
	}
	p, err := propagate.New(g, popts...)
	if err != nil {
		return nil, err
	}
	rep.Propagation, err = p.Run()
	if err != nil {
		return nil, err
	}

	tbl, err := landmark.Build(g, p)
	if err != nil {
		return nil, err
	}
	rep.Warnings = tbl.Unreachable()
	for _, w := range rep.Warnings {
		logf(opts.Log, nil).Warn(w)
	}
	logf(opts.Log, log.Fields{
		"sweeps":  rep.Propagation.Sweeps,
		"entries": rep.Propagation.Entries,
		"mode":    rep.Propagation.Mode.String(),
	}).Info("distance table built")

	return tbl, nil
}

// precheck fails when a key lies outside the start's connected component.
// Locks count as open here, so a key it passes may still be unreachable.
// Complexity: O(R·C).
func precheck(g *grid.Grid) error {
	reg := g.Registry()
	labels := g.ComponentLabels()
	home := labels[reg.Landmark(reg.Start()).Pos]
	for _, l := range reg.All() {
		if l.Role == grid.Key && labels[l.Pos] != home {
			return fmt.Errorf("%w: key %q at (%d,%d) is walled off from the start",
				search.ErrUnsolvable, l.Name, l.Row, l.Col)
		}
	}

	return nil
}

func (r Report) fields(g *grid.Grid) log.Fields {
	return log.Fields{
		"rows":      g.Rows,
		"cols":      g.Cols,
		"landmarks": r.Landmarks,
	}
}

// logf returns entry with fields, or a silent entry when entry is nil.
func logf(entry *log.Entry, fields log.Fields) *log.Entry {
	if entry == nil {
		entry = silent
	}

	return entry.WithFields(fields)
}

var silent = func() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.PanicLevel)

	return log.NewEntry(l)
}()
