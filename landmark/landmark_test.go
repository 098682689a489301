package landmark_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/internal/mazes"
	"github.com/katalvlaran/keymaze/landmark"
	"github.com/katalvlaran/keymaze/propagate"
)

func build(t *testing.T, g *grid.Grid) *landmark.Table {
	t.Helper()
	p, err := propagate.New(g)
	require.NoError(t, err)
	_, err = p.Run()
	require.NoError(t, err)
	tbl, err := landmark.Build(g, p)
	require.NoError(t, err)

	return tbl
}

func keys(t *testing.T, src string) *landmark.Table {
	t.Helper()
	g, err := grid.ParseString(src)
	require.NoError(t, err)

	return build(t, g)
}

func id(t *testing.T, tbl *landmark.Table, name string) grid.LandmarkID {
	t.Helper()
	l, ok := tbl.Registry().Lookup(name)
	require.True(t, ok, name)

	return l
}

// TestBuild_Line8 checks the edge lists of the one-corridor maze.
func TestBuild_Line8(t *testing.T) {
	tbl := keys(t, mazes.Line8)
	assert.Equal(t, 4, tbl.Len())

	at, a, lockA, b := id(t, tbl, "@"), id(t, tbl, "a"), id(t, tbl, "A"), id(t, tbl, "b")
	assert.Equal(t, []landmark.Edge{{To: lockA, Dist: 2}, {To: a, Dist: 2}}, tbl.Edges(at))
	assert.Equal(t, map[grid.LandmarkID]int{at: 2, lockA: 4}, tbl.Reachable(a))
	assert.Equal(t, map[grid.LandmarkID]int{lockA: 2}, tbl.Reachable(b))

	d, ok := tbl.Distance(lockA, b)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	_, ok = tbl.Distance(a, b)
	assert.False(t, ok, "A stands between a and b")

	assert.Empty(t, tbl.Unreachable())
}

// TestBuild_Ordering checks the (distance, ID) order of every edge list.
func TestBuild_Ordering(t *testing.T) {
	tbl := keys(t, mazes.Cross136)
	for from := 0; from < tbl.Len(); from++ {
		es := tbl.Edges(grid.LandmarkID(from))
		for i := 1; i < len(es); i++ {
			prev, cur := es[i-1], es[i]
			ok := prev.Dist < cur.Dist || (prev.Dist == cur.Dist && prev.To < cur.To)
			assert.True(t, ok, "landmark %d edge %d out of order", from, i)
		}
	}
}

// TestBuild_Symmetric checks distance(a,b) == distance(b,a) for every pair
// that sees each other, on every fixture including the portal maze.
func TestBuild_Symmetric(t *testing.T) {
	tables := map[string]*landmark.Table{
		"line8": keys(t, mazes.Line8),
		"86":    keys(t, mazes.Corridor86),
		"132":   keys(t, mazes.Loop132),
		"136":   keys(t, mazes.Cross136),
		"81":    keys(t, mazes.Pockets81),
		"gated": keys(t, mazes.Gated15),
	}
	g, err := grid.ParsePortals(strings.NewReader(mazes.Donut))
	require.NoError(t, err)
	tables["donut"] = build(t, g)

	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			for a := 0; a < tbl.Len(); a++ {
				for _, e := range tbl.Edges(grid.LandmarkID(a)) {
					back, ok := tbl.Distance(e.To, grid.LandmarkID(a))
					require.True(t, ok, "%d→%d has no reverse", a, e.To)
					assert.Equal(t, e.Dist, back, "%d↔%d", a, e.To)
				}
			}
		})
	}
}

// TestBuild_Donut checks table distances between portal endpoints: the
// floor steps between the two labels plus one.
func TestBuild_Donut(t *testing.T) {
	g, err := grid.ParsePortals(strings.NewReader(mazes.Donut))
	require.NoError(t, err)
	tbl := build(t, g)
	reg := g.Registry()

	aa, zz := reg.Start(), reg.Exit()
	pOut, pIn := reg.Named("PP")[0], reg.Named("PP")[1]
	rIn, rOut := reg.Named("RR")[0], reg.Named("RR")[1]
	jOut, jIn := reg.Named("JJ")[0], reg.Named("JJ")[1]
	kIn, kOut := reg.Named("KK")[0], reg.Named("KK")[1]
	qIn, qOut := reg.Named("QQ")[0], reg.Named("QQ")[1]

	cases := []struct {
		a, b grid.LandmarkID
		want int
	}{
		{aa, pIn, 5},
		{aa, jOut, 7},
		{pIn, jOut, 9},
		{pOut, rIn, 4},
		{rOut, qOut, 8},
		{qIn, kOut, 5},
		{kIn, zz, 7},
		{jIn, zz, 6},
		{kIn, jIn, 2},
	}
	for _, tc := range cases {
		d, ok := tbl.Distance(tc.a, tc.b)
		require.True(t, ok, "%s→%s", reg.Landmark(tc.a).Label(), reg.Landmark(tc.b).Label())
		assert.Equal(t, tc.want, d, "%s→%s", reg.Landmark(tc.a).Label(), reg.Landmark(tc.b).Label())
	}
	assert.Len(t, tbl.Edges(aa), 2)
	assert.Len(t, tbl.Edges(zz), 2)
}

// TestBuild_Unreachable records a sealed key as a warning, not a failure.
func TestBuild_Unreachable(t *testing.T) {
	tbl := keys(t, mazes.Walled)
	warns := tbl.Unreachable()
	require.Len(t, warns, 1)

	var ue *landmark.UnreachableLandmarkError
	require.True(t, errors.As(warns[0], &ue))
	assert.Equal(t, "z", ue.Name)
	assert.Equal(t, 1, ue.Row)
	assert.Equal(t, 5, ue.Col)
	assert.ErrorIs(t, warns[0], landmark.ErrUnreachable)
	assert.Empty(t, tbl.Reachable(ue.ID))
}

// TestBuild_Errors checks input validation.
func TestBuild_Errors(t *testing.T) {
	g, err := grid.ParseString(mazes.Line8)
	require.NoError(t, err)
	other, err := grid.ParseString(mazes.Line8)
	require.NoError(t, err)

	_, err = landmark.Build(nil, nil)
	assert.ErrorIs(t, err, landmark.ErrNilInput)

	p, err := propagate.New(g)
	require.NoError(t, err)
	_, err = landmark.Build(g, p)
	assert.ErrorIs(t, err, propagate.ErrNotConverged)

	_, err = landmark.Build(other, p)
	assert.ErrorIs(t, err, landmark.ErrMismatch)
}

// TestClosure checks the all-pairs closure against hand-computed values.
func TestClosure(t *testing.T) {
	tbl := keys(t, mazes.Line8)
	c := tbl.Closure()
	assert.Same(t, c, tbl.Closure(), "computed once")

	at, a, b := id(t, tbl, "@"), id(t, tbl, "a"), id(t, tbl, "b")
	cases := []struct {
		from, to grid.LandmarkID
		want     int
	}{
		{at, at, 0},
		{at, a, 2},
		{at, b, 4}, // @→A→b, the lock counts as a waypoint
		{a, b, 6},
		{b, a, 6},
	}
	for _, tc := range cases {
		d, ok := c.Dist(tc.from, tc.to)
		require.True(t, ok)
		assert.Equal(t, tc.want, d)
	}

	walled := keys(t, mazes.Walled)
	_, ok := walled.Closure().Dist(id(t, walled, "@"), id(t, walled, "z"))
	assert.False(t, ok)
}
