package grid_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/grid"
	"github.com/katalvlaran/keymaze/internal/mazes"
)

// TestConnectedComponents_Walled finds the sealed key as its own island.
//
//	#######
//	#@.a#z#
//	#######
//
// Expected: 2 components of sizes 3 and 1.
func TestConnectedComponents_Walled(t *testing.T) {
	g, err := grid.ParseString(mazes.Walled)
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 3}, sizes)

	labels := g.ComponentLabels()
	z, _ := g.Registry().Lookup("z")
	start := g.Registry().Landmark(g.Registry().Start())
	assert.NotEqual(t, labels[start.Pos], labels[g.Registry().Landmark(z).Pos])
	assert.Equal(t, -1, labels[0], "walls carry no label")
}

// TestConnectedComponents_LocksDoNotSplit treats locks as passable.
func TestConnectedComponents_LocksDoNotSplit(t *testing.T) {
	g, err := grid.ParseString(mazes.Gated15)
	require.NoError(t, err)
	assert.Len(t, g.ConnectedComponents(), 1)
}

// TestConnectedComponents_Donut splits the portal maze into its five rooms.
func TestConnectedComponents_Donut(t *testing.T) {
	g, err := grid.ParsePortals(strings.NewReader(mazes.Donut))
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	assert.Len(t, comps, 5)

	labels := g.ComponentLabels()
	reg := g.Registry()
	aa := reg.Landmark(reg.Start()).Pos
	zz := reg.Landmark(reg.Exit()).Pos
	assert.NotEqual(t, labels[aa], labels[zz])
	// The JJ and KK inner endpoints touch each other and share a room with ZZ.
	assert.Equal(t, labels[zz], labels[reg.Landmark(reg.Named("JJ")[1]).Pos])
	assert.Equal(t, labels[zz], labels[reg.Landmark(reg.Named("KK")[0]).Pos])
}
