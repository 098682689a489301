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

// TestParsePortals_Donut checks names, positions and rim directions.
func TestParsePortals_Donut(t *testing.T) {
	g, err := grid.ParsePortals(strings.NewReader(mazes.Donut))
	require.NoError(t, err)
	assert.Equal(t, grid.Portals, g.Variant())

	reg := g.Registry()
	type endpoint struct {
		row, col int
		dir      grid.Direction
	}
	want := map[string][]endpoint{
		"AA": {{1, 5, grid.Outer}},
		"PP": {{1, 11, grid.Outer}, {5, 7, grid.Inner}},
		"RR": {{5, 12, grid.Inner}, {8, 17, grid.Outer}},
		"JJ": {{5, 1, grid.Outer}, {8, 5, grid.Inner}},
		"KK": {{7, 5, grid.Inner}, {12, 6, grid.Outer}},
		"QQ": {{8, 8, grid.Inner}, {12, 12, grid.Outer}},
		"ZZ": {{12, 4, grid.Outer}},
	}

	portals := reg.Portals()
	names := make([]string, 0, len(portals))
	for name := range portals {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"AA", "JJ", "KK", "PP", "QQ", "RR", "ZZ"}, names)

	for name, eps := range want {
		ids := reg.Named(name)
		require.Len(t, ids, len(eps), name)
		for i, id := range ids {
			l := reg.Landmark(id)
			assert.Equal(t, grid.Portal, l.Role)
			assert.Equal(t, eps[i].row, l.Row, name)
			assert.Equal(t, eps[i].col, l.Col, name)
			assert.Equal(t, eps[i].dir, l.Dir, name)
			assert.Equal(t, g.Index(l.Row, l.Col), l.Pos)
		}
	}

	assert.Equal(t, "AA", reg.Landmark(reg.Start()).Name)
	assert.Equal(t, "ZZ", reg.Landmark(reg.Exit()).Name)
	assert.Equal(t, "AA", reg.Landmark(reg.Start()).Label(), "unique endpoints carry no direction")
	assert.Equal(t, 0, reg.KeyCount())

	in := reg.Named("PP")[1]
	out, ok := reg.Partner(in)
	require.True(t, ok)
	assert.Equal(t, "PP/out", reg.Landmark(out).Label())
	assert.Equal(t, "PP/in", reg.Landmark(in).Label())
	_, ok = reg.Partner(reg.Start())
	assert.False(t, ok, "AA has no partner")

	// Plain label letters stay impassable.
	assert.Equal(t, grid.Label, g.At(0, 5).Kind)
	assert.False(t, g.At(0, 5).Passable())
	assert.True(t, g.At(1, 5).Passable())

	assert.Equal(t, mazes.Donut, g.String())
}

// TestParsePortals_Errors covers portal-specific failures.
func TestParsePortals_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown", "#a#", grid.ErrUnknownSymbol},
		{"missing exit", "  A  \n  A  \n##.##\n##.##\n#####", grid.ErrMissingExit},
		{"missing start", "#####\n##.##\n##.##\n  Z  \n  Z  ", grid.ErrMissingStart},
		{"unpaired", "  A  \n##.##\n##.##\n  Z  \n  Z  ", grid.ErrUnpairedLabel},
		{"stray letter", "B A  \n  A  \n##.##\n##.##\n  Z  \n  Z  ", grid.ErrUnpairedLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParsePortals(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, grid.ErrParse)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParsePortals_Arity rejects a portal name used three times.
func TestParsePortals_Arity(t *testing.T) {
	input := strings.Join([]string{
		"  A   B   B   B  ",
		"  A   B   B   B  ",
		"##.###.###.###.##",
		"##.............##",
		"##.#############",
		"  Z              ",
		"  Z              ",
	}, "\n")
	_, err := grid.ParsePortals(strings.NewReader(input), grid.WithPadding())
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvariant)
	assert.ErrorIs(t, err, grid.ErrPortalArity)
}
