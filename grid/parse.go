package grid

import (
	"bufio"
	"io"
	"strings"
)

// maxLine caps a single input row; puzzle mazes are far narrower.
const maxLine = 1 << 20

// Parse reads a key/lock maze: '#' wall, '.' floor, '@' start, 'a'..'z' keys
// and 'A'..'Z' the matching locks.
//
// Errors: *ParseError (ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol,
// ErrMissingStart, ErrDuplicateStart) or an ErrInvariant violation.
// Complexity: O(R×C).
func Parse(r io.Reader, opts ...ParseOption) (*Grid, error) {
	o := applyParseOptions(opts)
	lines, cols, err := readLines(r, o.Pad, '#')
	if err != nil {
		return nil, err
	}

	g := newGrid(len(lines), cols, Wall, '#', Keys)
	reg := newRegistry()
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			ch := line[col]
			idx := g.Index(row, col)
			c := &g.cells[idx]
			c.Glyph = ch

			lm := Landmark{Pos: idx, Row: row, Col: col, KeyBit: -1}
			switch {
			case ch == '#':
				c.Kind = Wall
				continue
			case ch == '.':
				c.Kind = Floor
				continue
			case ch == '@':
				if reg.start != NoLandmark {
					return nil, &ParseError{Row: row, Col: col, Err: ErrDuplicateStart}
				}
				lm.Name, lm.Role = StartName, Start
			case ch >= 'a' && ch <= 'z':
				lm.Name, lm.Role, lm.KeyBit = string(ch), Key, int(ch-'a')
			case ch >= 'A' && ch <= 'Z':
				lm.Name, lm.Role, lm.KeyBit = string(ch), Lock, int(ch-'A')
			default:
				return nil, &ParseError{Row: row, Col: col, Err: ErrUnknownSymbol}
			}

			c.Kind = Marker
			c.Landmark = reg.add(lm)
			if lm.Role == Start {
				reg.start = c.Landmark
			}
		}
	}

	if reg.start == NoLandmark {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrMissingStart}
	}
	if err = reg.validateKeys(o); err != nil {
		return nil, err
	}
	g.reg = reg

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParsePortals reads a donut-shaped portal maze: '#' wall, '.' floor,
// ' ' void and uppercase label letters. Each two-letter label touching floor
// becomes one portal endpoint; AA is the entrance and ZZ the exit.
//
// Errors: *ParseError (ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol,
// ErrUnpairedLabel, ErrMissingStart, ErrMissingExit) or ErrPortalArity.
// Complexity: O(R×C).
func ParsePortals(r io.Reader, opts ...ParseOption) (*Grid, error) {
	o := applyParseOptions(opts)
	lines, cols, err := readLines(r, o.Pad, ' ')
	if err != nil {
		return nil, err
	}

	g := newGrid(len(lines), cols, Void, ' ', Portals)
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			ch := line[col]
			c := &g.cells[g.Index(row, col)]
			c.Glyph = ch
			switch {
			case ch == '#':
				c.Kind = Wall
			case ch == '.':
				c.Kind = Floor
			case ch == ' ':
				c.Kind = Void
			case ch >= 'A' && ch <= 'Z':
				c.Kind = Label
			default:
				return nil, &ParseError{Row: row, Col: col, Err: ErrUnknownSymbol}
			}
		}
	}

	reg := newRegistry()
	if err = detectPortals(g, reg); err != nil {
		return nil, err
	}
	if err = reg.validatePortals(); err != nil {
		return nil, err
	}

	var ok bool
	if reg.start, ok = reg.Lookup(EntranceName); !ok {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrMissingStart}
	}
	if reg.exit, ok = reg.Lookup(ExitName); !ok {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrMissingExit}
	}
	g.reg = reg

	return g, nil
}

func applyParseOptions(opts []ParseOption) ParseOptions {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// readLines splits r into rows, strips '\r' and trailing empty lines, and
// checks (or, with pad, enforces) a rectangular shape.
func readLines(r io.Reader, pad bool, fill byte) ([]string, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, 0, &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}

	cols := len(lines[0])
	if pad {
		for _, l := range lines {
			cols = max(cols, len(l))
		}
	}
	for i, l := range lines {
		switch {
		case len(l) == cols:
		case pad:
			lines[i] = l + strings.Repeat(string(fill), cols-len(l))
		default:
			return nil, 0, &ParseError{Row: i, Col: -1, Err: ErrNonRectangular}
		}
	}

	return lines, cols, nil
}
