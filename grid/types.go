// Package grid defines core types, options, and sentinel errors
// for the maze model of github.com/katalvlaran/keymaze.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing.
var (
	// ErrParse is the parent of every malformed-input error.
	ErrParse = errors.New("grid: parse error")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a character outside the variant's symbol table.
	ErrUnknownSymbol = errors.New("grid: unrecognized symbol")
	// ErrMissingStart indicates the maze has no start ('@' or AA).
	ErrMissingStart = errors.New("grid: missing start")
	// ErrMissingExit indicates a portal maze has no ZZ label.
	ErrMissingExit = errors.New("grid: missing exit")
	// ErrDuplicateStart indicates more than one start position.
	ErrDuplicateStart = errors.New("grid: more than one start")
	// ErrUnpairedLabel indicates a portal label letter without its partner letter.
	ErrUnpairedLabel = errors.New("grid: portal label is missing its second letter")
)

// Sentinel errors for registry invariants.
var (
	// ErrInvariant is the parent of every malformed-puzzle error.
	ErrInvariant = errors.New("grid: invariant violation")
	// ErrOrphanLock indicates a lock whose key appears nowhere in the maze.
	ErrOrphanLock = errors.New("grid: lock without a matching key")
	// ErrDuplicateLandmark indicates two keys or two locks with the same letter.
	ErrDuplicateLandmark = errors.New("grid: duplicate landmark")
	// ErrPortalArity indicates a portal name with more than two positions,
	// or an entrance/exit with more than one.
	ErrPortalArity = errors.New("grid: portal has too many positions")
)

// ParseError reports malformed input together with its location.
// Row and Col are zero-based; Col is -1 when the whole row is at fault and
// Row is -1 when the whole input is.
type ParseError struct {
	Row, Col int
	Err      error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %v", ErrParse, e.Err)
	}
	if e.Col < 0 {
		return fmt.Sprintf("%v: row %d: %v", ErrParse, e.Row, e.Err)
	}

	return fmt.Sprintf("%v: row %d col %d: %v", ErrParse, e.Row, e.Col, e.Err)
}

// Unwrap exposes both ErrParse and the specific cause to errors.Is.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Kind classifies a cell.
type Kind uint8

const (
	// Void is empty space outside a portal maze; impassable.
	Void Kind = iota
	// Wall is impassable.
	Wall
	// Floor is open ground.
	Floor
	// Label is a portal label letter that is not itself a portal.
	Label
	// Marker is a start, key, lock or portal cell.
	Marker
)

// Role is the puzzle meaning of a landmark.
type Role uint8

const (
	// Start is the entry point. It does not block propagation.
	Start Role = iota
	// Key is picked up by visiting it.
	Key
	// Lock can be crossed once its key is held.
	Lock
	// Portal teleports to its paired portal.
	Portal
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Start:
		return "start"
	case Key:
		return "key"
	case Lock:
		return "lock"
	case Portal:
		return "portal"
	}

	return fmt.Sprintf("role(%d)", uint8(r))
}

// Direction tags a portal endpoint as sitting on the outer rim or the inner
// rim of a donut maze. In recursive mazes Inner descends one level and Outer
// climbs one level.
type Direction int8

const (
	// NoDirection is used by non-portal landmarks.
	NoDirection Direction = iota
	// Outer portals sit within two cells of the grid border.
	Outer
	// Inner portals sit inside the donut hole.
	Inner
)

// Variant tells which symbol table a Grid was parsed with.
type Variant uint8

const (
	// Keys is the key/lock maze.
	Keys Variant = iota
	// Portals is the portal maze.
	Portals
)

// LandmarkID is a dense index into the Registry. NoLandmark marks plain cells.
type LandmarkID int

// NoLandmark is the LandmarkID of cells that are not landmarks.
const NoLandmark LandmarkID = -1

// Landmark is a navigable point of interest.
type Landmark struct {
	ID   LandmarkID
	Name string // "@", "a", "A", or a two-letter portal name
	Role Role
	Pos  int // flat cell index
	Row  int
	Col  int
	Dir  Direction // portals only
	// KeyBit is the key's bit for keys, the required key's bit for locks,
	// and -1 otherwise.
	KeyBit int
}

// Label returns a human-readable identifier; portal endpoints are suffixed
// with their direction because both ends share a Name.
func (l Landmark) Label() string {
	if l.Name == EntranceName || l.Name == ExitName {
		return l.Name
	}
	switch l.Dir {
	case Outer:
		return l.Name + "/out"
	case Inner:
		return l.Name + "/in"
	}

	return l.Name
}

// IsBarrier reports whether the landmark stops distance propagation.
// Everything but the start is a one-hop barrier.
func (l Landmark) IsBarrier() bool { return l.Role != Start }

// Cell is one grid position.
type Cell struct {
	Kind     Kind
	Glyph    byte
	Landmark LandmarkID
}

// Passable reports whether the cell can be stood on.
func (c Cell) Passable() bool { return c.Kind == Floor || c.Kind == Marker }

// ParseOptions tunes the parsers.
type ParseOptions struct {
	// OrphanLocks accepts locks whose key is absent; such locks never open.
	OrphanLocks bool
	// Pad right-pads short rows with the variant's void glyph instead of
	// failing with ErrNonRectangular.
	Pad bool
}

// ParseOption configures ParseOptions.
type ParseOption func(*ParseOptions)

// WithOrphanLocks accepts locks that have no key anywhere in the maze.
func WithOrphanLocks() ParseOption {
	return func(o *ParseOptions) { o.OrphanLocks = true }
}

// WithPadding right-pads ragged rows instead of rejecting them.
func WithPadding() ParseOption {
	return func(o *ParseOptions) { o.Pad = true }
}

// DefaultParseOptions returns strict parsing options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}
