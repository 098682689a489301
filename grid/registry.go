package grid

import (
	"fmt"
	"math/bits"
	"sort"
)

// Portal names with special meaning.
const (
	EntranceName = "AA"
	ExitName     = "ZZ"
	// StartName is the identifier of the key maze start.
	StartName = "@"
)

// Registry maps landmark identifiers to positions. It is built once during
// parsing and read-only afterwards.
type Registry struct {
	landmarks []Landmark
	byName    map[string][]LandmarkID
	start     LandmarkID
	exit      LandmarkID
	keyMask   uint32
}

func newRegistry() *Registry {
	return &Registry{
		byName: make(map[string][]LandmarkID),
		start:  NoLandmark,
		exit:   NoLandmark,
	}
}

// add assigns the next dense ID to l and indexes it by name.
func (r *Registry) add(l Landmark) LandmarkID {
	l.ID = LandmarkID(len(r.landmarks))
	r.landmarks = append(r.landmarks, l)
	r.byName[l.Name] = append(r.byName[l.Name], l.ID)
	if l.Role == Key {
		r.keyMask |= 1 << uint(l.KeyBit)
	}

	return l.ID
}

// Len returns the number of landmarks.
func (r *Registry) Len() int { return len(r.landmarks) }

// Landmark returns the landmark with the given ID.
func (r *Registry) Landmark(id LandmarkID) Landmark { return r.landmarks[id] }

// All returns a copy of every landmark, ordered by ID.
func (r *Registry) All() []Landmark {
	out := make([]Landmark, len(r.landmarks))
	copy(out, r.landmarks)

	return out
}

// Lookup returns the first landmark registered under name.
func (r *Registry) Lookup(name string) (LandmarkID, bool) {
	ids := r.byName[name]
	if len(ids) == 0 {
		return NoLandmark, false
	}

	return ids[0], true
}

// Named returns every landmark registered under name (two for paired portals).
func (r *Registry) Named(name string) []LandmarkID {
	ids := r.byName[name]
	out := make([]LandmarkID, len(ids))
	copy(out, ids)

	return out
}

// Positions returns the flat cell indexes of every landmark named name.
func (r *Registry) Positions(name string) []int {
	ids := r.byName[name]
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = r.landmarks[id].Pos
	}

	return out
}

// Portals returns the portal name → positions mapping.
func (r *Registry) Portals() map[string][]int {
	out := make(map[string][]int)
	for _, l := range r.landmarks {
		if l.Role == Portal {
			out[l.Name] = append(out[l.Name], l.Pos)
		}
	}

	return out
}

// Start returns the start landmark ('@' or the AA entrance).
func (r *Registry) Start() LandmarkID { return r.start }

// Exit returns the ZZ landmark of a portal maze, or NoLandmark.
func (r *Registry) Exit() LandmarkID { return r.exit }

// KeyCount returns the number of keys in the maze.
func (r *Registry) KeyCount() int { return bits.OnesCount32(r.keyMask) }

// KeyMask returns the set of key bits present in the maze.
func (r *Registry) KeyMask() uint32 { return r.keyMask }

// KeyFor returns the key that opens lock.
func (r *Registry) KeyFor(lock LandmarkID) (LandmarkID, bool) {
	l := r.landmarks[lock]
	if l.Role != Lock {
		return NoLandmark, false
	}

	return r.Lookup(string(rune('a' + l.KeyBit)))
}

// Partner returns the other endpoint of a paired portal.
func (r *Registry) Partner(id LandmarkID) (LandmarkID, bool) {
	l := r.landmarks[id]
	if l.Role != Portal {
		return NoLandmark, false
	}
	for _, other := range r.byName[l.Name] {
		if other != id {
			return other, true
		}
	}

	return NoLandmark, false
}

// validateKeys checks the key maze invariants: unique key and lock letters
// and, unless orphan locks are allowed, a key for every lock.
func (r *Registry) validateKeys(opts ParseOptions) error {
	for _, name := range r.sortedNames() {
		ids := r.byName[name]
		if len(ids) > 1 {
			return fmt.Errorf("%w: %w: %q appears %d times", ErrInvariant, ErrDuplicateLandmark, name, len(ids))
		}
		l := r.landmarks[ids[0]]
		if l.Role == Lock && !opts.OrphanLocks && r.keyMask&(1<<uint(l.KeyBit)) == 0 {
			return fmt.Errorf("%w: %w: lock %q at (%d,%d)", ErrInvariant, ErrOrphanLock, name, l.Row, l.Col)
		}
	}

	return nil
}

// validatePortals checks arity: AA and ZZ exactly once, other names once or twice.
func (r *Registry) validatePortals() error {
	for _, name := range r.sortedNames() {
		n := len(r.byName[name])
		limit := 2
		if name == EntranceName || name == ExitName {
			limit = 1
		}
		if n > limit {
			return fmt.Errorf("%w: %w: %q has %d positions", ErrInvariant, ErrPortalArity, name, n)
		}
	}

	return nil
}

// sortedNames returns landmark names in lexical order for deterministic errors.
func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
