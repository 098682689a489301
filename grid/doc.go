// Package grid holds the immutable maze model consumed by the distance
// propagator and the order search.
//
// What:
//
//   - Grid stores a rectangular maze as a flat cell arena indexed row*Cols+col.
//   - Every cell has a Kind (Void, Wall, Floor, Label, Marker) and the glyph
//     it was parsed from, so String() renders the maze back verbatim.
//   - Registry maps landmark identifiers ("@", "a", "A", "BC") to positions and
//     records roles (Start, Key, Lock, Portal) and key bits.
//
// Variants:
//
//   - Parse reads the key/lock maze: '#' wall, '.' floor, '@' start,
//     lowercase key, uppercase lock for the key of the same letter.
//   - ParsePortals reads the portal maze: '#' wall, '.' floor, ' ' void,
//     uppercase letters form two-character labels in reading order. The label
//     letter touching floor becomes the portal landmark; AA is the entrance
//     and ZZ the exit. Portals within two cells of the border are Outer, the
//     rest are Inner.
//
// Errors:
//
//   - *ParseError wraps ErrParse and one of ErrEmptyGrid, ErrNonRectangular,
//     ErrUnknownSymbol, ErrMissingStart, ErrMissingExit, ErrDuplicateStart,
//     ErrUnpairedLabel. No partial Grid is ever returned.
//   - Invariant violations wrap ErrInvariant and one of ErrOrphanLock,
//     ErrDuplicateLandmark, ErrPortalArity.
//
// Complexity:
//
//   - Parse / ParsePortals: O(R×C) time and memory.
//   - ConnectedComponents:  O(R×C×4) time, O(R×C) memory.
package grid
