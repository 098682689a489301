// Package portal answers the portal variant of the maze: the shortest walk
// from the AA entrance to the ZZ exit when stepping onto a portal label
// teleports to its partner.
//
// Flat mode treats portals as plain teleports. Recursive mode nests the maze:
// inner portals lead one level down, outer portals one level up, the outer
// portals of level 0 are walls and AA/ZZ exist only on level 0.
//
// The search is Dijkstra over (endpoint, level) states on top of the landmark
// table, so the grid is walked once by the propagator and never again.
package portal
