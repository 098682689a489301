// Package solver runs a maze end to end: parse, propagate, build the
// landmark table, then search. SolveKeys answers the key collection puzzle
// and SolvePortals the AA to ZZ portal puzzle; both return a Report with the
// answer, the path and the work each stage did.
package solver
