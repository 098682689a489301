// Package keymaze solves grid mazes of keys, locks and portals.
//
// 🚀 What is keymaze?
//
//	A small toolkit that turns a text maze into shortest-route answers:
//		• grid:      parse key mazes and portal mazes, landmark registry, components
//		• propagate: landmark distance propagation to a fixed point (sequential or parallel)
//		• landmark:  per-landmark distance table plus an all-pairs closure
//		• search:    shortest key collection order (depth-first stages or best-first)
//		• portal:    shortest AA → ZZ route, flat or with nested levels
//		• solver:    parse → propagate → table → search in one call
//		• config:    YAML settings mapped onto every stage's options
//
// ✨ How it fits together
//
//   - The grid is walked once. Propagation leaves every cell knowing its
//     distance to each landmark it can see without crossing another one.
//   - The landmark table is read off the landmark cells; every search after
//     that works on landmarks only.
//   - Core packages never log. They expose hooks (OnSweep, OnIncumbent,
//     OnTrim, OnStage); WithLogger adapters route them to logrus.
//
// Quick start:
//
//	rep, err := solver.SolveKeys(ctx, strings.NewReader(maze), solver.Options{})
//	fmt.Println(rep.Distance, rep.Path)
//
// The keymaze command wraps the same flow for files, stdin and .zst input.
package keymaze
