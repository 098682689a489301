// Package search finds the minimum-distance order in which to collect every
// key of a maze, given only its landmark.Table.
//
// What:
//
//   - A move goes from the current landmark to any landmark the table lists
//     as directly reachable, and costs the table distance.
//   - Entering a lock requires its key; a lock whose key does not exist is
//     never entered. Arriving at a key collects it.
//   - The goal is holding every key; the answer is the shortest total distance.
//
// Strategies:
//
//   - DepthFirst (default) is branch-and-bound run in stages. Heuristic stages
//     use repeat budgets 0, 1, … RepeatCeiling and three filters: no return to
//     the landmark two moves back, no immediate backtrack unless a key was just
//     collected, and at most budget extra visits per landmark. A final
//     exhaustive pass drops the filters and keeps only provably safe pruning.
//     The incumbent carries across stages, so raising the ceiling never makes
//     the answer worse.
//   - BestFirst pops the partial path with the lowest sqrt(distance)/(keys+1).
//     Its queue is capped; when full, entries are bucketed by key count and
//     only the highest buckets are kept. The result is exact only if no trim
//     happened.
//
// Safe pruning (both strategies):
//
//   - incumbent bound: a branch whose distance already reaches the best
//     complete solution is cut;
//   - dominance: a (landmark, key set) state entered again without a shorter
//     distance is cut;
//   - lower bound: distance so far plus the all-pairs closure distance to the
//     farthest missing key, locks ignored, never overestimates.
//
// Options:
//
//   - WithStrategy, WithRepeatCeiling (default 3), WithStopAtFirst,
//     WithExhaustive (default on), WithLowerBound (default on),
//     WithQueueCapacity (default 65536), WithMaxSteps, WithContext.
//   - Hooks: WithOnIncumbent, WithOnTrim, WithOnStage; WithLogger routes all
//     three to logrus.
//
// Errors:
//
//   - ErrUnsolvable and ErrExhausted both wrap ErrNoSolution. The first is a
//     proof, the second is inconclusive.
//   - ErrBudgetExceeded comes with the best Result found before stopping.
//
// Complexity:
//
//   - Worst case exponential in the key count; states are bounded by
//     L × 2^K and dominance expands each one only when its distance improves.
package search
