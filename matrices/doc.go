// Package matrices implements constructive matrix exercises: building
// a matrix that satisfies externally given constraints rather than
// transforming an existing one.
//
//   - RestoreFromSums — rebuild a non-negative matrix from its row and
//     column sums with a greedy min(row, col) sweep.
//   - BuildWithConditions — place the values 1..k into a k×k matrix so
//     that given row-ordering and column-ordering conditions all hold,
//     driven by Kahn topological sorting (TopoOrder) on each axis.
//
// Both constructions validate their inputs and return sentinel errors
// instead of silently producing an inconsistent matrix.
//
// Complexity:
//
//   - RestoreFromSums:     O(n·m) time, O(n·m) result memory
//   - TopoOrder:           O(k + len(conds)) time and memory
//   - BuildWithConditions: O(k² + len(conds)) time, O(k²) result memory
package matrices
