// Package arrays collects single-pass scanning exercises over integer
// slices: extrema, leaders, majority voting, Kadane's maximum-subarray
// sum, consecutive-run length, rotation checks, and sorted-array
// floor/ceil lookups.
//
// Every function is a standalone pure routine: inputs are never
// mutated, no state is shared between calls, and each call allocates
// only its own result.  The package exists as a set of independent
// exercises, not as layers of a common framework.
//
// Complexity: every routine is O(n) time (O(log n) for Floor/Ceil)
// and O(1) extra memory unless noted otherwise.
package arrays
