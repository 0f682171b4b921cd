package matrices

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction.
var (
	// ErrEmptyInput is returned when a dimension has no entries.
	ErrEmptyInput = errors.New("matrices: empty input")

	// ErrNegativeSum is returned when a row or column sum is negative.
	ErrNegativeSum = errors.New("matrices: negative sum")

	// ErrSumMismatch is returned when the row sums and column sums
	// total differently, so no matrix can satisfy both.
	ErrSumMismatch = errors.New("matrices: row and column totals differ")
)

// RestoreFromSums builds a non-negative n×m matrix whose i-th row sums
// to rowSum[i] and j-th column sums to colSum[j].
//
// Greedy construction: walk a single (i, j) cursor, place
// min(rowSum[i], colSum[j]) in the current cell, subtract it from both
// sums, and advance past whichever dimension reached zero.  Each step
// retires at least one row or column, so the walk is O(n+m) placements
// over an O(n·m) zero-filled result.
//
// Inputs are not mutated.  Returns ErrEmptyInput when either slice is
// empty, ErrNegativeSum for negative entries, and ErrSumMismatch when
// the two totals disagree (the reference formulation assumes agreement;
// here it is validated).
func RestoreFromSums(rowSum, colSum []int) ([][]int, error) {
	n, m := len(rowSum), len(colSum)
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}

	// 1. Validate totals before touching anything
	var rowTotal, colTotal int
	for i, v := range rowSum {
		if v < 0 {
			return nil, fmt.Errorf("%w: rowSum[%d] = %d", ErrNegativeSum, i, v)
		}
		rowTotal += v
	}
	for j, v := range colSum {
		if v < 0 {
			return nil, fmt.Errorf("%w: colSum[%d] = %d", ErrNegativeSum, j, v)
		}
		colTotal += v
	}
	if rowTotal != colTotal {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrSumMismatch, rowTotal, colTotal)
	}

	// 2. Work on copies; the caller's slices stay intact
	rows := append([]int(nil), rowSum...)
	cols := append([]int(nil), colSum...)

	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, m)
	}

	// 3. Greedy cursor sweep
	i, j := 0, 0
	for i < n && j < m {
		v := rows[i]
		if cols[j] < v {
			v = cols[j]
		}
		out[i][j] = v
		rows[i] -= v
		cols[j] -= v
		if rows[i] == 0 {
			i++
		}
		if cols[j] == 0 {
			j++
		}
	}

	return out, nil
}
