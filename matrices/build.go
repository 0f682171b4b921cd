package matrices

// BuildWithConditions places the values 1..k into a k×k matrix, one
// value per row and per column, so that:
//
//   - for every rowCond [a, b], a's row is above b's row;
//   - for every colCond [a, b], a's column is left of b's column.
//
// Each axis is ordered independently with TopoOrder; value v then
// lands at (row position of v, column position of v).  All remaining
// cells are zero.
//
// Returns ErrBadCondition for out-of-range labels and ErrCycle when
// either axis has contradictory conditions.
//
// Complexity: O(k² + len(rowCond) + len(colCond)) time, O(k²) memory.
func BuildWithConditions(k int, rowCond, colCond [][2]int) ([][]int, error) {
	// 1. Order both axes independently
	rowOrder, err := TopoOrder(k, rowCond)
	if err != nil {
		return nil, err
	}
	colOrder, err := TopoOrder(k, colCond)
	if err != nil {
		return nil, err
	}

	// 2. Column position of each value
	colAt := make([]int, k+1)
	for j, v := range colOrder {
		colAt[v] = j
	}

	// 3. Place each value at its (row, col) slot
	out := make([][]int, k)
	for i := range out {
		out[i] = make([]int, k)
	}
	for i, v := range rowOrder {
		out[i][colAt[v]] = v
	}

	return out, nil
}
