package matrices

import (
	"errors"
	"fmt"
)

// Sentinel errors for ordering conditions.
var (
	// ErrCycle is returned when the conditions contradict each other,
	// so no linear ordering exists.
	ErrCycle = errors.New("matrices: conditions form a cycle")

	// ErrBadCondition is returned when a condition references a label
	// outside 1..k or relates a label to itself.
	ErrBadCondition = errors.New("matrices: condition label out of range")
)

// TopoOrder produces a permutation of the labels 1..k in which, for
// every condition [before, after], before precedes after.
//
// Kahn's algorithm: build the adjacency list and indegree counts, seed
// a queue with all zero-indegree labels, and repeatedly emit a label
// while decrementing its successors.  If fewer than k labels are
// emitted, a cycle blocked the rest.
//
// Returns ErrBadCondition for labels outside 1..k or self-conditions,
// and ErrCycle when the conditions are contradictory.
//
// Complexity: O(k + len(conds)) time and memory.
func TopoOrder(k int, conds [][2]int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadCondition, k)
	}

	// 1. Build graph and indegrees; labels are 1-based
	adj := make([][]int, k+1)
	indegree := make([]int, k+1)
	for _, c := range conds {
		before, after := c[0], c[1]
		if before < 1 || before > k || after < 1 || after > k {
			return nil, fmt.Errorf("%w: [%d %d] with k=%d", ErrBadCondition, before, after, k)
		}
		if before == after {
			return nil, fmt.Errorf("%w: label %d precedes itself", ErrBadCondition, before)
		}
		adj[before] = append(adj[before], after)
		indegree[after]++
	}

	// 2. Seed with every unconstrained label
	queue := make([]int, 0, k)
	for label := 1; label <= k; label++ {
		if indegree[label] == 0 {
			queue = append(queue, label)
		}
	}

	// 3. Emit labels as their prerequisites drain
	order := make([]int, 0, k)
	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]
		order = append(order, label)
		for _, succ := range adj[label] {
			indegree[succ]--
			if indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) < k {
		return nil, fmt.Errorf("%w: only %d of %d labels orderable", ErrCycle, len(order), k)
	}

	return order, nil
}
