// Package adapt implements container-adaptation exercises: building
// one abstract container's discipline out of another's primitives.
//
//   - QueueStack — a LIFO stack expressed through two FIFO queues,
//     paying O(n) per Push so Pop and Top stay O(1).
//   - ListQueue — a FIFO queue over a singly linked list with front
//     and rear pointers, O(1) for every operation.
//
// Both types start usable at their zero value and report ErrEmpty
// instead of returning garbage when read while empty.  Neither is
// safe for concurrent use; each instance is meant to be owned by one
// caller, exactly like the exercises they reproduce.
package adapt
