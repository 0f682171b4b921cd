// Package list implements classic singly-linked-list exercises:
// tail insertion, nth-from-end removal, group-wise reversal, middle
// deletion, and digit-list addition.
//
// The Node type is deliberately bare — a value and a next pointer —
// because the exercises are about pointer manipulation, not about a
// container abstraction.  Every operation takes the head pointer and
// returns the (possibly new) head; lists are never shared between
// calls and none of the routines allocate more than O(1) extra nodes
// beyond their documented output.
package list
