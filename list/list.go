package list

import (
	"errors"
	"fmt"
)

// Sentinel errors for list operations.
var (
	// ErrOutOfRange is returned when an index does not address an
	// existing node (n < 1 or n > length).
	ErrOutOfRange = errors.New("list: index out of range")

	// ErrBadGroupSize is returned by ReverseKGroup for k < 1.
	ErrBadGroupSize = errors.New("list: group size must be at least 1")
)

// Node is one cell of a singly linked list.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a list holding vals in order and returns its head.
// An empty slice yields a nil head.
func FromSlice(vals []int) *Node {
	var head *Node
	tail := &head
	for _, v := range vals {
		*tail = &Node{Val: v}
		tail = &(*tail).Next
	}

	return head
}

// Slice drains the list into a fresh slice, head first.
func (n *Node) Slice() []int {
	var out []int
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// Len counts the nodes reachable from n.
func (n *Node) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}

	return count
}

// Append inserts v at the tail and returns the head, which changes
// only when the list was empty.  O(n) walk to the tail.
func Append(head *Node, v int) *Node {
	node := &Node{Val: v}
	if head == nil {
		return node
	}
	cur := head
	for cur.Next != nil {
		cur = cur.Next
	}
	cur.Next = node

	return head
}

// RemoveFromEnd deletes the nth node counting from the tail (n=1 is
// the last node) and returns the new head.
// Returns ErrOutOfRange when n < 1 or n exceeds the list length.
func RemoveFromEnd(head *Node, n int) (*Node, error) {
	length := head.Len()
	if n < 1 || n > length {
		return head, fmt.Errorf("%w: n=%d, length=%d", ErrOutOfRange, n, length)
	}
	// removing the head itself
	if n == length {
		return head.Next, nil
	}
	// stop one node before the victim
	cur := head
	for i := 0; i < length-n-1; i++ {
		cur = cur.Next
	}
	cur.Next = cur.Next.Next

	return head, nil
}

// DeleteMiddle removes the ⌊len/2⌋-th node (0-indexed) using the
// slow/fast two-pointer walk and returns the head.
// A list of zero or one nodes becomes nil.
func DeleteMiddle(head *Node) *Node {
	if head == nil || head.Next == nil {
		return nil
	}
	slow, fast := head, head.Next.Next
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	slow.Next = slow.Next.Next

	return head
}

// ReverseKGroup reverses every full group of k consecutive nodes and
// leaves a trailing partial group untouched, returning the new head.
// Returns ErrBadGroupSize for k < 1; k == 1 is a no-op.
//
// Each group is reversed by pointer rotation, so the whole operation
// is O(n) time and O(1) extra memory.
func ReverseKGroup(head *Node, k int) (*Node, error) {
	if k < 1 {
		return head, fmt.Errorf("%w: k=%d", ErrBadGroupSize, k)
	}
	if k == 1 || head == nil {
		return head, nil
	}

	remaining := head.Len()
	dummy := &Node{Next: head}
	groupPrev := dummy

	for remaining >= k {
		// reverse k nodes starting at groupPrev.Next
		first := groupPrev.Next // becomes the group's tail
		prev, cur := (*Node)(nil), first
		for i := 0; i < k; i++ {
			next := cur.Next
			cur.Next = prev
			prev, cur = cur, next
		}
		// splice the reversed group back in
		groupPrev.Next = prev
		first.Next = cur
		groupPrev = first
		remaining -= k
	}

	return dummy.Next, nil
}

// AddNumbers adds two non-negative integers stored as little-endian
// digit lists (least significant digit first) and returns the sum in
// the same encoding.  A nil operand reads as zero; both nil yields nil.
func AddNumbers(a, b *Node) *Node {
	var head *Node
	tail := &head
	carry := 0
	for a != nil || b != nil || carry != 0 {
		sum := carry
		if a != nil {
			sum += a.Val
			a = a.Next
		}
		if b != nil {
			sum += b.Val
			b = b.Next
		}
		carry = sum / 10
		*tail = &Node{Val: sum % 10}
		tail = &(*tail).Next
	}

	return head
}
