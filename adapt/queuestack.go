package adapt

import "errors"

// ErrEmpty is returned when Pop, Top, or Front is called on an empty
// container.
var ErrEmpty = errors.New("adapt: container is empty")

// QueueStack is a LIFO stack built from two FIFO queues.
//
// Push drains the primary queue into the scratch queue, enqueues the
// new element first, and drains back — so the newest element always
// sits at the primary queue's front.  This is the push-heavy variant:
// Push is O(n), Pop and Top are O(1).
//
// The zero value is an empty, ready-to-use stack.
type QueueStack struct {
	primary []int
	scratch []int
}

// Push places v on top of the stack.  O(n).
func (s *QueueStack) Push(v int) {
	// 1. Move everything aside
	for len(s.primary) > 0 {
		s.scratch = append(s.scratch, s.primary[0])
		s.primary = s.primary[1:]
	}
	// 2. New element becomes the queue front
	s.primary = append(s.primary, v)
	// 3. Restore the older elements behind it
	for len(s.scratch) > 0 {
		s.primary = append(s.primary, s.scratch[0])
		s.scratch = s.scratch[1:]
	}
}

// Pop removes and returns the top element.
// Returns ErrEmpty when the stack holds nothing.
func (s *QueueStack) Pop() (int, error) {
	if len(s.primary) == 0 {
		return 0, ErrEmpty
	}
	v := s.primary[0]
	s.primary = s.primary[1:]

	return v, nil
}

// Top returns the top element without removing it.
// Returns ErrEmpty when the stack holds nothing.
func (s *QueueStack) Top() (int, error) {
	if len(s.primary) == 0 {
		return 0, ErrEmpty
	}

	return s.primary[0], nil
}

// Empty reports whether the stack holds no elements.
func (s *QueueStack) Empty() bool { return len(s.primary) == 0 }

// Len returns the number of stacked elements.
func (s *QueueStack) Len() int { return len(s.primary) }
