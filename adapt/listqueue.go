package adapt

// queueNode is one cell of ListQueue's backing list.
type queueNode struct {
	val  int
	next *queueNode
}

// ListQueue is a FIFO queue over a singly linked list.  A front
// pointer serves dequeues and a rear pointer serves enqueues, so
// every operation is O(1).
//
// The zero value is an empty, ready-to-use queue.
type ListQueue struct {
	front *queueNode
	rear  *queueNode
	size  int
}

// Push appends v at the rear of the queue.
func (q *ListQueue) Push(v int) {
	node := &queueNode{val: v}
	if q.rear == nil {
		q.front, q.rear = node, node
	} else {
		q.rear.next = node
		q.rear = node
	}
	q.size++
}

// Pop removes and returns the front element.
// Returns ErrEmpty when the queue holds nothing.
func (q *ListQueue) Pop() (int, error) {
	if q.front == nil {
		return 0, ErrEmpty
	}
	v := q.front.val
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--

	return v, nil
}

// Front returns the front element without removing it.
// Returns ErrEmpty when the queue holds nothing.
func (q *ListQueue) Front() (int, error) {
	if q.front == nil {
		return 0, ErrEmpty
	}

	return q.front.val, nil
}

// Empty reports whether the queue holds no elements.
func (q *ListQueue) Empty() bool { return q.size == 0 }

// Len returns the number of queued elements.
func (q *ListQueue) Len() int { return q.size }
