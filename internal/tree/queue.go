// internal/tree/queue.go
package tree

type qnode[T any] struct {
	value T
	next  *qnode[T]
}

// Queue is a FIFO backed by a singly linked list.
type Queue[T any] struct {
	head   *qnode[T]
	tail   *qnode[T]
	length int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(value T) {
	n := &qnode[T]{value: value}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.length++
}

// Pop removes and returns the oldest value; ok is false on an empty queue.
func (q *Queue[T]) Pop() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--

	return n.value, true
}

func (q *Queue[T]) Len() int {
	return q.length
}

func (q *Queue[T]) Empty() bool {
	return q.head == nil
}
