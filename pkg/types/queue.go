package types

// FIFO with unlimited capacity
// not thread safe
type Queue[T any] struct {
	data []T
}

func (q *Queue[T]) Len() int {
	return len(q.data)
}

func (q *Queue[T]) Push(v T) {
	q.data = append(q.data, v)
}

// returns false if empty
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	v := q.data[0]
	q.data[0] = zero
	q.data = q.data[1:]
	if len(q.data) == 0 {
		q.data = q.data[:0:0]
	}
	return v, true
}
