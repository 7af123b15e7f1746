package FIFOqueue

import (
	"errors"
	"sync/atomic"

	"github.com/antigloss/go/concurrent/container/queue"
)

// ErrNilValue is returned when pushing nil, which the queue uses to signal emptiness.
var ErrNilValue = errors.New("cannot push nil value")

// FIFOQueue is a first-in first-out queue safe for concurrent use.
type FIFOQueue struct {
	queue *queue.LockfreeQueue
	size  int64
}

func New() *FIFOQueue {
	return &FIFOQueue{
		queue: queue.NewLockfreeQueue(),
	}
}

func (q *FIFOQueue) Push(v interface{}) error {
	if v == nil {
		return ErrNilValue
	}
	q.queue.Push(v)
	atomic.AddInt64(&q.size, 1)
	return nil
}

// Pop returns the head of the queue, or nil when the queue is empty.
func (q *FIFOQueue) Pop() (interface{}, error) {
	v := q.queue.Pop()
	if v != nil {
		atomic.AddInt64(&q.size, -1)
	}
	return v, nil
}

// Len is the number of queued values.
func (q *FIFOQueue) Len() int {
	return int(atomic.LoadInt64(&q.size))
}
