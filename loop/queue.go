package loop

import "sync"

// actionQueue is the deferred action queue: a multi-producer FIFO of
// drawing mutations, drained by the UI goroutine once per frame tick.
// Each queued closure carries the style snapshot captured at enqueue
// time, so enqueue order is the only ordering that matters.
type actionQueue struct {
	mu      sync.Mutex
	pending []func()
}

// enqueue appends f without blocking. Safe from any goroutine.
func (q *actionQueue) enqueue(f func()) {
	q.mu.Lock()
	q.pending = append(q.pending, f)
	q.mu.Unlock()
}

// drain removes and returns everything enqueued so far. Actions
// enqueued while the returned batch is executing land in the next
// drain, which keeps a feedback action from starving the frame tick.
func (q *actionQueue) drain() []func() {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()
	return batch
}

// len reports the number of pending actions.
func (q *actionQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
