package engine

import "snake-engine/internal/core"

// QueueCapacity is the number of headings that can be buffered between
// logical ticks. Buffering prevents missed keys on fast double-turns.
const QueueCapacity = 4

// InputQueue is a fixed-capacity circular FIFO of pending headings.
// Enqueue on a full queue is a silent no-op: correctness only requires the
// queue to stay responsive, not lossless. Reversal and duplicate filtering
// is the producer's job (see Engine.HandleHeading), done against PeekLast.
type InputQueue struct {
	buf   [QueueCapacity]core.Vec2
	head  int
	tail  int
	count int
}

// Reset empties the queue.
func (q *InputQueue) Reset() {
	q.head = 0
	q.tail = 0
	q.count = 0
}

// Len returns the number of buffered headings.
func (q *InputQueue) Len() int {
	return q.count
}

// Enqueue appends a heading. Dropped silently when the queue is full.
func (q *InputQueue) Enqueue(dir core.Vec2) {
	if q.count >= QueueCapacity {
		return
	}
	q.buf[q.tail] = dir
	q.tail = (q.tail + 1) % QueueCapacity
	q.count++
}

// Dequeue removes and returns the oldest heading.
// The second return value is false when the queue is empty.
func (q *InputQueue) Dequeue() (core.Vec2, bool) {
	if q.count == 0 {
		return core.Vec2{}, false
	}
	dir := q.buf[q.head]
	q.head = (q.head + 1) % QueueCapacity
	q.count--
	return dir, true
}

// PeekLast returns the most recently enqueued heading without removing it.
// The second return value is false when the queue is empty.
func (q *InputQueue) PeekLast() (core.Vec2, bool) {
	if q.count == 0 {
		return core.Vec2{}, false
	}
	last := (q.tail - 1 + QueueCapacity) % QueueCapacity
	return q.buf[last], true
}
