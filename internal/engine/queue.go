package engine

import "fmt"

// Segment is a half-open run of control points (Start, End) between two
// keys already in the output curve. Indices refer to the control-point table.
type Segment struct {
	Start int
	End   int
}

// Span returns End - Start.
func (s Segment) Span() int { return s.End - s.Start }

// String returns the segment as "(start, end)".
func (s Segment) String() string { return fmt.Sprintf("(%d, %d)", s.Start, s.End) }

// SegmentQueue is a FIFO of segments backed by a growable ring buffer.
// A segment that is already pending is not queued twice.
//
// It is owned by a single reduction and is not safe for concurrent use.
type SegmentQueue struct {
	data     []Segment
	size     int
	readPos  int
	writePos int
	pending  map[Segment]struct{}
}

// NewSegmentQueue creates an empty queue with room for capacity segments.
func NewSegmentQueue(capacity int) *SegmentQueue {
	capacity = max(capacity, minQueueCapacity)
	return &SegmentQueue{
		data:    make([]Segment, capacity),
		pending: make(map[Segment]struct{}, capacity),
	}
}

// Push appends s and reports whether it was queued. Segments without an
// interior control point and segments already pending are skipped.
func (q *SegmentQueue) Push(s Segment) bool {
	if s.Span() < minSegmentSpan {
		return false
	}
	if q.Pending(s) {
		return false
	}
	if q.size == len(q.data) {
		q.grow(len(q.data) * queueGrowthFactor)
	}
	q.data[q.writePos] = s
	q.writePos = (q.writePos + 1) % len(q.data)
	q.size++
	q.pending[s] = struct{}{}
	return true
}

// Pop removes and returns the front segment. ok is false when the queue is
// empty.
func (q *SegmentQueue) Pop() (s Segment, ok bool) {
	if q.size == 0 {
		return Segment{}, false
	}
	s = q.data[q.readPos]
	q.readPos = (q.readPos + 1) % len(q.data)
	q.size--
	delete(q.pending, s)
	return s, true
}

// Len returns the number of pending segments.
func (q *SegmentQueue) Len() int { return q.size }

// Pending reports whether s is waiting in the queue.
func (q *SegmentQueue) Pending(s Segment) bool {
	_, ok := q.pending[s]
	return ok
}

// grow reallocates the ring, unwrapping it so the front sits at index 0.
func (q *SegmentQueue) grow(capacity int) {
	data := make([]Segment, capacity)
	for i := range q.size {
		data[i] = q.data[(q.readPos+i)%len(q.data)]
	}
	q.data = data
	q.readPos = 0
	q.writePos = q.size
}
