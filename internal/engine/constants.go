package engine

// Segment queue sizing.
const (
	// minQueueCapacity is the smallest ring the segment queue allocates.
	minQueueCapacity = 16

	// queueGrowthFactor multiplies the ring size when the queue is full.
	queueGrowthFactor = 2
)

// minSegmentSpan is the smallest End-Start a segment needs to have an
// interior control point.
const minSegmentSpan = 2
