// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"math/bits"
	"sync/atomic"
)

// SampleQueue is a bounded single-producer single-consumer ring of samples.
// Push must only be called from one goroutine and Pop from one other; Len is
// safe from either. Neither side ever waits on the other.
type SampleQueue struct {
	buf  []float64
	mask uint64

	head atomic.Uint64 // next read, owned by the consumer
	tail atomic.Uint64 // next write, owned by the producer
}

// NewSampleQueue returns a queue holding at least capacity samples.
func NewSampleQueue(capacity int) *SampleQueue {
	size := uint64(1)
	if capacity > 1 {
		size = 1 << bits.Len64(uint64(capacity-1))
	}
	return &SampleQueue{
		buf:  make([]float64, size),
		mask: size - 1,
	}
}

// Cap returns the number of samples the queue can hold.
func (q *SampleQueue) Cap() int { return len(q.buf) }

// Len returns the number of queued samples.
func (q *SampleQueue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Push appends as many of samples as fit and returns how many were taken.
func (q *SampleQueue) Push(samples []float64) int {
	tail := q.tail.Load()
	free := uint64(len(q.buf)) - (tail - q.head.Load())
	n := min(uint64(len(samples)), free)

	for i := range n {
		q.buf[(tail+i)&q.mask] = samples[i]
	}
	q.tail.Store(tail + n)

	return int(n)
}

// Pop moves up to len(dst) samples into dst and returns how many were read.
func (q *SampleQueue) Pop(dst []float64) int {
	head := q.head.Load()
	n := min(uint64(len(dst)), q.tail.Load()-head)

	for i := range n {
		dst[i] = q.buf[(head+i)&q.mask]
	}
	q.head.Store(head + n)

	return int(n)
}
