// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ik5/owl/audio"
)

// tapSource counts reads of the wrapped source and flags concurrent ones.
type tapSource struct {
	audio.Source

	reads   atomic.Int64
	active  atomic.Int64
	overlap atomic.Bool
}

func (s *tapSource) ReadSamples(dst []float32) (int, error) {
	if s.active.Add(1) > 1 {
		s.overlap.Store(true)
	}
	defer s.active.Add(-1)

	s.reads.Add(1)
	return s.Source.ReadSamples(dst)
}

// assertIdle checks that nothing reads src any more.
func assertIdle(t *testing.T, src *tapSource) {
	t.Helper()

	before := src.reads.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, src.reads.Load(), "source read after Close returned")
	assert.Zero(t, src.active.Load())
	assert.False(t, src.overlap.Load(), "two sessions read concurrently")
}
