package concurrency

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoLimit(t *testing.T) {
	g := NewGoLimit(2)

	var running, peak, done int32
	for i := 0; i < 10; i++ {
		g.Go(func() {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}

			atomic.AddInt32(&running, -1)
			atomic.AddInt32(&done, 1)
		})
	}

	g.Wait()
	assert.EqualValues(t, 10, done)
	assert.LessOrEqual(t, peak, int32(2))
}

func TestGoLimitDefault(t *testing.T) {
	g := NewGoLimit(0)
	assert.Equal(t, DefaultMax, cap(g.ch))
}
