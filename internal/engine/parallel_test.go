package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryRowOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 7, 64} {
		visits := make([]int32, 100)
		parallelize(workers, 0, 100, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			assert.Equal(t, int32(1), v, "row %d with %d workers", i, workers)
		}
	}
}

func TestParallelizeBlocksUntilDone(t *testing.T) {
	var done atomic.Int32
	parallelize(8, 0, 64, func(lo, hi int) {
		done.Add(int32(hi - lo))
	})
	// All partitions must have completed before parallelize returned.
	assert.Equal(t, int32(64), done.Load())
}

func TestParallelizeEmptyRange(t *testing.T) {
	called := false
	parallelize(4, 5, 5, func(lo, hi int) { called = true })
	assert.False(t, called)
}
