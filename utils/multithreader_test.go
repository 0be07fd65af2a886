package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiThread(t *testing.T) {
	cases := []struct {
		start, end, ops, threads int
	}{
		{0, 100, 1, 1},
		{0, 100, 7, 2},
		{5, 6, 10, 4},
		{-10, 37, 3, 0},
	}

	for _, c := range cases {
		counts := make([]int32, c.end-c.start)
		MultiThread(c.start, c.end, func(i int) {
			atomic.AddInt32(&counts[i-c.start], 1)
		}, c.ops, c.threads)

		for i, n := range counts {
			assert.Equal(t, int32(1), n, "index %d of [%d, %d)", i+c.start, c.start, c.end)
		}
	}
}

func TestMultiThreadEmpty(t *testing.T) {
	called := false
	MultiThread(4, 4, func(int) { called = true }, 1, 1)
	MultiThread(4, 2, func(int) { called = true }, 1, 1)
	assert.False(t, called)
}
