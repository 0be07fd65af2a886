// Package utils holds helpers shared by the commands.
package utils

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MultiThread runs f for every integer in [start, end), spread over goroutines. It should itself be
// called sequentially, not in a separate goroutine: MultiThread returns once every call to f has.
//
// 'opsPerThread' is the number of indexes that each goroutine will handle before requesting another
// set
// 'threadsPerCPU' is the number of goroutines created for each CPU
//
// Networks are not safe for concurrent use, so f must only touch Networks that no other index
// touches.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}

	if opsPerThread < 1 {
		opsPerThread = 1
	}
	if threadsPerCPU < 1 {
		threadsPerCPU = 1
	}

	numThreads := runtime.NumCPU() * threadsPerCPU
	if chunks := (end - start + opsPerThread - 1) / opsPerThread; chunks < numThreads {
		numThreads = chunks
	}

	var next int64 = int64(start)
	var wg sync.WaitGroup

	wg.Add(numThreads)
	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				i := int(atomic.AddInt64(&next, int64(opsPerThread))) - opsPerThread
				if i >= end {
					return
				}

				e := i + opsPerThread
				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
