package rerank

import "runtime"

// maxParallelism bounds the errgroup's concurrent goroutines to the number
// of usable CPUs, avoiding unbounded goroutine creation on large candidate
// sets.
func maxParallelism() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
