package reactive

// Batch defers effect execution until fn returns, coalescing multiple signal
// writes into a single notification pass.
func Batch[T any](fn func() T) T {
	Global.incrementBatchDepth()
	defer func() {
		if Global.decrementBatchDepth() {
			Global.flushPending()
		}
	}()
	return fn()
}

// BatchVoid is Batch for side-effecting functions with no return value.
func BatchVoid(fn func()) {
	Batch(func() struct{} {
		fn()
		return struct{}{}
	})
}

// Untrack reads signals inside fn without registering them as dependencies
// of the currently executing effect.
func Untrack[T any](fn func() T) T {
	prev := Global.getCurrentComputation()
	Global.setCurrentComputation(nil)
	defer Global.setCurrentComputation(prev)
	return fn()
}

// IsTracking reports whether a reactive computation is currently executing.
func IsTracking() bool {
	return Global.getCurrentComputation() != nil
}
