package worker

import "sync/atomic"

// Token is a write-once cancellation flag shared by the workers of one search.
type Token struct {
	cancelled atomic.Bool
}

// Cancel sets the flag and reports whether this call was the one that set it.
func (t *Token) Cancel() bool {
	return t.cancelled.CompareAndSwap(false, true)
}

func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}
