package search

import (
	"errors"
	"fmt"
)

var ErrConfiguration = errors.New("invalid search configuration")
var ErrInvalidIndex = errors.New("candidate index out of range")
var ErrWorkerFault = errors.New("search worker failed")

// InterruptedError reports a search stopped by its context before the keyspace was exhausted.
type InterruptedError struct {
	Examined uint64
	Total    uint64
	Err      error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("search interrupted after %d of %d candidates: %v", e.Examined, e.Total, e.Err)
}

func (e *InterruptedError) Unwrap() error {
	return e.Err
}
