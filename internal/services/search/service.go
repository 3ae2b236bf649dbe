package search

import (
	"context"
)

type Service interface {
	// Find tries every prefix of the request in order and returns the first match.
	Find(ctx context.Context, req *Request) (*Result, error)
}
