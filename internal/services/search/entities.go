package search

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFound      Status = "FOUND"
	StatusNotFound   Status = "NOT_FOUND"
	StatusError      Status = "ERROR"
)

// MaxUnknownDigits is the widest unknown segment whose keyspace fits in uint64.
const MaxUnknownDigits = 19

type Status string

// Spec describes one keyspace: every candidate is Prefix + N zero-padded digits + Suffix.
type Spec struct {
	Prefix        string `json:"prefix"`
	Suffix        string `json:"suffix"`
	UnknownDigits int    `json:"unknown_digits"`
	TargetDigest  []byte `json:"target_digest"`
}

// Total returns the keyspace size 10^UnknownDigits.
func (s *Spec) Total() (uint64, error) {
	if s.UnknownDigits < 0 || s.UnknownDigits > MaxUnknownDigits {
		return 0, fmt.Errorf("%w: unknown digits must be in [0, %d], got %d",
			ErrConfiguration, MaxUnknownDigits, s.UnknownDigits)
	}

	total := uint64(1)
	for i := 0; i < s.UnknownDigits; i++ {
		total *= 10
	}

	return total, nil
}

// CandidateLength is the byte length of every candidate in s.
func (s *Spec) CandidateLength() int {
	return len(s.Prefix) + s.UnknownDigits + len(s.Suffix)
}

type Result struct {
	TaskID    uuid.UUID `json:"task_id"`
	Status    Status    `json:"status"`
	Candidate string    `json:"candidate,omitempty"`
	Index     uint64    `json:"index"`
	Examined  uint64    `json:"examined"`
}

func (r *Result) Found() bool {
	return r != nil && r.Status == StatusFound
}

func Found(candidate string, index uint64) *Result {
	return &Result{
		Status:    StatusFound,
		Candidate: candidate,
		Index:     index,
	}
}

func NotFound() *Result {
	return &Result{Status: StatusNotFound}
}

type TaskProgress struct {
	TaskID          uuid.UUID `json:"task_id"`
	Status          Status    `json:"status"`
	IterationsDone  uint64    `json:"iterations_done"`
	TotalIterations uint64    `json:"total_iterations"`
}

// Percent returns progress in [0, 100].
func (p *TaskProgress) Percent() float64 {
	if p.TotalIterations == 0 {
		return 0
	}
	return float64(p.IterationsDone) / float64(p.TotalIterations) * 100
}

// Request is a search over several candidate prefixes sharing one suffix and target.
type Request struct {
	Prefixes      []string
	Suffix        string
	UnknownDigits int
	TargetDigest  []byte
	Workers       int
}

// Spec builds the keyspace for one prefix of the request.
func (r *Request) Spec(prefix string) *Spec {
	return &Spec{
		Prefix:        prefix,
		Suffix:        r.Suffix,
		UnknownDigits: r.UnknownDigits,
		TargetDigest:  r.TargetDigest,
	}
}
