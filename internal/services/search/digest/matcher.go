package digest

import (
	"bytes"
	"hash"
)

// Matcher compares candidates against one target digest.
// Not safe for concurrent use: each worker owns its own Matcher.
type Matcher struct {
	h      hash.Hash
	target []byte
	sum    []byte
}

func NewMatcher(a Algorithm, target []byte) *Matcher {
	h := a.New()
	return &Matcher{
		h:      h,
		target: target,
		sum:    make([]byte, 0, h.Size()),
	}
}

func (m *Matcher) Match(candidate []byte) bool {
	m.h.Reset()
	m.h.Write(candidate)
	m.sum = m.h.Sum(m.sum[:0])
	return bytes.Equal(m.sum, m.target)
}

// Matches reports whether digest(candidate) equals target.
func Matches(a Algorithm, candidate string, target []byte) bool {
	return bytes.Equal(a.Sum([]byte(candidate)), target)
}
