package candidate

import (
	"fmt"

	"github.com/Pomi44/OIB/internal/services/search"
)

// Generator maps keyspace indexes to candidate identifiers.
type Generator struct {
	prefix string
	suffix string
	digits int
	total  uint64
}

func New(spec *search.Spec) (*Generator, error) {
	total, err := spec.Total()
	if err != nil {
		return nil, err
	}

	return &Generator{
		prefix: spec.Prefix,
		suffix: spec.Suffix,
		digits: spec.UnknownDigits,
		total:  total,
	}, nil
}

// TotalSize returns the number of candidates in the keyspace
func (g *Generator) TotalSize() uint64 {
	return g.total
}

// Generate returns prefix + index padded to the digit width + suffix.
func (g *Generator) Generate(index uint64) (string, error) {
	buf := g.Buffer()
	if err := g.Fill(buf, index); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Buffer allocates a candidate-sized buffer with prefix and suffix already in place.
// Fill only rewrites the digit window, so one buffer serves a whole scan.
func (g *Generator) Buffer() []byte {
	buf := make([]byte, len(g.prefix)+g.digits+len(g.suffix))
	copy(buf, g.prefix)
	copy(buf[len(g.prefix)+g.digits:], g.suffix)
	return buf
}

// Fill writes index into the digit window of buf obtained from Buffer.
func (g *Generator) Fill(buf []byte, index uint64) error {
	if index >= g.total {
		return fmt.Errorf("%w: %d not in [0, %d)", search.ErrInvalidIndex, index, g.total)
	}

	window := buf[len(g.prefix) : len(g.prefix)+g.digits]
	for i := len(window) - 1; i >= 0; i-- {
		window[i] = byte('0' + index%10)
		index /= 10
	}

	return nil
}
