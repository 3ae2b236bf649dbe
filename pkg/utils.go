package pkg

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrInvalidParts = errors.New("parts must be greater than 0")

// Range represents a range [Start, End)
type Range struct {
	Start uint64
	End   uint64
}

func (r Range) Size() uint64 {
	return r.End - r.Start
}

func (r Range) Empty() bool {
	return r.Start >= r.End
}

// SplitRange splits the total space [0, totalSize) into 'parts' contiguous ranges.
// Range i is [i*totalSize/parts, (i+1)*totalSize/parts), so sizes differ by at most one
// and ranges past totalSize are empty when parts > totalSize.
func SplitRange(totalSize uint64, parts int) ([]Range, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParts, parts)
	}

	ranges := make([]Range, parts)
	n := uint64(parts)

	start := uint64(0)
	for i := uint64(0); i < n; i++ {
		end := boundary(totalSize, i+1, n)
		ranges[i] = Range{
			Start: start,
			End:   end,
		}
		start = end
	}

	return ranges, nil
}

// boundary returns floor(i*total/n) without overflowing, i <= n.
func boundary(total, i, n uint64) uint64 {
	hi, lo := bits.Mul64(i, total)
	q, _ := bits.Div64(hi, lo, n)
	return q
}

func ToPtr[T any](v T) *T {
	return &v
}
