package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_Total(t *testing.T) {
	tests := []struct {
		name    string
		digits  int
		want    uint64
		wantErr bool
	}{
		{name: "zero digits", digits: 0, want: 1},
		{name: "four digits", digits: 4, want: 10_000},
		{name: "card middle", digits: 6, want: 1_000_000},
		{name: "widest", digits: 19, want: 10_000_000_000_000_000_000},
		{name: "overflow", digits: 20, wantErr: true},
		{name: "negative", digits: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &Spec{UnknownDigits: tt.digits}
			got, err := spec.Total()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskProgress_Percent(t *testing.T) {
	p := &TaskProgress{IterationsDone: 250, TotalIterations: 1000}
	assert.InDelta(t, 25.0, p.Percent(), 1e-9)

	p = &TaskProgress{}
	assert.Equal(t, 0.0, p.Percent())
}

func TestRequest_Spec(t *testing.T) {
	req := &Request{Suffix: "1111", UnknownDigits: 6, TargetDigest: []byte{1, 2}}
	spec := req.Spec("400000")

	assert.Equal(t, "400000", spec.Prefix)
	assert.Equal(t, "1111", spec.Suffix)
	assert.Equal(t, 6, spec.UnknownDigits)
	assert.Equal(t, 16, spec.CandidateLength())
}

func TestResult_Found(t *testing.T) {
	assert.True(t, Found("x", 1).Found())
	assert.False(t, NotFound().Found())

	var r *Result
	assert.False(t, r.Found())
}
