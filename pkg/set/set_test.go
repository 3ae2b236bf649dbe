package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New[int]()
	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Size())

	s = New(1, 2, 2, 3)
	assert.Equal(t, 3, s.Size())
}

func TestSet_Insert(t *testing.T) {
	s := New[string]()

	assert.True(t, s.Insert("400000"))
	assert.False(t, s.Insert("400000"))
	assert.True(t, s.Insert("510000"))
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains("510000"))
	assert.False(t, s.Contains("220000"))
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{
			name:  "no duplicates",
			items: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "duplicates keep first occurrence order",
			items: []string{"b", "a", "b", "c", "a"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "empty",
			items: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unique(tt.items))
		})
	}
}
