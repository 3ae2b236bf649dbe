package set

type Set[T comparable] map[T]struct{}

func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

func (s Set[T]) Add(item ...T) {
	for _, i := range item {
		s[i] = struct{}{}
	}
}

// Insert adds item and reports whether it was not present before.
func (s Set[T]) Insert(item T) bool {
	if s.Contains(item) {
		return false
	}
	s[item] = struct{}{}
	return true
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Size() int {
	return len(s)
}

// Unique returns items without repeats, keeping first occurrences in order.
func Unique[T comparable](items []T) []T {
	seen := New[T]()
	result := make([]T, 0, len(items))
	for _, item := range items {
		if seen.Insert(item) {
			result = append(result, item)
		}
	}
	return result
}
