// Package stack provides the open-element stack the tree
// construction loop works against.
package stack

type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := s.Len()
	if l == 0 {
		return zero, false
	}
	v := (*s)[l-1]
	(*s)[l-1] = zero
	*s = (*s)[:l-1]
	return v, true
}

func (s Stack[T]) Peek() (T, bool) {
	if l := s.Len(); l > 0 {
		return s[l-1], true
	}
	var zero T
	return zero, false
}

func (s Stack[T]) Len() int {
	return len(s)
}
