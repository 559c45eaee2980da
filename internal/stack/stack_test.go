package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s Stack[string]

	_, ok := s.Peek()
	require.False(t, ok, "Peek on empty stack reports empty")
	_, ok = s.Pop()
	require.False(t, ok, "Pop on empty stack reports empty")

	s.Push("a")
	s.Push("b")
	s.Push("c")
	require.Equal(t, 3, s.Len())

	v, ok := s.Peek()
	require.True(t, ok, "Peek sees the top")
	require.Equal(t, "c", v)
	require.Equal(t, 3, s.Len(), "Peek does not shrink the stack")

	for _, expected := range []string{"c", "b", "a"} {
		v, ok := s.Pop()
		require.True(t, ok, "Pop succeeds")
		require.Equal(t, expected, v)
	}
	require.Equal(t, 0, s.Len(), "stack is empty after popping everything")
}
