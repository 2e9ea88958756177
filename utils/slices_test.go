package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7))
	require.Equal(t, -1, FindIndex([]int{4, 7}, 5))
	require.Equal(t, -1, FindIndex([]string(nil), "a"))
	require.True(t, Contains([]string{"a", "b"}, "b"))
	require.False(t, Contains([]string{"a", "b"}, "c"))
}
