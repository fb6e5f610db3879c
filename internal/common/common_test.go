package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmptyIsSingle(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SortedKeys(map[string]int{"C": 1, "A": 2, "B": 3}))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
