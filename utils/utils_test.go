package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	chunks := Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)

	assert.Empty(t, Chunk([]int{}, 3))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 3))
}

func TestUniquesKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Uniques([]string{"b", "a", "b", "c", "a"}))
}

func TestSortedKeys(t *testing.T) {
	input := map[string]int{"zeta": 1, "alpha": 2, "mu": 3}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, SortedKeys(input))
}

func TestFilterAndMap(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{4, 8}, Map(even, func(i int) int { return i * 2 }))
	assert.True(t, Contains(even, 4))
	assert.False(t, Contains(even, 3))
}
