package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMerge_TwoRuns merges runs of unequal length, including ties and a
// trailing right run.
func TestMerge_TwoRuns(t *testing.T) {
	a := []int{100, 1, 4, 4, 9, 2, 4, 10, 11, -1}
	merge(a, 1, 4, 8)
	assert.Equal(t, []int{100, 1, 2, 4, 4, 4, 9, 10, 11, -1}, a)
}

// TestMerge_EqualKeys merges runs that share keys across the boundary.
func TestMerge_EqualKeys(t *testing.T) {
	a := []int{5, 5, 5, 5}
	merge(a, 0, 1, 3)
	assert.Equal(t, []int{5, 5, 5, 5}, a)

	b := []int{1, 3, 1, 3}
	merge(b, 0, 1, 3)
	assert.Equal(t, []int{1, 1, 3, 3}, b)
}

func TestInsertionSort_StrictShift(t *testing.T) {
	a := []int{2, 1, 2, 1}
	insertionSort(a, 0, 3)
	assert.Equal(t, []int{1, 1, 2, 2}, a)
}
