package sorting

// InsertionSort sorts a[lo..hi] (inclusive) by shifting strictly greater
// elements one slot right and dropping each key into the gap.
// Returns ErrIndexOutOfRange for a non-empty range outside the slice.
//
// Complexity: O((hi-lo)²) worst case, O(hi-lo) on sorted input.
func InsertionSort(a []int, lo, hi int) error {
	if err := checkRange("InsertionSort", a, lo, hi); err != nil {
		return err
	}
	insertionSort(a, lo, hi)

	return nil
}

func insertionSort(a []int, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		key := a[i]
		j := i - 1
		for j >= lo && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
