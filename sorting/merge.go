package sorting

// MergeSort sorts a[lo..hi] (inclusive) in non-decreasing order.
//
// Algorithm:
//  1. If lo >= hi the range holds 0 or 1 element: done.
//  2. mid = lo + (hi-lo)/2.
//  3. MergeSort(lo, mid); MergeSort(mid+1, hi).
//  4. merge(lo, mid, hi).
//
// Returns ErrIndexOutOfRange for a non-empty range outside the slice.
func MergeSort(a []int, lo, hi int) error {
	if err := checkRange("MergeSort", a, lo, hi); err != nil {
		return err
	}
	mergeSort(a, lo, hi)

	return nil
}

// HybridMergeSort sorts a[lo..hi] like MergeSort but hands every subrange of
// length hi-lo+1 ≤ threshold to insertion sort. A threshold ≤ 0 never
// matches, which degenerates to plain merge sort.
func HybridMergeSort(a []int, lo, hi, threshold int) error {
	if err := checkRange("HybridMergeSort", a, lo, hi); err != nil {
		return err
	}
	hybridMergeSort(a, lo, hi, threshold)

	return nil
}

// Sort sorts the whole slice with MergeSort.
func Sort(a []int) {
	mergeSort(a, 0, len(a)-1)
}

// HybridSort sorts the whole slice with HybridMergeSort.
func HybridSort(a []int, threshold int) {
	hybridMergeSort(a, 0, len(a)-1, threshold)
}

func mergeSort(a []int, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, lo, mid)
	mergeSort(a, mid+1, hi)
	merge(a, lo, mid, hi)
}

func hybridMergeSort(a []int, lo, hi, threshold int) {
	if hi-lo+1 <= threshold {
		insertionSort(a, lo, hi)

		return
	}
	// threshold ≤ 0 reaches here for empty and single-element ranges.
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	hybridMergeSort(a, lo, mid, threshold)
	hybridMergeSort(a, mid+1, hi, threshold)
	merge(a, lo, mid, hi)
}

// merge combines the sorted runs a[lo..mid] and a[mid+1..hi].
// Both runs are copied out first (sizes mid-lo+1 and hi-mid); ties take the
// left element.
func merge(a []int, lo, mid, hi int) {
	left := make([]int, mid-lo+1)
	right := make([]int, hi-mid)
	copy(left, a[lo:mid+1])
	copy(right, a[mid+1:hi+1])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	k += copy(a[k:], left[i:])
	copy(a[k:], right[j:])
}
