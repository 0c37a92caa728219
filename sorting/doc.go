// Package sorting implements the merge-sort variants compared by sortlab.
//
// Two strategies share one recursive skeleton over an inclusive range [lo, hi]:
//
//   - MergeSort       — split at lo+(hi-lo)/2, sort both halves, merge.
//   - HybridMergeSort — as MergeSort, but any subrange of length ≤ threshold
//     is finished with InsertionSort instead of recursing further.
//
// The merge step copies both runs into temporary buffers and prefers the
// left run on ties, so equal elements keep their relative order. Insertion
// sort shifts only strictly greater elements, which keeps it stable too.
// Neither property is promised to callers; tests rely on the tie-break only
// to compare strategies element for element.
//
// Complexity:
//
//   - MergeSort:       Θ(n log n) comparisons and moves, Θ(n) scratch.
//   - HybridMergeSort: Θ(n log n), plus O(threshold²) per leaf block.
//   - InsertionSort:   O(n²) worst case, O(n) on sorted input.
//
// All functions are stateless and operate in place on the caller's slice.
// Range-taking entry points validate their bounds once and return
// ErrIndexOutOfRange without touching the slice; recursion runs unchecked.
package sorting
