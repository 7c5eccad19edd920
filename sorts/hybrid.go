package sorts

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
)

// HybridMergeSort sorts data in place in ascending order, or descending with
// the Descending option. See HybridMergeSortFunc.
func HybridMergeSort[T cmp.Ordered](data []T, opts ...Option) {
	HybridMergeSortFunc(data, compare.Ordered[T](), opts...)
}

// HybridMergeSortFunc sorts data using less. Partitions no larger than the
// threshold (DefaultThreshold, or WithThreshold) are insertion sorted; larger
// ones are split in half, each half is sorted in its own buffer, and the
// halves are merged back into data.
//
// When the fronts of the two halves tie, the element from the right half is
// taken first.
func HybridMergeSortFunc[T any](data []T, less compare.Less[T], opts ...Option) {
	assert.True(less != nil, "sorts: nil comparator")

	o := newOptions(opts)

	observe(algorithmHybrid, len(data))
	hybridMergeSort(data, o.threshold, less, o.descending)
}

func hybridMergeSort[T any](data []T, threshold int, less compare.Less[T], descending bool) {
	if len(data) <= 1 || len(data) <= threshold {
		insertionSort(data, less, descending)

		return
	}

	mid := len(data) / 2

	// The halves are copies: merge overwrites data while still reading them.
	left := slices.Clone(data[:mid])
	right := slices.Clone(data[mid:])

	hybridMergeSort(left, threshold, less, descending)
	hybridMergeSort(right, threshold, less, descending)

	merge(data, left, right, less, descending)
}

// merge writes the merge of left and right into dst, which must have room for
// both. left and right must not share storage with dst.
func merge[T any](dst, left, right []T, less compare.Less[T], descending bool) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if compare.OrderedBefore(left[i], right[j], less, descending) {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}

		k++
	}

	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
