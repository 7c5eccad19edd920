package sorts

import (
	"cmp"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
)

// SelectionSort sorts data in place in ascending order, or descending with
// the Descending option.
func SelectionSort[T cmp.Ordered](data []T, opts ...Option) {
	SelectionSortFunc(data, compare.Ordered[T](), opts...)
}

// SelectionSortFunc sorts data in place using less. Every call performs
// n(n-1)/2 comparisons and at most n-1 swaps. It is not stable.
func SelectionSortFunc[T any](data []T, less compare.Less[T], opts ...Option) {
	assert.True(less != nil, "sorts: nil comparator")

	o := newOptions(opts)

	observe(algorithmSelection, len(data))
	selectionSort(data, less, o.descending)
}

func selectionSort[T any](data []T, less compare.Less[T], descending bool) {
	length := len(data)

	for i := 0; i < length-1; i++ {
		extremal := i

		for j := i + 1; j < length; j++ {
			if descending {
				if less(data[extremal], data[j]) {
					extremal = j
				}
			} else if less(data[j], data[extremal]) {
				extremal = j
			}
		}

		data[i], data[extremal] = data[extremal], data[i]
	}
}

// BubbleSort sorts data in place in ascending order, or descending with
// the Descending option.
func BubbleSort[T cmp.Ordered](data []T, opts ...Option) {
	BubbleSortFunc(data, compare.Ordered[T](), opts...)
}

// BubbleSortFunc sorts data in place using less. It stops after the first
// pass that swaps nothing, so sorted input costs n-1 comparisons. It is stable.
func BubbleSortFunc[T any](data []T, less compare.Less[T], opts ...Option) {
	assert.True(less != nil, "sorts: nil comparator")

	o := newOptions(opts)

	observe(algorithmBubble, len(data))
	bubbleSort(data, less, o.descending)
}

func bubbleSort[T any](data []T, less compare.Less[T], descending bool) {
	length := len(data)

	for i := 0; i < length; i++ {
		swapped := false

		for j := 0; j < length-i-1; j++ {
			var outOfOrder bool
			if descending {
				outOfOrder = less(data[j], data[j+1])
			} else {
				outOfOrder = less(data[j+1], data[j])
			}

			if outOfOrder {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

// InsertionSort sorts data in place in ascending order, or descending with
// the Descending option.
func InsertionSort[T cmp.Ordered](data []T, opts ...Option) {
	InsertionSortFunc(data, compare.Ordered[T](), opts...)
}

// InsertionSortFunc sorts data in place using less. Ascending order is
// stable. In descending order an element shifts past every element it is not
// strictly before, which reverses runs of ties under a strict comparator.
func InsertionSortFunc[T any](data []T, less compare.Less[T], opts ...Option) {
	assert.True(less != nil, "sorts: nil comparator")

	o := newOptions(opts)

	observe(algorithmInsertion, len(data))
	insertionSort(data, less, o.descending)
}

func insertionSort[T any](data []T, less compare.Less[T], descending bool) {
	for i := 1; i < len(data); i++ {
		current := data[i]
		j := i - 1

		for j >= 0 {
			var shift bool
			if descending {
				shift = !less(current, data[j])
			} else {
				shift = less(current, data[j])
			}

			if !shift {
				break
			}

			data[j+1] = data[j]
			j--
		}

		data[j+1] = current
	}
}
