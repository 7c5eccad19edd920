package sorts

import "cmp"

// Quicksort sorts data in place in ascending order.
//
// The pivot is the median of the first, middle and last elements of each
// range. Partitioning scans stop on elements equal to the pivot, so ranges
// full of duplicates still split near the middle. It is not stable.
func Quicksort[T cmp.Ordered](data []T) {
	observe(algorithmQuicksort, len(data))

	q := quicksorter[T]{data: data}
	q.sort(0, len(data)-1)
}

type quicksorter[T cmp.Ordered] struct {
	data  []T
	calls int // Number of sort calls, including empty ranges
}

// sort orders the closed range [first, last].
func (q *quicksorter[T]) sort(first, last int) {
	q.calls++

	if first >= last {
		return
	}

	data := q.data

	// Order the three samples so that data[midpoint] holds their median.
	midpoint := first + (last-first)/2
	if data[first] > data[last] {
		data[first], data[last] = data[last], data[first]
	}

	if data[first] > data[midpoint] {
		data[first], data[midpoint] = data[midpoint], data[first]
	}

	if data[midpoint] > data[last] {
		data[midpoint], data[last] = data[last], data[midpoint]
	}

	pivot := data[midpoint]

	// data[first] <= pivot <= data[last] already.
	left, right := first+1, last-1

	for left <= right {
		// Strict comparisons: both scans must halt on values equal to the
		// pivot, otherwise a pivot at the range's minimum or maximum lets one
		// scan run off the end and the recursion never shrinks.
		for left <= right && data[left] < pivot {
			left++
		}

		for left <= right && data[right] > pivot {
			right--
		}

		if left <= right {
			data[left], data[right] = data[right], data[left]
			left++
			right--
		}
	}

	q.sort(first, left-1)
	q.sort(left, last)
}
