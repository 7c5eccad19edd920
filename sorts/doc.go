// Package sorts provides in-place, comparator-driven sorting algorithms.
//
// # Algorithms
//
//   - [SelectionSort]: O(n²) comparisons, O(n) swaps, not stable.
//   - [BubbleSort]: O(n²), O(n) on sorted input, stable.
//   - [InsertionSort]: O(n²), stable in ascending order.
//   - [HybridMergeSort]: merge sort that hands partitions of at most the
//     threshold to insertion sort. O(n log n).
//   - [Quicksort]: median-of-three Hoare partitioning over naturally
//     ordered values, ascending only.
//
// Each sort except Quicksort has a Func variant that takes a
// [compare.Less] for element types without a natural order, and accepts
// [Option] values such as [Descending].
//
// # Descending order
//
// Descending mode swaps the comparator's operands; it never negates the
// result. The one exception is insertion sort, whose descending shift
// condition is !less(current, data[j]). With a strict comparator that makes
// descending insertion sort move equal elements past each other, so it is
// not stable, and HybridMergeSort inherits this for small partitions.
//
// # Ties in HybridMergeSort
//
// The merge step takes from the left run only when the left front is
// strictly before the right front. On a tie the right element goes first,
// so HybridMergeSort is not stable across merge boundaries.
package sorts
