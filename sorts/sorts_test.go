package sorts_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/sorts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sorter struct {
	name       string
	sort       func(data []int, opts ...sorts.Option)
	descending bool // Supports the Descending option
}

func allSorters() []sorter {
	return []sorter{
		{name: "selection", sort: sorts.SelectionSort[int], descending: true},
		{name: "bubble", sort: sorts.BubbleSort[int], descending: true},
		{name: "insertion", sort: sorts.InsertionSort[int], descending: true},
		{name: "hybrid merge", sort: sorts.HybridMergeSort[int], descending: true},
		{
			name: "hybrid merge, threshold 1",
			sort: func(data []int, opts ...sorts.Option) {
				sorts.HybridMergeSort(data, append(opts, sorts.WithThreshold(1))...)
			},
			descending: true,
		},
		{
			name: "hybrid merge, threshold 0",
			sort: func(data []int, opts ...sorts.Option) {
				sorts.HybridMergeSort(data, append(opts, sorts.WithThreshold(0))...)
			},
			descending: true,
		},
		{name: "quicksort", sort: func(data []int, _ ...sorts.Option) { sorts.Quicksort(data) }},
	}
}

func inputs() map[string][]int {
	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	random := make([]int, 500)
	for i := range random {
		random[i] = rng.IntN(100) - 50
	}

	ascending := make([]int, 64)
	descending := make([]int, 64)

	for i := range ascending {
		ascending[i] = i
		descending[i] = 64 - i
	}

	return map[string][]int{
		"empty":          {},
		"single":         {42},
		"pair":           {2, 1},
		"three":          {3, 1, 2},
		"small":          {5, 2, 9, 1, 5, 6},
		"duplicates":     {3, 3, 1, 1, 2, 2, 3, 1},
		"all equal":      slices.Repeat([]int{7}, 40),
		"sorted":         ascending,
		"reversed":       descending,
		"negatives":      {-1, -10, 0, 10, -5, 5},
		"random":         random,
		"repeated mins":  append(slices.Repeat([]int{0}, 30), 9, 4, 1, 8),
		"repeated maxes": append(slices.Repeat([]int{99}, 30), 3, 1, 2),
	}
}

func TestSorts_Ascending(t *testing.T) {
	t.Parallel()

	for _, s := range allSorters() {
		for name, input := range inputs() {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				t.Parallel()

				data := slices.Clone(input)
				s.sort(data)

				assert.Len(t, data, len(input))
				assert.True(t, slices.IsSorted(data), "not sorted: %v", data)
				assert.ElementsMatch(t, input, data, "not a permutation of the input")
			})
		}
	}
}

func TestSorts_Descending(t *testing.T) {
	t.Parallel()

	for _, s := range allSorters() {
		if !s.descending {
			continue
		}

		for name, input := range inputs() {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				t.Parallel()

				data := slices.Clone(input)
				s.sort(data, sorts.Descending())

				expected := slices.Clone(input)
				slices.Sort(expected)
				slices.Reverse(expected)

				assert.Equal(t, expected, data)

				for i := 0; i+1 < len(data); i++ {
					assert.GreaterOrEqual(t, data[i], data[i+1])
				}
			})
		}
	}
}

func TestSorts_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range allSorters() {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			data := slices.Clone(inputs()["random"])
			s.sort(data)

			again := slices.Clone(data)
			s.sort(again)

			assert.Equal(t, data, again)
		})
	}
}

func TestWithDescending(t *testing.T) {
	t.Parallel()

	data := []int{1, 3, 2}
	sorts.BubbleSort(data, sorts.WithDescending(true))
	assert.Equal(t, []int{3, 2, 1}, data)

	sorts.BubbleSort(data, sorts.WithDescending(false))
	assert.Equal(t, []int{1, 2, 3}, data)
}

// price orders by Value only; Tag tells ties apart.
type price struct {
	Value int
	Tag   string
}

func byValue(a, b price) bool {
	return a.Value < b.Value
}

func tagged() []price {
	return []price{
		{Value: 2, Tag: "a"},
		{Value: 1, Tag: "b"},
		{Value: 2, Tag: "c"},
		{Value: 1, Tag: "d"},
		{Value: 2, Tag: "e"},
	}
}

func tags(items []price) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Tag
	}

	return out
}

func TestBubbleSort_Stable(t *testing.T) {
	t.Parallel()

	data := tagged()
	sorts.BubbleSortFunc(data, byValue)
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, tags(data))

	data = tagged()
	sorts.BubbleSortFunc(data, byValue, sorts.Descending())
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, tags(data))
}

func TestInsertionSort_StableAscending(t *testing.T) {
	t.Parallel()

	data := tagged()
	sorts.InsertionSortFunc(data, byValue)

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, tags(data))
}

func TestInsertionSort_DescendingReversesTies(t *testing.T) {
	t.Parallel()

	data := tagged()
	sorts.InsertionSortFunc(data, byValue, sorts.Descending())

	// Each element shifts past the ties before it.
	assert.Equal(t, []string{"e", "c", "a", "d", "b"}, tags(data))
}

func TestHybridMergeSort_TiesTakeRightFirst(t *testing.T) {
	t.Parallel()

	data := []price{{Value: 2, Tag: "a"}, {Value: 2, Tag: "b"}}
	sorts.HybridMergeSortFunc(data, byValue, sorts.WithThreshold(1))

	assert.Equal(t, []string{"b", "a"}, tags(data))

	data = []price{{Value: 2, Tag: "a"}, {Value: 2, Tag: "b"}}
	sorts.HybridMergeSortFunc(data, byValue, sorts.WithThreshold(1), sorts.Descending())

	assert.Equal(t, []string{"b", "a"}, tags(data))
}

func TestHybridMergeSort_DefaultThresholdUsesInsertionSort(t *testing.T) {
	t.Parallel()

	// Small enough for a single insertion sort pass, so ties stay in order.
	data := tagged()
	sorts.HybridMergeSortFunc(data, byValue)

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, tags(data))
}

func TestHybridMergeSort_ThresholdEquivalence(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5)) //nolint:gosec

	input := make([]price, 40)
	for i := range input {
		input[i] = price{Value: rng.IntN(6), Tag: string(rune('A' + i))}
	}

	for _, descending := range []bool{false, true} {
		for _, threshold := range []int{len(input), len(input) + 1, 1000} {
			hybrid := slices.Clone(input)
			insertion := slices.Clone(input)

			sorts.HybridMergeSortFunc(hybrid, byValue,
				sorts.WithThreshold(threshold), sorts.WithDescending(descending))
			sorts.InsertionSortFunc(insertion, byValue, sorts.WithDescending(descending))

			assert.Equal(t, insertion, hybrid, "threshold %d, descending %t", threshold, descending)
		}
	}
}

func TestHybridMergeSort_WritesBackIntoCallerStorage(t *testing.T) {
	t.Parallel()

	backing := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, -1, -2, -3, -4, -5, 100}
	window := backing[2:14]

	sorts.HybridMergeSort(window, sorts.WithThreshold(2))

	assert.Equal(t, []int{-4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}, window)
	assert.Equal(t, []int{9, 8}, backing[:2], "elements before the window moved")
	assert.Equal(t, []int{-5, 100}, backing[14:], "elements after the window moved")
}

func TestFunc_SortableTypes(t *testing.T) {
	t.Parallel()

	data := []sortable.Int{42, 10, 25, 10}
	sorts.HybridMergeSortFunc(data, sortable.Less[sortable.Int]())
	assert.Equal(t, []sortable.Int{10, 10, 25, 42}, data)

	words := []sortable.String{"pear", "apple", "fig"}
	sorts.SelectionSortFunc(words, sortable.Less[sortable.String](), sorts.Descending())
	assert.Equal(t, []sortable.String{"pear", "fig", "apple"}, words)
}

func TestFunc_NaturalOrder(t *testing.T) {
	t.Parallel()

	files := []string{"log10", "log2", "log1", "log20"}
	sorts.InsertionSortFunc(files, compare.Natural())

	assert.Equal(t, []string{"log1", "log2", "log10", "log20"}, files)
}

func TestFunc_NilComparatorPanics(t *testing.T) {
	t.Parallel()

	funcs := map[string]func([]int, compare.Less[int], ...sorts.Option){
		"selection": sorts.SelectionSortFunc[int],
		"bubble":    sorts.BubbleSortFunc[int],
		"insertion": sorts.InsertionSortFunc[int],
		"hybrid":    sorts.HybridMergeSortFunc[int],
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.PanicsWithValue(t, "sorts: nil comparator", func() { fn([]int{2, 1}, nil) })
		})
	}
}

func TestNonStrictComparator_StaysInBounds(t *testing.T) {
	t.Parallel()

	lessOrEqual := func(a, b int) bool { return a <= b }
	input := []int{3, 3, 1, 2, 3, 1, 2, 2, 3, 1, 1, 2, 3, 3, 1}

	for _, descending := range []bool{false, true} {
		funcs := []func([]int, compare.Less[int], ...sorts.Option){
			sorts.SelectionSortFunc[int],
			sorts.BubbleSortFunc[int],
			sorts.InsertionSortFunc[int],
			sorts.HybridMergeSortFunc[int],
		}

		for _, fn := range funcs {
			data := slices.Clone(input)

			require.NotPanics(t, func() {
				fn(data, lessOrEqual, sorts.WithDescending(descending), sorts.WithThreshold(2))
			})

			assert.ElementsMatch(t, input, data)
		}
	}
}

func TestSelectionSort_ComparisonCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 10, 33} {
		data := make([]int, n)
		less, calls := compare.Counting(compare.Ordered[int]())

		sorts.SelectionSortFunc(data, less)

		assert.Equal(t, int64(n*(n-1)/2), calls.Load(), "n=%d", n)
	}
}

func TestBubbleSort_EarlyExit(t *testing.T) {
	t.Parallel()

	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	less, calls := compare.Counting(compare.Ordered[int]())

	sorts.BubbleSortFunc(data, less)

	assert.Equal(t, int64(len(data)-1), calls.Load())

	reversed := []int{8, 7, 6, 5, 4, 3, 2, 1}
	less, calls = compare.Counting(compare.Ordered[int]())

	sorts.BubbleSortFunc(reversed, less)

	assert.Equal(t, int64(len(reversed)*(len(reversed)-1)/2), calls.Load())
}

func TestInsertionSort_SortedInputIsLinear(t *testing.T) {
	t.Parallel()

	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	less, calls := compare.Counting(compare.Ordered[int]())

	sorts.InsertionSortFunc(data, less)

	assert.Equal(t, int64(len(data)-1), calls.Load())
}

func TestQuicksort_Strings(t *testing.T) {
	t.Parallel()

	data := []string{"kiwi", "apple", "mango", "apple", "banana"}
	sorts.Quicksort(data)

	assert.Equal(t, []string{"apple", "apple", "banana", "kiwi", "mango"}, data)
}
