package compare

import (
	"cmp"

	"facette.io/natsort"
	"go.uber.org/atomic"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less is a comparator: it returns true when a should be placed before b.
//
// Implementations are expected to define a strict weak ordering (irreflexive,
// asymmetric, transitive). A comparator that violates this never causes a sort
// to index out of bounds, but the resulting order is unspecified.
type Less[T any] func(a, b T) bool

// Ordered returns the default comparator for naturally ordered types, which is
// plain "<".
func Ordered[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// OrderedBefore reports whether first goes before second under less. When
// descending is set, the operands are swapped rather than the result negated,
// so a strict comparator stays strict.
func OrderedBefore[T any](first, second T, less Less[T], descending bool) bool {
	if descending {
		return less(second, first)
	}

	return less(first, second)
}

// Reverse returns a comparator with the operands of l swapped.
func (l Less[T]) Reverse() Less[T] {
	return func(a, b T) bool {
		return l(b, a)
	}
}

// Natural orders strings the way a human would read them, so that numeric runs
// compare by value: "file2" sorts before "file10".
func Natural() Less[string] {
	return natsort.Compare
}

// Collated orders strings according to the collation rules of the given
// language, e.g. Collated(language.German) or
// Collated(language.English, collate.IgnoreCase).
//
// The returned comparator owns its collator and must not be shared between
// goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Less[string] {
	collator := collate.New(tag, opts...)

	return func(a, b string) bool {
		return collator.CompareString(a, b) < 0
	}
}

// Counting wraps less and counts every call made through the returned
// comparator. Useful for checking the comparison complexity of a sort.
//
// Example:
//
//	less, calls := compare.Counting(compare.Ordered[int]())
//	sorts.BubbleSortFunc(data, less)
//	fmt.Println(calls.Load())
func Counting[T any](less Less[T]) (Less[T], *atomic.Int64) {
	calls := atomic.NewInt64(0)

	return func(a, b T) bool {
		calls.Inc()

		return less(a, b)
	}, calls
}
