package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

// Sortable is a Comparable type that also defines its own strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less returns a comparator that delegates to T's LessThan method.
func Less[T Sortable[T]]() compare.Less[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}
