// Package sortable provides the [Sortable] interface for types that carry their
// own ordering, plus wrappers for common primitive types.
//
// # Overview
//
// A Sortable type exposes a single ordering method, LessThan, on top of the
// equality method from [github.com/amp-labs/amp-sort/compare.Comparable].
// [Less] turns any such type into a [github.com/amp-labs/amp-sort/compare.Less]
// comparator so it can be handed to every sort in
// [github.com/amp-labs/amp-sort/sorts].
//
// # Usage
//
//	items := []sortable.Int{42, 10, 25}
//	sorts.HybridMergeSortFunc(items, sortable.Less[sortable.Int]())
//	// items is now 10, 25, 42
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Item struct {
//	    Price int
//	    Name  string
//	}
//
//	func (i Item) Equals(other Item) bool {
//	    return i.Price == other.Price && i.Name == other.Name
//	}
//
//	func (i Item) LessThan(other Item) bool {
//	    return i.Price < other.Price
//	}
//
// LessThan must be a strict weak ordering: x.LessThan(x) is always false.
// Values that are neither LessThan each other are ties, and each sort
// documents how it orders ties.
package sortable
