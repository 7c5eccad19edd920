package sorts

// DefaultThreshold is the largest partition HybridMergeSort hands to
// insertion sort unless WithThreshold says otherwise.
const DefaultThreshold = 12

// Option is a function that configures a sort call.
type Option func(*options)

type options struct {
	descending bool // Reverse the comparator's order
	threshold  int  // Insertion sort cutoff, hybrid merge sort only
}

func newOptions(opts []Option) options {
	o := options{
		threshold: DefaultThreshold,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Descending sorts from greatest to least.
//
// Example:
//
//	sorts.BubbleSort(data, sorts.Descending())
func Descending() Option {
	return WithDescending(true)
}

// WithDescending sets the direction from a flag.
func WithDescending(descending bool) Option {
	return func(o *options) {
		o.descending = descending
	}
}

// WithThreshold sets the partition size at or below which HybridMergeSort
// switches to insertion sort. A threshold below 1 merges all the way down to
// single elements. Other sorts ignore it.
//
// Example:
//
//	sorts.HybridMergeSort(data, sorts.WithThreshold(32))
func WithThreshold(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}
