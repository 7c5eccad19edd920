package sortable

// String orders by byte-wise comparison. Use compare.Natural or
// compare.Collated when a human-facing order is needed.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
