package source

// Location is a byte offset into a Buffer. The zero value denotes the start
// of the buffer; Location does not carry a reference to its Buffer so that
// AST and token nodes stay small and copyable.
type Location int

// Range is a half-open [Start, End) span of bytes into a Buffer.
type Range struct {
	Start Location
	End   Location
}

// NewRange builds a Range, normalizing a reversed pair.
func NewRange(start, end Location) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int { return int(r.End - r.Start) }

// Join returns the smallest Range covering both r and other.
func (r Range) Join(other Range) Range {
	start, end := r.Start, r.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}
