// Package model defines the data structures shared by the composition core,
// the engines and the user interfaces.
package model

import "fmt"

// Span is an immutable half-open range [Start, Start+Length) over one text.
type Span struct {
	Start  int
	Length int
}

// NewSpan constructs a validated span.
func NewSpan(start, length int) (Span, error) {
	s := Span{Start: start, Length: length}
	if start < 0 {
		return Span{}, fmt.Errorf("invalid span start: %d", start)
	}

	if length < 0 {
		return Span{}, fmt.Errorf("invalid span length: %d", length)
	}

	return s, nil
}

// SpanFromBounds builds the span [start, end). It panics when end < start.
func SpanFromBounds(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("model: span bounds are invalid: end (%d) < start (%d)", end, start))
	}

	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end offset.
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Contains reports whether off is within [Start, End).
func (s Span) Contains(off int) bool {
	return s.Start <= off && off < s.End()
}

// ContainsEnd reports whether off is within [Start, End]. Cursor positions
// may sit right after the last byte of a span.
func (s Span) ContainsEnd(off int) bool {
	return s.Start <= off && off <= s.End()
}

// ContainsSpan reports whether other is fully contained within s.
func (s Span) ContainsSpan(other Span) bool {
	return s.Start <= other.Start && other.End() <= s.End()
}

// Overlaps reports whether two spans share at least one byte.
// Spans that only touch at a boundary do not overlap, and an empty span
// overlaps nothing.
func (s Span) Overlaps(other Span) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}

	return s.Start < other.End() && other.Start < s.End()
}

// Shift moves the span by delta bytes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, Length: s.Length}
}

// Validate reports an error if the span does not fit a text of textLen bytes.
func (s Span) Validate(textLen int) error {
	if s.Start < 0 || s.Length < 0 {
		return fmt.Errorf("invalid span %s", s)
	}

	if s.End() > textLen {
		return fmt.Errorf("span %s exceeds text length %d", s, textLen)
	}

	return nil
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End())
}
