package domain

import (
	"strings"

	m "github.com/dystudio/try/internal/model"
)

// Splice replaces loc.Region in text with replacement. It returns the new
// text with the spans the region and its outer region occupy in it. Text
// outside the region is left untouched, except for the line terminator an
// empty region may require.
func Splice(text string, loc Location, replacement string) (string, m.Span, m.Span) {
	region := loc.Region
	suffix := ""

	if loc.Terminator != "" && replacement != "" && !strings.HasSuffix(replacement, "\n") {
		suffix = loc.Terminator
	}

	var b strings.Builder

	b.Grow(len(text) - region.Length + len(replacement) + len(suffix))
	b.WriteString(text[:region.Start])
	b.WriteString(replacement)
	b.WriteString(suffix)
	b.WriteString(text[region.End():])

	delta := len(replacement) + len(suffix) - region.Length
	newRegion := m.Span{Start: region.Start, Length: len(replacement)}
	newOuter := m.Span{Start: loc.Outer.Start, Length: loc.Outer.Length + delta}

	return b.String(), newRegion, newOuter
}

// shiftLocation moves every span of loc by delta.
func shiftLocation(loc Location, delta int) Location {
	loc.Region = loc.Region.Shift(delta)
	loc.Outer = loc.Outer.Shift(delta)

	return loc
}
