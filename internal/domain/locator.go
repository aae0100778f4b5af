package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	m "github.com/dystudio/try/internal/model"
)

// MarkerStrategy recognises the lines that open and close a named region.
type MarkerStrategy interface {
	// Open reports whether line opens a region and returns its name.
	Open(line string) (string, bool)
	// Close reports whether line closes the innermost open region.
	Close(line string) bool
}

// LineMarkers matches regions delimited by whole marker lines such as
// "#region name" and "#endregion". Leading indentation is ignored.
type LineMarkers struct {
	Begin string
	End   string
}

// Open implements MarkerStrategy.
func (lm LineMarkers) Open(line string) (string, bool) {
	rest, ok := cutMarker(line, lm.Begin)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(rest), true
}

// Close implements MarkerStrategy. Trailing text after the end marker is
// treated as a comment.
func (lm LineMarkers) Close(line string) bool {
	_, ok := cutMarker(line, lm.End)

	return ok
}

func cutMarker(line, marker string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, marker) {
		return "", false
	}

	rest := s[len(marker):]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}

	return rest, true
}

var dialects = map[string]LineMarkers{
	"csharp": {Begin: "#region", End: "#endregion"},
	"lua":    {Begin: "--#region", End: "--#endregion"},
	"c":      {Begin: "//#region", End: "//#endregion"},
	"python": {Begin: "# region", End: "# endregion"},
}

// Dialect returns the marker strategy registered under name.
func Dialect(name string) (MarkerStrategy, error) {
	markers, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown region dialect %q (known: %s)", name, strings.Join(Dialects(), ", "))
	}

	return markers, nil
}

// Dialects lists the registered dialect names.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// LocateStatus discriminates the outcome of Locate.
type LocateStatus int

// Locate outcomes.
const (
	LocateNotFound LocateStatus = iota
	LocateFound
	LocateDuplicate
)

func (s LocateStatus) String() string {
	switch s {
	case LocateFound:
		return "found"
	case LocateDuplicate:
		return "duplicate"
	default:
		return "not found"
	}
}

// Location is where a named region sits in a host text. Region excludes the
// marker lines and the line break before the end marker; Outer spans from
// the start of the begin marker line to the end of the end marker line.
// Terminator is set when the region is empty and the end marker directly
// follows the begin marker line: a replacement must then be followed by a
// line break to keep the end marker on its own line.
type Location struct {
	Status     LocateStatus
	Region     m.Span
	Outer      m.Span
	Terminator string
	Matches    int
}

// NamedRegion is one marker pair found in a text.
type NamedRegion struct {
	Name string
	Location
}

// Locate finds the region called name. An empty name selects the whole text.
func Locate(text, name string, markers MarkerStrategy) Location {
	if name == "" {
		whole := m.Span{Start: 0, Length: len(text)}

		return Location{Status: LocateFound, Region: whole, Outer: whole, Matches: 1}
	}

	var found Location

	for _, r := range Regions(text, markers) {
		if r.Name != name {
			continue
		}

		if found.Matches == 0 {
			found = r.Location
		}

		found.Matches++
	}

	switch {
	case found.Matches == 0:
		return Location{Status: LocateNotFound}
	case found.Matches > 1:
		found.Status = LocateDuplicate
	default:
		found.Status = LocateFound
	}

	return found
}

type openMarker struct {
	name       string
	lineStart  int
	innerStart int
	lineBreak  string
}

// Regions returns every closed marker pair in text, ordered by the position
// of the begin marker. Unclosed begin markers and stray end markers are
// ignored.
func Regions(text string, markers MarkerStrategy) []NamedRegion {
	var (
		stack   []openMarker
		regions []NamedRegion
	)

	for lineStart := 0; lineStart < len(text); {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')

		next := len(text)
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
			next = lineEnd + 1
		}

		line := strings.TrimSuffix(text[lineStart:lineEnd], "\r")

		if name, ok := markers.Open(line); ok {
			lineBreak := "\n"
			if strings.HasSuffix(text[lineStart:lineEnd], "\r") {
				lineBreak = "\r\n"
			}

			stack = append(stack, openMarker{name: name, lineStart: lineStart, innerStart: next, lineBreak: lineBreak})
		} else if markers.Close(line) && len(stack) > 0 {
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			regions = append(regions, NamedRegion{
				Name:     open.name,
				Location: closeRegion(text, open, lineStart, lineStart+len(line)),
			})
		}

		lineStart = next
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Outer.Start < regions[j].Outer.Start
	})

	return regions
}

// closeRegion builds the location of a pair whose end marker occupies
// text[endLineStart:markerEnd], line break excluded.
func closeRegion(text string, open openMarker, endLineStart, markerEnd int) Location {
	loc := Location{
		Status: LocateFound,
		Outer:  m.SpanFromBounds(open.lineStart, markerEnd),
	}

	innerEnd := endLineStart
	if innerEnd == open.innerStart {
		loc.Region = m.Span{Start: innerEnd, Length: 0}
		loc.Terminator = open.lineBreak

		return loc
	}

	if text[innerEnd-1] == '\n' {
		innerEnd--
		if innerEnd > open.innerStart && text[innerEnd-1] == '\r' {
			innerEnd--
		}
	}

	loc.Region = m.SpanFromBounds(open.innerStart, innerEnd)

	return loc
}

func regionNames(regions []NamedRegion) []string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}

	return names
}
