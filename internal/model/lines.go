package model

import (
	"fmt"
	"sort"
)

// Position is a 1-based line and byte column.
type Position struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether both coordinates are set.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// LineIndex maps between offsets and positions of one immutable text.
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex indexes the line starts of text.
func NewLineIndex(text string) LineIndex {
	starts := []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return LineIndex{starts: starts, size: len(text)}
}

// Lines returns the number of lines.
func (li LineIndex) Lines() int {
	return len(li.starts)
}

// Size returns the length of the indexed text.
func (li LineIndex) Size() int {
	return li.size
}

// LineStart returns the offset of the first byte of a 1-based line.
func (li LineIndex) LineStart(line int) (int, bool) {
	if line < 1 || line > len(li.starts) {
		return 0, false
	}

	return li.starts[line-1], true
}

// PositionOf converts an offset in [0, Size] to a position.
func (li LineIndex) PositionOf(offset int) (Position, error) {
	if offset < 0 || offset > li.size {
		return Position{}, fmt.Errorf("offset %d outside text of length %d", offset, li.size)
	}

	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1

	return Position{Line: line + 1, Column: offset - li.starts[line] + 1}, nil
}

// OffsetOf converts a position to an offset. A column of zero means the
// start of the line. Columns past the end of the line are rejected.
func (li LineIndex) OffsetOf(pos Position) (int, error) {
	start, ok := li.LineStart(pos.Line)
	if !ok {
		return 0, fmt.Errorf("line %d outside text with %d lines", pos.Line, len(li.starts))
	}

	col := pos.Column
	if col < 1 {
		col = 1
	}

	end := li.size
	if pos.Line < len(li.starts) {
		end = li.starts[pos.Line] - 1
	}

	offset := start + col - 1
	if offset > end {
		return 0, fmt.Errorf("column %d outside line %d", pos.Column, pos.Line)
	}

	return offset, nil
}
