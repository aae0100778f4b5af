package domain

import (
	"fmt"
	"sort"

	m "github.com/dystudio/try/internal/model"
)

// Outcome classifies where a composed offset landed.
type Outcome int

// Lookup outcomes.
const (
	// InBuffer means the offset lies inside a buffer's text.
	InBuffer Outcome = iota
	// InMarkers means the offset lies in the marker lines around a buffer.
	InMarkers
	// InFile means the offset lies in host file text outside every viewport.
	InFile
	// OutOfRange means the offset does not exist in the document.
	OutOfRange
)

func (o Outcome) String() string {
	switch o {
	case InBuffer:
		return "buffer"
	case InMarkers:
		return "markers"
	case InFile:
		return "file"
	default:
		return "out of range"
	}
}

// BufferPosition is an offset inside a buffer.
type BufferPosition struct {
	BufferID m.BufferID
	Offset   int
}

// Mapping is the detailed answer of a lookup. Viewport is set for InBuffer
// and InMarkers. For InFile the position is reported against the whole file
// in composed coordinates.
type Mapping struct {
	Outcome  Outcome
	Viewport m.Viewport
	Position BufferPosition
}

// RemapTable answers ownership queries for one composed document.
type RemapTable struct {
	doc       m.ComposedDocument
	viewports []m.Viewport
	lines     m.LineIndex
}

// NewRemapTable indexes the viewports of doc by outer start.
func NewRemapTable(doc m.ComposedDocument) *RemapTable {
	vps := make([]m.Viewport, len(doc.Viewports))
	copy(vps, doc.Viewports)

	sort.Slice(vps, func(i, j int) bool {
		return vps[i].OuterRegion.Start < vps[j].OuterRegion.Start
	})

	return &RemapTable{doc: doc, viewports: vps, lines: m.NewLineIndex(doc.Text)}
}

// Lookup finds the owner of a composed offset.
func (t *RemapTable) Lookup(offset int) Mapping {
	if offset < 0 || offset > len(t.doc.Text) {
		return Mapping{Outcome: OutOfRange}
	}

	i := sort.Search(len(t.viewports), func(i int) bool {
		return t.viewports[i].OuterRegion.Start > offset
	}) - 1

	if i >= 0 {
		vp := t.viewports[i]

		switch {
		case vp.Region.ContainsEnd(offset):
			return Mapping{
				Outcome:  InBuffer,
				Viewport: vp,
				Position: BufferPosition{BufferID: vp.BufferID, Offset: offset - vp.Region.Start},
			}
		case vp.OuterRegion.Contains(offset):
			return Mapping{Outcome: InMarkers, Viewport: vp}
		}
	}

	return Mapping{
		Outcome:  InFile,
		Position: BufferPosition{BufferID: m.BufferID{FileName: t.doc.Name()}, Offset: offset},
	}
}

// Remapper translates positions between composed documents and buffers.
// It is immutable once built and safe for concurrent use.
type Remapper struct {
	comp        *m.Composition
	tables      map[string]*RemapTable
	viewports   map[m.BufferID]m.Viewport
	bufferLines map[m.BufferID]m.LineIndex
}

// NewRemapper builds one RemapTable per document of comp.
func NewRemapper(comp *m.Composition) *Remapper {
	r := &Remapper{
		comp:        comp,
		tables:      make(map[string]*RemapTable),
		viewports:   make(map[m.BufferID]m.Viewport),
		bufferLines: make(map[m.BufferID]m.LineIndex),
	}

	for _, doc := range comp.Documents() {
		r.tables[doc.Name()] = NewRemapTable(doc)
		r.bufferLines[m.BufferID{FileName: doc.Name()}] = r.tables[doc.Name()].lines

		for _, vp := range doc.Viewports {
			r.viewports[vp.BufferID] = vp
			r.bufferLines[vp.BufferID] = m.NewLineIndex(doc.Text[vp.Region.Start:vp.Region.End()])
		}
	}

	return r
}

// Composition returns the documents the remapper was built over.
func (r *Remapper) Composition() *m.Composition {
	return r.comp
}

// Resolve classifies a composed offset of document doc.
func (r *Remapper) Resolve(doc string, offset int) Mapping {
	table, ok := r.tables[doc]
	if !ok {
		return Mapping{Outcome: OutOfRange}
	}

	return table.Lookup(offset)
}

// ToBufferPosition maps a composed offset to the buffer that owns it. Offsets
// in marker lines or outside the document fail with ErrUnmapped.
func (r *Remapper) ToBufferPosition(doc string, offset int) (BufferPosition, error) {
	mapping := r.Resolve(doc, offset)

	switch mapping.Outcome {
	case InBuffer, InFile:
		return mapping.Position, nil
	default:
		return BufferPosition{}, fmt.Errorf("%s offset %d (%s): %w", doc, offset, mapping.Outcome, ErrUnmapped)
	}
}

// ToComposedOffset maps a buffer offset forward into its composed document.
// A whole-file id of a host file without a whole-file buffer addresses the
// composed document itself.
func (r *Remapper) ToComposedOffset(id m.BufferID, offset int) (string, int, error) {
	if vp, ok := r.viewports[id]; ok {
		if offset < 0 || offset > vp.Region.Length {
			return "", 0, fmt.Errorf("%s offset %d outside buffer of length %d: %w", id, offset, vp.Region.Length, ErrUnmapped)
		}

		return vp.Destination.FileName, vp.Region.Start + offset, nil
	}

	if table, ok := r.tables[id.FileName]; ok && id.IsWholeFile() {
		if offset < 0 || offset > len(table.doc.Text) {
			return "", 0, fmt.Errorf("%s offset %d outside document: %w", id, offset, ErrUnmapped)
		}

		return id.FileName, offset, nil
	}

	return "", 0, bufferError(ErrUnknownBuffer, id, "buffer is not part of the composition")
}

// ComposedOffsetOf converts a composed line/column to an offset.
func (r *Remapper) ComposedOffsetOf(doc string, pos m.Position) (int, error) {
	table, ok := r.tables[doc]
	if !ok {
		return 0, fmt.Errorf("unknown document %q: %w", doc, ErrUnmapped)
	}

	return table.lines.OffsetOf(pos)
}

// ComposedPositionOf converts a composed offset to a line/column.
func (r *Remapper) ComposedPositionOf(doc string, offset int) (m.Position, error) {
	table, ok := r.tables[doc]
	if !ok {
		return m.Position{}, fmt.Errorf("unknown document %q: %w", doc, ErrUnmapped)
	}

	return table.lines.PositionOf(offset)
}

// BufferPositionOf converts a buffer offset to a line/column in the buffer.
func (r *Remapper) BufferPositionOf(bp BufferPosition) (m.Position, error) {
	lines, ok := r.bufferLines[bp.BufferID]
	if !ok {
		return m.Position{}, bufferError(ErrUnknownBuffer, bp.BufferID, "buffer is not part of the composition")
	}

	return lines.PositionOf(bp.Offset)
}

// BufferOffsetOf converts a buffer line/column to a buffer offset.
func (r *Remapper) BufferOffsetOf(id m.BufferID, pos m.Position) (int, error) {
	lines, ok := r.bufferLines[id]
	if !ok {
		return 0, bufferError(ErrUnknownBuffer, id, "buffer is not part of the composition")
	}

	return lines.OffsetOf(pos)
}
