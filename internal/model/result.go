package model

import "fmt"

// MappingKind tells how a diagnostic position was derived.
type MappingKind string

const (
	// MappingBuffer means the position lies inside the buffer's own text.
	MappingBuffer MappingKind = "buffer"
	// MappingReanchored means the engine pointed at region markers and the
	// position was moved to the start of the owning buffer.
	MappingReanchored MappingKind = "reanchored"
	// MappingFile means the position lies in host file text outside every
	// buffer; it is reported against the whole file.
	MappingFile MappingKind = "file"
	// MappingUnmapped means the engine reported a position that does not
	// exist in the composed document.
	MappingUnmapped MappingKind = "unmapped"
)

// Diagnostic is an engine diagnostic in buffer coordinates.
type Diagnostic struct {
	BufferID BufferID
	Offset   int
	Position Position
	Severity Severity
	ID       string
	Message  string
	Mapping  MappingKind
}

func (d Diagnostic) String() string {
	if d.Mapping == MappingUnmapped {
		return fmt.Sprintf("%s: %s %s: %s", d.BufferID, d.Severity, d.ID, d.Message)
	}

	return fmt.Sprintf("%s(%d,%d): %s %s: %s", d.BufferID, d.Position.Line, d.Position.Column, d.Severity, d.ID, d.Message)
}

// RunResult is the caller facing result of running a workspace.
type RunResult struct {
	RequestID   string
	Succeeded   bool
	Output      []string
	Exception   string
	ReturnValue any
	Diagnostics []Diagnostic
	// Suppressed holds diagnostics the unmapped policy removed.
	Suppressed []Diagnostic
}

// CompletionItem is a completion whose replacement span is buffer relative.
type CompletionItem struct {
	DisplayText string
	Kind        string
	InsertText  string
	Detail      string
	Replace     *Span
}

// CompletionList is the caller facing completion answer.
type CompletionList struct {
	RequestID   string
	BufferID    BufferID
	Items       []CompletionItem
	Diagnostics []Diagnostic
	Suppressed  []Diagnostic
}

// SignatureHelp is the caller facing signature help answer.
type SignatureHelp struct {
	RequestID       string
	BufferID        BufferID
	Signatures      []Signature
	ActiveSignature int
	ActiveParameter int
	Applicable      *Span
	Diagnostics     []Diagnostic
	Suppressed      []Diagnostic
}
