package model

import "strings"

// Severity ranks diagnostics.
type Severity int

// Severity values, lowest first.
const (
	SeverityHidden Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityHidden:
		return "hidden"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses the text form of a severity; unknown text is info.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hidden":
		return SeverityHidden
	case "warning", "warn":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityInfo
	}
}

// EngineDocument is one composed document handed to an engine.
type EngineDocument struct {
	Name string
	Text string
}

// EngineRequest is what the engines see: composed text only, never buffers.
type EngineRequest struct {
	WorkspaceType string
	Documents     []EngineDocument
	Usings        []string
}

// RawDiagnostic is a diagnostic in composed-document coordinates. Engines
// report either an offset (Offset >= 0) or a line/column position.
type RawDiagnostic struct {
	Document string
	Offset   int
	Position Position
	Severity Severity
	ID       string
	Message  string
}

// RawRunResult is the unmodified output of an execution engine.
type RawRunResult struct {
	Succeeded   bool
	Output      []string
	Exception   string
	ReturnValue any
	Diagnostics []RawDiagnostic
}

// RawCompletionItem is one completion with an optional replacement span in
// composed-document coordinates.
type RawCompletionItem struct {
	DisplayText string
	Kind        string
	InsertText  string
	Detail      string
	Replace     *Span
}

// RawCompletionList is the language engine answer for one offset.
type RawCompletionList struct {
	Document    string
	Items       []RawCompletionItem
	Diagnostics []RawDiagnostic
}

// SignatureParameter describes one parameter of a signature.
type SignatureParameter struct {
	Label         string `yaml:"label"`
	Documentation string `yaml:"documentation,omitempty"`
}

// Signature describes one callable.
type Signature struct {
	Label         string               `yaml:"label"`
	Documentation string               `yaml:"documentation,omitempty"`
	Parameters    []SignatureParameter `yaml:"parameters,omitempty"`
}

// RawSignatureHelp is the language engine answer for one offset. Applicable
// is the argument list span in composed-document coordinates.
type RawSignatureHelp struct {
	Document        string
	Signatures      []Signature
	ActiveSignature int
	ActiveParameter int
	Applicable      *Span
	Diagnostics     []RawDiagnostic
}
