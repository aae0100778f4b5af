package domain

import (
	"fmt"
	"strings"

	m "github.com/dystudio/try/internal/model"
)

// UnmappedPolicy decides what happens to diagnostics that point at region
// markers or outside the composed document.
type UnmappedPolicy string

const (
	// PolicyReanchor moves marker diagnostics to the start of the owning
	// buffer and keeps out-of-range diagnostics without a position.
	PolicyReanchor UnmappedPolicy = "reanchor"
	// PolicyDrop moves such diagnostics to RunResult.Suppressed.
	PolicyDrop UnmappedPolicy = "drop"
)

// ParseUnmappedPolicy parses a policy name; the empty string selects
// PolicyReanchor.
func ParseUnmappedPolicy(s string) (UnmappedPolicy, error) {
	switch UnmappedPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyReanchor:
		return PolicyReanchor, nil
	case PolicyDrop:
		return PolicyDrop, nil
	default:
		return "", fmt.Errorf("unknown unmapped policy %q (want %q or %q)", s, PolicyReanchor, PolicyDrop)
	}
}

// Translator rewrites engine output into buffer coordinates.
type Translator struct {
	remapper *Remapper
	policy   UnmappedPolicy
}

// NewTranslator constructs a Translator.
func NewTranslator(remapper *Remapper, policy UnmappedPolicy) *Translator {
	if policy == "" {
		policy = PolicyReanchor
	}

	return &Translator{remapper: remapper, policy: policy}
}

// Run translates a raw run result.
func (t *Translator) Run(raw m.RawRunResult) m.RunResult {
	kept, suppressed := t.Diagnostics(raw.Diagnostics)

	return m.RunResult{
		Succeeded:   raw.Succeeded,
		Output:      raw.Output,
		Exception:   raw.Exception,
		ReturnValue: raw.ReturnValue,
		Diagnostics: kept,
		Suppressed:  suppressed,
	}
}

// Diagnostics translates raw diagnostics, keeping their order. The second
// result holds the diagnostics the policy suppressed.
func (t *Translator) Diagnostics(raw []m.RawDiagnostic) ([]m.Diagnostic, []m.Diagnostic) {
	kept := make([]m.Diagnostic, 0, len(raw))

	var suppressed []m.Diagnostic

	for _, rd := range raw {
		d, keep := t.diagnostic(rd)
		if keep {
			kept = append(kept, d)
		} else {
			suppressed = append(suppressed, d)
		}
	}

	return kept, suppressed
}

func (t *Translator) diagnostic(rd m.RawDiagnostic) (m.Diagnostic, bool) {
	d := m.Diagnostic{
		Severity: rd.Severity,
		ID:       rd.ID,
		Message:  rd.Message,
	}

	offset := rd.Offset
	if offset < 0 {
		var err error

		offset, err = t.remapper.ComposedOffsetOf(rd.Document, rd.Position)
		if err != nil {
			offset = -1
		}
	}

	mapping := t.remapper.Resolve(rd.Document, offset)

	switch mapping.Outcome {
	case InBuffer, InFile:
		d.BufferID = mapping.Position.BufferID
		d.Offset = mapping.Position.Offset
		d.Mapping = m.MappingBuffer

		if mapping.Outcome == InFile {
			d.Mapping = m.MappingFile
		}

		if pos, err := t.remapper.BufferPositionOf(mapping.Position); err == nil {
			d.Position = pos
		}

		return d, true

	case InMarkers:
		d.BufferID = mapping.Viewport.BufferID
		d.Offset = 0
		d.Position = m.Position{Line: 1, Column: 1}
		d.Mapping = m.MappingReanchored
		tracer().Debugf("diagnostic %s at %s offset %d lies in region markers of %s", rd.ID, rd.Document, offset, d.BufferID)

		return d, t.policy == PolicyReanchor

	default:
		d.BufferID = m.BufferID{FileName: rd.Document}
		d.Offset = -1
		d.Mapping = m.MappingUnmapped
		tracer().Infof("diagnostic %s reported outside %s (offset %d, position %s)", rd.ID, rd.Document, rd.Offset, rd.Position)

		return d, t.policy == PolicyReanchor
	}
}

// Completions translates a completion list for the buffer the request was
// made in. Replacement spans that leave the buffer are cleared.
func (t *Translator) Completions(id m.BufferID, raw m.RawCompletionList) m.CompletionList {
	items := make([]m.CompletionItem, 0, len(raw.Items))

	for _, item := range raw.Items {
		items = append(items, m.CompletionItem{
			DisplayText: item.DisplayText,
			Kind:        item.Kind,
			InsertText:  item.InsertText,
			Detail:      item.Detail,
			Replace:     t.span(id, raw.Document, item.Replace),
		})
	}

	diags, suppressed := t.Diagnostics(raw.Diagnostics)

	return m.CompletionList{BufferID: id, Items: items, Diagnostics: diags, Suppressed: suppressed}
}

// SignatureHelp translates signature help for the buffer the request was
// made in.
func (t *Translator) SignatureHelp(id m.BufferID, raw m.RawSignatureHelp) m.SignatureHelp {
	diags, suppressed := t.Diagnostics(raw.Diagnostics)

	return m.SignatureHelp{
		BufferID:        id,
		Signatures:      raw.Signatures,
		ActiveSignature: raw.ActiveSignature,
		ActiveParameter: raw.ActiveParameter,
		Applicable:      t.span(id, raw.Document, raw.Applicable),
		Diagnostics:     diags,
		Suppressed:      suppressed,
	}
}

func (t *Translator) span(id m.BufferID, doc string, composed *m.Span) *m.Span {
	if composed == nil {
		return nil
	}

	if composed.Length < 0 {
		tracer().Debugf("span %s of %s has negative length", composed, doc)

		return nil
	}

	start := t.remapper.Resolve(doc, composed.Start)
	end := t.remapper.Resolve(doc, composed.End())

	if !sameBuffer(start, id) || !sameBuffer(end, id) || end.Position.Offset < start.Position.Offset {
		tracer().Debugf("span %s of %s leaves buffer %s", composed, doc, id)

		return nil
	}

	s := m.SpanFromBounds(start.Position.Offset, end.Position.Offset)

	return &s
}

func sameBuffer(mapping Mapping, id m.BufferID) bool {
	return (mapping.Outcome == InBuffer || mapping.Outcome == InFile) && mapping.Position.BufferID == id
}
