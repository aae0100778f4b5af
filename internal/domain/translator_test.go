package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/dystudio/try/internal/model"
)

func rawAt(line, column int, id string) m.RawDiagnostic {
	return m.RawDiagnostic{
		Document: "Program.cs",
		Offset:   -1,
		Position: m.Position{Line: line, Column: column},
		Severity: m.SeverityError,
		ID:       id,
		Message:  id + " message",
	}
}

func TestParseUnmappedPolicy(t *testing.T) {
	p, err := ParseUnmappedPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyReanchor, p)

	p, err = ParseUnmappedPolicy(" DROP ")
	require.NoError(t, err)
	assert.Equal(t, PolicyDrop, p)

	_, err = ParseUnmappedPolicy("ignore")
	assert.Error(t, err)
}

func TestTranslator_BufferDiagnostic(t *testing.T) {
	r, _ := bananaRemapper(t)

	kept, suppressed := NewTranslator(r, PolicyReanchor).Diagnostics([]m.RawDiagnostic{rawAt(4, 19, "CS0103")})

	require.Len(t, kept, 1)
	assert.Empty(t, suppressed)

	d := kept[0]
	assert.Equal(t, toReplace, d.BufferID)
	assert.Equal(t, m.Position{Line: 1, Column: 19}, d.Position)
	assert.Equal(t, 18, d.Offset)
	assert.Equal(t, m.MappingBuffer, d.Mapping)
	assert.Equal(t, "CS0103", d.ID)
	assert.Equal(t, m.SeverityError, d.Severity)
}

func TestTranslator_OffsetDiagnostic(t *testing.T) {
	r, doc := bananaRemapper(t)

	raw := m.RawDiagnostic{Document: "Program.cs", Offset: doc.Viewports[0].Region.Start + 2, ID: "X"}
	kept, _ := NewTranslator(r, PolicyReanchor).Diagnostics([]m.RawDiagnostic{raw})

	require.Len(t, kept, 1)
	assert.Equal(t, 2, kept[0].Offset)
	assert.Equal(t, m.Position{Line: 1, Column: 3}, kept[0].Position)
}

func TestTranslator_Policies(t *testing.T) {
	r, doc := bananaRemapper(t)

	markerLine := strings.Count(doc.Text[:strings.Index(doc.Text, "#endregion")], "\n") + 1
	raw := []m.RawDiagnostic{
		rawAt(1, 7, "FILE"),
		rawAt(markerLine, 1, "MARKER"),
		rawAt(4, 1, "BUFFER"),
		rawAt(99, 1, "OUTSIDE"),
	}

	t.Run("reanchor", func(t *testing.T) {
		kept, suppressed := NewTranslator(r, PolicyReanchor).Diagnostics(raw)

		assert.Empty(t, suppressed)
		require.Len(t, kept, 4)

		ids := make([]string, 0, len(kept))
		for _, d := range kept {
			ids = append(ids, d.ID)
		}

		assert.Equal(t, []string{"FILE", "MARKER", "BUFFER", "OUTSIDE"}, ids)

		assert.Equal(t, m.MappingFile, kept[0].Mapping)
		assert.Equal(t, m.BufferID{FileName: "Program.cs"}, kept[0].BufferID)
		assert.Equal(t, m.Position{Line: 1, Column: 7}, kept[0].Position)

		assert.Equal(t, m.MappingReanchored, kept[1].Mapping)
		assert.Equal(t, toReplace, kept[1].BufferID)
		assert.Equal(t, m.Position{Line: 1, Column: 1}, kept[1].Position)

		assert.Equal(t, m.MappingBuffer, kept[2].Mapping)

		assert.Equal(t, m.MappingUnmapped, kept[3].Mapping)
		assert.Equal(t, -1, kept[3].Offset)
		assert.False(t, kept[3].Position.IsValid())
	})

	t.Run("drop", func(t *testing.T) {
		kept, suppressed := NewTranslator(r, PolicyDrop).Diagnostics(raw)

		require.Len(t, kept, 2)
		assert.Equal(t, "FILE", kept[0].ID)
		assert.Equal(t, "BUFFER", kept[1].ID)

		require.Len(t, suppressed, 2)
		assert.Equal(t, "MARKER", suppressed[0].ID)
		assert.Equal(t, "OUTSIDE", suppressed[1].ID)
	})
}

func TestTranslator_Run(t *testing.T) {
	r, _ := bananaRemapper(t)

	result := NewTranslator(r, "").Run(m.RawRunResult{
		Succeeded:   false,
		Output:      []string{"a", "b"},
		Exception:   "boom",
		ReturnValue: int64(3),
		Diagnostics: []m.RawDiagnostic{rawAt(4, 19, "CS0103")},
	})

	assert.False(t, result.Succeeded)
	assert.Equal(t, []string{"a", "b"}, result.Output)
	assert.Equal(t, "boom", result.Exception)
	assert.Equal(t, int64(3), result.ReturnValue)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, toReplace, result.Diagnostics[0].BufferID)
	assert.Empty(t, result.Suppressed)
}

func TestTranslator_Completions(t *testing.T) {
	r, doc := bananaRemapper(t)
	region := doc.Viewports[0].Region

	inside := m.Span{Start: region.Start + 18, Length: 6}
	leaving := m.Span{Start: region.Start + 20, Length: 20}

	list := NewTranslator(r, PolicyReanchor).Completions(toReplace, m.RawCompletionList{
		Document: "Program.cs",
		Items: []m.RawCompletionItem{
			{DisplayText: "banana", Kind: "variable", InsertText: "banana", Replace: &inside},
			{DisplayText: "bandana", Kind: "variable", InsertText: "bandana", Replace: &leaving},
			{DisplayText: "band", Kind: "keyword", InsertText: "band"},
		},
		Diagnostics: []m.RawDiagnostic{rawAt(4, 19, "CS0103")},
	})

	assert.Equal(t, toReplace, list.BufferID)
	require.Len(t, list.Items, 3)

	require.NotNil(t, list.Items[0].Replace)
	assert.Equal(t, m.Span{Start: 18, Length: 6}, *list.Items[0].Replace)
	assert.Nil(t, list.Items[1].Replace)
	assert.Nil(t, list.Items[2].Replace)
	assert.Equal(t, "banana", list.Items[0].InsertText)

	require.Len(t, list.Diagnostics, 1)
	assert.Equal(t, m.Position{Line: 1, Column: 19}, list.Diagnostics[0].Position)
}

func TestTranslator_SignatureHelp(t *testing.T) {
	r, doc := bananaRemapper(t)
	region := doc.Viewports[0].Region

	applicable := m.Span{Start: region.Start + 18, Length: 6}
	sig := m.Signature{Label: "WriteLine(value)", Parameters: []m.SignatureParameter{{Label: "value"}}}

	help := NewTranslator(r, PolicyReanchor).SignatureHelp(toReplace, m.RawSignatureHelp{
		Document:        "Program.cs",
		Signatures:      []m.Signature{sig},
		ActiveParameter: 0,
		Applicable:      &applicable,
	})

	assert.Equal(t, toReplace, help.BufferID)
	assert.Equal(t, []m.Signature{sig}, help.Signatures)
	require.NotNil(t, help.Applicable)
	assert.Equal(t, m.Span{Start: 18, Length: 6}, *help.Applicable)

	empty := NewTranslator(r, PolicyReanchor).SignatureHelp(toReplace, m.RawSignatureHelp{Document: "Program.cs"})
	assert.Nil(t, empty.Applicable)
	assert.Empty(t, empty.Signatures)
}

func TestTranslator_MalformedSpansAreCleared(t *testing.T) {
	r, doc := bananaRemapper(t)
	region := doc.Viewports[0].Region

	negative := m.Span{Start: region.Start + 10, Length: -3}
	beforeRegion := m.Span{Start: region.Start + 2, Length: -region.Start - 10}

	tr := NewTranslator(r, PolicyReanchor)

	require.NotPanics(t, func() {
		list := tr.Completions(toReplace, m.RawCompletionList{
			Document: "Program.cs",
			Items: []m.RawCompletionItem{
				{DisplayText: "banana", Replace: &negative},
				{DisplayText: "bandana", Replace: &beforeRegion},
			},
		})

		require.Len(t, list.Items, 2)
		assert.Nil(t, list.Items[0].Replace)
		assert.Nil(t, list.Items[1].Replace)
	})

	require.NotPanics(t, func() {
		help := tr.SignatureHelp(toReplace, m.RawSignatureHelp{Document: "Program.cs", Applicable: &negative})
		assert.Nil(t, help.Applicable)
	})
}

func TestTranslator_QueryResultsKeepSuppressedDiagnostics(t *testing.T) {
	r, _ := bananaRemapper(t)

	raw := []m.RawDiagnostic{rawAt(4, 19, "CS0103"), rawAt(99, 1, "GONE")}
	tr := NewTranslator(r, PolicyDrop)

	list := tr.Completions(toReplace, m.RawCompletionList{Document: "Program.cs", Diagnostics: raw})
	require.Len(t, list.Diagnostics, 1)
	assert.Equal(t, "CS0103", list.Diagnostics[0].ID)
	require.Len(t, list.Suppressed, 1)
	assert.Equal(t, "GONE", list.Suppressed[0].ID)
	assert.Equal(t, m.MappingUnmapped, list.Suppressed[0].Mapping)

	help := tr.SignatureHelp(toReplace, m.RawSignatureHelp{Document: "Program.cs", Diagnostics: raw})
	require.Len(t, help.Diagnostics, 1)
	require.Len(t, help.Suppressed, 1)
	assert.Equal(t, "GONE", help.Suppressed[0].ID)

	reanchored := NewTranslator(r, PolicyReanchor).Completions(toReplace, m.RawCompletionList{Document: "Program.cs", Diagnostics: raw})
	assert.Len(t, reanchored.Diagnostics, 2)
	assert.Empty(t, reanchored.Suppressed)
}
