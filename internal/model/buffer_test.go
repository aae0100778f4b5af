package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBufferID(t *testing.T) {
	tests := []struct {
		in      string
		want    BufferID
		wantErr bool
	}{
		{in: "main.lua", want: BufferID{FileName: "main.lua"}},
		{in: "main.lua@body", want: BufferID{FileName: "main.lua", Region: "body"}},
		{in: "  a@b ", want: BufferID{FileName: "a", Region: "b"}},
		{in: "mail@host.lua@r", want: BufferID{FileName: "mail@host.lua", Region: "r"}},
		{in: "", wantErr: true},
		{in: "@region", wantErr: true},
		{in: "file@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBufferID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) BufferID {
	t.Helper()

	id, err := ParseBufferID(s)
	require.NoError(t, err)

	return id
}

func TestBufferID_WholeFile(t *testing.T) {
	id := BufferID{FileName: "a.lua", Region: "r"}

	assert.False(t, id.IsWholeFile())
	assert.True(t, id.WholeFile().IsWholeFile())
	assert.Equal(t, "a.lua", id.WholeFile().String())
}

func TestWorkspace_ActiveBuffer(t *testing.T) {
	first := Buffer{ID: BufferID{FileName: "a"}}
	second := Buffer{ID: BufferID{FileName: "b", Region: "r"}}

	_, ok := Workspace{}.ActiveBuffer()
	assert.False(t, ok)

	got, ok := Workspace{Buffers: []Buffer{first, second}}.ActiveBuffer()
	require.True(t, ok)
	assert.Equal(t, first, got)

	got, ok = Workspace{Buffers: []Buffer{first, second}, ActiveBufferID: second.ID}.ActiveBuffer()
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = Workspace{Buffers: []Buffer{first}, ActiveBufferID: second.ID}.ActiveBuffer()
	assert.False(t, ok)
}

func TestComposition_Lookups(t *testing.T) {
	vp := Viewport{BufferID: BufferID{FileName: "a", Region: "r"}, Region: Span{Start: 1, Length: 2}}
	a := ComposedDocument{Key: DocumentKey{FileName: "a", Version: "1"}, Text: "xyz", Viewports: []Viewport{vp}}
	b := ComposedDocument{Key: DocumentKey{FileName: "b", Version: "2"}, Text: "q", Standalone: true}

	comp := NewComposition(a, b)

	docs := comp.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].Name())
	assert.Equal(t, "b", docs[1].Name())

	got, ok := comp.Document("b")
	require.True(t, ok)
	assert.True(t, got.Standalone)

	_, ok = comp.Lookup(DocumentKey{FileName: "a", Version: "other"})
	assert.False(t, ok)

	found, ok := comp.Viewport(vp.BufferID)
	require.True(t, ok)
	assert.Equal(t, vp, found)
	assert.Len(t, comp.Viewports(), 1)
	assert.Equal(t, "a#1", a.Key.String())
}

func TestSeverity(t *testing.T) {
	for _, sev := range []Severity{SeverityHidden, SeverityInfo, SeverityWarning, SeverityError} {
		assert.Equal(t, sev, ParseSeverity(sev.String()))
	}

	assert.Equal(t, SeverityWarning, ParseSeverity("WARN"))
	assert.Equal(t, SeverityInfo, ParseSeverity("whatever"))
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		BufferID: BufferID{FileName: "a.lua", Region: "body"},
		Position: Position{Line: 1, Column: 7},
		Severity: SeverityWarning,
		ID:       "LUA0001",
		Message:  "undefined global 'banana'",
		Mapping:  MappingBuffer,
	}

	assert.Equal(t, "a.lua@body(1,7): warning LUA0001: undefined global 'banana'", d.String())

	d.Mapping = MappingUnmapped
	assert.Equal(t, "a.lua@body: warning LUA0001: undefined global 'banana'", d.String())
}
