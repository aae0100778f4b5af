package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/dystudio/try/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseWorkspace_Inline(t *testing.T) {
	data := []byte(`
workspaceType: script
usings: [os]
files:
  - name: program.lua
    text: |
      --#region body
      --#endregion
buffers:
  - id: program.lua@body
    content: print(1)
    position: 3
activeBufferId: program.lua@body
`)

	ws, err := ParseWorkspace(data, ".")
	require.NoError(t, err)

	assert.Equal(t, "script", ws.Type)
	assert.Equal(t, []string{"os"}, ws.Usings)
	require.Len(t, ws.Files, 1)
	assert.Equal(t, "--#region body\n--#endregion\n", ws.Files[0].Text)

	require.Len(t, ws.Buffers, 1)
	assert.Equal(t, m.BufferID{FileName: "program.lua", Region: "body"}, ws.Buffers[0].ID)
	assert.Equal(t, 3, ws.Buffers[0].Position)
	assert.Equal(t, ws.Buffers[0].ID, ws.ActiveBufferID)
}

func TestParseWorkspace_PathsAreRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "program.lua"), "return 1\n")
	writeFile(t, filepath.Join(dir, "body.lua"), "x = 1")

	data := []byte(`
files:
  - name: program.lua
    path: src/program.lua
buffers:
  - id: lib.lua
    path: body.lua
`)

	ws, err := ParseWorkspace(data, dir)
	require.NoError(t, err)

	assert.Equal(t, "return 1\n", ws.Files[0].Text)
	assert.Equal(t, "x = 1", ws.Buffers[0].Content)
	assert.True(t, ws.Buffers[0].ID.IsWholeFile())
}

func TestParseWorkspace_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "files: [\n"},
		{"file without name", "files:\n  - text: x\n"},
		{"inline and path", "files:\n  - name: a.lua\n    text: x\n    path: a.lua\n"},
		{"missing path", "buffers:\n  - id: a.lua\n    path: nowhere.lua\n"},
		{"empty buffer id", "buffers:\n  - content: x\n"},
		{"position past content", "buffers:\n  - id: a.lua\n    content: ab\n    position: 3\n"},
		{"negative position", "buffers:\n  - id: a.lua\n    content: ab\n    position: -1\n"},
		{"bad active buffer", "activeBufferId: \"  \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorkspace([]byte(tt.data), t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestWorkspaceLoader_Load(t *testing.T) {
	dir := t.TempDir()
	request := filepath.Join(dir, "hello"+RequestFileSuffix)
	writeFile(t, filepath.Join(dir, "program.lua"), "print('hi')\n")
	writeFile(t, request, "workspaceType: script\nfiles:\n  - name: program.lua\n    path: program.lua\n")

	ws, err := NewWorkspaceLoader().Load(m.Path(request))
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", ws.Files[0].Text)

	_, err = NewWorkspaceLoader().Load(m.Path(filepath.Join(dir, "absent.try.yaml")))
	assert.Error(t, err)
}

func TestWorkspaceLoader_Discover(t *testing.T) {
	dir := t.TempDir()
	top := filepath.Join(dir, "b"+RequestFileSuffix)
	nested := filepath.Join(dir, "nested", "a"+RequestFileSuffix)

	writeFile(t, top, "")
	writeFile(t, nested, "")
	writeFile(t, filepath.Join(dir, "notes.yaml"), "")
	writeFile(t, filepath.Join(dir, ".git", "c"+RequestFileSuffix), "")

	loader := NewWorkspaceLoader()

	found, err := loader.Discover([]m.Path{m.Path(dir)})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(top)}, found)

	found, err = loader.Discover([]m.Path{m.Path(dir + "/..."), m.Path(top)})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(top), m.Path(nested)}, found)

	found, err = loader.Discover([]m.Path{m.Path(nested)})
	require.NoError(t, err)
	assert.Equal(t, []m.Path{m.Path(nested)}, found)

	found, err = loader.Discover(nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = loader.Discover([]m.Path{m.Path(filepath.Join(dir, "absent"))})
	assert.Error(t, err)
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{"...", ".", true},
		{"./...", ".", true},
		{"samples/...", "samples", true},
		{"samples", "samples", false},
		{"a.try.yaml", "a.try.yaml", false},
	}

	for _, tt := range tests {
		path, recursive := parseRootPath(tt.in)
		assert.Equal(t, tt.path, path, tt.in)
		assert.Equal(t, tt.recursive, recursive, tt.in)
	}
}
