package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/dystudio/try/internal/model"
)

func luaRequest(docs ...string) m.EngineRequest {
	req := m.EngineRequest{WorkspaceType: "script"}

	for i := 0; i+1 < len(docs); i += 2 {
		req.Documents = append(req.Documents, m.EngineDocument{Name: docs[i], Text: docs[i+1]})
	}

	return req
}

func TestLuaEngine_ExecuteOutputAndReturn(t *testing.T) {
	engine := NewLuaEngine()

	result, err := engine.Execute(context.Background(), luaRequest(
		"main.lua", "print('a', 1)\nprint(2.5)\nreturn {1, 2, 'x'}\n",
	))
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, []string{"a\t1", "2.5"}, result.Output)
	assert.Equal(t, []any{int64(1), int64(2), "x"}, result.ReturnValue)
	assert.Empty(t, result.Diagnostics)
	assert.Empty(t, result.Exception)
}

func TestLuaEngine_ExecuteSharesGlobalsInOrder(t *testing.T) {
	result, err := NewLuaEngine().Execute(context.Background(), luaRequest(
		"lib.lua", "function double(x) return x * 2 end\n",
		"main.lua", "return double(21)\n",
	))
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, int64(42), result.ReturnValue)
	assert.Equal(t, []string{}, result.Output)
}

func TestLuaEngine_ExecuteTableReturn(t *testing.T) {
	result, err := NewLuaEngine().Execute(context.Background(), luaRequest(
		"main.lua", "return {name = 'try', ok = true}\n",
	))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "try", "ok": true}, result.ReturnValue)
}

func TestLuaEngine_SyntaxErrorIsNotRun(t *testing.T) {
	result, err := NewLuaEngine().Execute(context.Background(), luaRequest(
		"main.lua", "print('never')\nx = = 1\n",
	))
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Empty(t, result.Output)
	require.Len(t, result.Diagnostics, 1)

	d := result.Diagnostics[0]
	assert.Equal(t, LuaSyntaxError, d.ID)
	assert.Equal(t, "main.lua", d.Document)
	assert.Equal(t, -1, d.Offset)
	assert.Equal(t, 2, d.Position.Line)
	assert.Equal(t, m.SeverityError, d.Severity)
}

func TestLuaEngine_RuntimeErrorLine(t *testing.T) {
	result, err := NewLuaEngine().Execute(context.Background(), luaRequest(
		"lib.lua", "x = 1\n",
		"main.lua", "print('before')\nerror('boom')\nprint('after')\n",
	))
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, []string{"before"}, result.Output)
	assert.Contains(t, result.Exception, "boom")

	require.Len(t, result.Diagnostics, 1)
	d := result.Diagnostics[0]
	assert.Equal(t, LuaRuntimeError, d.ID)
	assert.Equal(t, "main.lua", d.Document)
	assert.Equal(t, m.Position{Line: 2, Column: 1}, d.Position)
	assert.Equal(t, "boom", d.Message)
}

func TestLuaEngine_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, err := NewLuaEngine().Execute(ctx, luaRequest("main.lua", "while true do end\n"))
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Contains(t, result.Exception, "timed out")
}

func TestLuaEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := NewLuaEngine().Execute(ctx, luaRequest("main.lua", "while true do end\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLuaEngine_UndefinedGlobalColumn(t *testing.T) {
	req := luaRequest("main.lua", "local fruit = 1\nprint(banana)\nprint(fruit)\n")

	diags, err := NewLuaEngine().Compile(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, LuaUndefinedGlobal, diags[0].ID)
	assert.Equal(t, m.Position{Line: 2, Column: 7}, diags[0].Position)
	assert.Equal(t, m.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "banana")

	result, err := NewLuaEngine().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, []string{"nil", "1"}, result.Output)
	assert.Len(t, result.Diagnostics, 1)
}

func TestLuaEngine_LintScopes(t *testing.T) {
	src := `local t = {}
function t.add(a, b)
  local sum = a + b
  return sum
end
function t:name()
  return self.label
end
for i, v in ipairs({1, 2}) do
  print(i, v)
end
for n = 1, 3 do
  print(n)
end
local function fact(k)
  if k <= 1 then return 1 end
  return k * fact(k - 1)
end
counter = 0
print(counter, fact(3), sum, string.upper("x"))
`

	diags, err := NewLuaEngine().Compile(context.Background(), luaRequest("main.lua", src))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "undefined global 'sum'", diags[0].Message)
	assert.Equal(t, 20, diags[0].Position.Line)
}

func TestLuaEngine_Libraries(t *testing.T) {
	req := luaRequest("main.lua", "return os.time() > 0\n")

	result, err := NewLuaEngine().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Succeeded)

	req.Usings = []string{"os"}
	result, err = NewLuaEngine().Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, true, result.ReturnValue)

	req.Usings = []string{"nope"}
	_, err = NewLuaEngine().Execute(context.Background(), req)
	assert.Error(t, err)

	_, err = NewLuaEngine(WithLuaLibraries("base", "missing")).Compile(context.Background(), luaRequest("a.lua", ""))
	assert.Error(t, err)
}

func TestLuaEngine_CallStackSize(t *testing.T) {
	src := "local function deep(n) if n == 0 then return 0 end return 1 + deep(n - 1) end\nreturn deep(500)\n"

	result, err := NewLuaEngine(WithCallStackSize(64)).Execute(context.Background(), luaRequest("main.lua", src))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.NotEmpty(t, result.Exception)

	result, err = NewLuaEngine(WithCallStackSize(1024)).Execute(context.Background(), luaRequest("main.lua", src))
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, int64(500), result.ReturnValue)
}

func TestLuaEngine_ReturnValueIsFromLastDocument(t *testing.T) {
	tests := []struct {
		name   string
		usings []string
		docs   []string
		want   any
	}{
		{"no return", nil, []string{"main.lua", "x = 1\n"}, nil},
		{"explicit nil", []string{"os"}, []string{"main.lua", "return nil\n"}, nil},
		{"first of many", nil, []string{"main.lua", "return 'a', 'b'\n"}, "a"},
		{"earlier document returns", nil, []string{"lib.lua", "return {1}\n", "main.lua", "y = 2\n"}, nil},
		{"string result", []string{"os"}, []string{"main.lua", "return string.upper('hi')\n"}, "HI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := luaRequest(tt.docs...)
			req.Usings = tt.usings

			result, err := NewLuaEngine().Execute(context.Background(), req)
			require.NoError(t, err)

			assert.True(t, result.Succeeded, result.Exception)
			assert.Equal(t, tt.want, result.ReturnValue)
		})
	}
}
