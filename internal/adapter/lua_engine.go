package adapter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/ast"
	"github.com/yuin/gopher-lua/parse"

	m "github.com/dystudio/try/internal/model"
)

// Diagnostic ids reported by the Lua engine.
const (
	LuaUndefinedGlobal = "LUA0001"
	LuaSyntaxError     = "LUA1000"
	LuaCompileError    = "LUA1001"
	LuaRuntimeError    = "LUA2000"
)

// DefaultLuaLibraries are opened for every request. Usings open more.
var DefaultLuaLibraries = []string{"base", "table", "string", "math"}

var luaLibraries = map[string]lua.LGFunction{
	"base":      lua.OpenBase,
	"table":     lua.OpenTable,
	"string":    lua.OpenString,
	"math":      lua.OpenMath,
	"os":        lua.OpenOs,
	"io":        lua.OpenIo,
	"coroutine": lua.OpenCoroutine,
	"channel":   lua.OpenChannel,
	"debug":     lua.OpenDebug,
	"package":   lua.OpenPackage,
}

// LuaEngine executes and analyses composed documents as Lua chunks with
// gopher-lua. Each call works on a fresh state, so the engine is safe for
// concurrent use.
type LuaEngine struct {
	libraries     []string
	callStackSize int
}

// LuaOption configures a LuaEngine.
type LuaOption func(*LuaEngine)

// WithLuaLibraries replaces the default library set.
func WithLuaLibraries(libs ...string) LuaOption {
	return func(e *LuaEngine) {
		e.libraries = libs
	}
}

// WithCallStackSize limits the Lua call stack depth.
func WithCallStackSize(size int) LuaOption {
	return func(e *LuaEngine) {
		e.callStackSize = size
	}
}

// NewLuaEngine constructs a LuaEngine.
func NewLuaEngine(opts ...LuaOption) *LuaEngine {
	e := &LuaEngine{
		libraries:     DefaultLuaLibraries,
		callStackSize: lua.CallStackSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// newState opens the configured libraries plus the ones named in usings.
func (e *LuaEngine) newState(usings []string) (*lua.LState, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:  true,
		CallStackSize: e.callStackSize,
	})

	libs := append(append([]string{}, e.libraries...), usings...)
	for _, name := range libs {
		open, ok := luaLibraries[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			L.Close()

			return nil, fmt.Errorf("unknown lua library %q", name)
		}

		open(L)
	}

	// each loader leaves its module table on the stack
	L.SetTop(0)

	return L, nil
}

type parsedDocument struct {
	doc   m.EngineDocument
	chunk []ast.Stmt
	lines []string
}

// parseDocuments parses every document. Documents that fail to parse are
// reported as syntax diagnostics and left out of the result.
func parseDocuments(docs []m.EngineDocument) ([]parsedDocument, []m.RawDiagnostic) {
	var (
		parsed []parsedDocument
		diags  []m.RawDiagnostic
	)

	for _, doc := range docs {
		chunk, err := parse.Parse(strings.NewReader(doc.Text), doc.Name)
		if err != nil {
			diags = append(diags, syntaxDiagnostic(doc.Name, err))

			continue
		}

		parsed = append(parsed, parsedDocument{doc: doc, chunk: chunk, lines: strings.Split(doc.Text, "\n")})
	}

	return parsed, diags
}

var syntaxPosition = regexp.MustCompile(`line:(\d+)\(column:(\d+)\)`)

func syntaxDiagnostic(name string, err error) m.RawDiagnostic {
	d := m.RawDiagnostic{
		Document: name,
		Offset:   -1,
		Severity: m.SeverityError,
		ID:       LuaSyntaxError,
		Message:  strings.TrimSpace(err.Error()),
	}

	var perr *parse.Error
	if errors.As(err, &perr) {
		d.Position = m.Position{Line: perr.Pos.Line, Column: max(perr.Pos.Column, 1)}
		d.Message = perr.Message

		if perr.Token != "" {
			d.Message = fmt.Sprintf("%s near '%s'", perr.Message, perr.Token)
		}

		return d
	}

	if match := syntaxPosition.FindStringSubmatch(d.Message); match != nil {
		line, _ := strconv.Atoi(match[1])
		col, _ := strconv.Atoi(match[2])
		d.Position = m.Position{Line: line, Column: max(col, 1)}
	}

	return d
}

// Compile implements ExecutionEngine. It parses, compiles and lints every
// document without running any of them.
func (e *LuaEngine) Compile(_ context.Context, req m.EngineRequest) ([]m.RawDiagnostic, error) {
	L, err := e.newState(req.Usings)
	if err != nil {
		return nil, err
	}
	defer L.Close()

	parsed, diags := parseDocuments(req.Documents)

	for _, pd := range parsed {
		if _, err := lua.Compile(pd.chunk, pd.doc.Name); err != nil {
			diags = append(diags, compileDiagnostic(pd.doc.Name, err))
		}
	}

	return append(diags, lint(parsed, stateGlobals(L))...), nil
}

func compileDiagnostic(name string, err error) m.RawDiagnostic {
	d := m.RawDiagnostic{
		Document: name,
		Offset:   -1,
		Severity: m.SeverityError,
		ID:       LuaCompileError,
		Message:  err.Error(),
	}

	var cerr *lua.CompileError
	if errors.As(err, &cerr) {
		d.Position = m.Position{Line: cerr.Line, Column: 1}
		d.Message = cerr.Message
	}

	return d
}

// Execute implements ExecutionEngine. Documents run in order on one state;
// the first runtime error stops the run. A request with syntax errors is not
// run at all.
func (e *LuaEngine) Execute(ctx context.Context, req m.EngineRequest) (m.RawRunResult, error) {
	L, err := e.newState(req.Usings)
	if err != nil {
		return m.RawRunResult{}, err
	}
	defer L.Close()

	globals := stateGlobals(L)

	var out outputCollector
	L.SetGlobal("print", L.NewFunction(out.print))
	L.SetContext(ctx)

	parsed, diags := parseDocuments(req.Documents)
	diags = append(diags, lint(parsed, globals)...)

	result := m.RawRunResult{Succeeded: len(parsed) == len(req.Documents), Diagnostics: diags}
	if !result.Succeeded {
		return result, nil
	}

	for _, pd := range parsed {
		proto, err := lua.Compile(pd.chunk, pd.doc.Name)
		if err != nil {
			result.Succeeded = false
			result.Diagnostics = append(result.Diagnostics, compileDiagnostic(pd.doc.Name, err))

			break
		}

		base := L.GetTop()
		L.Push(L.NewFunctionFromProto(proto))

		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			tracer().Debugf("%s failed: %v", pd.doc.Name, err)

			if errors.Is(ctx.Err(), context.Canceled) {
				return m.RawRunResult{}, fmt.Errorf("executing %s: %w", pd.doc.Name, ctx.Err())
			}

			result.Succeeded = false
			result.Exception, result.Diagnostics = runtimeFailure(pd.doc.Name, req.Documents, err, ctx.Err(), result.Diagnostics)

			break
		}

		result.ReturnValue = nil
		if returned := L.GetTop() - base; returned > 0 {
			result.ReturnValue = luaToGo(L.Get(base+1), 0)
			L.Pop(returned)
		}
	}

	result.Output = out.lines()

	return result, nil
}

func runtimeFailure(current string, docs []m.EngineDocument, err, ctxErr error, diags []m.RawDiagnostic) (string, []m.RawDiagnostic) {
	if ctxErr != nil {
		return "execution timed out: " + ctxErr.Error(), diags
	}

	msg := err.Error()

	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg = apiErr.Object.String()
	}

	d := m.RawDiagnostic{
		Document: current,
		Offset:   -1,
		Severity: m.SeverityError,
		ID:       LuaRuntimeError,
		Message:  msg,
	}

	for _, doc := range docs {
		rest, ok := strings.CutPrefix(msg, doc.Name+":")
		if !ok {
			continue
		}

		lineText, text, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}

		if line, err := strconv.Atoi(lineText); err == nil {
			d.Document = doc.Name
			d.Position = m.Position{Line: line, Column: 1}
			d.Message = strings.TrimSpace(text)
		}

		break
	}

	return msg, append(diags, d)
}

type outputCollector struct {
	out []string
}

func (o *outputCollector) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)

	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}

	o.out = append(o.out, strings.Join(parts, "\t"))

	return 0
}

func (o *outputCollector) lines() []string {
	if o.out == nil {
		return []string{}
	}

	return o.out
}

const maxValueDepth = 4

func luaToGo(v lua.LValue, depth int) any {
	switch lv := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(lv)
	case lua.LNumber:
		f := float64(lv)
		if f == float64(int64(f)) {
			return int64(f)
		}

		return f
	case lua.LString:
		return string(lv)
	case *lua.LTable:
		if depth >= maxValueDepth {
			return lv.String()
		}

		return tableToGo(lv, depth+1)
	default:
		return v.String()
	}
}

func tableToGo(t *lua.LTable, depth int) any {
	if n := t.Len(); n > 0 {
		arr := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			arr = append(arr, luaToGo(t.RawGetInt(i), depth))
		}

		return arr
	}

	obj := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		obj[k.String()] = luaToGo(v, depth)
	})

	return obj
}

// stateGlobals lists the global names a fresh state defines.
func stateGlobals(L *lua.LState) map[string]lua.LValue {
	globals := make(map[string]lua.LValue)

	L.G.Global.ForEach(func(k, v lua.LValue) {
		if name, ok := k.(lua.LString); ok {
			globals[string(name)] = v
		}
	})

	return globals
}

func sortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
