package adapter

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/ast"
	"github.com/yuin/gopher-lua/parse"

	m "github.com/dystudio/try/internal/model"
)

var luaKeywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function",
	"goto", "if", "in", "local", "nil", "not", "or", "repeat", "return", "then",
	"true", "until", "while",
}

var luaBuiltinSignatures = map[string]m.Signature{
	"print":          builtinSignature("print", "Writes its arguments to the output.", "..."),
	"tostring":       builtinSignature("tostring", "Converts a value to a string.", "v"),
	"tonumber":       builtinSignature("tonumber", "Converts a value to a number.", "e", "base"),
	"type":           builtinSignature("type", "Returns the type name of a value.", "v"),
	"pairs":          builtinSignature("pairs", "Iterates over all key/value pairs of a table.", "t"),
	"ipairs":         builtinSignature("ipairs", "Iterates over the array part of a table.", "t"),
	"error":          builtinSignature("error", "Raises an error.", "message", "level"),
	"assert":         builtinSignature("assert", "Raises an error when v is false or nil.", "v", "message"),
	"pcall":          builtinSignature("pcall", "Calls f in protected mode.", "f", "..."),
	"select":         builtinSignature("select", "Selects arguments after index.", "index", "..."),
	"string.format":  builtinSignature("string.format", "Formats its arguments.", "formatstring", "..."),
	"string.sub":     builtinSignature("string.sub", "Returns a substring.", "s", "i", "j"),
	"string.rep":     builtinSignature("string.rep", "Repeats s n times.", "s", "n"),
	"string.upper":   builtinSignature("string.upper", "Converts s to upper case.", "s"),
	"string.lower":   builtinSignature("string.lower", "Converts s to lower case.", "s"),
	"string.len":     builtinSignature("string.len", "Returns the length of s.", "s"),
	"string.find":    builtinSignature("string.find", "Finds a pattern in s.", "s", "pattern", "init", "plain"),
	"string.gsub":    builtinSignature("string.gsub", "Replaces pattern matches in s.", "s", "pattern", "repl", "n"),
	"table.insert":   builtinSignature("table.insert", "Inserts value into t.", "t", "pos", "value"),
	"table.remove":   builtinSignature("table.remove", "Removes an element from t.", "t", "pos"),
	"table.concat":   builtinSignature("table.concat", "Concatenates the elements of t.", "t", "sep", "i", "j"),
	"table.sort":     builtinSignature("table.sort", "Sorts t in place.", "t", "comp"),
	"math.floor":     builtinSignature("math.floor", "Rounds x down.", "x"),
	"math.max":       builtinSignature("math.max", "Returns the largest argument.", "x", "..."),
	"math.min":       builtinSignature("math.min", "Returns the smallest argument.", "x", "..."),
	"math.random":    builtinSignature("math.random", "Returns a pseudo random number.", "m", "n"),
	"os.time":        builtinSignature("os.time", "Returns the current time.", "t"),
	"coroutine.wrap": builtinSignature("coroutine.wrap", "Creates a coroutine as a function.", "f"),
}

func builtinSignature(name, doc string, params ...string) m.Signature {
	sig := m.Signature{
		Label:         fmt.Sprintf("%s(%s)", name, strings.Join(params, ", ")),
		Documentation: doc,
	}

	for _, p := range params {
		sig.Parameters = append(sig.Parameters, m.SignatureParameter{Label: p})
	}

	return sig
}

// declarations are the names and function signatures found in documents.
type declarations struct {
	names     map[string]string
	fields    map[string]map[string]string
	functions map[string]m.Signature
}

func collectDeclarations(docs []parsedDocument) declarations {
	d := declarations{
		names:     make(map[string]string),
		fields:    make(map[string]map[string]string),
		functions: make(map[string]m.Signature),
	}

	for _, pd := range docs {
		d.stmts(pd.chunk)
	}

	return d
}

// declarationsAt collects declarations from every parsed document. When the
// document holding the cursor does not parse, the lines above the cursor line
// stand in for it.
func declarationsAt(parsed []parsedDocument, doc m.EngineDocument, offset int) declarations {
	for _, pd := range parsed {
		if pd.doc.Name == doc.Name {
			return collectDeclarations(parsed)
		}
	}

	above := doc.Text[:strings.LastIndexByte(doc.Text[:offset], '\n')+1]
	if chunk, err := parse.Parse(strings.NewReader(above), doc.Name); err == nil {
		parsed = append(parsed, parsedDocument{doc: doc, chunk: chunk, lines: strings.Split(above, "\n")})
	}

	return collectDeclarations(parsed)
}

func (d declarations) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.LocalAssignStmt:
			for i, name := range st.Names {
				d.assign(name, valueAt(st.Exprs, i))
			}
		case *ast.AssignStmt:
			for i, lhs := range st.Lhs {
				if name := exprName(lhs); name != "" {
					d.assign(name, valueAt(st.Rhs, i))
				}
			}
		case *ast.FuncDefStmt:
			name := exprName(st.Name.Func)
			if st.Name.Receiver != nil {
				name = exprName(st.Name.Receiver) + ":" + st.Name.Method
			}

			if name != "" {
				d.assign(name, st.Func)
			}
		case *ast.DoBlockStmt:
			d.stmts(st.Stmts)
		case *ast.WhileStmt:
			d.stmts(st.Stmts)
		case *ast.RepeatStmt:
			d.stmts(st.Stmts)
		case *ast.IfStmt:
			d.stmts(st.Then)
			d.stmts(st.Else)
		case *ast.NumberForStmt:
			d.names[st.Name] = "variable"
			d.stmts(st.Stmts)
		case *ast.GenericForStmt:
			for _, name := range st.Names {
				d.names[name] = "variable"
			}

			d.stmts(st.Stmts)
		}
	}
}

func (d declarations) assign(name string, value ast.Expr) {
	kind := "variable"

	fn, isFunc := value.(*ast.FunctionExpr)
	if isFunc {
		kind = "function"
		d.functions[name] = functionSignature(name, fn)
		d.stmts(fn.Stmts)

		if fn.ParList != nil {
			for _, p := range fn.ParList.Names {
				d.names[p] = "parameter"
			}
		}
	}

	if _, ok := value.(*ast.TableExpr); ok {
		kind = "table"
	}

	owner, field, qualified := cutQualifier(name)
	if !qualified {
		d.names[name] = kind

		return
	}

	if d.fields[owner] == nil {
		d.fields[owner] = make(map[string]string)
	}

	d.fields[owner][field] = kind
}

func cutQualifier(name string) (string, string, bool) {
	idx := strings.LastIndexAny(name, ".:")
	if idx < 0 {
		return "", name, false
	}

	return name[:idx], name[idx+1:], true
}

func valueAt(exprs []ast.Expr, i int) ast.Expr {
	if i < len(exprs) {
		return exprs[i]
	}

	return nil
}

func exprName(e ast.Expr) string {
	switch ex := e.(type) {
	case *ast.IdentExpr:
		return ex.Value
	case *ast.AttrGetExpr:
		owner := exprName(ex.Object)
		key, ok := ex.Key.(*ast.StringExpr)

		if owner == "" || !ok {
			return ""
		}

		return owner + "." + key.Value
	default:
		return ""
	}
}

func functionSignature(name string, fn *ast.FunctionExpr) m.Signature {
	var params []string
	if fn.ParList != nil {
		params = append(params, fn.ParList.Names...)
		if fn.ParList.HasVargs {
			params = append(params, "...")
		}
	}

	sig := m.Signature{Label: fmt.Sprintf("%s(%s)", name, strings.Join(params, ", "))}
	for _, p := range params {
		sig.Parameters = append(sig.Parameters, m.SignatureParameter{Label: p})
	}

	return sig
}

func findDocument(req m.EngineRequest, name string, offset int) (m.EngineDocument, error) {
	for _, doc := range req.Documents {
		if doc.Name != name {
			continue
		}

		if offset < 0 || offset > len(doc.Text) {
			return m.EngineDocument{}, fmt.Errorf("offset %d outside %s (length %d)", offset, name, len(doc.Text))
		}

		return doc, nil
	}

	return m.EngineDocument{}, fmt.Errorf("unknown document %q", name)
}

// identifierBefore returns the identifier ending at offset and the
// qualifier before it, as in "string.fo|" -> ("fo", "string", ".").
func identifierBefore(text string, offset int) (start int, word, qualifier string) {
	start = offset
	for start > 0 && isIdentByte(text[start-1]) {
		start--
	}

	word = text[start:offset]

	if start > 0 && (text[start-1] == '.' || text[start-1] == ':') {
		qEnd := start - 1
		qStart := qEnd

		for qStart > 0 && (isIdentByte(text[qStart-1]) || text[qStart-1] == '.') {
			qStart--
		}

		qualifier = text[qStart:qEnd]
	}

	return start, word, qualifier
}

// Complete implements LanguageEngine.
func (e *LuaEngine) Complete(_ context.Context, req m.EngineRequest, document string, offset int) (m.RawCompletionList, error) {
	doc, err := findDocument(req, document, offset)
	if err != nil {
		return m.RawCompletionList{}, err
	}

	L, err := e.newState(req.Usings)
	if err != nil {
		return m.RawCompletionList{}, err
	}
	defer L.Close()

	parsed, diags := parseDocuments(req.Documents)
	decls := declarationsAt(parsed, doc, offset)
	globals := stateGlobals(L)

	start, word, qualifier := identifierBefore(doc.Text, offset)
	candidates := make(map[string]string)

	if qualifier != "" {
		if tbl, ok := globals[qualifier].(*lua.LTable); ok {
			tbl.ForEach(func(k, v lua.LValue) {
				if name, ok := k.(lua.LString); ok {
					candidates[string(name)] = luaValueKind(v)
				}
			})
		}

		for name, kind := range decls.fields[qualifier] {
			candidates[name] = kind
		}
	} else {
		for _, kw := range luaKeywords {
			candidates[kw] = "keyword"
		}

		for name, v := range globals {
			candidates[name] = luaValueKind(v)
		}

		for name, kind := range decls.names {
			candidates[name] = kind
		}
	}

	replace := m.SpanFromBounds(start, offset)
	list := m.RawCompletionList{Document: document, Diagnostics: diags}

	for _, name := range sortedKeys(candidates) {
		if !strings.HasPrefix(name, word) || name == word && candidates[name] == "keyword" {
			continue
		}

		span := replace
		list.Items = append(list.Items, m.RawCompletionItem{
			DisplayText: name,
			Kind:        candidates[name],
			InsertText:  name,
			Replace:     &span,
		})
	}

	return list, nil
}

func luaValueKind(v lua.LValue) string {
	switch v.Type() {
	case lua.LTFunction:
		return "function"
	case lua.LTTable:
		return "table"
	default:
		return "variable"
	}
}

// SignatureHelp implements LanguageEngine. It finds the innermost open call
// before offset and counts the commas that precede offset in it.
func (e *LuaEngine) SignatureHelp(_ context.Context, req m.EngineRequest, document string, offset int) (m.RawSignatureHelp, error) {
	doc, err := findDocument(req, document, offset)
	if err != nil {
		return m.RawSignatureHelp{}, err
	}

	parsed, diags := parseDocuments(req.Documents)
	help := m.RawSignatureHelp{Document: document, Diagnostics: diags}

	open, commas, ok := openCall(doc.Text, offset)
	if !ok {
		return help, nil
	}

	nameEnd := open
	for nameEnd > 0 && (doc.Text[nameEnd-1] == ' ' || doc.Text[nameEnd-1] == '\t') {
		nameEnd--
	}

	_, word, qualifier := identifierBefore(doc.Text, nameEnd)
	if word == "" {
		return help, nil
	}

	name := word
	if qualifier != "" {
		sep := doc.Text[nameEnd-len(word)-1 : nameEnd-len(word)]
		name = qualifier + sep + word
	}

	decls := declarationsAt(parsed, doc, offset)

	sig, found := decls.functions[name]
	if !found {
		sig, found = luaBuiltinSignatures[name]
	}

	if !found {
		return help, nil
	}

	applicable := m.SpanFromBounds(open+1, offset)
	help.Signatures = []m.Signature{sig}
	help.ActiveParameter = commas
	help.Applicable = &applicable

	if n := len(sig.Parameters); n > 0 && commas >= n {
		if sig.Parameters[n-1].Label == "..." {
			help.ActiveParameter = n - 1
		}
	}

	return help, nil
}

// openCall scans backwards from offset for an unmatched '(' and counts the
// top level commas between it and offset. Quoted strings are skipped.
func openCall(text string, offset int) (open, commas int, ok bool) {
	depth := 0
	quote := byte(0)

	for i := offset - 1; i >= 0; i-- {
		c := text[i]

		if quote != 0 {
			if c == quote && (i == 0 || text[i-1] != '\\') {
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case ')', ']', '}':
			depth++
		case '[', '{':
			if depth == 0 {
				return 0, 0, false
			}

			depth--
		case '(':
			if depth == 0 {
				return i, commas, true
			}

			depth--
		case ',':
			if depth == 0 {
				commas++
			}
		case '\n':
			if i > 0 && text[i-1] == '\n' {
				return 0, 0, false
			}
		}
	}

	return 0, 0, false
}
