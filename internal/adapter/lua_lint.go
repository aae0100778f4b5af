package adapter

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/ast"

	m "github.com/dystudio/try/internal/model"
)

// lint reports reads of globals that no document assigns and the state does
// not define. Globals assigned by any document are visible to all of them.
func lint(docs []parsedDocument, builtins map[string]lua.LValue) []m.RawDiagnostic {
	assigned := make(map[string]struct{})
	for _, pd := range docs {
		collectGlobalAssignments(pd.chunk, assigned)
	}

	var diags []m.RawDiagnostic

	for _, pd := range docs {
		l := &linter{
			doc:      pd,
			builtins: builtins,
			assigned: assigned,
			reported: make(map[string]struct{}),
		}
		l.block(pd.chunk)
		diags = append(diags, l.diags...)
	}

	return diags
}

type linter struct {
	doc      parsedDocument
	builtins map[string]lua.LValue
	assigned map[string]struct{}
	scopes   []map[string]struct{}
	reported map[string]struct{}
	diags    []m.RawDiagnostic
}

func (l *linter) push() {
	l.scopes = append(l.scopes, make(map[string]struct{}))
}

func (l *linter) pop() {
	l.scopes = l.scopes[:len(l.scopes)-1]
}

func (l *linter) declare(names ...string) {
	if len(l.scopes) == 0 {
		l.push()
	}

	for _, name := range names {
		l.scopes[len(l.scopes)-1][name] = struct{}{}
	}
}

func (l *linter) isLocal(name string) bool {
	for i := len(l.scopes) - 1; i >= 0; i-- {
		if _, ok := l.scopes[i][name]; ok {
			return true
		}
	}

	return false
}

func (l *linter) block(stmts []ast.Stmt) {
	l.push()
	l.stmts(stmts)
	l.pop()
}

func (l *linter) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		l.stmt(s)
	}
}

func (l *linter) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.AssignStmt:
		l.exprs(st.Rhs)

		for _, lhs := range st.Lhs {
			if _, ok := lhs.(*ast.IdentExpr); !ok {
				l.expr(lhs)
			}
		}
	case *ast.LocalAssignStmt:
		if len(st.Names) == 1 && len(st.Exprs) == 1 {
			if fn, ok := st.Exprs[0].(*ast.FunctionExpr); ok {
				l.declare(st.Names[0])
				l.function(fn, false)

				return
			}
		}

		l.exprs(st.Exprs)
		l.declare(st.Names...)
	case *ast.FuncCallStmt:
		l.expr(st.Expr)
	case *ast.DoBlockStmt:
		l.block(st.Stmts)
	case *ast.WhileStmt:
		l.expr(st.Condition)
		l.block(st.Stmts)
	case *ast.RepeatStmt:
		l.push()
		l.stmts(st.Stmts)
		l.expr(st.Condition)
		l.pop()
	case *ast.IfStmt:
		l.expr(st.Condition)
		l.block(st.Then)
		l.block(st.Else)
	case *ast.NumberForStmt:
		l.expr(st.Init)
		l.expr(st.Limit)
		l.expr(st.Step)
		l.push()
		l.declare(st.Name)
		l.stmts(st.Stmts)
		l.pop()
	case *ast.GenericForStmt:
		l.exprs(st.Exprs)
		l.push()
		l.declare(st.Names...)
		l.stmts(st.Stmts)
		l.pop()
	case *ast.FuncDefStmt:
		if st.Name.Receiver != nil {
			l.expr(st.Name.Receiver)
		} else if attr, ok := st.Name.Func.(*ast.AttrGetExpr); ok {
			l.expr(attr.Object)
		}

		l.function(st.Func, st.Name.Receiver != nil)
	case *ast.ReturnStmt:
		l.exprs(st.Exprs)
	}
}

func (l *linter) function(fn *ast.FunctionExpr, method bool) {
	l.push()

	if method {
		l.declare("self")
	}

	if fn.ParList != nil {
		l.declare(fn.ParList.Names...)
	}

	l.stmts(fn.Stmts)
	l.pop()
}

func (l *linter) exprs(exprs []ast.Expr) {
	for _, e := range exprs {
		l.expr(e)
	}
}

func (l *linter) expr(e ast.Expr) {
	switch ex := e.(type) {
	case nil:
		return
	case *ast.IdentExpr:
		l.read(ex)
	case *ast.AttrGetExpr:
		l.expr(ex.Object)
		l.expr(ex.Key)
	case *ast.TableExpr:
		for _, f := range ex.Fields {
			l.expr(f.Key)
			l.expr(f.Value)
		}
	case *ast.FuncCallExpr:
		l.expr(ex.Func)
		l.expr(ex.Receiver)
		l.exprs(ex.Args)
	case *ast.LogicalOpExpr:
		l.expr(ex.Lhs)
		l.expr(ex.Rhs)
	case *ast.RelationalOpExpr:
		l.expr(ex.Lhs)
		l.expr(ex.Rhs)
	case *ast.StringConcatOpExpr:
		l.expr(ex.Lhs)
		l.expr(ex.Rhs)
	case *ast.ArithmeticOpExpr:
		l.expr(ex.Lhs)
		l.expr(ex.Rhs)
	case *ast.UnaryMinusOpExpr:
		l.expr(ex.Expr)
	case *ast.UnaryNotOpExpr:
		l.expr(ex.Expr)
	case *ast.UnaryLenOpExpr:
		l.expr(ex.Expr)
	case *ast.FunctionExpr:
		l.function(ex, false)
	}
}

func (l *linter) read(ident *ast.IdentExpr) {
	name := ident.Value
	if l.isLocal(name) {
		return
	}

	if _, ok := l.builtins[name]; ok {
		return
	}

	if _, ok := l.assigned[name]; ok {
		return
	}

	key := fmt.Sprintf("%d:%s", ident.Line(), name)
	if _, dup := l.reported[key]; dup {
		return
	}

	l.reported[key] = struct{}{}
	l.diags = append(l.diags, m.RawDiagnostic{
		Document: l.doc.doc.Name,
		Offset:   -1,
		Position: m.Position{Line: ident.Line(), Column: identColumn(l.doc.lines, ident.Line(), name)},
		Severity: m.SeverityWarning,
		ID:       LuaUndefinedGlobal,
		Message:  fmt.Sprintf("undefined global '%s'", name),
	})
}

// identColumn finds the 1-based column of the first standalone occurrence of
// name on line. The AST only records lines.
func identColumn(lines []string, line int, name string) int {
	if line < 1 || line > len(lines) {
		return 1
	}

	text := lines[line-1]

	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], name)
		if idx < 0 {
			break
		}

		start := from + idx
		end := start + len(name)

		before := start == 0 || !isIdentByte(text[start-1]) && text[start-1] != '.' && text[start-1] != ':'
		after := end == len(text) || !isIdentByte(text[end])

		if before && after {
			return start + 1
		}

		from = start + 1
	}

	return 1
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// collectGlobalAssignments records names assigned as globals anywhere in
// stmts, including nested blocks and function bodies.
func collectGlobalAssignments(stmts []ast.Stmt, into map[string]struct{}) {
	for _, s := range stmts {
		switch st := s.(type) {
		case *ast.AssignStmt:
			for _, lhs := range st.Lhs {
				if ident, ok := lhs.(*ast.IdentExpr); ok {
					into[ident.Value] = struct{}{}
				}
			}

			collectInExprs(st.Rhs, into)
		case *ast.LocalAssignStmt:
			collectInExprs(st.Exprs, into)
		case *ast.FuncCallStmt:
			collectInExprs([]ast.Expr{st.Expr}, into)
		case *ast.FuncDefStmt:
			if ident, ok := st.Name.Func.(*ast.IdentExpr); ok && st.Name.Receiver == nil {
				into[ident.Value] = struct{}{}
			}

			collectGlobalAssignments(st.Func.Stmts, into)
		case *ast.DoBlockStmt:
			collectGlobalAssignments(st.Stmts, into)
		case *ast.WhileStmt:
			collectGlobalAssignments(st.Stmts, into)
		case *ast.RepeatStmt:
			collectGlobalAssignments(st.Stmts, into)
		case *ast.IfStmt:
			collectGlobalAssignments(st.Then, into)
			collectGlobalAssignments(st.Else, into)
		case *ast.NumberForStmt:
			collectGlobalAssignments(st.Stmts, into)
		case *ast.GenericForStmt:
			collectGlobalAssignments(st.Stmts, into)
		case *ast.ReturnStmt:
			collectInExprs(st.Exprs, into)
		}
	}
}

func collectInExprs(exprs []ast.Expr, into map[string]struct{}) {
	for _, e := range exprs {
		switch ex := e.(type) {
		case *ast.FunctionExpr:
			collectGlobalAssignments(ex.Stmts, into)
		case *ast.FuncCallExpr:
			collectInExprs(ex.Args, into)
		case *ast.TableExpr:
			for _, f := range ex.Fields {
				collectInExprs([]ast.Expr{f.Value}, into)
			}
		}
	}
}
