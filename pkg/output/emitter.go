package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Matches a plain JS identifier. Object-literal keys that fail this check are
// emitted quoted regardless of the entry's Quoted flag.
var identifierRegexp = regexp2.MustCompile(`^[_$\p{L}][_$\p{L}\p{Nd}]*$`, regexp2.None)

// IsValidIdentifier reports whether name can be emitted as a bare JS
// identifier.
func IsValidIdentifier(name string) bool {
	ok, err := identifierRegexp.MatchString(name)
	return err == nil && ok
}

// Import records one module the emitted code depends on, together with the
// alias assigned to it.
type Import struct {
	Alias      string
	ModuleName string
}

// Emitter is responsible for transforming output IR nodes into TypeScript
// code. External references are resolved to per-module import aliases in
// first-use order; the caller renders the import statements from Imports().
type Emitter struct {
	indentLevel int
	buffer      bytes.Buffer
	aliases     map[string]string
	imports     []Import
}

// NewEmitter creates a new TypeScript emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		indentLevel: 0,
		aliases:     make(map[string]string),
	}
}

// Imports returns the modules referenced so far, in first-use order.
func (e *Emitter) Imports() []Import {
	return e.imports
}

// String returns the code emitted so far, without import statements.
func (e *Emitter) String() string {
	return e.buffer.String()
}

// WriteString appends raw text to the output. Used by drivers to interleave
// surrounding source text (declarations, separators) with emitted IR.
func (e *Emitter) WriteString(s string) {
	e.buffer.WriteString(s)
}

// Helper methods

func (e *Emitter) writeIndent() {
	for i := 0; i < e.indentLevel; i++ {
		e.buffer.WriteString("  ")
	}
}

func (e *Emitter) write(format string, args ...interface{}) {
	fmt.Fprintf(&e.buffer, format, args...)
}

func (e *Emitter) moduleAlias(moduleName string) string {
	if alias, ok := e.aliases[moduleName]; ok {
		return alias
	}
	alias := fmt.Sprintf("i%d", len(e.imports))
	e.aliases[moduleName] = alias
	e.imports = append(e.imports, Import{Alias: alias, ModuleName: moduleName})
	return alias
}

// IR emitter methods

// EmitStatement appends one statement, terminated by a newline.
func (e *Emitter) EmitStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		e.writeIndent()
		e.EmitExpression(s.Expr)
		e.write(";\n")
	case *IsolatedSideEffectStmt:
		e.emitIsolatedSideEffect(s)
	default:
		// Handle unknown statement types
		e.writeIndent()
		e.write("/* Unsupported statement type: %T */\n", s)
	}
}

func (e *Emitter) emitIsolatedSideEffect(stmt *IsolatedSideEffectStmt) {
	e.writeIndent()
	e.write("(function () { ")
	switch body := stmt.Body.(type) {
	case *ExpressionStmt:
		e.EmitExpression(body.Expr)
		e.write(";")
	default:
		e.EmitStatement(body)
	}
	e.write(" })();\n")
}

// EmitExpression appends one expression, with no trailing newline.
func (e *Emitter) EmitExpression(expr Expression) {
	switch exp := expr.(type) {
	case *LiteralExpr:
		e.emitLiteral(exp)
	case *ReadVarExpr:
		e.write(exp.Name)
	case *ExternalExpr:
		e.write("%s.%s", e.moduleAlias(exp.Ref.ModuleName), exp.Ref.Name)
	case *LiteralArrayExpr:
		e.emitArrayLiteral(exp)
	case *LiteralMapExpr:
		e.emitMapLiteral(exp)
	case *InvokeFunctionExpr:
		e.emitInvokeFunction(exp)
	case *TypeofExpr:
		e.write("typeof ")
		e.EmitExpression(exp.Expr)
	case *BinaryExpr:
		e.emitBinary(exp)
	case *RawExpr:
		e.write("%s", exp.Code)
	case *DeferredExpr:
		e.write("function () { return ")
		e.EmitExpression(exp.Expr)
		e.write("; }")
	case *GuardedCallExpr:
		e.EmitExpression(exp.Condition)
		e.write(" && ")
		e.EmitExpression(exp.Call)
	default:
		// Handle unsupported expression types
		e.write("/* Unsupported expression type: %T */", exp)
	}
}

func (e *Emitter) emitLiteral(lit *LiteralExpr) {
	switch v := lit.Value.(type) {
	case nil:
		e.write("null")
	case string:
		e.write("%q", v)
	case bool:
		e.write("%t", v)
	default:
		e.write("%v", v)
	}
}

func (e *Emitter) emitArrayLiteral(arr *LiteralArrayExpr) {
	e.write("[")
	for i, entry := range arr.Entries {
		e.EmitExpression(entry)
		if i < len(arr.Entries)-1 {
			e.write(", ")
		}
	}
	e.write("]")
}

func (e *Emitter) emitMapLiteral(m *LiteralMapExpr) {
	if len(m.Entries) == 0 {
		e.write("{}")
		return
	}
	e.write("{ ")
	for i, entry := range m.Entries {
		if entry.Quoted || !IsValidIdentifier(entry.Key) {
			e.write("%q", entry.Key)
		} else {
			e.write("%s", entry.Key)
		}
		e.write(": ")
		e.EmitExpression(entry.Value)
		if i < len(m.Entries)-1 {
			e.write(", ")
		}
	}
	e.write(" }")
}

func (e *Emitter) emitInvokeFunction(call *InvokeFunctionExpr) {
	if call.Pure {
		e.write("/*@__PURE__*/ ")
	}
	e.EmitExpression(call.Fn)
	e.write("(")
	for i, arg := range call.Args {
		e.EmitExpression(arg)
		if i < len(call.Args)-1 {
			e.write(", ")
		}
	}
	e.write(")")
}

func (e *Emitter) emitBinary(expr *BinaryExpr) {
	e.write("(")
	e.EmitExpression(expr.Lhs)
	e.write(" %s ", expr.Op)
	e.EmitExpression(expr.Rhs)
	e.write(")")
}

// EmitType appends one type annotation.
func (e *Emitter) EmitType(typ Type) {
	switch t := typ.(type) {
	case *ExpressionType:
		e.EmitExpression(t.Expr)
		if len(t.TypeParams) > 0 {
			e.write("<")
			for i, p := range t.TypeParams {
				e.EmitType(p)
				if i < len(t.TypeParams)-1 {
					e.write(", ")
				}
			}
			e.write(">")
		}
	case *NoneType:
		e.write("never")
	case *DynamicType:
		e.write("any")
	default:
		e.write("/* Unsupported type: %T */", t)
	}
}

// ExpressionString renders a single expression with a throwaway emitter.
// Aliases are assigned per call, so only use this for debugging or tests.
func ExpressionString(expr Expression) string {
	em := NewEmitter()
	em.EmitExpression(expr)
	return em.String()
}

// TypeString renders a single type with a throwaway emitter.
func TypeString(typ Type) string {
	em := NewEmitter()
	em.EmitType(typ)
	return em.String()
}

// StatementString renders a single statement with a throwaway emitter.
func StatementString(stmt Statement) string {
	em := NewEmitter()
	em.EmitStatement(stmt)
	return strings.TrimSuffix(em.String(), "\n")
}
