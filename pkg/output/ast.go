package output

import (
	"bytes"
	"fmt"
	"strings"
)

// --- Interfaces ---

// Node is the base interface for all output IR nodes.
type Node interface {
	String() string // Returns a string representation of the node (for debugging)
}

// Expression represents an expression node in the output IR.
type Expression interface {
	Node
	expressionNode() // Dummy method for distinguishing expression types
}

// Statement represents a statement node in the output IR.
type Statement interface {
	Node
	statementNode() // Dummy method for distinguishing statement types
}

// --- Expression Nodes ---

// LiteralExpr represents a primitive literal: string, float64, int, bool or
// nil (emitted as `null`).
type LiteralExpr struct {
	Value interface{}
}

func (l *LiteralExpr) expressionNode() {}
func (l *LiteralExpr) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ReadVarExpr reads a variable visible in the surrounding emission scope.
type ReadVarExpr struct {
	Name string
}

func (r *ReadVarExpr) expressionNode() {}
func (r *ReadVarExpr) String() string  { return r.Name }

// ExternalReference identifies a symbol exported by another module, e.g. the
// runtime's `defineModule` in `@nova/core`.
type ExternalReference struct {
	ModuleName string
	Name       string
}

// ExternalExpr references an external symbol. The emitter resolves the module
// name to an import alias.
type ExternalExpr struct {
	Ref ExternalReference
}

func (x *ExternalExpr) expressionNode() {}
func (x *ExternalExpr) String() string {
	return fmt.Sprintf("%s:%s", x.Ref.ModuleName, x.Ref.Name)
}

// LiteralArrayExpr represents an array literal. Entry order is significant
// and preserved exactly by the emitter.
type LiteralArrayExpr struct {
	Entries []Expression
}

func (a *LiteralArrayExpr) expressionNode() {}
func (a *LiteralArrayExpr) String() string {
	parts := make([]string, len(a.Entries))
	for i, entry := range a.Entries {
		parts[i] = entry.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// LiteralMapEntry is one key/value pair of an object literal. Quoted forces
// the key to be emitted as a string literal even when it is a plain
// identifier.
type LiteralMapEntry struct {
	Key    string
	Value  Expression
	Quoted bool
}

// LiteralMapExpr represents an object literal. Entry order is significant and
// preserved exactly by the emitter.
type LiteralMapExpr struct {
	Entries []LiteralMapEntry
}

func (m *LiteralMapExpr) expressionNode() {}
func (m *LiteralMapExpr) String() string {
	if len(m.Entries) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	out.WriteString("{ ")
	for i, entry := range m.Entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(entry.Key)
		out.WriteString(": ")
		out.WriteString(entry.Value.String())
	}
	out.WriteString(" }")
	return out.String()
}

// InvokeFunctionExpr represents a function invocation. Pure marks the call as
// side-effect-free so a dead-code eliminator may drop it when the result is
// unused; the emitter renders the annotation as a `/*@__PURE__*/` comment.
type InvokeFunctionExpr struct {
	Fn   Expression
	Args []Expression
	Pure bool
}

func (c *InvokeFunctionExpr) expressionNode() {}
func (c *InvokeFunctionExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = arg.String()
	}
	return c.Fn.String() + "(" + strings.Join(parts, ", ") + ")"
}

// TypeofExpr represents the `typeof` operator applied to an expression. Used
// both at value level (the JIT-mode guard) and inside tuple types.
type TypeofExpr struct {
	Expr Expression
}

func (t *TypeofExpr) expressionNode() {}
func (t *TypeofExpr) String() string  { return "typeof " + t.Expr.String() }

// BinaryOperator enumerates the operators the lowering pass needs.
type BinaryOperator string

const (
	OpAnd       BinaryOperator = "&&"
	OpOr        BinaryOperator = "||"
	OpIdentical BinaryOperator = "==="
)

// BinaryExpr represents a binary operator expression.
type BinaryExpr struct {
	Op  BinaryOperator
	Lhs Expression
	Rhs Expression
}

func (b *BinaryExpr) expressionNode() {}
func (b *BinaryExpr) String() string {
	return "(" + b.Lhs.String() + " " + string(b.Op) + " " + b.Rhs.String() + ")"
}

// RawExpr carries an opaque fragment of source text produced upstream (e.g. a
// provider array copied verbatim from an annotation). Emitted as-is.
type RawExpr struct {
	Code string
}

func (r *RawExpr) expressionNode() {}
func (r *RawExpr) String() string  { return r.Code }

// DeferredExpr wraps an expression in a zero-argument closure so that
// evaluation of the identifiers inside it is deferred until the closure is
// invoked. This is the cycle-breaking mechanism for forward references,
// carried as data so the decision stays visible in the IR.
type DeferredExpr struct {
	Expr Expression
}

func (d *DeferredExpr) expressionNode() {}
func (d *DeferredExpr) String() string {
	return "function () { return " + d.Expr.String() + "; }"
}

// GuardedCallExpr short-circuits Call behind Condition: the call only runs
// when the condition is truthy. Emitted as `condition && call`.
type GuardedCallExpr struct {
	Condition Expression
	Call      Expression
}

func (g *GuardedCallExpr) expressionNode() {}
func (g *GuardedCallExpr) String() string {
	return g.Condition.String() + " && " + g.Call.String()
}

// --- Statement Nodes ---

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expr Expression
}

func (s *ExpressionStmt) statementNode() {}
func (s *ExpressionStmt) String() string { return s.Expr.String() + ";" }

// IsolatedSideEffectStmt runs its body inside an immediately-invoked closure,
// isolating any bindings the body introduces from the surrounding emission
// scope so sibling generated code cannot collide with them.
type IsolatedSideEffectStmt struct {
	Body Statement
}

func (s *IsolatedSideEffectStmt) statementNode() {}
func (s *IsolatedSideEffectStmt) String() string {
	return "(function () { " + s.Body.String() + " })();"
}
