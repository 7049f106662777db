package output

import "strings"

// Type represents a type annotation node in the output IR.
type Type interface {
	Node
	typeNode() // Dummy method for distinguishing type nodes
}

// ExpressionType uses a value expression in type position, optionally applied
// to generic type arguments. `i0.ModuleDeclaration<A, B>` is an ExpressionType
// whose Expr is the external reference and whose TypeParams are A and B.
// `[typeof X]` is an ExpressionType whose Expr is an array of TypeofExprs.
type ExpressionType struct {
	Expr       Expression
	TypeParams []Type
}

func (t *ExpressionType) typeNode() {}
func (t *ExpressionType) String() string {
	if len(t.TypeParams) == 0 {
		return t.Expr.String()
	}
	parts := make([]string, len(t.TypeParams))
	for i, p := range t.TypeParams {
		parts[i] = p.String()
	}
	return t.Expr.String() + "<" + strings.Join(parts, ", ") + ">"
}

// NoneType is the "no type" sentinel. An empty reference list widens to this
// rather than to an empty tuple; it emits as `never`.
type NoneType struct{}

func (t *NoneType) typeNode()      {}
func (t *NoneType) String() string { return "never" }

// DynamicType is the untyped placeholder, emitted as `any`.
type DynamicType struct{}

func (t *DynamicType) typeNode()      {}
func (t *DynamicType) String() string { return "any" }
