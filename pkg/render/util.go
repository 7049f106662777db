package render

import (
	"fmt"

	"novac/pkg/output"
)

const debugRender = false

func debugPrintf(format string, args ...interface{}) {
	if debugRender {
		fmt.Printf(format, args...)
	}
}

// Reference identifies one declared entity (a class, component, etc.) both as
// a value, as it must appear in generated code, and as a type, as it must
// appear in generated type annotations. The two may differ when the emission
// context wraps the definition in an isolating closure. Immutable; produced
// upstream and consumed read-only here.
type Reference struct {
	Value output.Expression
	Type  output.Expression
}

// CompiledResult is the sole output of the lowering functions: the expression
// that registers the definition, an optional type annotation for it, and any
// auxiliary statements to emit alongside it.
type CompiledResult struct {
	Expression output.Expression
	Type       output.Type
	Statements []output.Statement
}

// refsToArray lowers a non-empty reference list to an array literal of the
// reference values, in original order. When forwardDeclare is set the array
// is wrapped in a deferred closure, so that identifiers whose defining
// statements have not yet executed at definition time are not touched until
// the closure is invoked.
//
// Callers check emptiness themselves and omit the field entirely; an empty
// array literal would defeat the "absent means zero-cost" contract.
func refsToArray(refs []Reference, forwardDeclare bool) output.Expression {
	entries := make([]output.Expression, len(refs))
	for i, ref := range refs {
		entries[i] = ref.Value
	}
	arr := &output.LiteralArrayExpr{Entries: entries}
	if forwardDeclare {
		return &output.DeferredExpr{Expr: arr}
	}
	return arr
}

// tupleTypeOf lowers a reference list to a tuple type of `typeof` entries in
// original order. An empty list widens to the "no type" sentinel rather than
// an empty tuple.
func tupleTypeOf(refs []Reference) output.Type {
	if len(refs) == 0 {
		return &output.NoneType{}
	}
	entries := make([]output.Expression, len(refs))
	for i, ref := range refs {
		entries[i] = &output.TypeofExpr{Expr: ref.Type}
	}
	return &output.ExpressionType{Expr: &output.LiteralArrayExpr{Entries: entries}}
}

// jitOnlyGuardedExpression wraps call so it only executes when JIT mode is
// enabled: `(typeof nvJitMode === "undefined" || nvJitMode) && call`. AOT
// bundles never define the flag, so the whole expression short-circuits there
// without forcing evaluation of any deferred closures inside the call.
func jitOnlyGuardedExpression(call output.Expression) output.Expression {
	jitFlag := &output.ReadVarExpr{Name: jitModeFlag}
	undefined := &output.BinaryExpr{
		Op:  output.OpIdentical,
		Lhs: &output.TypeofExpr{Expr: jitFlag},
		Rhs: &output.LiteralExpr{Value: "undefined"},
	}
	guard := &output.BinaryExpr{Op: output.OpOr, Lhs: undefined, Rhs: jitFlag}
	return &output.GuardedCallExpr{Condition: guard, Call: call}
}
