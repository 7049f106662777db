package render

import (
	"novac/pkg/errors"
	"novac/pkg/output"
)

// ModuleMetadata fully describes one module to be lowered. Type,
// InternalType and AdjacentType all denote the same logical entity under
// different syntactic visibility; the pass never assumes they are equal.
type ModuleMetadata struct {
	// Type is the module class as referenced by generated code and types.
	Type Reference

	// InternalType is how the module is referenced from inside its own
	// definition.
	InternalType output.Expression

	// AdjacentType is how the module is referenced by statements emitted
	// alongside (but outside) the definition, e.g. the scope registration.
	AdjacentType output.Expression

	Bootstrap    []Reference
	Declarations []Reference
	Imports      []Reference
	Exports      []Reference

	// EmitInline keeps declarations/imports/exports inside the definition
	// object. When false they are split into a separate, guarded
	// registration statement so unused declarations stay tree-shakeable.
	EmitInline bool

	// ContainsForwardDecls defers evaluation of every reference list behind
	// a closure. The policy is list-level: one flag covers all lists.
	ContainsForwardDecls bool

	// Schemas, if non-empty, are framework-internal constants; they carry no
	// cycle risk and are never deferred.
	Schemas []Reference

	// ID is an optional expression uniquely identifying the module.
	ID output.Expression
}

// CompileModule lowers a module descriptor to its definition expression, the
// type of that expression, and any auxiliary statements.
//
// Field order in the definition object is load-bearing: downstream consumers
// diff and snapshot the emitted text, so the Set calls below must stay in
// exactly this order.
func CompileModule(meta *ModuleMetadata) CompiledResult {
	checkModuleMetadata(meta)
	debugPrintf("// lowering module %s (inline=%t)\n", meta.InternalType.String(), meta.EmitInline)

	def := NewDefinitionMap()
	statements := []output.Statement{}

	// Every module has an identity.
	def.Set(fieldType, meta.InternalType)

	if len(meta.Bootstrap) > 0 {
		def.Set(fieldBootstrap, refsToArray(meta.Bootstrap, meta.ContainsForwardDecls))
	}

	if meta.EmitInline {
		// Scope data co-located with the definition; tree-shaking is not a
		// concern on this path.
		if len(meta.Declarations) > 0 {
			def.Set(fieldDeclarations, refsToArray(meta.Declarations, meta.ContainsForwardDecls))
		}
		if len(meta.Imports) > 0 {
			def.Set(fieldImports, refsToArray(meta.Imports, meta.ContainsForwardDecls))
		}
		if len(meta.Exports) > 0 {
			def.Set(fieldExports, refsToArray(meta.Exports, meta.ContainsForwardDecls))
		}
	} else if stmt := scopeRegistration(meta); stmt != nil {
		statements = append(statements, stmt)
	}

	if len(meta.Schemas) > 0 {
		entries := make([]output.Expression, len(meta.Schemas))
		for i, schema := range meta.Schemas {
			entries[i] = schema.Value
		}
		def.Set(fieldSchemas, &output.LiteralArrayExpr{Entries: entries})
	}

	if meta.ID != nil {
		def.Set(fieldID, meta.ID)
	}

	expression := &output.InvokeFunctionExpr{
		Fn:   &output.ExternalExpr{Ref: DefineModule},
		Args: []output.Expression{def.ToLiteralMap()},
		Pure: true,
	}

	return CompiledResult{
		Expression: expression,
		Type:       createModuleType(meta),
		Statements: statements,
	}
}

// createModuleType synthesizes the declaration type of the module definition.
// The tuple parameters always reflect the full original scope lists, even
// when the value-level scope was split out by the inlining decision.
func createModuleType(meta *ModuleMetadata) output.Type {
	return &output.ExpressionType{
		Expr: &output.ExternalExpr{Ref: ModuleDeclaration},
		TypeParams: []output.Type{
			&output.ExpressionType{Expr: meta.Type.Type},
			tupleTypeOf(meta.Declarations),
			tupleTypeOf(meta.Imports),
			tupleTypeOf(meta.Exports),
		},
	}
}

// scopeRegistration builds the conditional statement registering a module's
// declarations/imports/exports separately from its definition. Returns nil
// when all three lists are empty: a no-op registration would defeat
// tree-shaking of the registration machinery itself.
//
// The call only runs in JIT mode and is wrapped in an immediately-invoked
// closure so its bindings cannot collide with sibling generated code.
func scopeRegistration(meta *ModuleMetadata) output.Statement {
	scope := NewDefinitionMap()
	if len(meta.Declarations) > 0 {
		scope.Set(fieldDeclarations, refsToArray(meta.Declarations, meta.ContainsForwardDecls))
	}
	if len(meta.Imports) > 0 {
		scope.Set(fieldImports, refsToArray(meta.Imports, meta.ContainsForwardDecls))
	}
	if len(meta.Exports) > 0 {
		scope.Set(fieldExports, refsToArray(meta.Exports, meta.ContainsForwardDecls))
	}
	if scope.Empty() {
		return nil
	}

	call := &output.InvokeFunctionExpr{
		Fn:   &output.ExternalExpr{Ref: SetModuleScope},
		Args: []output.Expression{meta.AdjacentType, scope.ToLiteralMap()},
	}
	return &output.IsolatedSideEffectStmt{
		Body: &output.ExpressionStmt{Expr: jitOnlyGuardedExpression(call)},
	}
}

func checkModuleMetadata(meta *ModuleMetadata) {
	if meta == nil {
		panic(&errors.InvariantError{Msg: "nil module metadata"})
	}
	if meta.Type.Value == nil || meta.Type.Type == nil {
		panic(&errors.InvariantError{Msg: "module metadata has no type reference"})
	}
	if meta.InternalType == nil {
		panic(&errors.InvariantError{Msg: "module metadata has no internal type"})
	}
	if meta.AdjacentType == nil {
		panic(&errors.InvariantError{Msg: "module metadata has no adjacent type"})
	}
}
