package render

import (
	"novac/pkg/errors"
	"novac/pkg/output"
)

// InjectorMetadata describes one injector configuration to be lowered.
type InjectorMetadata struct {
	Name string

	// Type is the injector class as referenced by generated code and types.
	Type Reference

	// InternalType is how the injector is referenced from inside its own
	// definition.
	InternalType output.Expression

	// Providers is a single expression (usually an array literal produced
	// upstream), or nil when the injector declares none.
	Providers output.Expression

	// Imports are raw expressions; injector imports are acyclic by
	// construction upstream, so no forward-declare support is needed.
	Imports []output.Expression
}

// CompileInjector lowers an injector descriptor. Unlike modules there is no
// scope splitting and no deferred wrapping; the result never carries
// auxiliary statements.
func CompileInjector(meta *InjectorMetadata) CompiledResult {
	if meta == nil {
		panic(&errors.InvariantError{Msg: "nil injector metadata"})
	}
	if meta.Type.Type == nil || meta.InternalType == nil {
		panic(&errors.InvariantError{Msg: "injector metadata has no type reference"})
	}
	debugPrintf("// lowering injector %s\n", meta.Name)

	def := NewDefinitionMap()
	if meta.Providers != nil {
		def.Set(fieldProviders, meta.Providers)
	}
	if len(meta.Imports) > 0 {
		def.Set(fieldImports, &output.LiteralArrayExpr{Entries: meta.Imports})
	}

	expression := &output.InvokeFunctionExpr{
		Fn:   &output.ExternalExpr{Ref: DefineInjector},
		Args: []output.Expression{def.ToLiteralMap()},
		Pure: true,
	}
	typ := &output.ExpressionType{
		Expr: &output.ExternalExpr{Ref: InjectorDeclaration},
		TypeParams: []output.Type{
			&output.ExpressionType{Expr: meta.Type.Type},
		},
	}

	return CompiledResult{
		Expression: expression,
		Type:       typ,
		Statements: []output.Statement{},
	}
}
