package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novac/pkg/errors"
	"novac/pkg/output"
)

func moduleMeta(name string) *ModuleMetadata {
	return &ModuleMetadata{
		Type:         classRef(name),
		InternalType: &output.ReadVarExpr{Name: name},
		AdjacentType: &output.ReadVarExpr{Name: name},
	}
}

func TestCompileModuleMinimalHasOnlyTypeField(t *testing.T) {
	result := CompileModule(moduleMeta("MyModule"))

	assert.Equal(t,
		"/*@__PURE__*/ i0.defineModule({ type: MyModule })",
		output.ExpressionString(result.Expression))
	assert.Empty(t, result.Statements)
	assert.Equal(t,
		"i0.ModuleDeclaration<MyModule, never, never, never>",
		output.TypeString(result.Type))
}

func TestCompileModuleFieldOrder(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.Bootstrap = classRefs("Root")
	meta.Declarations = classRefs("A", "B")
	meta.Imports = classRefs("C")
	meta.Exports = classRefs("D")
	meta.Schemas = classRefs("NO_ERRORS_SCHEMA")
	meta.ID = &output.LiteralExpr{Value: "app-id"}
	meta.EmitInline = true

	result := CompileModule(meta)
	assert.Equal(t,
		`/*@__PURE__*/ i0.defineModule({ type: MyModule, bootstrap: [Root], `+
			`declarations: [A, B], imports: [C], exports: [D], `+
			`schemas: [NO_ERRORS_SCHEMA], id: "app-id" })`,
		output.ExpressionString(result.Expression))
	assert.Empty(t, result.Statements)
}

func TestCompileModuleInlineVsSplit(t *testing.T) {
	// Inline: scope data lives in the definition object, no statements.
	inline := moduleMeta("MyModule")
	inline.Declarations = classRefs("X")
	inline.EmitInline = true

	result := CompileModule(inline)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineModule({ type: MyModule, declarations: [X] })",
		output.ExpressionString(result.Expression))
	assert.Empty(t, result.Statements)

	// Split: definition omits the scope, a single guarded registration
	// statement carries it instead.
	split := moduleMeta("MyModule")
	split.Declarations = classRefs("X")
	split.EmitInline = false

	result = CompileModule(split)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineModule({ type: MyModule })",
		output.ExpressionString(result.Expression))
	require.Len(t, result.Statements, 1)
	assert.Equal(t,
		`(function () { ((typeof nvJitMode === "undefined") || nvJitMode) && `+
			`i0.setModuleScope(MyModule, { declarations: [X] }); })();`,
		output.StatementString(result.Statements[0]))
}

func TestCompileModuleEmptyScopeEmitsNoRegistration(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.EmitInline = false

	result := CompileModule(meta)
	assert.Empty(t, result.Statements, "a no-op registration defeats tree-shaking")
}

func TestCompileModuleForwardDeclsDeferEveryList(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.Bootstrap = classRefs("Root")
	meta.Declarations = classRefs("A")
	meta.EmitInline = true
	meta.ContainsForwardDecls = true

	result := CompileModule(meta)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineModule({ type: MyModule, "+
			"bootstrap: function () { return [Root]; }, "+
			"declarations: function () { return [A]; } })",
		output.ExpressionString(result.Expression))
}

func TestCompileModuleSchemasAreNeverDeferred(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.Schemas = classRefs("CUSTOM_ELEMENTS_SCHEMA")
	meta.ContainsForwardDecls = true

	result := CompileModule(meta)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineModule({ type: MyModule, schemas: [CUSTOM_ELEMENTS_SCHEMA] })",
		output.ExpressionString(result.Expression))
}

func TestCompileModuleTypeReflectsFullScopeWhenSplit(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.Declarations = classRefs("X")
	meta.Imports = classRefs("Y")
	meta.EmitInline = false

	result := CompileModule(meta)
	// Scope was split out of the value, but the type still carries it.
	assert.Equal(t,
		"i0.ModuleDeclaration<MyModule, [typeof X], [typeof Y], never>",
		output.TypeString(result.Type))
}

func TestCompileModuleScopeRegistrationDefersForwardDecls(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.Declarations = classRefs("A", "B")
	meta.EmitInline = false
	meta.ContainsForwardDecls = true

	result := CompileModule(meta)
	require.Len(t, result.Statements, 1)
	assert.Equal(t,
		`(function () { ((typeof nvJitMode === "undefined") || nvJitMode) && `+
			`i0.setModuleScope(MyModule, { declarations: function () { return [A, B]; } }); })();`,
		output.StatementString(result.Statements[0]))
}

func TestCompileModuleMalformedMetadataPanics(t *testing.T) {
	meta := moduleMeta("MyModule")
	meta.InternalType = nil

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected CompileModule to panic")
		_, ok := r.(*errors.InvariantError)
		assert.True(t, ok, "expected an InvariantError, got %T", r)
	}()
	CompileModule(meta)
}
