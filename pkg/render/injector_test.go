package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"novac/pkg/output"
)

func injectorMeta(name string) *InjectorMetadata {
	return &InjectorMetadata{
		Name:         name,
		Type:         classRef(name),
		InternalType: &output.ReadVarExpr{Name: name},
	}
}

func TestCompileInjectorEmpty(t *testing.T) {
	result := CompileInjector(injectorMeta("AppInjector"))

	assert.Equal(t,
		"/*@__PURE__*/ i0.defineInjector({})",
		output.ExpressionString(result.Expression))
	assert.Equal(t,
		"i0.InjectorDeclaration<AppInjector>",
		output.TypeString(result.Type))
	assert.Empty(t, result.Statements)
}

func TestCompileInjectorProvidersAndImports(t *testing.T) {
	meta := injectorMeta("AppInjector")
	meta.Providers = &output.RawExpr{Code: "[{ provide: Config, useValue: defaults }]"}
	meta.Imports = []output.Expression{
		&output.ReadVarExpr{Name: "CommonModule"},
		&output.ReadVarExpr{Name: "RouterModule"},
	}

	result := CompileInjector(meta)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineInjector({ "+
			"providers: [{ provide: Config, useValue: defaults }], "+
			"imports: [CommonModule, RouterModule] })",
		output.ExpressionString(result.Expression))
	assert.Empty(t, result.Statements)
}

func TestCompileInjectorProvidersOnly(t *testing.T) {
	meta := injectorMeta("AppInjector")
	meta.Providers = &output.RawExpr{Code: "[Logger]"}

	result := CompileInjector(meta)
	assert.Equal(t,
		"/*@__PURE__*/ i0.defineInjector({ providers: [Logger] })",
		output.ExpressionString(result.Expression))
}
