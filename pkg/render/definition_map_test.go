package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novac/pkg/errors"
	"novac/pkg/output"
)

func TestDefinitionMapPreservesInsertionOrder(t *testing.T) {
	m := NewDefinitionMap()
	m.Set("type", &output.ReadVarExpr{Name: "MyModule"})
	m.Set("bootstrap", &output.ReadVarExpr{Name: "Root"})
	m.Set("id", &output.LiteralExpr{Value: "app"})

	lit := m.ToLiteralMap()
	require.Len(t, lit.Entries, 3)
	assert.Equal(t, "type", lit.Entries[0].Key)
	assert.Equal(t, "bootstrap", lit.Entries[1].Key)
	assert.Equal(t, "id", lit.Entries[2].Key)
}

func TestDefinitionMapEmptySerializesToEmptyObject(t *testing.T) {
	m := NewDefinitionMap()
	assert.True(t, m.Empty())
	assert.Equal(t, "{}", output.ExpressionString(m.ToLiteralMap()))
}

func TestDefinitionMapIgnoresNilValues(t *testing.T) {
	m := NewDefinitionMap()
	m.Set("providers", nil)
	assert.True(t, m.Empty())
	// A nil set must not reserve the key either.
	m.Set("providers", &output.ReadVarExpr{Name: "providers"})
	assert.False(t, m.Empty())
}

func TestDefinitionMapDuplicateFieldPanics(t *testing.T) {
	m := NewDefinitionMap()
	m.Set("type", &output.ReadVarExpr{Name: "A"})

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected Set to panic on duplicate field")
		dup, ok := r.(*errors.DuplicateFieldError)
		require.True(t, ok, "expected a DuplicateFieldError, got %T", r)
		assert.Equal(t, "type", dup.Field)
	}()
	m.Set("type", &output.ReadVarExpr{Name: "B"})
}
