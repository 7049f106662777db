package render

import (
	"novac/pkg/errors"
	"novac/pkg/output"
)

// The closed set of definition fields, per descriptor kind. The lowering
// functions only ever set these, in the documented order; anything else is a
// regression.
const (
	fieldType         = "type"
	fieldBootstrap    = "bootstrap"
	fieldDeclarations = "declarations"
	fieldImports      = "imports"
	fieldExports      = "exports"
	fieldSchemas      = "schemas"
	fieldID           = "id"
	fieldProviders    = "providers"
)

// DefinitionMap is an ordered, append-only field → expression scratch
// structure used to assemble a definition object literal field by field.
// Insertion order is fixed by the lowering function and preserved exactly by
// ToLiteralMap; downstream consumers depend on field order for diffing.
type DefinitionMap struct {
	keys   []string
	values map[string]output.Expression
}

// NewDefinitionMap creates an empty definition map.
func NewDefinitionMap() *DefinitionMap {
	return &DefinitionMap{
		values: make(map[string]output.Expression),
	}
}

// Set appends key → value. A nil value is ignored, matching the "absent means
// zero-cost" contract: callers omit fields rather than emit empty ones.
// Setting the same key twice is a logic error in the lowering pass and panics
// with a DuplicateFieldError so ordering regressions surface immediately.
func (m *DefinitionMap) Set(key string, value output.Expression) {
	if value == nil {
		return
	}
	if _, exists := m.values[key]; exists {
		panic(&errors.DuplicateFieldError{Field: key})
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
}

// Empty reports whether no field has been set.
func (m *DefinitionMap) Empty() bool {
	return len(m.keys) == 0
}

// ToLiteralMap serializes the accumulated fields, in insertion order, to an
// object literal. An empty map serializes to `{}`; this never fails.
func (m *DefinitionMap) ToLiteralMap() *output.LiteralMapExpr {
	entries := make([]output.LiteralMapEntry, len(m.keys))
	for i, key := range m.keys {
		entries[i] = output.LiteralMapEntry{Key: key, Value: m.values[key]}
	}
	return &output.LiteralMapExpr{Entries: entries}
}
