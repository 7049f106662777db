// Package descriptor reads serialized module/injector descriptors, the
// interchange format between the upstream metadata-collection stage and the
// lowering pass. Files may be YAML or JSON; every class is referenced by the
// identifier it will have in the emitted compilation unit.
package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"novac/pkg/errors"
	"novac/pkg/output"
	"novac/pkg/render"
)

// File is the root of a descriptor document.
type File struct {
	Modules   []Module   `yaml:"modules" json:"modules"`
	Injectors []Injector `yaml:"injectors" json:"injectors"`
}

// Module is the serialized form of a module descriptor. All class lists hold
// identifier names; ID holds a raw expression.
type Module struct {
	Name                 string   `yaml:"name" json:"name"`
	Bootstrap            []string `yaml:"bootstrap" json:"bootstrap"`
	Declarations         []string `yaml:"declarations" json:"declarations"`
	Imports              []string `yaml:"imports" json:"imports"`
	Exports              []string `yaml:"exports" json:"exports"`
	EmitInline           bool     `yaml:"emitInline" json:"emitInline"`
	ContainsForwardDecls bool     `yaml:"containsForwardDecls" json:"containsForwardDecls"`
	Schemas              []string `yaml:"schemas" json:"schemas"`
	ID                   string   `yaml:"id" json:"id"`
}

// Injector is the serialized form of an injector descriptor. Providers holds
// a raw expression (typically an array literal copied from the annotation).
type Injector struct {
	Name      string   `yaml:"name" json:"name"`
	Providers string   `yaml:"providers" json:"providers"`
	Imports   []string `yaml:"imports" json:"imports"`
}

// Parse reads a descriptor document. JSON documents are detected by their
// first byte; everything else goes through the YAML parser.
func Parse(data []byte) (*File, error) {
	var file File
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, (&errors.DescriptorError{Msg: "invalid JSON descriptor"}).CausedBy(err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, (&errors.DescriptorError{Msg: "invalid YAML descriptor"}).CausedBy(err)
		}
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	for i := range f.Modules {
		m := &f.Modules[i]
		if m.Name == "" {
			return &errors.DescriptorError{Msg: fmt.Sprintf("module %d has no name", i)}
		}
		if !output.IsValidIdentifier(m.Name) {
			return &errors.DescriptorError{Unit: m.Name, Msg: "module name is not a valid identifier"}
		}
		for _, list := range [][]string{m.Bootstrap, m.Declarations, m.Imports, m.Exports, m.Schemas} {
			for _, name := range list {
				if !output.IsValidIdentifier(name) {
					return &errors.DescriptorError{
						Unit: m.Name,
						Msg:  fmt.Sprintf("%q is not a valid identifier", name),
					}
				}
			}
		}
	}
	for i := range f.Injectors {
		inj := &f.Injectors[i]
		if inj.Name == "" {
			return &errors.DescriptorError{Msg: fmt.Sprintf("injector %d has no name", i)}
		}
		if !output.IsValidIdentifier(inj.Name) {
			return &errors.DescriptorError{Unit: inj.Name, Msg: "injector name is not a valid identifier"}
		}
		for _, name := range inj.Imports {
			if !output.IsValidIdentifier(name) {
				return &errors.DescriptorError{
					Unit: inj.Name,
					Msg:  fmt.Sprintf("%q is not a valid identifier", name),
				}
			}
		}
	}
	return nil
}

func classRef(name string) render.Reference {
	return render.Reference{
		Value: &output.ReadVarExpr{Name: name},
		Type:  &output.ReadVarExpr{Name: name},
	}
}

func classRefs(names []string) []render.Reference {
	if len(names) == 0 {
		return nil
	}
	refs := make([]render.Reference, len(names))
	for i, name := range names {
		refs[i] = classRef(name)
	}
	return refs
}

// Render converts the serialized module into lowering metadata. The
// descriptor format has no isolating-closure emission mode, so internal and
// adjacent type coincide with the module class itself.
func (m *Module) Render() *render.ModuleMetadata {
	meta := &render.ModuleMetadata{
		Type:                 classRef(m.Name),
		InternalType:         &output.ReadVarExpr{Name: m.Name},
		AdjacentType:         &output.ReadVarExpr{Name: m.Name},
		Bootstrap:            classRefs(m.Bootstrap),
		Declarations:         classRefs(m.Declarations),
		Imports:              classRefs(m.Imports),
		Exports:              classRefs(m.Exports),
		EmitInline:           m.EmitInline,
		ContainsForwardDecls: m.ContainsForwardDecls,
		Schemas:              classRefs(m.Schemas),
	}
	if m.ID != "" {
		meta.ID = &output.RawExpr{Code: m.ID}
	}
	return meta
}

// Render converts the serialized injector into lowering metadata.
func (inj *Injector) Render() *render.InjectorMetadata {
	meta := &render.InjectorMetadata{
		Name:         inj.Name,
		Type:         classRef(inj.Name),
		InternalType: &output.ReadVarExpr{Name: inj.Name},
	}
	if inj.Providers != "" {
		meta.Providers = &output.RawExpr{Code: inj.Providers}
	}
	if len(inj.Imports) > 0 {
		imports := make([]output.Expression, len(inj.Imports))
		for i, name := range inj.Imports {
			imports[i] = &output.ReadVarExpr{Name: name}
		}
		meta.Imports = imports
	}
	return meta
}
