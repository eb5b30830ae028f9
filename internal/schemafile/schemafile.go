// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schemafile reads and writes textual pvdata schema descriptions
// in YAML or JSON.
package schemafile

import (
	"github.com/dacolabs/ntt/pvdata"
)

// Kind strings used in schema description files.
const (
	kindScalar         = "scalar"
	kindScalarArray    = "scalarArray"
	kindStructure      = "structure"
	kindStructureArray = "structureArray"
	kindUnion          = "union"
	kindAny            = "any"
)

// rawSchema is the on-disk representation of a schema description.
type rawSchema struct {
	ID     string     `yaml:"id,omitempty" json:"id,omitempty"`
	Fields []rawField `yaml:"fields" json:"fields"`
}

// rawField is the on-disk representation of one field.
type rawField struct {
	Name   string     `yaml:"name" json:"name"`
	Kind   string     `yaml:"kind" json:"kind"`
	Elem   string     `yaml:"elem,omitempty" json:"elem,omitempty"`
	ID     string     `yaml:"id,omitempty" json:"id,omitempty"`
	Fields []rawField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

func toRaw(s *pvdata.Structure) *rawSchema {
	return &rawSchema{
		ID:     s.ID(),
		Fields: toRawFields(s.Names(), s.Fields()),
	}
}

func toRawFields(names []string, fields []pvdata.Field) []rawField {
	raw := make([]rawField, len(fields))
	for i, f := range fields {
		raw[i] = toRawField(names[i], f)
	}
	return raw
}

func toRawField(name string, f pvdata.Field) rawField {
	switch t := f.(type) {
	case *pvdata.Scalar:
		return rawField{Name: name, Kind: kindScalar, Elem: t.ScalarType().String()}
	case *pvdata.ScalarArray:
		return rawField{Name: name, Kind: kindScalarArray, Elem: t.ElementType().String()}
	case *pvdata.Structure:
		return rawField{
			Name:   name,
			Kind:   kindStructure,
			ID:     t.ID(),
			Fields: toRawFields(t.Names(), t.Fields()),
		}
	case *pvdata.StructureArray:
		elem := t.Structure()
		return rawField{
			Name:   name,
			Kind:   kindStructureArray,
			ID:     elem.ID(),
			Fields: toRawFields(elem.Names(), elem.Fields()),
		}
	case *pvdata.Union:
		if t.IsVariant() {
			return rawField{Name: name, Kind: kindAny}
		}
		return rawField{
			Name:   name,
			Kind:   kindUnion,
			ID:     t.ID(),
			Fields: toRawFields(t.Names(), t.Fields()),
		}
	}
	return rawField{Name: name}
}
