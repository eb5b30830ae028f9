// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema renders pvdata schemas as JSON Schema documents.
package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/ntt/pvdata"
)

// Translator translates pvdata schemas to JSON Schema.
type Translator struct{}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate converts a pvdata schema to a JSON Schema document. Structure
// and union ids are carried in the title keyword; every field is required
// because a record always instantiates its full schema.
func (t *Translator) Translate(name string, schema *pvdata.Structure) ([]byte, error) {
	root := structureSchema(schema)
	if name != "" {
		root.Title = name
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON Schema: %w", err)
	}
	return append(out, '\n'), nil
}

func structureSchema(s *pvdata.Structure) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, s.Len())
	required := make([]string, 0, s.Len())
	for i, name := range s.Names() {
		// duplicate field names collapse to the first occurrence, matching
		// by-name lookup on the schema itself
		if _, ok := properties[name]; ok {
			continue
		}
		properties[name] = fieldSchema(s.Fields()[i])
		required = append(required, name)
	}
	return &jsonschema.Schema{
		Type:       "object",
		Title:      s.ID(),
		Properties: properties,
		Required:   required,
	}
}

func fieldSchema(f pvdata.Field) *jsonschema.Schema {
	switch t := f.(type) {
	case *pvdata.Scalar:
		return scalarSchema(t.ScalarType())
	case *pvdata.ScalarArray:
		return &jsonschema.Schema{
			Type:  "array",
			Items: scalarSchema(t.ElementType()),
		}
	case *pvdata.Structure:
		return structureSchema(t)
	case *pvdata.StructureArray:
		return &jsonschema.Schema{
			Type:  "array",
			Items: structureSchema(t.Structure()),
		}
	case *pvdata.Union:
		if t.IsVariant() {
			// open union: any value
			return &jsonschema.Schema{Title: t.ID()}
		}
		variants := make([]*jsonschema.Schema, t.Len())
		for i, vf := range t.Fields() {
			variant := fieldSchema(vf)
			variant.Title = t.Names()[i]
			variants[i] = variant
		}
		return &jsonschema.Schema{Title: t.ID(), OneOf: variants}
	}
	return &jsonschema.Schema{}
}

func scalarSchema(t pvdata.ScalarType) *jsonschema.Schema {
	switch t {
	case pvdata.Boolean:
		return &jsonschema.Schema{Type: "boolean"}
	case pvdata.Float, pvdata.Double:
		return &jsonschema.Schema{Type: "number"}
	case pvdata.String:
		return &jsonschema.Schema{Type: "string"}
	default:
		return &jsonschema.Schema{Type: "integer"}
	}
}
