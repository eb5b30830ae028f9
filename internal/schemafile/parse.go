// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemafile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/ntt/pvdata"
)

// Parser decodes a schema description from an io.Reader.
type Parser struct {
	parse func(io.Reader) (*rawSchema, error)
}

var (
	// JSON parses schema descriptions from JSON.
	JSON = Parser{parseJSON}
	// YAML parses schema descriptions from YAML.
	YAML = Parser{parseYAML}
)

// ForPath returns the parser matching a file name's extension. Returns
// false for unsupported extensions.
func ForPath(path string) (Parser, bool) {
	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		return YAML, true
	case strings.HasSuffix(path, ".json"):
		return JSON, true
	}
	return Parser{}, false
}

// Parse decodes a schema description from r into a pvdata structure built
// with the given factory.
func (p Parser) Parse(r io.Reader, fc pvdata.FieldCreate) (*pvdata.Structure, error) {
	raw, err := p.parse(r)
	if err != nil {
		return nil, err
	}

	names, fields, err := buildFields(fc, "", raw.Fields)
	if err != nil {
		return nil, err
	}
	return fc.CreateStructure(raw.ID, names, fields), nil
}

func parseJSON(r io.Reader) (*rawSchema, error) {
	var raw rawSchema
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON schema description: %w", err)
	}
	return &raw, nil
}

func parseYAML(r io.Reader) (*rawSchema, error) {
	var raw rawSchema
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid YAML schema description: %w", err)
	}
	return &raw, nil
}

func buildFields(fc pvdata.FieldCreate, path string, raw []rawField) ([]string, []pvdata.Field, error) {
	names := make([]string, 0, len(raw))
	fields := make([]pvdata.Field, 0, len(raw))
	for _, rf := range raw {
		f, err := buildField(fc, joinFieldPath(path, rf.Name), rf)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, rf.Name)
		fields = append(fields, f)
	}
	return names, fields, nil
}

func buildField(fc pvdata.FieldCreate, path string, rf rawField) (pvdata.Field, error) {
	if rf.Name == "" {
		return nil, fmt.Errorf("field %q: name is required", path)
	}

	switch rf.Kind {
	case kindScalar:
		elem, err := elemType(path, rf.Elem)
		if err != nil {
			return nil, err
		}
		return fc.CreateScalar(elem), nil

	case kindScalarArray:
		elem, err := elemType(path, rf.Elem)
		if err != nil {
			return nil, err
		}
		return fc.CreateScalarArray(elem), nil

	case kindStructure:
		names, fields, err := buildFields(fc, path, rf.Fields)
		if err != nil {
			return nil, err
		}
		return fc.CreateStructure(rf.ID, names, fields), nil

	case kindStructureArray:
		names, fields, err := buildFields(fc, path, rf.Fields)
		if err != nil {
			return nil, err
		}
		return fc.CreateStructureArray(fc.CreateStructure(rf.ID, names, fields)), nil

	case kindUnion:
		names, fields, err := buildFields(fc, path, rf.Fields)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("field %q: union requires at least one variant (use kind %q for an open union)", path, kindAny)
		}
		return fc.CreateUnion(rf.ID, names, fields), nil

	case kindAny:
		return fc.CreateVariantUnion(), nil

	case "":
		return nil, fmt.Errorf("field %q: kind is required", path)
	}
	return nil, fmt.Errorf("field %q: unknown kind %q", path, rf.Kind)
}

func elemType(path, name string) (pvdata.ScalarType, error) {
	if name == "" {
		return 0, fmt.Errorf("field %q: elem is required", path)
	}
	t, ok := pvdata.ScalarTypeFromName(name)
	if !ok {
		return 0, fmt.Errorf("field %q: unknown scalar type %q", path, name)
	}
	return t, nil
}

func joinFieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
