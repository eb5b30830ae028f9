// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

import "fmt"

// FieldCreate is the factory for field descriptions. It is stateless; the
// zero value is ready to use. Callers thread an explicit FieldCreate into
// builders instead of relying on a process-wide singleton.
type FieldCreate struct{}

// CreateScalar returns a scalar leaf of the given type.
func (FieldCreate) CreateScalar(t ScalarType) *Scalar {
	return &Scalar{typ: t}
}

// CreateScalarArray returns a scalar array with the given element type.
func (FieldCreate) CreateScalarArray(elem ScalarType) *ScalarArray {
	return &ScalarArray{elem: elem}
}

// CreateStructure returns a structure with the given id and ordered fields.
// An empty id defaults to DefaultStructureID. names and fields must have
// equal length; a mismatch is a programming error and panics.
func (FieldCreate) CreateStructure(id string, names []string, fields []Field) *Structure {
	if len(names) != len(fields) {
		panic(fmt.Sprintf("pvdata: %d names for %d fields", len(names), len(fields)))
	}
	if id == "" {
		id = DefaultStructureID
	}
	return &Structure{
		id:     id,
		names:  append([]string(nil), names...),
		fields: append([]Field(nil), fields...),
	}
}

// CreateStructureArray returns a structure array whose elements share the
// given element schema.
func (FieldCreate) CreateStructureArray(elem *Structure) *StructureArray {
	return &StructureArray{elem: elem}
}

// CreateUnion returns a union with the given id and named variants. An
// empty id defaults to DefaultUnionID. names and fields must have equal
// length; a mismatch is a programming error and panics.
func (FieldCreate) CreateUnion(id string, names []string, fields []Field) *Union {
	if len(names) != len(fields) {
		panic(fmt.Sprintf("pvdata: %d names for %d fields", len(names), len(fields)))
	}
	if id == "" {
		id = DefaultUnionID
	}
	return &Union{
		id:     id,
		names:  append([]string(nil), names...),
		fields: append([]Field(nil), fields...),
	}
}

// CreateVariantUnion returns an open union that admits any field type.
func (FieldCreate) CreateVariantUnion() *Union {
	return &Union{id: VariantUnionID}
}

// NewFieldBuilder returns an empty builder for in-line construction of
// structures and unions.
func (fc FieldCreate) NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{create: fc}
}

// FieldBuilder assembles a structure or union field by field. One instance
// can build multiple fields: creating a field resets the builder. It must
// not be used concurrently.
type FieldBuilder struct {
	create FieldCreate
	id     string
	names  []string
	fields []Field
}

// SetID sets the id of the field under construction.
func (b *FieldBuilder) SetID(id string) *FieldBuilder {
	b.id = id
	return b
}

// Add appends a scalar field of the given type.
func (b *FieldBuilder) Add(name string, t ScalarType) *FieldBuilder {
	return b.AddField(name, b.create.CreateScalar(t))
}

// AddArray appends a scalar array field with the given element type.
func (b *FieldBuilder) AddArray(name string, elem ScalarType) *FieldBuilder {
	return b.AddField(name, b.create.CreateScalarArray(elem))
}

// AddField appends an arbitrary field. Duplicate names are appended as-is;
// by-name lookup later resolves to the first occurrence.
func (b *FieldBuilder) AddField(name string, f Field) *FieldBuilder {
	b.names = append(b.names, name)
	b.fields = append(b.fields, f)
	return b
}

// CreateStructure produces the accumulated structure and resets the builder.
func (b *FieldBuilder) CreateStructure() *Structure {
	s := b.create.CreateStructure(b.id, b.names, b.fields)
	b.reset()
	return s
}

// CreateUnion produces the accumulated union and resets the builder.
func (b *FieldBuilder) CreateUnion() *Union {
	u := b.create.CreateUnion(b.id, b.names, b.fields)
	b.reset()
	return u
}

func (b *FieldBuilder) reset() {
	b.id = ""
	b.names = nil
	b.fields = nil
}
