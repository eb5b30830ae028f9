// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

// Kind discriminates the composite kinds a Field can have.
type Kind int

// Field kinds.
const (
	KindScalar Kind = iota
	KindScalarArray
	KindStructure
	KindStructureArray
	KindUnion
)

var kindNames = [...]string{
	KindScalar:         "scalar",
	KindScalarArray:    "scalarArray",
	KindStructure:      "structure",
	KindStructureArray: "structureArray",
	KindUnion:          "union",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if k < KindScalar || k > KindUnion {
		return "invalid"
	}
	return kindNames[k]
}

// Default identifiers for structures and unions without an explicit id.
const (
	DefaultStructureID = "structure"
	DefaultUnionID     = "union"
	VariantUnionID     = "any"
)

// Field is an immutable type description: a leaf (scalar, scalar array) or
// a composite (structure, structure array, union). Fields are safely shared
// between any number of schemas and records.
type Field interface {
	// Kind returns the composite kind of the field.
	Kind() Kind
	// ID returns the identifying string of the field. For structures and
	// unions this is the caller-supplied id (a URI-like tag); for leaves it
	// is derived from the element type.
	ID() string
}

// Scalar is a single typed leaf.
type Scalar struct {
	typ ScalarType
}

// Kind returns KindScalar.
func (s *Scalar) Kind() Kind { return KindScalar }

// ID returns the scalar type name.
func (s *Scalar) ID() string { return s.typ.String() }

// ScalarType returns the element type of the leaf.
func (s *Scalar) ScalarType() ScalarType { return s.typ }

// ScalarArray is a variable-length array of one scalar type.
type ScalarArray struct {
	elem ScalarType
}

// Kind returns KindScalarArray.
func (a *ScalarArray) Kind() Kind { return KindScalarArray }

// ID returns the element type name followed by "[]".
func (a *ScalarArray) ID() string { return a.elem.String() + "[]" }

// ElementType returns the element type of the array.
func (a *ScalarArray) ElementType() ScalarType { return a.elem }

// Structure is an ordered set of named fields with an identifying id.
// Insertion order is preserved and is semantically meaningful.
type Structure struct {
	id     string
	names  []string
	fields []Field
}

// Kind returns KindStructure.
func (s *Structure) Kind() Kind { return KindStructure }

// ID returns the structure id.
func (s *Structure) ID() string { return s.id }

// Len returns the number of fields.
func (s *Structure) Len() int { return len(s.fields) }

// Names returns the field names in declaration order. The returned slice
// must not be modified.
func (s *Structure) Names() []string { return s.names }

// Fields returns the fields in declaration order. The returned slice must
// not be modified.
func (s *Structure) Fields() []Field { return s.fields }

// Field looks up a direct child field by name. When the same name was added
// more than once the first occurrence wins. Returns nil,false when absent.
func (s *Structure) Field(name string) (Field, bool) {
	for i, n := range s.names {
		if n == name {
			return s.fields[i], true
		}
	}
	return nil, false
}

// FieldOf looks up a direct child field by name and expected type. Returns
// zero,false when the name is absent or the field has a different type.
func FieldOf[T Field](s *Structure, name string) (T, bool) {
	f, ok := s.Field(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := f.(T)
	return t, ok
}

// StructureArray is a variable-length array of structures sharing one
// element schema.
type StructureArray struct {
	elem *Structure
}

// Kind returns KindStructureArray.
func (a *StructureArray) Kind() Kind { return KindStructureArray }

// ID returns the element structure id followed by "[]".
func (a *StructureArray) ID() string { return a.elem.ID() + "[]" }

// Structure returns the shared element schema.
func (a *StructureArray) Structure() *Structure { return a.elem }

// Union is a tagged union: either a fixed set of named variants, or an
// open "variant" union that admits any field type.
type Union struct {
	id     string
	names  []string
	fields []Field
}

// Kind returns KindUnion.
func (u *Union) Kind() Kind { return KindUnion }

// ID returns the union id.
func (u *Union) ID() string { return u.id }

// IsVariant reports whether the union is open (accepts any field type).
func (u *Union) IsVariant() bool { return len(u.fields) == 0 }

// Len returns the number of variants. Zero for a variant union.
func (u *Union) Len() int { return len(u.fields) }

// Names returns the variant names in declaration order. Empty for a
// variant union. The returned slice must not be modified.
func (u *Union) Names() []string { return u.names }

// Fields returns the variant fields in declaration order. The returned
// slice must not be modified.
func (u *Union) Fields() []Field { return u.fields }

// Variant looks up a variant by name. Returns nil,false when absent or
// when the union is open.
func (u *Union) Variant(name string) (Field, bool) {
	for i, n := range u.names {
		if n == name {
			return u.fields[i], true
		}
	}
	return nil, false
}
