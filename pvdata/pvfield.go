// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

import (
	"fmt"
	"reflect"
	"strings"
)

// PVField is a value-bearing instantiation of a Field. Leaf values are
// mutable in place; the field description itself never changes after
// creation. Concurrent mutation of the same value tree is the caller's
// responsibility to serialize.
type PVField interface {
	// Field returns the immutable description this value was created from.
	Field() Field
}

// PVScalar holds a single scalar value.
type PVScalar struct {
	scalar *Scalar
	value  any
}

// Field returns the scalar description.
func (p *PVScalar) Field() Field { return p.scalar }

// ScalarType returns the element type of the leaf.
func (p *PVScalar) ScalarType() ScalarType { return p.scalar.typ }

// Get returns the current value. The dynamic type matches the scalar type's
// Go representation (bool, int8 … float64, string).
func (p *PVScalar) Get() any { return p.value }

// Put stores a new value. The dynamic type of v must match the scalar
// type's Go representation.
func (p *PVScalar) Put(v any) error {
	if reflect.TypeOf(v) != reflect.TypeOf(p.scalar.typ.zero()) {
		return fmt.Errorf("pvdata: cannot store %T in %s scalar", v, p.scalar.typ)
	}
	p.value = v
	return nil
}

// ScalarOf returns the value of a scalar leaf as T. Returns zero,false when
// p is nil or T does not match the leaf's Go representation.
func ScalarOf[T ScalarValue](p *PVScalar) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	v, ok := p.value.(T)
	return v, ok
}

// PVScalarArray holds a typed slice of scalar values.
type PVScalarArray struct {
	arr   *ScalarArray
	value any
}

// Field returns the scalar array description.
func (p *PVScalarArray) Field() Field { return p.arr }

// ElementType returns the element type of the array.
func (p *PVScalarArray) ElementType() ScalarType { return p.arr.elem }

// Len returns the number of elements.
func (p *PVScalarArray) Len() int {
	if p.value == nil {
		return 0
	}
	return reflect.ValueOf(p.value).Len()
}

// Get returns the current slice. The dynamic type matches the element
// type's Go representation ([]bool, []int8 … []float64, []string).
func (p *PVScalarArray) Get() any { return p.value }

// Put stores a new slice. The dynamic type of v must match the element
// type's Go slice representation.
func (p *PVScalarArray) Put(v any) error {
	if reflect.TypeOf(v) != reflect.TypeOf(p.arr.elem.zeroSlice()) {
		return fmt.Errorf("pvdata: cannot store %T in %s array", v, p.arr.elem)
	}
	p.value = v
	return nil
}

// ScalarArrayOf returns the elements of a scalar array as []T. Returns
// nil,false when T does not match the array's element representation.
func ScalarArrayOf[T ScalarValue](p *PVScalarArray) ([]T, bool) {
	v, ok := p.value.([]T)
	return v, ok
}

// PVStructure holds the ordered child values of a structure. It exclusively
// owns its direct child storage.
type PVStructure struct {
	structure *Structure
	fields    []PVField
}

// Field returns the structure description.
func (p *PVStructure) Field() Field { return p.structure }

// Structure returns the structure description with its concrete type.
func (p *PVStructure) Structure() *Structure { return p.structure }

// SubFields returns the child values in declaration order. The returned
// slice must not be modified.
func (p *PVStructure) SubFields() []PVField { return p.fields }

// SubField looks up a child value by name. Dotted names ("codec.name")
// descend through nested structures. When the same name occurs more than
// once the first occurrence wins. Returns nil when absent.
func (p *PVStructure) SubField(name string) PVField {
	cur := p
	parts := strings.Split(name, ".")
	for i, part := range parts {
		var found PVField
		for j, n := range cur.structure.names {
			if n == part {
				found = cur.fields[j]
				break
			}
		}
		if found == nil {
			return nil
		}
		if i == len(parts)-1 {
			return found
		}
		next, ok := found.(*PVStructure)
		if !ok {
			return nil
		}
		cur = next
	}
	return nil
}

// SubFieldOf looks up a child value by name and expected type. Returns
// zero,false when the name is absent or the value has a different type.
func SubFieldOf[T PVField](p *PVStructure, name string) (T, bool) {
	f := p.SubField(name)
	if f == nil {
		var zero T
		return zero, false
	}
	t, ok := f.(T)
	return t, ok
}

// PVStructureArray holds a variable number of structure values sharing one
// element schema.
type PVStructureArray struct {
	arr   *StructureArray
	elems []*PVStructure
}

// Field returns the structure array description.
func (p *PVStructureArray) Field() Field { return p.arr }

// StructureArray returns the array description with its concrete type.
func (p *PVStructureArray) StructureArray() *StructureArray { return p.arr }

// Len returns the number of elements.
func (p *PVStructureArray) Len() int { return len(p.elems) }

// Elements returns the element values. The returned slice must not be
// modified; use Append to grow the array.
func (p *PVStructureArray) Elements() []*PVStructure { return p.elems }

// Append adds a zero-valued element and returns it.
func (p *PVStructureArray) Append() *PVStructure {
	e := newPVStructure(p.arr.elem)
	p.elems = append(p.elems, e)
	return e
}

// PVUnion holds at most one value chosen from a union's variants.
type PVUnion struct {
	union    *Union
	selected string
	value    PVField
}

// Field returns the union description.
func (p *PVUnion) Field() Field { return p.union }

// Union returns the union description with its concrete type.
func (p *PVUnion) Union() *Union { return p.union }

// Get returns the stored value, or nil when nothing has been selected.
func (p *PVUnion) Get() PVField { return p.value }

// SelectedName returns the selected variant name, or "" when nothing has
// been selected or the union is open.
func (p *PVUnion) SelectedName() string { return p.selected }

// Set stores a value under a named variant. The name must be one of the
// union's variants.
func (p *PVUnion) Set(name string, v PVField) error {
	if p.union.IsVariant() {
		return fmt.Errorf("pvdata: union %s has no named variants", p.union.id)
	}
	if _, ok := p.union.Variant(name); !ok {
		return fmt.Errorf("pvdata: union %s has no variant %q", p.union.id, name)
	}
	p.selected = name
	p.value = v
	return nil
}

// SetVariant stores a value in an open union. Any field type is accepted.
func (p *PVUnion) SetVariant(v PVField) error {
	if !p.union.IsVariant() {
		return fmt.Errorf("pvdata: union %s requires a named variant", p.union.id)
	}
	p.selected = ""
	p.value = v
	return nil
}
