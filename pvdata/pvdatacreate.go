// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

// PVDataCreate is the factory for value trees. It is stateless; the zero
// value is ready to use.
type PVDataCreate struct{}

// CreatePVStructure instantiates a zero-valued record from a structure
// description. Every scalar leaf holds its type's zero value, arrays are
// empty and unions are unselected.
func (PVDataCreate) CreatePVStructure(s *Structure) *PVStructure {
	return newPVStructure(s)
}

// CreatePVField instantiates a zero-valued value for an arbitrary field
// description.
func (dc PVDataCreate) CreatePVField(f Field) PVField {
	return newPVField(f)
}

func newPVStructure(s *Structure) *PVStructure {
	fields := make([]PVField, len(s.fields))
	for i, f := range s.fields {
		fields[i] = newPVField(f)
	}
	return &PVStructure{structure: s, fields: fields}
}

func newPVField(f Field) PVField {
	switch t := f.(type) {
	case *Scalar:
		return &PVScalar{scalar: t, value: t.typ.zero()}
	case *ScalarArray:
		return &PVScalarArray{arr: t, value: t.elem.zeroSlice()}
	case *Structure:
		return newPVStructure(t)
	case *StructureArray:
		return &PVStructureArray{arr: t}
	case *Union:
		return &PVUnion{union: t}
	}
	return nil
}
