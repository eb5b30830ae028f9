// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package nt

import "github.com/dacolabs/ntt/pvdata"

// NTTableBuilder assembles NTTable schemas. One instance can build
// multiple schemas: producing a schema or record resets the builder. It
// must not be used concurrently.
type NTTableBuilder struct {
	create pvdata.FieldCreate
	data   pvdata.PVDataCreate

	columnNames []string
	columnTypes []pvdata.ScalarType

	descriptor bool
	alarm      bool
	timeStamp  bool

	// order preserved; duplicates are not rejected
	extraNames  []string
	extraFields []pvdata.Field
}

// NewNTTableBuilder returns an empty builder using the given factories.
func NewNTTableBuilder(fc pvdata.FieldCreate, dc pvdata.PVDataCreate) *NTTableBuilder {
	return &NTTableBuilder{create: fc, data: dc}
}

// AddColumn appends a column of the given scalar element type. Column
// order becomes label order.
func (b *NTTableBuilder) AddColumn(name string, elem pvdata.ScalarType) *NTTableBuilder {
	b.columnNames = append(b.columnNames, name)
	b.columnTypes = append(b.columnTypes, elem)
	return b
}

// AddDescriptor adds the optional descriptor field.
func (b *NTTableBuilder) AddDescriptor() *NTTableBuilder {
	b.descriptor = true
	return b
}

// AddAlarm adds the optional alarm field.
func (b *NTTableBuilder) AddAlarm() *NTTableBuilder {
	b.alarm = true
	return b
}

// AddTimeStamp adds the optional timeStamp field.
func (b *NTTableBuilder) AddTimeStamp() *NTTableBuilder {
	b.timeStamp = true
	return b
}

// Add appends an extension field. Extension names are not checked against
// reserved or previously added names; by-name lookup on the result resolves
// to the first occurrence.
func (b *NTTableBuilder) Add(name string, f pvdata.Field) *NTTableBuilder {
	b.extraNames = append(b.extraNames, name)
	b.extraFields = append(b.extraFields, f)
	return b
}

// CreateStructure produces the schema and resets the builder. Layout:
// labels, value (one scalar-array field per column, in call order), then
// the optional fields in convention order, then extensions in call order.
func (b *NTTableBuilder) CreateStructure() *pvdata.Structure {
	s := b.structure()
	b.reset()
	return s
}

func (b *NTTableBuilder) structure() *pvdata.Structure {
	value := b.create.NewFieldBuilder()
	for i, name := range b.columnNames {
		value.AddArray(name, b.columnTypes[i])
	}

	fb := b.create.NewFieldBuilder().
		SetID(NTTableURI).
		AddArray("labels", pvdata.String).
		AddField("value", value.CreateStructure())

	if b.descriptor {
		fb.Add("descriptor", pvdata.String)
	}
	standard := pvdata.StandardField{}
	if b.alarm {
		fb.AddField("alarm", standard.Alarm())
	}
	if b.timeStamp {
		fb.AddField("timeStamp", standard.TimeStamp())
	}
	for i, name := range b.extraNames {
		fb.AddField(name, b.extraFields[i])
	}

	return fb.CreateStructure()
}

// CreateRecord produces a zero-valued record and resets the builder. The
// labels field is populated from the column names, in column order.
func (b *NTTableBuilder) CreateRecord() *pvdata.PVStructure {
	columns := append([]string(nil), b.columnNames...)
	s := b.structure()
	b.reset()
	pv := b.data.CreatePVStructure(s)
	if labels, ok := pvdata.SubFieldOf[*pvdata.PVScalarArray](pv, "labels"); ok {
		_ = labels.Put(columns)
	}
	return pv
}

// Create produces a record wrapped directly into an NTTable view and
// resets the builder. Compatibility is guaranteed by construction and is
// not re-checked.
func (b *NTTableBuilder) Create() *NTTable {
	return &NTTable{pv: b.CreateRecord()}
}

func (b *NTTableBuilder) reset() {
	b.columnNames = nil
	b.columnTypes = nil
	b.descriptor = false
	b.alarm = false
	b.timeStamp = false
	b.extraNames = nil
	b.extraFields = nil
}

// IsNTTable reports whether the schema's root id equals the NTTable URI.
// No structural inspection is performed.
func IsNTTable(s *pvdata.Structure) bool {
	return s != nil && s.ID() == NTTableURI
}

// IsNTTableCompatible reports whether the schema's shape satisfies the
// NTTable contract, independent of its root id: labels must be a string
// array, value a structure whose every field is a scalar array, and the
// optional descriptor/alarm/timeStamp fields, when present, must have
// their conventional shapes. Unknown extra fields are ignored.
func IsNTTableCompatible(s *pvdata.Structure) bool {
	if s == nil {
		return false
	}
	labels, ok := pvdata.FieldOf[*pvdata.ScalarArray](s, "labels")
	if !ok || labels.ElementType() != pvdata.String {
		return false
	}
	value, ok := pvdata.FieldOf[*pvdata.Structure](s, "value")
	if !ok {
		return false
	}
	for _, f := range value.Fields() {
		if _, ok := f.(*pvdata.ScalarArray); !ok {
			return false
		}
	}
	return compatibleOptionals(s)
}

// IsNTTableCompatibleRecord reports whether the record's schema satisfies
// the NTTable contract.
func IsNTTableCompatibleRecord(pv *pvdata.PVStructure) bool {
	return pv != nil && IsNTTableCompatible(pv.Structure())
}

// NTTable is a non-owning typed view over an NTTable record. It must not
// outlive the record it wraps.
type NTTable struct {
	pv *pvdata.PVStructure
}

// WrapNTTable verifies the record against the NTTable contract and wraps
// it. Returns nil,false on an incompatible or nil record.
func WrapNTTable(pv *pvdata.PVStructure) (*NTTable, bool) {
	if !IsNTTableCompatibleRecord(pv) {
		return nil, false
	}
	return &NTTable{pv: pv}, true
}

// WrapNTTableUnsafe wraps the record without checking compatibility.
// Accessor results on an incompatible record are undefined.
func WrapNTTableUnsafe(pv *pvdata.PVStructure) *NTTable {
	return &NTTable{pv: pv}
}

// PVStructure returns the wrapped record.
func (t *NTTable) PVStructure() *pvdata.PVStructure { return t.pv }

// IsValid reports whether the record's label count matches its column
// count, i.e. label i names column i for all i.
func (t *NTTable) IsValid() bool {
	labels := t.Labels()
	if labels == nil {
		return false
	}
	value, ok := pvdata.SubFieldOf[*pvdata.PVStructure](t.pv, "value")
	if !ok {
		return false
	}
	return labels.Len() == value.Structure().Len()
}

// Labels returns the labels field.
func (t *NTTable) Labels() *pvdata.PVScalarArray {
	labels, _ := pvdata.SubFieldOf[*pvdata.PVScalarArray](t.pv, "labels")
	return labels
}

// ColumnNames returns the column names in declaration order.
func (t *NTTable) ColumnNames() []string {
	value, ok := pvdata.SubFieldOf[*pvdata.PVStructure](t.pv, "value")
	if !ok {
		return nil
	}
	return value.Structure().Names()
}

// Column returns the named column, or nil when absent.
func (t *NTTable) Column(name string) *pvdata.PVScalarArray {
	col, _ := pvdata.SubFieldOf[*pvdata.PVScalarArray](t.pv, "value."+name)
	return col
}

// ColumnOf returns the named column's data as []T. Returns nil,false when
// the column is absent or its element type does not match T.
func ColumnOf[T pvdata.ScalarValue](t *NTTable, name string) ([]T, bool) {
	col := t.Column(name)
	if col == nil {
		return nil, false
	}
	return pvdata.ScalarArrayOf[T](col)
}

// Descriptor returns the descriptor field, or nil when absent.
func (t *NTTable) Descriptor() *pvdata.PVScalar {
	d, _ := pvdata.SubFieldOf[*pvdata.PVScalar](t.pv, "descriptor")
	return d
}

// TimeStamp returns the timeStamp field, or nil when absent.
func (t *NTTable) TimeStamp() *pvdata.PVStructure {
	ts, _ := pvdata.SubFieldOf[*pvdata.PVStructure](t.pv, "timeStamp")
	return ts
}

// Alarm returns the alarm field, or nil when absent.
func (t *NTTable) Alarm() *pvdata.PVStructure {
	a, _ := pvdata.SubFieldOf[*pvdata.PVStructure](t.pv, "alarm")
	return a
}

// AttachTimeStamp binds the cursor to the timeStamp field if present.
// Returns false without attaching when the field is absent.
func (t *NTTable) AttachTimeStamp(cursor *pvdata.PVTimeStamp) bool {
	ts := t.TimeStamp()
	if ts == nil {
		return false
	}
	return cursor.Attach(ts)
}

// AttachAlarm binds the cursor to the alarm field if present. Returns
// false without attaching when the field is absent.
func (t *NTTable) AttachAlarm(cursor *pvdata.PVAlarm) bool {
	a := t.Alarm()
	if a == nil {
		return false
	}
	return cursor.Attach(a)
}

// compatibleOptionals checks the descriptor/alarm/timeStamp trio shared by
// the table and multi-channel conventions.
func compatibleOptionals(s *pvdata.Structure) bool {
	if f, ok := s.Field("descriptor"); ok {
		sc, ok := f.(*pvdata.Scalar)
		if !ok || sc.ScalarType() != pvdata.String {
			return false
		}
	}
	if f, ok := s.Field("alarm"); ok && !pvdata.IsAlarm(f) {
		return false
	}
	if f, ok := s.Field("timeStamp"); ok && !pvdata.IsTimeStamp(f) {
		return false
	}
	return true
}
