// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package nt

import "github.com/dacolabs/ntt/pvdata"

// NTNDArrayBuilder assembles NTNDArray schemas. One instance can build
// multiple schemas: producing a schema or record resets the builder. It
// must not be used concurrently.
type NTNDArrayBuilder struct {
	create pvdata.FieldCreate
	data   pvdata.PVDataCreate

	descriptor bool
	alarm      bool
	timeStamp  bool
	display    bool

	extraNames  []string
	extraFields []pvdata.Field
}

// NewNTNDArrayBuilder returns an empty builder using the given factories.
func NewNTNDArrayBuilder(fc pvdata.FieldCreate, dc pvdata.PVDataCreate) *NTNDArrayBuilder {
	return &NTNDArrayBuilder{create: fc, data: dc}
}

// AddDescriptor adds the optional descriptor field.
func (b *NTNDArrayBuilder) AddDescriptor() *NTNDArrayBuilder {
	b.descriptor = true
	return b
}

// AddAlarm adds the optional alarm field.
func (b *NTNDArrayBuilder) AddAlarm() *NTNDArrayBuilder {
	b.alarm = true
	return b
}

// AddTimeStamp adds the optional timeStamp field.
func (b *NTNDArrayBuilder) AddTimeStamp() *NTNDArrayBuilder {
	b.timeStamp = true
	return b
}

// AddDisplay adds the optional display field.
func (b *NTNDArrayBuilder) AddDisplay() *NTNDArrayBuilder {
	b.display = true
	return b
}

// Add appends an extension field. Extension names are not checked against
// reserved or previously added names; by-name lookup on the result resolves
// to the first occurrence.
func (b *NTNDArrayBuilder) Add(name string, f pvdata.Field) *NTNDArrayBuilder {
	b.extraNames = append(b.extraNames, name)
	b.extraFields = append(b.extraFields, f)
	return b
}

// CreateStructure produces the schema and resets the builder. Layout:
// value, codec, compressedSize, uncompressedSize, dimension, uniqueId,
// dataTimeStamp, attribute, then the optional fields in convention order,
// then extensions in call order.
func (b *NTNDArrayBuilder) CreateStructure() *pvdata.Structure {
	standard := pvdata.StandardField{}

	// value is a union of the numeric array types; string arrays are not
	// image data.
	value := b.create.NewFieldBuilder()
	for t := pvdata.Boolean; t < pvdata.String; t++ {
		value.AddArray(t.String()+"Value", t)
	}
	valueUnion := value.CreateUnion()

	codec := b.create.NewFieldBuilder().
		SetID(codecID).
		Add("name", pvdata.String).
		AddField("parameters", b.create.CreateVariantUnion()).
		CreateStructure()

	dimension := b.create.NewFieldBuilder().
		SetID(dimensionID).
		Add("size", pvdata.Int).
		Add("offset", pvdata.Int).
		Add("fullSize", pvdata.Int).
		Add("binning", pvdata.Int).
		Add("reverse", pvdata.Boolean).
		CreateStructure()

	attribute := b.create.NewFieldBuilder().
		SetID(NTAttributeURI).
		Add("name", pvdata.String).
		AddField("value", b.create.CreateVariantUnion()).
		Add("descriptor", pvdata.String).
		Add("sourceType", pvdata.Int).
		Add("source", pvdata.String).
		CreateStructure()

	fb := b.create.NewFieldBuilder().
		SetID(NTNDArrayURI).
		AddField("value", valueUnion).
		AddField("codec", codec).
		Add("compressedSize", pvdata.Long).
		Add("uncompressedSize", pvdata.Long).
		AddField("dimension", b.create.CreateStructureArray(dimension)).
		Add("uniqueId", pvdata.Int).
		AddField("dataTimeStamp", standard.TimeStamp()).
		AddField("attribute", b.create.CreateStructureArray(attribute))

	if b.descriptor {
		fb.Add("descriptor", pvdata.String)
	}
	if b.timeStamp {
		fb.AddField("timeStamp", standard.TimeStamp())
	}
	if b.alarm {
		fb.AddField("alarm", standard.Alarm())
	}
	if b.display {
		fb.AddField("display", standard.Display())
	}
	for i, name := range b.extraNames {
		fb.AddField(name, b.extraFields[i])
	}

	s := fb.CreateStructure()
	b.reset()
	return s
}

// CreateRecord produces a zero-valued record and resets the builder.
func (b *NTNDArrayBuilder) CreateRecord() *pvdata.PVStructure {
	return b.data.CreatePVStructure(b.CreateStructure())
}

// Create produces a record wrapped directly into an NTNDArray view and
// resets the builder. Compatibility is guaranteed by construction and is
// not re-checked.
func (b *NTNDArrayBuilder) Create() *NTNDArray {
	return &NTNDArray{pv: b.CreateRecord()}
}

func (b *NTNDArrayBuilder) reset() {
	b.descriptor = false
	b.alarm = false
	b.timeStamp = false
	b.display = false
	b.extraNames = nil
	b.extraFields = nil
}

// IsNTNDArray reports whether the schema's root id equals the NTNDArray
// URI. No structural inspection is performed.
func IsNTNDArray(s *pvdata.Structure) bool {
	return s != nil && s.ID() == NTNDArrayURI
}

// IsNTNDArrayCompatible reports whether the schema's shape satisfies the
// NTNDArray contract, independent of its root id. Mandatory fields must be
// present with their exact kinds and pinned sub-ids; optional fields, when
// present, must have their conventional shapes. Unknown extra fields are
// ignored.
func IsNTNDArrayCompatible(s *pvdata.Structure) bool {
	if s == nil {
		return false
	}
	if _, ok := pvdata.FieldOf[*pvdata.Union](s, "value"); !ok {
		return false
	}

	codec, ok := pvdata.FieldOf[*pvdata.Structure](s, "codec")
	if !ok {
		return false
	}
	codecName, ok := pvdata.FieldOf[*pvdata.Scalar](codec, "name")
	if !ok || codecName.ScalarType() != pvdata.String {
		return false
	}
	if _, ok := pvdata.FieldOf[*pvdata.Union](codec, "parameters"); !ok {
		return false
	}

	for _, name := range []string{"compressedSize", "uncompressedSize"} {
		size, ok := pvdata.FieldOf[*pvdata.Scalar](s, name)
		if !ok || size.ScalarType() != pvdata.Long {
			return false
		}
	}

	dimension, ok := pvdata.FieldOf[*pvdata.StructureArray](s, "dimension")
	if !ok || dimension.Structure().ID() != dimensionID {
		return false
	}

	uniqueID, ok := pvdata.FieldOf[*pvdata.Scalar](s, "uniqueId")
	if !ok || uniqueID.ScalarType() != pvdata.Int {
		return false
	}

	dataTimeStamp, ok := s.Field("dataTimeStamp")
	if !ok || !pvdata.IsTimeStamp(dataTimeStamp) {
		return false
	}

	attribute, ok := pvdata.FieldOf[*pvdata.StructureArray](s, "attribute")
	if !ok || attribute.Structure().ID() != NTAttributeURI {
		return false
	}

	if f, ok := s.Field("display"); ok && !pvdata.IsDisplay(f) {
		return false
	}
	return compatibleOptionals(s)
}

// IsNTNDArrayCompatibleRecord reports whether the record's schema
// satisfies the NTNDArray contract.
func IsNTNDArrayCompatibleRecord(pv *pvdata.PVStructure) bool {
	return pv != nil && IsNTNDArrayCompatible(pv.Structure())
}

// NTNDArray is a non-owning typed view over an NTNDArray record. It must
// not outlive the record it wraps.
type NTNDArray struct {
	pv *pvdata.PVStructure
}

// WrapNTNDArray verifies the record against the NTNDArray contract and
// wraps it. Returns nil,false on an incompatible or nil record.
func WrapNTNDArray(pv *pvdata.PVStructure) (*NTNDArray, bool) {
	if !IsNTNDArrayCompatibleRecord(pv) {
		return nil, false
	}
	return &NTNDArray{pv: pv}, true
}

// WrapNTNDArrayUnsafe wraps the record without checking compatibility.
// Accessor results on an incompatible record are undefined.
func WrapNTNDArrayUnsafe(pv *pvdata.PVStructure) *NTNDArray {
	return &NTNDArray{pv: pv}
}

// PVStructure returns the wrapped record.
func (a *NTNDArray) PVStructure() *pvdata.PVStructure { return a.pv }

// Value returns the value union.
func (a *NTNDArray) Value() *pvdata.PVUnion {
	v, _ := pvdata.SubFieldOf[*pvdata.PVUnion](a.pv, "value")
	return v
}

// Codec returns the codec structure.
func (a *NTNDArray) Codec() *pvdata.PVStructure {
	c, _ := pvdata.SubFieldOf[*pvdata.PVStructure](a.pv, "codec")
	return c
}

// CompressedSize returns the compressedSize field.
func (a *NTNDArray) CompressedSize() *pvdata.PVScalar {
	v, _ := pvdata.SubFieldOf[*pvdata.PVScalar](a.pv, "compressedSize")
	return v
}

// UncompressedSize returns the uncompressedSize field.
func (a *NTNDArray) UncompressedSize() *pvdata.PVScalar {
	v, _ := pvdata.SubFieldOf[*pvdata.PVScalar](a.pv, "uncompressedSize")
	return v
}

// Dimension returns the dimension array.
func (a *NTNDArray) Dimension() *pvdata.PVStructureArray {
	d, _ := pvdata.SubFieldOf[*pvdata.PVStructureArray](a.pv, "dimension")
	return d
}

// UniqueID returns the uniqueId field.
func (a *NTNDArray) UniqueID() *pvdata.PVScalar {
	v, _ := pvdata.SubFieldOf[*pvdata.PVScalar](a.pv, "uniqueId")
	return v
}

// DataTimeStamp returns the dataTimeStamp field.
func (a *NTNDArray) DataTimeStamp() *pvdata.PVStructure {
	ts, _ := pvdata.SubFieldOf[*pvdata.PVStructure](a.pv, "dataTimeStamp")
	return ts
}

// Attribute returns the attribute array.
func (a *NTNDArray) Attribute() *pvdata.PVStructureArray {
	attr, _ := pvdata.SubFieldOf[*pvdata.PVStructureArray](a.pv, "attribute")
	return attr
}

// Descriptor returns the descriptor field, or nil when absent.
func (a *NTNDArray) Descriptor() *pvdata.PVScalar {
	d, _ := pvdata.SubFieldOf[*pvdata.PVScalar](a.pv, "descriptor")
	return d
}

// TimeStamp returns the timeStamp field, or nil when absent.
func (a *NTNDArray) TimeStamp() *pvdata.PVStructure {
	ts, _ := pvdata.SubFieldOf[*pvdata.PVStructure](a.pv, "timeStamp")
	return ts
}

// Alarm returns the alarm field, or nil when absent.
func (a *NTNDArray) Alarm() *pvdata.PVStructure {
	al, _ := pvdata.SubFieldOf[*pvdata.PVStructure](a.pv, "alarm")
	return al
}

// Display returns the display field, or nil when absent.
func (a *NTNDArray) Display() *pvdata.PVStructure {
	d, _ := pvdata.SubFieldOf[*pvdata.PVStructure](a.pv, "display")
	return d
}

// AttachTimeStamp binds the cursor to the timeStamp field if present.
// Returns false without attaching when the field is absent.
func (a *NTNDArray) AttachTimeStamp(cursor *pvdata.PVTimeStamp) bool {
	ts := a.TimeStamp()
	if ts == nil {
		return false
	}
	return cursor.Attach(ts)
}

// AttachDataTimeStamp binds the cursor to the dataTimeStamp field if
// present. Returns false without attaching when the field is absent.
func (a *NTNDArray) AttachDataTimeStamp(cursor *pvdata.PVTimeStamp) bool {
	ts := a.DataTimeStamp()
	if ts == nil {
		return false
	}
	return cursor.Attach(ts)
}

// AttachAlarm binds the cursor to the alarm field if present. Returns
// false without attaching when the field is absent.
func (a *NTNDArray) AttachAlarm(cursor *pvdata.PVAlarm) bool {
	al := a.Alarm()
	if al == nil {
		return false
	}
	return cursor.Attach(al)
}

// AttachDisplay binds the cursor to the display field if present. Returns
// false without attaching when the field is absent.
func (a *NTNDArray) AttachDisplay(cursor *pvdata.PVDisplay) bool {
	d := a.Display()
	if d == nil {
		return false
	}
	return cursor.Attach(d)
}
