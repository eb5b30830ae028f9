// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package nt

import "github.com/dacolabs/ntt/pvdata"

// NTScalarMultiChannelBuilder assembles NTScalarMultiChannel schemas. One
// instance can build multiple schemas: producing a schema or record resets
// the builder. It must not be used concurrently.
type NTScalarMultiChannelBuilder struct {
	create pvdata.FieldCreate
	data   pvdata.PVDataCreate

	valueType pvdata.ScalarType
	valueSet  bool

	descriptor       bool
	alarm            bool
	timeStamp        bool
	severity         bool
	status           bool
	message          bool
	secondsPastEpoch bool
	nanoseconds      bool
	userTag          bool
	isConnected      bool

	extraNames  []string
	extraFields []pvdata.Field
}

// NewNTScalarMultiChannelBuilder returns an empty builder using the given
// factories.
func NewNTScalarMultiChannelBuilder(fc pvdata.FieldCreate, dc pvdata.PVDataCreate) *NTScalarMultiChannelBuilder {
	return &NTScalarMultiChannelBuilder{create: fc, data: dc}
}

// Value fixes the scalar element type of the value array. Defaults to
// Double if never called.
func (b *NTScalarMultiChannelBuilder) Value(elem pvdata.ScalarType) *NTScalarMultiChannelBuilder {
	b.valueType = elem
	b.valueSet = true
	return b
}

// AddDescriptor adds the optional descriptor field.
func (b *NTScalarMultiChannelBuilder) AddDescriptor() *NTScalarMultiChannelBuilder {
	b.descriptor = true
	return b
}

// AddAlarm adds the optional alarm field.
func (b *NTScalarMultiChannelBuilder) AddAlarm() *NTScalarMultiChannelBuilder {
	b.alarm = true
	return b
}

// AddTimeStamp adds the optional timeStamp field.
func (b *NTScalarMultiChannelBuilder) AddTimeStamp() *NTScalarMultiChannelBuilder {
	b.timeStamp = true
	return b
}

// AddSeverity adds the optional per-channel severity array.
func (b *NTScalarMultiChannelBuilder) AddSeverity() *NTScalarMultiChannelBuilder {
	b.severity = true
	return b
}

// AddStatus adds the optional per-channel status array.
func (b *NTScalarMultiChannelBuilder) AddStatus() *NTScalarMultiChannelBuilder {
	b.status = true
	return b
}

// AddMessage adds the optional per-channel message array.
func (b *NTScalarMultiChannelBuilder) AddMessage() *NTScalarMultiChannelBuilder {
	b.message = true
	return b
}

// AddSecondsPastEpoch adds the optional per-channel seconds array.
func (b *NTScalarMultiChannelBuilder) AddSecondsPastEpoch() *NTScalarMultiChannelBuilder {
	b.secondsPastEpoch = true
	return b
}

// AddNanoseconds adds the optional per-channel nanoseconds array.
func (b *NTScalarMultiChannelBuilder) AddNanoseconds() *NTScalarMultiChannelBuilder {
	b.nanoseconds = true
	return b
}

// AddUserTag adds the optional per-channel userTag array.
func (b *NTScalarMultiChannelBuilder) AddUserTag() *NTScalarMultiChannelBuilder {
	b.userTag = true
	return b
}

// AddIsConnected adds the optional per-channel connection-state array.
func (b *NTScalarMultiChannelBuilder) AddIsConnected() *NTScalarMultiChannelBuilder {
	b.isConnected = true
	return b
}

// Add appends an extension field. Extension names are not checked against
// reserved or previously added names; by-name lookup on the result resolves
// to the first occurrence.
func (b *NTScalarMultiChannelBuilder) Add(name string, f pvdata.Field) *NTScalarMultiChannelBuilder {
	b.extraNames = append(b.extraNames, name)
	b.extraFields = append(b.extraFields, f)
	return b
}

// CreateStructure produces the schema and resets the builder. Layout:
// value, channelName, then the optional fields in convention order, then
// extensions in call order.
func (b *NTScalarMultiChannelBuilder) CreateStructure() *pvdata.Structure {
	elem := pvdata.Double
	if b.valueSet {
		elem = b.valueType
	}

	fb := b.create.NewFieldBuilder().
		SetID(NTScalarMultiChannelURI).
		AddArray("value", elem).
		AddArray("channelName", pvdata.String)

	standard := pvdata.StandardField{}
	if b.descriptor {
		fb.Add("descriptor", pvdata.String)
	}
	if b.alarm {
		fb.AddField("alarm", standard.Alarm())
	}
	if b.timeStamp {
		fb.AddField("timeStamp", standard.TimeStamp())
	}
	if b.severity {
		fb.AddArray("severity", pvdata.Int)
	}
	if b.status {
		fb.AddArray("status", pvdata.Int)
	}
	if b.message {
		fb.AddArray("message", pvdata.String)
	}
	if b.secondsPastEpoch {
		fb.AddArray("secondsPastEpoch", pvdata.Long)
	}
	if b.nanoseconds {
		fb.AddArray("nanoseconds", pvdata.Int)
	}
	if b.userTag {
		fb.AddArray("userTag", pvdata.Int)
	}
	if b.isConnected {
		fb.AddArray("isConnected", pvdata.Boolean)
	}
	for i, name := range b.extraNames {
		fb.AddField(name, b.extraFields[i])
	}

	s := fb.CreateStructure()
	b.reset()
	return s
}

// CreateRecord produces a zero-valued record and resets the builder.
func (b *NTScalarMultiChannelBuilder) CreateRecord() *pvdata.PVStructure {
	return b.data.CreatePVStructure(b.CreateStructure())
}

// Create produces a record wrapped directly into an NTScalarMultiChannel
// view and resets the builder. Compatibility is guaranteed by construction
// and is not re-checked.
func (b *NTScalarMultiChannelBuilder) Create() *NTScalarMultiChannel {
	return &NTScalarMultiChannel{pv: b.CreateRecord()}
}

func (b *NTScalarMultiChannelBuilder) reset() {
	b.valueType = 0
	b.valueSet = false
	b.descriptor = false
	b.alarm = false
	b.timeStamp = false
	b.severity = false
	b.status = false
	b.message = false
	b.secondsPastEpoch = false
	b.nanoseconds = false
	b.userTag = false
	b.isConnected = false
	b.extraNames = nil
	b.extraFields = nil
}

// IsNTScalarMultiChannel reports whether the schema's root id equals the
// NTScalarMultiChannel URI. No structural inspection is performed.
func IsNTScalarMultiChannel(s *pvdata.Structure) bool {
	return s != nil && s.ID() == NTScalarMultiChannelURI
}

// IsNTScalarMultiChannelCompatible reports whether the schema's shape
// satisfies the NTScalarMultiChannel contract, independent of its root id:
// value must be a scalar array (any element type), channelName a string
// array, and each optional field, when present, must have its conventional
// element type. Unknown extra fields are ignored.
func IsNTScalarMultiChannelCompatible(s *pvdata.Structure) bool {
	if s == nil {
		return false
	}
	if _, ok := pvdata.FieldOf[*pvdata.ScalarArray](s, "value"); !ok {
		return false
	}
	channelName, ok := pvdata.FieldOf[*pvdata.ScalarArray](s, "channelName")
	if !ok || channelName.ElementType() != pvdata.String {
		return false
	}

	optionalArrays := []struct {
		name string
		elem pvdata.ScalarType
	}{
		{"severity", pvdata.Int},
		{"status", pvdata.Int},
		{"message", pvdata.String},
		{"secondsPastEpoch", pvdata.Long},
		{"nanoseconds", pvdata.Int},
		{"userTag", pvdata.Int},
		{"isConnected", pvdata.Boolean},
	}
	for _, opt := range optionalArrays {
		f, ok := s.Field(opt.name)
		if !ok {
			continue
		}
		arr, ok := f.(*pvdata.ScalarArray)
		if !ok || arr.ElementType() != opt.elem {
			return false
		}
	}
	return compatibleOptionals(s)
}

// IsNTScalarMultiChannelCompatibleRecord reports whether the record's
// schema satisfies the NTScalarMultiChannel contract.
func IsNTScalarMultiChannelCompatibleRecord(pv *pvdata.PVStructure) bool {
	return pv != nil && IsNTScalarMultiChannelCompatible(pv.Structure())
}

// NTScalarMultiChannel is a non-owning typed view over an
// NTScalarMultiChannel record. It must not outlive the record it wraps.
type NTScalarMultiChannel struct {
	pv *pvdata.PVStructure
}

// WrapNTScalarMultiChannel verifies the record against the contract and
// wraps it. Returns nil,false on an incompatible or nil record.
func WrapNTScalarMultiChannel(pv *pvdata.PVStructure) (*NTScalarMultiChannel, bool) {
	if !IsNTScalarMultiChannelCompatibleRecord(pv) {
		return nil, false
	}
	return &NTScalarMultiChannel{pv: pv}, true
}

// WrapNTScalarMultiChannelUnsafe wraps the record without checking
// compatibility. Accessor results on an incompatible record are undefined.
func WrapNTScalarMultiChannelUnsafe(pv *pvdata.PVStructure) *NTScalarMultiChannel {
	return &NTScalarMultiChannel{pv: pv}
}

// PVStructure returns the wrapped record.
func (m *NTScalarMultiChannel) PVStructure() *pvdata.PVStructure { return m.pv }

// Value returns the value array.
func (m *NTScalarMultiChannel) Value() *pvdata.PVScalarArray {
	return m.scalarArray("value")
}

// ChannelName returns the channelName array.
func (m *NTScalarMultiChannel) ChannelName() *pvdata.PVScalarArray {
	return m.scalarArray("channelName")
}

// Severity returns the severity array, or nil when absent.
func (m *NTScalarMultiChannel) Severity() *pvdata.PVScalarArray {
	return m.scalarArray("severity")
}

// Status returns the status array, or nil when absent.
func (m *NTScalarMultiChannel) Status() *pvdata.PVScalarArray {
	return m.scalarArray("status")
}

// Message returns the message array, or nil when absent.
func (m *NTScalarMultiChannel) Message() *pvdata.PVScalarArray {
	return m.scalarArray("message")
}

// SecondsPastEpoch returns the secondsPastEpoch array, or nil when absent.
func (m *NTScalarMultiChannel) SecondsPastEpoch() *pvdata.PVScalarArray {
	return m.scalarArray("secondsPastEpoch")
}

// Nanoseconds returns the nanoseconds array, or nil when absent.
func (m *NTScalarMultiChannel) Nanoseconds() *pvdata.PVScalarArray {
	return m.scalarArray("nanoseconds")
}

// UserTag returns the userTag array, or nil when absent.
func (m *NTScalarMultiChannel) UserTag() *pvdata.PVScalarArray {
	return m.scalarArray("userTag")
}

// IsConnected returns the isConnected array, or nil when absent.
func (m *NTScalarMultiChannel) IsConnected() *pvdata.PVScalarArray {
	return m.scalarArray("isConnected")
}

// Descriptor returns the descriptor field, or nil when absent.
func (m *NTScalarMultiChannel) Descriptor() *pvdata.PVScalar {
	d, _ := pvdata.SubFieldOf[*pvdata.PVScalar](m.pv, "descriptor")
	return d
}

// TimeStamp returns the timeStamp field, or nil when absent.
func (m *NTScalarMultiChannel) TimeStamp() *pvdata.PVStructure {
	ts, _ := pvdata.SubFieldOf[*pvdata.PVStructure](m.pv, "timeStamp")
	return ts
}

// Alarm returns the alarm field, or nil when absent.
func (m *NTScalarMultiChannel) Alarm() *pvdata.PVStructure {
	a, _ := pvdata.SubFieldOf[*pvdata.PVStructure](m.pv, "alarm")
	return a
}

// AttachTimeStamp binds the cursor to the timeStamp field if present.
// Returns false without attaching when the field is absent.
func (m *NTScalarMultiChannel) AttachTimeStamp(cursor *pvdata.PVTimeStamp) bool {
	ts := m.TimeStamp()
	if ts == nil {
		return false
	}
	return cursor.Attach(ts)
}

// AttachAlarm binds the cursor to the alarm field if present. Returns
// false without attaching when the field is absent.
func (m *NTScalarMultiChannel) AttachAlarm(cursor *pvdata.PVAlarm) bool {
	a := m.Alarm()
	if a == nil {
		return false
	}
	return cursor.Attach(a)
}

func (m *NTScalarMultiChannel) scalarArray(name string) *pvdata.PVScalarArray {
	arr, _ := pvdata.SubFieldOf[*pvdata.PVScalarArray](m.pv, name)
	return arr
}
