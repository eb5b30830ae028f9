// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package nt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/ntt/pvdata"
)

func newMultiChannelBuilder() *NTScalarMultiChannelBuilder {
	return NewNTScalarMultiChannelBuilder(fieldCreate, dataCreate)
}

func TestNTScalarMultiChannelRoundTrip(t *testing.T) {
	mc := newMultiChannelBuilder().
		Value(pvdata.Int).
		AddSeverity().
		AddIsConnected().
		Create()

	wrapped, ok := WrapNTScalarMultiChannel(mc.PVStructure())
	require.True(t, ok)

	assert.Equal(t, pvdata.Int, wrapped.Value().ElementType())
	assert.Equal(t, pvdata.String, wrapped.ChannelName().ElementType())
	assert.NotNil(t, wrapped.Severity())
	assert.NotNil(t, wrapped.IsConnected())
	assert.Nil(t, wrapped.Status())
	assert.Nil(t, wrapped.Message())
}

func TestNTScalarMultiChannelValueDefaultsToDouble(t *testing.T) {
	mc := newMultiChannelBuilder().Create()
	assert.Equal(t, pvdata.Double, mc.Value().ElementType())
}

func TestNTScalarMultiChannelFieldOrder(t *testing.T) {
	s := newMultiChannelBuilder().
		AddIsConnected().
		AddSeverity().
		AddDescriptor().
		CreateStructure()

	// optional fields appear in convention order, not call order
	assert.Equal(t, []string{"value", "channelName", "descriptor", "severity", "isConnected"}, s.Names())
}

func TestNTScalarMultiChannelOptionalTolerance(t *testing.T) {
	minimal := newMultiChannelBuilder().CreateStructure()
	assert.True(t, IsNTScalarMultiChannelCompatible(minimal))
	assert.Equal(t, 2, minimal.Len())

	full := newMultiChannelBuilder().
		AddDescriptor().
		AddAlarm().
		AddTimeStamp().
		AddSeverity().
		AddStatus().
		AddMessage().
		AddSecondsPastEpoch().
		AddNanoseconds().
		AddUserTag().
		AddIsConnected().
		CreateStructure()
	assert.True(t, IsNTScalarMultiChannelCompatible(full))
	assert.Equal(t, 12, full.Len())
}

func TestNTScalarMultiChannelKindMismatchRejection(t *testing.T) {
	tests := []struct {
		name  string
		build func(fb *pvdata.FieldBuilder)
	}{
		{"value as scalar", func(fb *pvdata.FieldBuilder) {
			fb.Add("value", pvdata.Double)
			fb.AddArray("channelName", pvdata.String)
		}},
		{"missing channelName", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("value", pvdata.Double)
		}},
		{"channelName with wrong element type", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("value", pvdata.Double)
			fb.AddArray("channelName", pvdata.Int)
		}},
		{"severity with wrong element type", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("value", pvdata.Double)
			fb.AddArray("channelName", pvdata.String)
			fb.AddArray("severity", pvdata.Long)
		}},
		{"secondsPastEpoch with wrong element type", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("value", pvdata.Double)
			fb.AddArray("channelName", pvdata.String)
			fb.AddArray("secondsPastEpoch", pvdata.Int)
		}},
		{"isConnected as structure", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("value", pvdata.Double)
			fb.AddArray("channelName", pvdata.String)
			fb.AddField("isConnected", fieldCreate.CreateStructure("", nil, nil))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := fieldCreate.NewFieldBuilder().SetID(NTScalarMultiChannelURI)
			tt.build(fb)
			assert.False(t, IsNTScalarMultiChannelCompatible(fb.CreateStructure()))
		})
	}
}

func TestNTScalarMultiChannelOpenWorldTolerance(t *testing.T) {
	s := newMultiChannelBuilder().
		Add("vendorField", fieldCreate.CreateVariantUnion()).
		CreateStructure()
	assert.True(t, IsNTScalarMultiChannelCompatible(s))
}

func TestNTScalarMultiChannelBuilderReuse(t *testing.T) {
	b := newMultiChannelBuilder()

	first := b.Value(pvdata.Int).AddSeverity().CreateStructure()
	value, ok := pvdata.FieldOf[*pvdata.ScalarArray](first, "value")
	require.True(t, ok)
	assert.Equal(t, pvdata.Int, value.ElementType())

	// value type and flags do not survive into the next build
	second := b.CreateStructure()
	value, ok = pvdata.FieldOf[*pvdata.ScalarArray](second, "value")
	require.True(t, ok)
	assert.Equal(t, pvdata.Double, value.ElementType())
	_, ok = second.Field("severity")
	assert.False(t, ok)
}

func TestNTScalarMultiChannelIsA(t *testing.T) {
	s := newMultiChannelBuilder().CreateStructure()
	assert.True(t, IsNTScalarMultiChannel(s))
	assert.False(t, IsNTScalarMultiChannel(nil))
	assert.False(t, IsNTScalarMultiChannel(newTableBuilder().CreateStructure()))
}

func TestNTScalarMultiChannelWrapUnsafe(t *testing.T) {
	record := dataCreate.CreatePVStructure(
		fieldCreate.NewFieldBuilder().Add("bogus", pvdata.Int).CreateStructure())

	_, ok := WrapNTScalarMultiChannel(record)
	assert.False(t, ok)
	assert.NotNil(t, WrapNTScalarMultiChannelUnsafe(record))
}

func TestNTScalarMultiChannelAttach(t *testing.T) {
	mc := newMultiChannelBuilder().AddAlarm().AddTimeStamp().Create()

	var ts pvdata.PVTimeStamp
	assert.True(t, mc.AttachTimeStamp(&ts))
	var alarm pvdata.PVAlarm
	assert.True(t, mc.AttachAlarm(&alarm))

	bare := newMultiChannelBuilder().Create()
	var ts2 pvdata.PVTimeStamp
	assert.False(t, bare.AttachTimeStamp(&ts2))
}
