// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package nt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/ntt/pvdata"
)

var (
	fieldCreate pvdata.FieldCreate
	dataCreate  pvdata.PVDataCreate
)

func newTableBuilder() *NTTableBuilder {
	return NewNTTableBuilder(fieldCreate, dataCreate)
}

func TestNTTableRoundTrip(t *testing.T) {
	table := newTableBuilder().
		AddColumn("x", pvdata.Double).
		AddColumn("y", pvdata.Double).
		Create()

	assert.Equal(t, []string{"x", "y"}, table.ColumnNames())

	labels, ok := pvdata.ScalarArrayOf[string](table.Labels())
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, labels)

	wrapped, ok := WrapNTTable(table.PVStructure())
	require.True(t, ok)
	assert.True(t, wrapped.IsValid())
}

func TestNTTableColumnOrder(t *testing.T) {
	table := newTableBuilder().
		AddColumn("c", pvdata.Int).
		AddColumn("a", pvdata.String).
		AddColumn("b", pvdata.Double).
		Create()

	// column order is call order, not lexical order, and labels follow it
	assert.Equal(t, []string{"c", "a", "b"}, table.ColumnNames())
	labels, ok := pvdata.ScalarArrayOf[string](table.Labels())
	require.True(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, labels)
}

func TestNTTableColumnAccess(t *testing.T) {
	table := newTableBuilder().
		AddColumn("x", pvdata.Double).
		AddColumn("name", pvdata.String).
		Create()

	col := table.Column("x")
	require.NotNil(t, col)
	require.NoError(t, col.Put([]float64{1, 2, 3}))

	vals, ok := ColumnOf[float64](table, "x")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, vals)

	// requesting the wrong element type is absent, not fatal
	_, ok = ColumnOf[int32](table, "x")
	assert.False(t, ok)

	assert.Nil(t, table.Column("missing"))
	_, ok = ColumnOf[float64](table, "missing")
	assert.False(t, ok)
}

func TestNTTableOptionalFields(t *testing.T) {
	minimal := newTableBuilder().AddColumn("x", pvdata.Double).CreateStructure()
	assert.True(t, IsNTTableCompatible(minimal))
	_, ok := minimal.Field("descriptor")
	assert.False(t, ok)
	_, ok = minimal.Field("alarm")
	assert.False(t, ok)
	_, ok = minimal.Field("timeStamp")
	assert.False(t, ok)

	full := newTableBuilder().
		AddColumn("x", pvdata.Double).
		AddDescriptor().
		AddAlarm().
		AddTimeStamp().
		CreateStructure()
	assert.True(t, IsNTTableCompatible(full))

	d, ok := pvdata.FieldOf[*pvdata.Scalar](full, "descriptor")
	require.True(t, ok)
	assert.Equal(t, pvdata.String, d.ScalarType())

	alarm, ok := full.Field("alarm")
	require.True(t, ok)
	assert.True(t, pvdata.IsAlarm(alarm))

	ts, ok := full.Field("timeStamp")
	require.True(t, ok)
	assert.True(t, pvdata.IsTimeStamp(ts))
}

func TestNTTableOpenWorldTolerance(t *testing.T) {
	s := newTableBuilder().
		AddColumn("x", pvdata.Double).
		Add("vendorData", fieldCreate.CreateScalarArray(pvdata.Byte)).
		CreateStructure()

	assert.True(t, IsNTTableCompatible(s))
}

func TestNTTableKindMismatchRejection(t *testing.T) {
	var sf pvdata.StandardField

	tests := []struct {
		name  string
		build func(fb *pvdata.FieldBuilder)
	}{
		{"labels as scalar", func(fb *pvdata.FieldBuilder) {
			fb.Add("labels", pvdata.String)
			fb.AddField("value", fieldCreate.CreateStructure("", nil, nil))
		}},
		{"labels with wrong element type", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("labels", pvdata.Int)
			fb.AddField("value", fieldCreate.CreateStructure("", nil, nil))
		}},
		{"missing value", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("labels", pvdata.String)
		}},
		{"non-array column", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("labels", pvdata.String)
			fb.AddField("value", fieldCreate.NewFieldBuilder().Add("x", pvdata.Double).CreateStructure())
		}},
		{"descriptor with wrong type", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("labels", pvdata.String)
			fb.AddField("value", fieldCreate.CreateStructure("", nil, nil))
			fb.Add("descriptor", pvdata.Int)
		}},
		{"alarm with wrong id", func(fb *pvdata.FieldBuilder) {
			fb.AddArray("labels", pvdata.String)
			fb.AddField("value", fieldCreate.CreateStructure("", nil, nil))
			fb.AddField("alarm", sf.TimeStamp())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := fieldCreate.NewFieldBuilder().SetID(NTTableURI)
			tt.build(fb)
			assert.False(t, IsNTTableCompatible(fb.CreateStructure()))
		})
	}
}

func TestNTTableBuilderReuse(t *testing.T) {
	b := newTableBuilder()

	first := b.AddColumn("x", pvdata.Double).AddDescriptor().CreateStructure()
	_, ok := first.Field("descriptor")
	require.True(t, ok)

	// a second unconfigured build yields the minimal schema
	second := b.Create()
	assert.Empty(t, second.ColumnNames())
	assert.Nil(t, second.Descriptor())
	assert.True(t, IsNTTableCompatibleRecord(second.PVStructure()))
}

func TestNTTableIsA(t *testing.T) {
	s := newTableBuilder().AddColumn("x", pvdata.Double).CreateStructure()
	assert.True(t, IsNTTable(s))
	assert.False(t, IsNTTable(nil))

	// structurally compatible but differently tagged: fails IsA, passes
	// IsCompatible
	renamed := fieldCreate.NewFieldBuilder().
		SetID("epics:nt/NTTable:2.0").
		AddArray("labels", pvdata.String).
		AddField("value", fieldCreate.NewFieldBuilder().AddArray("x", pvdata.Double).CreateStructure()).
		CreateStructure()
	assert.False(t, IsNTTable(renamed))
	assert.True(t, IsNTTableCompatible(renamed))
}

func TestNTTableWrapRejectsIncompatible(t *testing.T) {
	record := dataCreate.CreatePVStructure(
		fieldCreate.NewFieldBuilder().SetID(NTTableURI).Add("x", pvdata.Int).CreateStructure())

	_, ok := WrapNTTable(record)
	assert.False(t, ok)

	view, ok := WrapNTTable(nil)
	assert.False(t, ok)
	assert.Nil(t, view)

	// the unsafe escape hatch never checks
	assert.NotNil(t, WrapNTTableUnsafe(record))
}

func TestNTTableDuplicateExtensionFirstWins(t *testing.T) {
	s := newTableBuilder().
		AddColumn("x", pvdata.Double).
		Add("extra", fieldCreate.CreateScalar(pvdata.Int)).
		Add("extra", fieldCreate.CreateScalar(pvdata.String)).
		CreateStructure()

	f, ok := pvdata.FieldOf[*pvdata.Scalar](s, "extra")
	require.True(t, ok)
	assert.Equal(t, pvdata.Int, f.ScalarType())
	assert.Equal(t, 4, s.Len()) // labels, value, extra, extra
}

func TestNTTableAttach(t *testing.T) {
	table := newTableBuilder().
		AddColumn("x", pvdata.Double).
		AddAlarm().
		AddTimeStamp().
		Create()

	var ts pvdata.PVTimeStamp
	assert.True(t, table.AttachTimeStamp(&ts))
	var alarm pvdata.PVAlarm
	assert.True(t, table.AttachAlarm(&alarm))

	bare := newTableBuilder().AddColumn("x", pvdata.Double).Create()
	var ts2 pvdata.PVTimeStamp
	assert.False(t, bare.AttachTimeStamp(&ts2))
	var alarm2 pvdata.PVAlarm
	assert.False(t, bare.AttachAlarm(&alarm2))
}

func TestNTTableIsValid(t *testing.T) {
	table := newTableBuilder().AddColumn("x", pvdata.Double).Create()
	assert.True(t, table.IsValid())

	// labels out of step with columns
	require.NoError(t, table.Labels().Put([]string{"x", "ghost"}))
	assert.False(t, table.IsValid())
}

func TestNTTableZeroColumns(t *testing.T) {
	// malformed configuration is legal and yields a minimal schema
	table := newTableBuilder().Create()
	assert.Empty(t, table.ColumnNames())
	assert.True(t, IsNTTableCompatibleRecord(table.PVStructure()))
	assert.True(t, table.IsValid())
}
