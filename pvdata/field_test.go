// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTypeNames(t *testing.T) {
	tests := []struct {
		typ  ScalarType
		name string
	}{
		{Boolean, "boolean"},
		{Byte, "byte"},
		{Short, "short"},
		{Int, "int"},
		{Long, "long"},
		{UByte, "ubyte"},
		{UShort, "ushort"},
		{UInt, "uint"},
		{ULong, "ulong"},
		{Float, "float"},
		{Double, "double"},
		{String, "string"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.typ.String())
		typ, ok := ScalarTypeFromName(tt.name)
		require.True(t, ok)
		assert.Equal(t, tt.typ, typ)
	}

	_, ok := ScalarTypeFromName("complex")
	assert.False(t, ok)
}

func TestScalarTypeIsNumeric(t *testing.T) {
	assert.False(t, Boolean.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.True(t, Byte.IsNumeric())
	assert.True(t, Double.IsNumeric())
}

func TestStructureFieldLookup(t *testing.T) {
	var fc FieldCreate
	s := fc.CreateStructure("point_t",
		[]string{"x", "y"},
		[]Field{fc.CreateScalar(Double), fc.CreateScalar(Double)})

	assert.Equal(t, "point_t", s.ID())
	assert.Equal(t, []string{"x", "y"}, s.Names())

	f, ok := s.Field("x")
	require.True(t, ok)
	assert.Equal(t, KindScalar, f.Kind())

	_, ok = s.Field("z")
	assert.False(t, ok)
}

func TestStructureDuplicateNamesFirstWins(t *testing.T) {
	var fc FieldCreate
	s := fc.NewFieldBuilder().
		Add("v", Int).
		Add("v", String).
		CreateStructure()

	f, ok := s.Field("v")
	require.True(t, ok)
	sc, ok := f.(*Scalar)
	require.True(t, ok)
	assert.Equal(t, Int, sc.ScalarType())
}

func TestFieldOfKindMismatch(t *testing.T) {
	var fc FieldCreate
	s := fc.NewFieldBuilder().
		Add("v", Double).
		AddArray("a", Double).
		CreateStructure()

	_, ok := FieldOf[*ScalarArray](s, "v")
	assert.False(t, ok)

	arr, ok := FieldOf[*ScalarArray](s, "a")
	require.True(t, ok)
	assert.Equal(t, Double, arr.ElementType())
}

func TestFieldBuilderReset(t *testing.T) {
	var fc FieldCreate
	b := fc.NewFieldBuilder()

	first := b.SetID("first_t").Add("x", Int).CreateStructure()
	assert.Equal(t, "first_t", first.ID())
	assert.Equal(t, 1, first.Len())

	second := b.CreateStructure()
	assert.Equal(t, DefaultStructureID, second.ID())
	assert.Equal(t, 0, second.Len())
}

func TestDefaultIDs(t *testing.T) {
	var fc FieldCreate
	assert.Equal(t, DefaultStructureID, fc.CreateStructure("", nil, nil).ID())
	assert.Equal(t, DefaultUnionID, fc.CreateUnion("", nil, nil).ID())
	assert.Equal(t, VariantUnionID, fc.CreateVariantUnion().ID())
}

func TestUnionVariants(t *testing.T) {
	var fc FieldCreate
	u := fc.CreateUnion("choice_t",
		[]string{"i", "s"},
		[]Field{fc.CreateScalar(Int), fc.CreateScalar(String)})

	assert.False(t, u.IsVariant())
	f, ok := u.Variant("s")
	require.True(t, ok)
	assert.Equal(t, "string", f.ID())

	_, ok = u.Variant("missing")
	assert.False(t, ok)

	assert.True(t, fc.CreateVariantUnion().IsVariant())
}

func TestCompositeIDs(t *testing.T) {
	var fc FieldCreate
	assert.Equal(t, "double[]", fc.CreateScalarArray(Double).ID())

	elem := fc.CreateStructure("dim_t", []string{"size"}, []Field{fc.CreateScalar(Int)})
	assert.Equal(t, "dim_t[]", fc.CreateStructureArray(elem).ID())
}

func TestCreateStructureLengthMismatchPanics(t *testing.T) {
	var fc FieldCreate
	assert.Panics(t, func() {
		fc.CreateStructure("bad", []string{"x"}, nil)
	})
}
