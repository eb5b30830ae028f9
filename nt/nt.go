// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package nt implements normative types: self-describing record schemas
// (NTTable, NTNDArray, NTScalarMultiChannel) layered on the pvdata model.
// Each type ships a builder that assembles a conforming schema, a pair of
// predicates (IsA for fast id discrimination, IsCompatible for structural
// duck-typing) and a non-owning typed view over a wrapped record.
package nt

// Identifying URIs. These are stable across the library's lifetime:
// external consumers persist and transmit schemas tagged with them.
const (
	NTTableURI              = "epics:nt/NTTable:1.0"
	NTNDArrayURI            = "epics:nt/NTNDArray:1.0"
	NTScalarMultiChannelURI = "epics:nt/NTScalarMultiChannel:1.0"
	NTAttributeURI          = "epics:nt/NTAttribute:1.0"
)

// Ids of the fixed sub-structures of NTNDArray.
const (
	codecID     = "codec_t"
	dimensionID = "dimension_t"
)
