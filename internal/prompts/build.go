// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/dacolabs/ntt/pvdata"
)

// Column describes one table column collected by the build wizard.
type Column struct {
	Name string
	Type pvdata.ScalarType
}

// optionalFields lists the selectable optional fields per normative type,
// in layout order.
var optionalFields = map[string][]string{
	"nttable":   {"descriptor", "alarm", "timeStamp"},
	"ntndarray": {"descriptor", "timeStamp", "alarm", "display"},
	"ntscalarmultichannel": {
		"descriptor", "alarm", "timeStamp",
		"severity", "status", "message",
		"secondsPastEpoch", "nanoseconds", "userTag", "isConnected",
	},
}

// RunBuildTypeForm runs the first step of the build wizard: schema name and
// normative type selection.
func RunBuildTypeForm(name, kind *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema name").
				Prompt(": ").
				Inline(true).
				Placeholder("detector").
				Validate(identifierValidator(map[string]struct{}{})).
				Value(name),
			huh.NewSelect[string]().
				Title("Normative type").
				Options(
					huh.NewOption("NTTable", "nttable"),
					huh.NewOption("NTNDArray", "ntndarray"),
					huh.NewOption("NTScalarMultiChannel", "ntscalarmultichannel"),
				).
				Value(kind),
		),
	).WithTheme(Theme()).Run()
}

// RunBuildOptionalsForm runs the optional-field toggle step for the given
// normative type.
func RunBuildOptionalsForm(kind string, selected *[]string) error {
	fields, ok := optionalFields[kind]
	if !ok {
		return nil
	}

	options := make([]huh.Option[string], 0, len(fields))
	for _, f := range fields {
		options = append(options, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Optional fields").
				Options(options...).
				Value(selected),
		),
	).WithTheme(Theme()).Run()
}

// RunColumnForm collects one table column and whether to add another.
func RunColumnForm(name *string, typ *pvdata.ScalarType, addAnother *bool, existing map[string]pvdata.ScalarType) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Column name").
				Prompt(": ").
				Inline(true).
				Value(name).
				Validate(identifierValidator(existing)),
			huh.NewSelect[pvdata.ScalarType]().
				Title("Column type").
				Options(scalarTypeOptions()...).
				Value(typ),
			huh.NewConfirm().
				Title("Add another column?").
				Value(addAnother),
		),
	).WithTheme(Theme()).Run()
}

// RunElementTypeForm selects the value element type for a multi-channel
// schema.
func RunElementTypeForm(typ *pvdata.ScalarType) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[pvdata.ScalarType]().
				Title("Value element type").
				Options(scalarTypeOptions()...).
				Value(typ),
		),
	).WithTheme(Theme()).Run()
}

func scalarTypeOptions() []huh.Option[pvdata.ScalarType] {
	types := []pvdata.ScalarType{
		pvdata.Boolean,
		pvdata.Byte, pvdata.Short, pvdata.Int, pvdata.Long,
		pvdata.UByte, pvdata.UShort, pvdata.UInt, pvdata.ULong,
		pvdata.Float, pvdata.Double,
		pvdata.String,
	}
	options := make([]huh.Option[pvdata.ScalarType], 0, len(types))
	for _, t := range types {
		options = append(options, huh.NewOption(t.String(), t))
	}
	return options
}
