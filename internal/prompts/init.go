// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(schemaDir, format *string, createStarter *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema directory").
				Prompt(": ").
				Inline(true).
				Placeholder("schemas").
				Validate(requiredValidator("schema directory")).
				Value(schemaDir),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default translate format").
				Options(
					huh.NewOption("JSON Schema", "jsonschema"),
					huh.NewOption("Markdown", "markdown"),
				).
				Value(format),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Starter schema").
				Options(
					huh.NewOption("Create an example NTTable schema", true),
					huh.NewOption("Skip", false),
				).
				Height(3).
				Value(createStarter),
		),
	).WithTheme(Theme()).Run()
}
