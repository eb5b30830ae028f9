// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/ntt/internal/commands"
	"github.com/dacolabs/ntt/internal/translate"
	"github.com/dacolabs/ntt/internal/translate/jsonschema"
	"github.com/dacolabs/ntt/internal/translate/markdown"
)

func registerTranslators() translate.Register {
	translators := make(translate.Register)
	translators["jsonschema"] = &jsonschema.Translator{}
	translators["markdown"] = &markdown.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := registerTranslators()
	rootCmd := commands.NewRootCmd(translators)
	return rootCmd.ExecuteContext(ctx)
}
