// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/ntt/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ntt",
		Short: "Build, verify, and translate EPICS Normative Type schemas",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newTranslateCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
