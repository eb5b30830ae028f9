// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/ntt/internal/prompts"
	"github.com/dacolabs/ntt/nt"
	"github.com/dacolabs/ntt/pvdata"
	"github.com/spf13/cobra"
)

type verifyOptions struct {
	typeName string
	isA      bool
}

// typeChecks maps normative type names to their id and structural checks.
var typeChecks = map[string]struct {
	label      string
	isA        func(*pvdata.Structure) bool
	compatible func(*pvdata.Structure) bool
}{
	"nttable":              {"NTTable", nt.IsNTTable, nt.IsNTTableCompatible},
	"ntndarray":            {"NTNDArray", nt.IsNTNDArray, nt.IsNTNDArrayCompatible},
	"ntscalarmultichannel": {"NTScalarMultiChannel", nt.IsNTScalarMultiChannel, nt.IsNTScalarMultiChannelCompatible},
}

func newVerifyCmd() *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <schema-file>",
		Short: "Check a schema against a normative type",
		Long: `Check whether a schema description file is structurally compatible with
a normative type. The exit status reflects the verdict: zero when the
schema passes, non-zero when it doesn't.

With --is-a the check is the fast id comparison instead of the full
structural walk.`,
		Example: `  # Structural compatibility check
  ntt verify detector.yaml --type nttable

  # Exact type id check
  ntt verify detector.yaml --type nttable --is-a`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRunLoadProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveSchemaPath(cmd, args[0])
			if err != nil {
				return err
			}
			return runVerify(path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", fmt.Sprintf("Normative type (%s)", strings.Join(typeNames(), ", ")))
	cmd.Flags().BoolVar(&opts.isA, "is-a", false, "Check the type id only, not the structure")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runVerify(path string, opts *verifyOptions) error {
	check, ok := typeChecks[strings.ToLower(opts.typeName)]
	if !ok {
		return fmt.Errorf("unknown type %q (want one of %s)", opts.typeName, strings.Join(typeNames(), ", "))
	}

	schema, err := loadSchema(path)
	if err != nil {
		return err
	}

	verdict := check.compatible(schema)
	mode := "compatible"
	if opts.isA {
		verdict = check.isA(schema)
		mode = "is-a"
	}

	prompts.PrintVerdict(fmt.Sprintf("%s (%s)", check.label, mode), verdict)

	if !verdict {
		if opts.isA {
			return fmt.Errorf("%s does not have type id %s", schemaName(path), check.label)
		}
		return fmt.Errorf("%s is not compatible with %s", schemaName(path), check.label)
	}
	return nil
}

func typeNames() []string {
	names := make([]string, 0, len(typeChecks))
	for name := range typeChecks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
