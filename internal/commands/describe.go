// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/dacolabs/ntt/internal/prompts"
	"github.com/dacolabs/ntt/nt"
	"github.com/dacolabs/ntt/pvdata"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <schema-file>",
		Short: "Show a schema's field tree and normative type verdicts",
		Long: `Show the full field tree of a schema description file and, for each
supported normative type, whether the schema is that type (exact id match)
and whether it is structurally compatible with it.`,
		Example: `  # Describe a schema file
  ntt describe detector.yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRunLoadProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveSchemaPath(cmd, args[0])
			if err != nil {
				return err
			}
			return runDescribe(path)
		},
	}
	return cmd
}

func runDescribe(path string) error {
	schema, err := loadSchema(path)
	if err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema", Value: schemaName(path)},
		{Label: "ID", Value: schema.ID()},
	}, "")

	fmt.Println()
	for fieldPath, f := range pvdata.Traverse(schema) {
		if fieldPath == "" {
			continue
		}
		depth := strings.Count(fieldPath, ".")
		name := fieldPath[strings.LastIndex(fieldPath, ".")+1:]
		fmt.Printf("  %s%s: %s\n", strings.Repeat("  ", depth), name, fieldLabel(f))
	}

	fmt.Println()
	prompts.PrintVerdict("NTTable (is-a)", nt.IsNTTable(schema))
	prompts.PrintVerdict("NTTable (compatible)", nt.IsNTTableCompatible(schema))
	prompts.PrintVerdict("NTNDArray (is-a)", nt.IsNTNDArray(schema))
	prompts.PrintVerdict("NTNDArray (compatible)", nt.IsNTNDArrayCompatible(schema))
	prompts.PrintVerdict("NTScalarMultiChannel (is-a)", nt.IsNTScalarMultiChannel(schema))
	prompts.PrintVerdict("NTScalarMultiChannel (compatible)", nt.IsNTScalarMultiChannelCompatible(schema))

	return nil
}

func fieldLabel(f pvdata.Field) string {
	switch f.Kind() {
	case pvdata.KindStructure:
		return "structure (" + f.ID() + ")"
	case pvdata.KindStructureArray:
		return "structure[] (" + f.ID() + ")"
	case pvdata.KindUnion:
		return "union (" + f.ID() + ")"
	default:
		return f.ID()
	}
}
