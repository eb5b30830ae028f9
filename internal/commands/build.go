// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/ntt/internal/prompts"
	"github.com/dacolabs/ntt/internal/schemafile"
	"github.com/dacolabs/ntt/internal/session"
	"github.com/dacolabs/ntt/nt"
	"github.com/dacolabs/ntt/pvdata"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	output string
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a normative type schema interactively",
		Long: `Build a schema description file through an interactive wizard: pick a
normative type, toggle its optional fields, and for tables add columns or
for multi-channel schemas choose the value element type.`,
		Example: `  # Run the wizard, writing into the project schema directory
  ntt build

  # Write into a specific directory
  ntt build --output schemas`,
		PreRunE: preRunLoadProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: project schema directory)")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	output := opts.output
	if output == "" {
		if ctx := session.FromCommand(cmd); ctx != nil {
			output = ctx.SchemaDir
		} else {
			output = "."
		}
	}

	var name, kind string
	if err := prompts.RunBuildTypeForm(&name, &kind); err != nil {
		return err
	}

	var optionals []string
	if err := prompts.RunBuildOptionalsForm(kind, &optionals); err != nil {
		return err
	}

	var columns []prompts.Column
	elemType := pvdata.Double

	switch kind {
	case "nttable":
		existing := map[string]pvdata.ScalarType{}
		for {
			var colName string
			colType := pvdata.Double
			addAnother := false
			if err := prompts.RunColumnForm(&colName, &colType, &addAnother, existing); err != nil {
				return err
			}
			columns = append(columns, prompts.Column{Name: colName, Type: colType})
			existing[colName] = colType
			if !addAnother {
				break
			}
		}
	case "ntscalarmultichannel":
		if err := prompts.RunElementTypeForm(&elemType); err != nil {
			return err
		}
	}

	schema, err := buildSchema(kind, optionals, columns, elemType)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile := filepath.Join(output, name+schemafile.YAMLWriter.Extension())
	if _, err := os.Stat(outFile); err == nil {
		return fmt.Errorf("schema file already exists: %s", outFile)
	}

	f, err := os.Create(outFile) //nolint:gosec // outFile is derived from user input
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := schemafile.YAMLWriter.Write(schema, f); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema", Value: name},
		{Label: "Type", Value: schema.ID()},
		{Label: "File", Value: outFile},
	}, "Schema created")

	return nil
}

func buildSchema(kind string, optionals []string, columns []prompts.Column, elemType pvdata.ScalarType) (*pvdata.Structure, error) {
	has := map[string]bool{}
	for _, o := range optionals {
		has[o] = true
	}

	fc := pvdata.FieldCreate{}
	dc := pvdata.PVDataCreate{}

	switch kind {
	case "nttable":
		b := nt.NewNTTableBuilder(fc, dc)
		for _, c := range columns {
			b.AddColumn(c.Name, c.Type)
		}
		if has["descriptor"] {
			b.AddDescriptor()
		}
		if has["alarm"] {
			b.AddAlarm()
		}
		if has["timeStamp"] {
			b.AddTimeStamp()
		}
		return b.CreateStructure(), nil

	case "ntndarray":
		b := nt.NewNTNDArrayBuilder(fc, dc)
		if has["descriptor"] {
			b.AddDescriptor()
		}
		if has["timeStamp"] {
			b.AddTimeStamp()
		}
		if has["alarm"] {
			b.AddAlarm()
		}
		if has["display"] {
			b.AddDisplay()
		}
		return b.CreateStructure(), nil

	case "ntscalarmultichannel":
		b := nt.NewNTScalarMultiChannelBuilder(fc, dc).Value(elemType)
		if has["descriptor"] {
			b.AddDescriptor()
		}
		if has["alarm"] {
			b.AddAlarm()
		}
		if has["timeStamp"] {
			b.AddTimeStamp()
		}
		if has["severity"] {
			b.AddSeverity()
		}
		if has["status"] {
			b.AddStatus()
		}
		if has["message"] {
			b.AddMessage()
		}
		if has["secondsPastEpoch"] {
			b.AddSecondsPastEpoch()
		}
		if has["nanoseconds"] {
			b.AddNanoseconds()
		}
		if has["userTag"] {
			b.AddUserTag()
		}
		if has["isConnected"] {
			b.AddIsConnected()
		}
		return b.CreateStructure(), nil
	}

	return nil, fmt.Errorf("unknown normative type %q", kind)
}
