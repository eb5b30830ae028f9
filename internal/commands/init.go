// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/ntt/internal/config"
	"github.com/dacolabs/ntt/internal/prompts"
	"github.com/dacolabs/ntt/internal/schemafile"
	"github.com/dacolabs/ntt/internal/session"
	"github.com/dacolabs/ntt/nt"
	"github.com/dacolabs/ntt/pvdata"
	"github.com/spf13/cobra"
)

type initOptions struct {
	schemaDir      string
	format         string
	createStarter  bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ntt project",
		Long: `Initialize a new ntt project with an ntt.yaml configuration file.
Optionally writes a starter NTTable schema into the schema directory.`,
		Example: `  # Interactive mode
  ntt init

  # Non-interactive
  ntt init --schema-dir schemas --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaDir, "schema-dir", "d", "schemas", "Directory for schema description files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "Default translate format (jsonschema or markdown)")
	cmd.Flags().BoolVar(&opts.createStarter, "starter", false, "Write an example NTTable schema")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("ntt.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		opts.createStarter = true
		if err := prompts.RunInitForm(&opts.schemaDir, &opts.format, &opts.createStarter); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:   config.CurrentConfigVersion,
		SchemaDir: opts.schemaDir,
		Format:    opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	schemaDir := opts.schemaDir
	if !filepath.IsAbs(schemaDir) {
		schemaDir = filepath.Join(cwd, schemaDir)
	}
	if err := os.MkdirAll(schemaDir, 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema directory", Value: opts.schemaDir},
		{Label: "Translate format", Value: opts.format},
	}

	if opts.createStarter {
		starterPath := filepath.Join(schemaDir, "example-table.yaml")
		if _, err := os.Stat(starterPath); err == nil {
			return fmt.Errorf("starter schema already exists: %s", starterPath)
		}
		if err := writeStarterSchema(starterPath); err != nil {
			return fmt.Errorf("failed to write starter schema: %w", err)
		}
		fields = append(fields, prompts.ResultField{Label: "Starter schema", Value: starterPath})
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(fields, "Initialization completed")
	return nil
}

// writeStarterSchema writes an NTTable with two columns as a starting point.
func writeStarterSchema(path string) error {
	schema := nt.NewNTTableBuilder(pvdata.FieldCreate{}, pvdata.PVDataCreate{}).
		AddColumn("time", pvdata.Double).
		AddColumn("reading", pvdata.Double).
		AddDescriptor().
		AddTimeStamp().
		CreateStructure()

	f, err := os.Create(path) //nolint:gosec // path is derived from config
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	return schemafile.YAMLWriter.Write(schema, f)
}
