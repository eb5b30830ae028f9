// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/ntt/internal/config"
	"github.com/dacolabs/ntt/internal/session"
	"github.com/dacolabs/ntt/internal/translate"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	format string
	output string
	all    bool
}

func newTranslateCmd(translators translate.Register) *cobra.Command {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [schema-file...]",
		Short: "Translate schema files to a target format",
		Long: fmt.Sprintf(`Translate schema description files to a target format.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Translate one schema
  ntt translate detector.yaml --format jsonschema

  # Translate all schemas in the project schema directory
  ntt translate --all --format markdown

  # Translate to a custom output directory
  ntt translate detector.yaml --output docs`,
		PreRunE: preRunLoadProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "translated", "Output directory")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Translate all schemas in the project schema directory")

	return cmd
}

func runTranslate(cmd *cobra.Command, translators translate.Register, opts *translateOptions, args []string) error {
	// Validate mutually exclusive selection modes
	if opts.all && len(args) > 0 {
		return fmt.Errorf("--all and schema file arguments are mutually exclusive")
	}

	format := opts.format
	if format == "" {
		if ctx := session.FromCommand(cmd); ctx != nil {
			format = ctx.Config.Format
		} else {
			format = config.DefaultFormat
		}
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	var files []string
	if opts.all {
		ctx, requireErr := session.RequireFromCommand(cmd)
		if requireErr != nil {
			return fmt.Errorf("--all needs an ntt project: %w", session.ErrNotInitialized)
		}
		files, err = schemaFiles(ctx.SchemaDir)
		if err != nil {
			return err
		}
	} else {
		for _, arg := range args {
			path, resolveErr := resolveSchemaPath(cmd, arg)
			if resolveErr != nil {
				return resolveErr
			}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no schema files selected")
	}

	fmt.Printf("Translating %d schema(s) to %s...\n", len(files), format)

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var errors []string
	successCount := 0

	for _, path := range files {
		name := schemaName(path)

		schema, loadErr := loadSchema(path)
		if loadErr != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", name, loadErr))
			continue
		}

		data, translateErr := translator.Translate(name, schema)
		if translateErr != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", name, translateErr))
			continue
		}

		outFile := filepath.Join(opts.output, name+translator.FileExtension())
		if writeErr := os.WriteFile(outFile, data, 0o600); writeErr != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", name, writeErr))
			continue
		}
		fmt.Printf("  %s\n", outFile)
		successCount++
	}

	fmt.Printf("\nSuccessfully translated %d schema(s)\n", successCount)

	if len(errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errors {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("failed to translate %d schema(s)", len(errors))
	}

	return nil
}

// schemaFiles lists the schema description files in a directory.
func schemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml", ".json":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
