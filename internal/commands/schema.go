// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/ntt/internal/schemafile"
	"github.com/dacolabs/ntt/internal/session"
	"github.com/dacolabs/ntt/pvdata"
	"github.com/spf13/cobra"
)

// preRunLoadProject loads the project context when the current directory
// holds an ntt.yaml. Commands that also work on bare schema files tolerate
// a missing project; a broken one is still an error.
func preRunLoadProject(cmd *cobra.Command, args []string) error {
	if err := session.PreRunLoad(cmd, args); err != nil && !errors.Is(err, session.ErrNotInitialized) {
		return err
	}
	return nil
}

// resolveSchemaPath resolves a schema file argument. A path that doesn't
// exist as given is retried relative to the project's schema directory when
// a project context is loaded.
func resolveSchemaPath(cmd *cobra.Command, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	if ctx := session.FromCommand(cmd); ctx != nil && !filepath.IsAbs(arg) {
		candidate := filepath.Join(ctx.SchemaDir, arg)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("schema file not found: %s", arg)
}

// loadSchema parses a schema description file into a field tree.
func loadSchema(path string) (*pvdata.Structure, error) {
	parser, ok := schemafile.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported schema file extension: %s (want .yaml, .yml, or .json)", path)
	}

	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	s, err := parser.Parse(f, pvdata.FieldCreate{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// schemaName derives a schema name from its file path.
func schemaName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
