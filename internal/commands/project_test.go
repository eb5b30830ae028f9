// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupProject creates an initialized project with one table schema and
// chdirs into it for the duration of the test.
func setupProject(t *testing.T, format string) string {
	t.Helper()

	tableSchema, err := os.ReadFile(filepath.Join("testdata", "table.yaml"))
	require.NoError(t, err)

	projectDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, "schemas"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(projectDir, "ntt.yaml"),
		[]byte("version: 1\nschemaDir: schemas\nformat: "+format+"\n"), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(projectDir, "schemas", "table.yaml"), tableSchema, 0o600))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(projectDir))

	return projectDir
}

func TestVerify_ResolvesAgainstProjectSchemaDir(t *testing.T) {
	setupProject(t, "markdown")

	// Bare schema name, no path: found via the project's schema directory.
	assert.NoError(t, runCommand(t, "verify", "table.yaml", "--type", "nttable"))
	assert.NoError(t, runCommand(t, "describe", "table.yaml"))
}

func TestVerify_BrokenProjectConfigFails(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(projectDir, "ntt.yaml"), []byte("version: [broken {{\n"), 0o600))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(projectDir))

	assert.Error(t, runCommand(t, "verify", "table.yaml", "--type", "nttable"))
}

func TestTranslate_UsesProjectDefaultFormat(t *testing.T) {
	projectDir := setupProject(t, "markdown")
	outDir := filepath.Join(projectDir, "out")

	err := runCommand(t, "translate", "table.yaml", "--output", outDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "table.md"))
	assert.NoError(t, err)
}

func TestTranslate_All(t *testing.T) {
	projectDir := setupProject(t, "jsonschema")
	outDir := filepath.Join(projectDir, "out")

	err := runCommand(t, "translate", "--all", "--output", outDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "table.schema.json"))
	assert.NoError(t, err)
}

func TestTranslate_AllOutsideProject(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(t.TempDir()))

	assert.Error(t, runCommand(t, "translate", "--all", "--output", t.TempDir()))
}
