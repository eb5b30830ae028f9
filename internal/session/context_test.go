// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		dir        string // relative to testdata, empty means use t.TempDir()
		wantErr    error
		wantFormat string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "", // empty dir with no ntt.yaml
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "missing schema dir",
			dir:     "testdata/missing-schemas",
			wantErr: ErrSchemaDirNotFound,
		},
		{
			name:       "valid",
			dir:        "testdata/valid",
			wantErr:    nil,
			wantFormat: "markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var testDir string
			if tt.dir == "" {
				testDir = t.TempDir()
			} else {
				var err error
				testDir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()
			require.NoError(t, os.Chdir(testDir))

			ctx, err := Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			nttCtx := From(ctx)
			require.NotNil(t, nttCtx)
			assert.Equal(t, tt.wantFormat, nttCtx.Config.Format)
			assert.True(t, filepath.IsAbs(nttCtx.SchemaDir))
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestFromCommand(t *testing.T) {
	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(testDir))

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	// Before PreRunLoad
	assert.Nil(t, FromCommand(cmd))

	// After PreRunLoad
	require.NoError(t, PreRunLoad(cmd, nil))
	nttCtx := FromCommand(cmd)
	require.NotNil(t, nttCtx)
	assert.Equal(t, "markdown", nttCtx.Config.Format)
}

func TestRequireFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  string // testdata path, empty means no setup needed
		loadFirst bool   // whether to call PreRunLoad before RequireFromCommand
		wantErr   bool
	}{
		{
			name:      "not loaded",
			setupDir:  "",
			loadFirst: false,
			wantErr:   true,
		},
		{
			name:      "loaded",
			setupDir:  "testdata/valid",
			loadFirst: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()

			if tt.setupDir != "" {
				testDir, err := filepath.Abs(tt.setupDir)
				require.NoError(t, err)
				require.NoError(t, os.Chdir(testDir))
			}

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			if tt.loadFirst {
				require.NoError(t, PreRunLoad(cmd, nil))
			}

			nttCtx, err := RequireFromCommand(cmd)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, nttCtx.Config)
		})
	}
}

func TestPreRunLoad_WithCommandExecution(t *testing.T) {
	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(testDir))

	var capturedCtx *Context

	rootCmd := &cobra.Command{
		Use:               "test",
		PersistentPreRunE: PreRunLoad,
	}

	subCmd := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, requireErr := RequireFromCommand(cmd)
			capturedCtx = ctx
			return requireErr
		},
	}
	rootCmd.AddCommand(subCmd)

	rootCmd.SetArgs([]string{"sub"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	require.NotNil(t, capturedCtx)
	assert.Equal(t, "schemas", capturedCtx.Config.SchemaDir)
}
