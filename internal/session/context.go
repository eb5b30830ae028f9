// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/ntt/internal/config"
)

var (
	// ErrNotInitialized indicates no ntt.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an ntt project (ntt.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaDirNotFound indicates the schema directory referenced by config
	// doesn't exist.
	ErrSchemaDirNotFound = errors.New("schema directory not found")
)

// ConfigFileName is the name of the ntt configuration file.
const ConfigFileName = "ntt.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the parsed project configuration.
	Config *config.Config

	// SchemaDir is the absolute path to the project's schema directory.
	SchemaDir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the ntt Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	schemaDir := cfg.SchemaDir
	if !filepath.IsAbs(schemaDir) {
		schemaDir = filepath.Join(cwd, schemaDir)
	}
	if info, statErr := os.Stat(schemaDir); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSchemaDirNotFound, schemaDir)
	}

	nttCtx := &Context{
		Config:    cfg,
		SchemaDir: schemaDir,
	}

	return context.WithValue(ctx, contextKey{}, nttCtx), nil
}

// From extracts the ntt Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if nttCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return nttCtx
	}
	return nil
}
