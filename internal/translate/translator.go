// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate renders pvdata schemas into target formats.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/ntt/pvdata"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate renders a schema to the target format. name is used to
	// title the output document.
	Translate(name string, schema *pvdata.Structure) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".json",
	// ".md").
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get returns the translator registered under name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered format names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
