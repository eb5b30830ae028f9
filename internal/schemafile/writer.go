// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemafile

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/ntt/pvdata"
)

// Writer encodes a schema description to an io.Writer.
type Writer struct {
	write     func(w io.Writer, v any) error
	extension string
}

var (
	// JSONWriter writes schema descriptions as JSON.
	JSONWriter = Writer{writeJSON, ".json"}
	// YAMLWriter writes schema descriptions as YAML.
	YAMLWriter = Writer{writeYAML, ".yaml"}
)

// Extension returns the file extension the writer produces.
func (wr Writer) Extension() string { return wr.extension }

// Write encodes the schema description to w.
func (wr Writer) Write(s *pvdata.Structure, w io.Writer) error {
	return wr.write(w, toRaw(s))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close() //nolint:errcheck
	return enc.Encode(v)
}
