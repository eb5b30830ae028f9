// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders pvdata schemas as markdown documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/ntt/pvdata"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown.go.tmpl").ParseFS(tmplFS, "markdown.go.tmpl"))

// Translator translates pvdata schemas to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// docData is the input passed to the markdown template.
type docData struct {
	Name   string
	ID     string
	Fields []fieldRow
}

// fieldRow is one row of the field table.
type fieldRow struct {
	Path string
	Kind string
	Type string
}

// Translate converts a pvdata schema to a markdown field table.
func (t *Translator) Translate(name string, schema *pvdata.Structure) ([]byte, error) {
	data := docData{
		Name: name,
		ID:   schema.ID(),
	}
	for path, f := range pvdata.Traverse(schema) {
		if path == "" {
			continue // the root is described by the heading
		}
		data.Fields = append(data.Fields, fieldRow{
			Path: indentPath(path),
			Kind: f.Kind().String(),
			Type: f.ID(),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// indentPath renders nesting depth as indentation, keeping only the leaf
// name visible.
func indentPath(path string) string {
	parts := strings.Split(path, ".")
	return strings.Repeat("&nbsp;&nbsp;", len(parts)-1) + parts[len(parts)-1]
}
