// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pvdata

import "iter"

// Traverse returns an iterator over all fields in the tree, paired with
// their dotted path from the root (the root itself has path ""). Fields are
// yielded in declaration order, parents before children. Array element
// schemas and union variants are descended into.
func Traverse(root Field) iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		traverse("", root, yield)
	}
}

func traverse(path string, f Field, yield func(string, Field) bool) bool {
	if f == nil {
		return true
	}
	if !yield(path, f) {
		return false
	}

	switch t := f.(type) {
	case *Structure:
		for i, name := range t.names {
			if !traverse(joinPath(path, name), t.fields[i], yield) {
				return false
			}
		}
	case *StructureArray:
		for i, name := range t.elem.names {
			if !traverse(joinPath(path, name), t.elem.fields[i], yield) {
				return false
			}
		}
	case *Union:
		for i, name := range t.names {
			if !traverse(joinPath(path, name), t.fields[i], yield) {
				return false
			}
		}
	}
	return true
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
