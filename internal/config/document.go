package config

import "sort"

// Document is the decoded configuration. The root holds nested map[string]any,
// []any and scalar values exactly as they appear in the file.
type Document struct {
	root any
}

// NewDocument wraps an already decoded value.
func NewDocument(root any) Document {
	return Document{root: root}
}

// Root returns the decoded value.
func (d Document) Root() any {
	return d.root
}

// IsNull reports whether the file held no document at all.
func (d Document) IsNull() bool {
	return d.root == nil
}

// Mapping returns the top-level mapping when the document is a string-keyed mapping.
func (d Document) Mapping() (map[string]any, bool) {
	m, ok := d.root.(map[string]any)
	return m, ok
}

// Keys returns the sorted top-level keys, or nil when the root is not a mapping.
func (d Document) Keys() []string {
	m, ok := d.Mapping()
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
