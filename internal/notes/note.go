// Package notes builds markdown notes with YAML frontmatter for the export
// command.
package notes

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter collects typed key/value pairs and serializes them in
// insertion order, so exported notes are deterministic.
type Frontmatter struct {
	fields map[string]any
	keys   []string
}

// NewFrontmatter creates a new empty Frontmatter.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{fields: make(map[string]any)}
}

// Set adds or replaces a frontmatter field.
func (f *Frontmatter) Set(key string, value any) {
	if _, exists := f.fields[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.fields[key] = value
}

// Get returns the value for a key, or nil when absent.
func (f *Frontmatter) Get(key string) any {
	return f.fields[key]
}

// Build serializes the frontmatter followed by the body into a complete
// markdown document.
func (f *Frontmatter) Build(body string) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range f.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(f.fields[key]); err != nil {
			return nil, fmt.Errorf("failed to encode frontmatter field %q: %w", key, err)
		}
		root.Content = append(root.Content, keyNode, valueNode)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	if len(f.keys) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to finalize frontmatter: %w", err)
		}
	}
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}
