package vtable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a table description on disk: layout constants, a theme and
// the table data. Missing config keys keep their defaults.
//
//	theme: dark
//	config:
//	  blockSize: 20
//	  scrollbarHideDelay: 1s
//	table:
//	  width: 400
//	  height: 300
//	  columns:
//	    - name: id
//	      header: [ID]
//	      values: [1, 2, 3]
type Document struct {
	Theme  string    `yaml:"theme"` // "light" (default) or "dark"
	Config Config    `yaml:"config"`
	Table  TableData `yaml:"table"`
}

// ParseDocument decodes and validates a YAML document.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{Config: DefaultConfig()}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("vtable: parse document: %w", err)
	}
	if err := doc.Config.Validate(); err != nil {
		return nil, fmt.Errorf("vtable: document config: %w", err)
	}
	if err := doc.Table.Validate(); err != nil {
		return nil, fmt.Errorf("vtable: document table: %w", err)
	}
	if _, err := doc.Style(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadDocument reads and parses a YAML document file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// Style resolves the document theme.
func (d *Document) Style() (Style, error) {
	switch d.Theme {
	case "", "light":
		return DefaultStyle(), nil
	case "dark":
		return DarkStyle(), nil
	}
	return Style{}, fmt.Errorf("vtable: unknown theme %q", d.Theme)
}

// Options returns the table options the document describes.
func (d *Document) Options() []TableOption {
	style, err := d.Style()
	if err != nil {
		style = DefaultStyle()
	}
	return []TableOption{WithConfig(d.Config), WithStyle(style)}
}
