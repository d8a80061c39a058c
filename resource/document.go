// resource/document.go
package resource

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"xrcform/core"
)

// Document is one resource file: an optional palette and any number of
// window layouts.
type Document struct {
	Theme   *Palette `json:"theme" yaml:"theme" toml:"theme"`
	Layouts []Layout `json:"layouts" yaml:"layouts" toml:"layouts"`
}

// Palette overrides theme colours. Colours are #rgb, #rrggbb or #rrggbbaa.
type Palette struct {
	Variant    string `json:"variant" yaml:"variant" toml:"variant"`
	Primary    string `json:"primary" yaml:"primary" toml:"primary"`
	Background string `json:"background" yaml:"background" toml:"background"`
	Foreground string `json:"foreground" yaml:"foreground" toml:"foreground"`
	Button     string `json:"button" yaml:"button" toml:"button"`
	Input      string `json:"input" yaml:"input" toml:"input"`
}

// Layout describes one loadable window.
type Layout struct {
	Name    string     `json:"name" yaml:"name" toml:"name"`
	Kind    string     `json:"kind" yaml:"kind" toml:"kind"`
	Title   string     `json:"title" yaml:"title" toml:"title"`
	Width   float32    `json:"width" yaml:"width" toml:"width"`
	Height  float32    `json:"height" yaml:"height" toml:"height"`
	Dismiss string     `json:"dismiss" yaml:"dismiss" toml:"dismiss"`
	Menu    []MenuNode `json:"menu" yaml:"menu" toml:"menu"`
	Root    Node       `json:"root" yaml:"root" toml:"root"`

	kind   core.Kind
	dir    string
	source string
}

// WindowKind is the parsed Kind; valid once the layout is in a store.
func (l *Layout) WindowKind() core.Kind { return l.kind }

// Source is the file or resource name the layout was loaded from.
func (l *Layout) Source() string { return l.source }

// Node is one control in a layout tree. A nil ID gets an automatic
// negative id; 0 is a valid declared id.
type Node struct {
	Class       string   `json:"class" yaml:"class" toml:"class"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	ID          *int     `json:"id" yaml:"id" toml:"id"`
	Label       string   `json:"label" yaml:"label" toml:"label"`
	Text        string   `json:"text" yaml:"text" toml:"text"`
	Placeholder string   `json:"placeholder" yaml:"placeholder" toml:"placeholder"`
	Options     []string `json:"options" yaml:"options" toml:"options"`
	Selected    string   `json:"selected" yaml:"selected" toml:"selected"`
	Checked     bool     `json:"checked" yaml:"checked" toml:"checked"`
	Min         float64  `json:"min" yaml:"min" toml:"min"`
	Max         float64  `json:"max" yaml:"max" toml:"max"`
	Step        float64  `json:"step" yaml:"step" toml:"step"`
	Value       float64  `json:"value" yaml:"value" toml:"value"`
	Columns     int      `json:"columns" yaml:"columns" toml:"columns"`
	Horizontal  bool     `json:"horizontal" yaml:"horizontal" toml:"horizontal"`
	URL         string   `json:"url" yaml:"url" toml:"url"`
	Image       string   `json:"image" yaml:"image" toml:"image"`
	Width       float32  `json:"width" yaml:"width" toml:"width"`
	Height      float32  `json:"height" yaml:"height" toml:"height"`
	Disabled    bool     `json:"disabled" yaml:"disabled" toml:"disabled"`
	Wrap        bool     `json:"wrap" yaml:"wrap" toml:"wrap"`
	Children    []Node   `json:"children" yaml:"children" toml:"children"`
	Top         *Node    `json:"top" yaml:"top" toml:"top"`
	Bottom      *Node    `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left        *Node    `json:"left" yaml:"left" toml:"left"`
	Right       *Node    `json:"right" yaml:"right" toml:"right"`
}

// MenuNode is a frame menu, a menu item or a separator.
type MenuNode struct {
	Label     string     `json:"label" yaml:"label" toml:"label"`
	Name      string     `json:"name" yaml:"name" toml:"name"`
	ID        *int       `json:"id" yaml:"id" toml:"id"`
	Separator bool       `json:"separator" yaml:"separator" toml:"separator"`
	Disabled  bool       `json:"disabled" yaml:"disabled" toml:"disabled"`
	Items     []MenuNode `json:"items" yaml:"items" toml:"items"`
}

// Supported reports whether name has an extension Decode understands.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	}
	return false
}

// Decode parses b according to the extension of name.
// Supports: .yaml/.yml, .json, .toml
func Decode(name string, b []byte) (Document, error) {
	var doc Document
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &doc); err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return doc, nil
}
