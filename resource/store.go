// resource/store.go
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"

	"xrcform/core"
	"xrcform/logging"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrKindMismatch      = errors.New("resource kind mismatch")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnknownClass      = errors.New("unknown control class")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrUnsupportedFormat = errors.New("unsupported resource format")
)

// Store holds named window layouts.
type Store struct {
	mu      sync.RWMutex
	layouts map[string]*Layout
	order   []string
	palette *Palette
}

func NewStore() *Store {
	return &Store{layouts: make(map[string]*Layout)}
}

var (
	defaultMu    sync.Mutex
	defaultStore = NewStore()
)

// Default returns the process-wide store used when a window is loaded
// without an explicit one.
func Default() *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultStore
}

// SetDefault replaces the process-wide store and returns the previous one.
func SetDefault(s *Store) *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultStore
	defaultStore = s
	return prev
}

// Load reads a resource file. Image paths inside it resolve relative to the
// file's directory.
func (s *Store) Load(path string) error {
	p, err := expandHome(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("abs path: %w", err)
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return err
	}
	return s.add(path, filepath.Dir(abs), b)
}

// LoadDir loads every supported file directly inside dir, in name order.
func (s *Store) LoadDir(dir string) error {
	p, err := expandHome(dir)
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(p)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		if err := s.Load(filepath.Join(p, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadResource reads a bundled resource; its name picks the format.
func (s *Store) LoadResource(r fyne.Resource) error {
	return s.LoadBytes(r.Name(), r.Content())
}

// LoadBytes decodes b using the extension of name.
func (s *Store) LoadBytes(name string, b []byte) error {
	return s.add(name, "", b)
}

func (s *Store) add(source, dir string, b []byte) error {
	doc, err := Decode(source, b)
	if err != nil {
		return err
	}
	for i := range doc.Layouts {
		doc.Layouts[i].source = source
		doc.Layouts[i].dir = dir
	}
	if err := s.Add(doc.Layouts...); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if doc.Theme != nil {
		s.mu.Lock()
		s.palette = doc.Theme
		s.mu.Unlock()
	}
	logging.L().Debug().Str("source", source).Int("layouts", len(doc.Layouts)).Msg("resource loaded")
	return nil
}

// Add validates and stores layouts. Either all of them are added or none.
func (s *Store) Add(layouts ...Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(layouts))
	checked := make([]*Layout, 0, len(layouts))
	for i := range layouts {
		l := layouts[i]
		if err := validate(&l); err != nil {
			return err
		}
		if _, ok := s.layouts[l.Name]; ok || seen[l.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicate, l.Name)
		}
		seen[l.Name] = true
		checked = append(checked, &l)
	}
	for _, l := range checked {
		s.layouts[l.Name] = l
		s.order = append(s.order, l.Name)
	}
	return nil
}

// Unload drops every layout loaded from source and reports how many went.
func (s *Store) Unload(source string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.order[:0]
	n := 0
	for _, name := range s.order {
		if s.layouts[name].source == source {
			delete(s.layouts, name)
			n++
			continue
		}
		kept = append(kept, name)
	}
	s.order = kept
	return n
}

func (s *Store) Get(name string) (*Layout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layouts[name]
	return l, ok
}

// Names lists layout names in load order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Layouts lists layouts of the given kinds in load order; no kinds means
// all of them.
func (s *Store) Layouts(kinds ...core.Kind) []*Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Layout
	for _, name := range s.order {
		l := s.layouts[name]
		if len(kinds) == 0 || hasKind(kinds, l.kind) {
			out = append(out, l)
		}
	}
	return out
}

// Sources lists the distinct sources of the stored layouts, sorted.
func (s *Store) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := make(map[string]bool)
	for _, l := range s.layouts {
		set[l.source] = true
	}
	out := make([]string, 0, len(set))
	for src := range set {
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// Palette returns the palette of the last loaded document that had one.
func (s *Store) Palette() *Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette
}

func hasKind(kinds []core.Kind, k core.Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

func validate(l *Layout) error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: layout without name", ErrInvalidLayout)
	}
	k, err := core.ParseKind(l.Kind)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidLayout, l.Name, err)
	}
	l.kind = k
	if len(l.Menu) > 0 && k != core.Frame {
		return fmt.Errorf("%w: %s: only frames have menus", ErrInvalidLayout, l.Name)
	}
	if l.Root.Class == "" {
		l.Root.Class = "vbox"
	}
	return validateNode(l.Name, &l.Root)
}

func validateNode(layout string, n *Node) error {
	if _, _, err := lookupClass(n.Class); err != nil {
		return fmt.Errorf("%s: %w", layout, err)
	}
	if n.ID != nil && *n.ID < 0 {
		return fmt.Errorf("%w: %s: negative id %d on %q", ErrInvalidLayout, layout, *n.ID, n.Name)
	}
	for i := range n.Children {
		if err := validateNode(layout, &n.Children[i]); err != nil {
			return err
		}
	}
	for _, slot := range []*Node{n.Top, n.Bottom, n.Left, n.Right} {
		if slot == nil {
			continue
		}
		if err := validateNode(layout, slot); err != nil {
			return err
		}
	}
	return nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
