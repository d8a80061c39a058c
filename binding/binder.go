// binding/binder.go
package binding

import (
	"fmt"
	"strings"

	"xrcform/core"
	"xrcform/event"
	"xrcform/logging"
)

// Window is what the binder needs from a loaded window: named control
// lookup and handler registration.
type Window interface {
	Lookup(name string) (*core.Control, bool)
	Bind(kind *event.Kind, h event.Handler, src *core.Control, id1, id2 int)
}

// Binder registers handlers whose names follow the naming convention.
type Binder struct {
	Prefix   string
	Excludes []string
	// Registry resolves kind keys; nil means event.Default().
	Registry *event.Registry
}

func New() *Binder {
	return &Binder{Prefix: DefaultPrefix}
}

func (b *Binder) prefix() string {
	if b.Prefix == "" {
		return DefaultPrefix
	}
	return b.Prefix
}

func (b *Binder) registry() *event.Registry {
	if b.Registry == nil {
		return event.Default()
	}
	return b.Registry
}

// Parse parses name with the binder's prefix and registry.
func (b *Binder) Parse(name string) (Rule, bool, error) {
	return parse(b.registry(), name, b.prefix())
}

type pending struct {
	name    string
	rule    Rule
	handler event.Handler
	src     *core.Control
}

// Bind registers every eligible attribute of attrs on w. Every name is
// resolved before the first registration, so an error leaves w untouched.
func (b *Binder) Bind(w Window, attrs *Table) error {
	if attrs == nil {
		return nil
	}
	prefix := b.prefix()
	excluded := make(map[string]bool, len(b.Excludes))
	for _, name := range b.Excludes {
		excluded[name] = true
	}

	var todo []pending
	for _, name := range attrs.Names() {
		if excluded[name] || !strings.HasPrefix(name, prefix) {
			continue
		}
		v, _ := attrs.Get(name)
		h, ok := handlerOf(v)
		if !ok {
			continue
		}
		rule, ok, err := b.Parse(name)
		if err != nil {
			return err
		}
		if !ok || !rule.Targeted() {
			continue
		}

		p := pending{name: name, rule: rule, handler: h}
		if rule.HasSource() {
			src, found := w.Lookup(rule.Source)
			if !found || src.Empty() {
				return fmt.Errorf("%w %q for %s in %s", ErrMissingWidget, rule.Source, name, windowName(w, attrs))
			}
			if !rule.Kind.Supports(src.Object) {
				return fmt.Errorf("%w: %s cannot emit %s for %s", ErrUnsupportedEvent, src, rule.Kind, name)
			}
			p.src = src
		}
		todo = append(todo, p)
	}

	for _, p := range todo {
		w.Bind(p.rule.Kind, p.handler, p.src, p.rule.ID1, p.rule.ID2)
		logging.L().Debug().
			Str("handler", p.name).
			Str("event", p.rule.Kind.Name()).
			Str("source", p.rule.Source).
			Int("id1", p.rule.ID1).
			Int("id2", p.rule.ID2).
			Msg("bound")
	}
	return nil
}

func windowName(w Window, attrs *Table) string {
	if n, ok := w.(interface{ Name() string }); ok && n.Name() != "" {
		return n.Name()
	}
	if attrs.Owner() != "" {
		return attrs.Owner()
	}
	return fmt.Sprintf("%T", w)
}

// AutoBind binds attrs on w with the default registry.
func AutoBind(w Window, attrs *Table, prefix string, excludes ...string) error {
	b := &Binder{Prefix: prefix, Excludes: excludes}
	return b.Bind(w, attrs)
}
