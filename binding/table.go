// binding/table.go
package binding

import (
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"

	"xrcform/event"
)

// Table is the set of named attributes a window offers to the binder.
// Values that are not handler-shaped are kept but never bound.
type Table struct {
	owner  string
	values map[string]any
}

func NewTable() *Table {
	return &Table{values: make(map[string]any)}
}

// Set stores v under name, replacing any previous value.
func (t *Table) Set(name string, v any) *Table {
	t.values[name] = v
	return t
}

// On stores a handler under name.
func (t *Table) On(name string, h event.Handler) *Table {
	return t.Set(name, h)
}

// Owner names the type the table was built from, if any.
func (t *Table) Owner() string { return t.owner }

func (t *Table) SetOwner(owner string) *Table {
	t.owner = owner
	return t
}

func (t *Table) Get(name string) (any, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Names returns every attribute name, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) Len() int { return len(t.values) }

// Methods builds a table from the exported methods of recv. Go exports
// force a capital first letter, so it is lower-cased: a method
// On_OK_button is stored as on_OK_button. The owner is recv's type name.
func Methods(recv any) *Table {
	t := NewTable()
	if recv == nil {
		return t
	}
	v := reflect.ValueOf(recv)
	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		t.Set(lowerFirst(typ.Method(i).Name), v.Method(i).Interface())
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	t.owner = typ.Name()
	return t
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// handlerOf adapts the handler shapes the binder accepts.
func handlerOf(v any) (event.Handler, bool) {
	switch h := v.(type) {
	case event.Handler:
		return h, h != nil
	case func(*event.Event):
		return h, h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(*event.Event) { h() }, true
	}
	return nil, false
}
