// ui/trace.go
package ui

import (
	"strings"

	"xrcform/binding"
	"xrcform/core"
	"xrcform/event"
	"xrcform/form"
)

// traceable reports whether a handler name built from name would parse
// back to name as its source.
func traceable(name string) bool {
	if name == "" || strings.Contains(name, binding.Delimiter) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return true
		}
	}
	return false
}

// TraceTable builds one handler per (control, event kind) pair the form
// can emit. Every handler hands the event to sink and skips it, so the
// toolkit's default processing still happens.
func TraceTable(f *form.Form, prefix string, sink event.Handler) *binding.Table {
	if prefix == "" {
		prefix = binding.DefaultPrefix
	}
	controls := append([]*core.Control{f.Self()}, f.Tree().Controls()...)
	kinds := event.Default().Names()

	t := binding.NewTable().SetOwner(f.Name())
	handler := event.Handler(func(ev *event.Event) {
		sink(ev)
		ev.Skip()
	})
	for _, c := range controls {
		if c == nil || c.Empty() || !traceable(c.Name) {
			continue
		}
		for _, key := range kinds {
			kind, err := event.Lookup(key)
			if err != nil || !kind.Supports(c.Object) {
				continue
			}
			suffix := strings.ToLower(strings.TrimPrefix(key, binding.Namespace))
			t.On(prefix+binding.Delimiter+c.Name+binding.Delimiter+suffix, handler)
		}
	}
	return t
}
