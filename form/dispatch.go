// form/dispatch.go
package form

import (
	"xrcform/core"
	"xrcform/event"
)

// Bind registers h for kind, either on src or on every control whose id is
// in [id1, id2]. The window itself counts as a control.
func (f *Form) Bind(kind *event.Kind, h event.Handler, src *core.Control, id1, id2 int) {
	entry := handlerEntry{kind: kind, handler: h, src: src, id1: id1, id2: id2}
	f.handlers = append(f.handlers, entry)
	for _, c := range f.targets(entry) {
		f.attach(c, kind)
	}
}

func (f *Form) targets(h handlerEntry) []*core.Control {
	if h.src != nil {
		return []*core.Control{h.src}
	}
	out := f.tree.InRange(h.id1, h.id2)
	if f.self.InRange(h.id1, h.id2) {
		out = append(out, f.self)
	}
	return out
}

func (h handlerEntry) matches(c *core.Control) bool {
	if h.src != nil {
		return h.src == c
	}
	return c != nil && c.InRange(h.id1, h.id2)
}

// attach hooks c up to the dispatch table once per kind. Controls that
// cannot emit the kind are left alone.
func (f *Form) attach(c *core.Control, kind *event.Kind) {
	if c.Empty() {
		return
	}
	key := attachKey{ctrl: c, kind: kind}
	if f.attached[key] {
		return
	}
	if kind.Attach(c.Object, func(v any) *event.Event { return f.Emit(kind, c, v) }) {
		f.attached[key] = true
	}
}

// Emit delivers an event from src to the bound handlers, newest first. A
// handler that calls Skip passes the event on. The returned event is still
// marked skipped when no handler kept it, which lets the toolkit's default
// behaviour run.
func (f *Form) Emit(kind *event.Kind, src *core.Control, value any) *event.Event {
	ev := event.New(kind, src, value)
	ev.Skip()
	for i := len(f.handlers) - 1; i >= 0; i-- {
		h := f.handlers[i]
		if h.kind != kind || !h.matches(src) {
			continue
		}
		ev.Reset()
		h.handler(ev)
		if !ev.Skipped() {
			break
		}
	}
	return ev
}
