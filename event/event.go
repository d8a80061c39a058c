// event/event.go
package event

import (
	"fmt"

	"xrcform/core"
)

// Event is handed to a handler when a bound control emits a kind.
type Event struct {
	Kind   *Kind
	Source *core.Control
	ID     int
	Value  any

	skipped bool
}

// Handler reacts to an event.
type Handler func(ev *Event)

// Fire delivers a value emitted by a control to the dispatch table and
// returns the event once every interested handler has run.
type Fire func(value any) *Event

func New(kind *Kind, src *core.Control, value any) *Event {
	ev := &Event{Kind: kind, Source: src, ID: core.IDAny, Value: value}
	if src != nil {
		ev.ID = src.ID
	}
	return ev
}

// Skip passes the event on to the next matching handler, or to the
// toolkit's default processing when none is left.
func (e *Event) Skip() { e.skipped = true }

func (e *Event) Skipped() bool { return e.skipped }

// Reset clears the skip flag before the next handler runs.
func (e *Event) Reset() { e.skipped = false }

// Text returns string values as-is and formats anything else.
func (e *Event) Text() string {
	switch v := e.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (e *Event) Checked() bool {
	b, _ := e.Value.(bool)
	return b
}

func (e *Event) Number() float64 {
	switch v := e.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (e *Event) String() string {
	return fmt.Sprintf("%s from %s", e.Kind, e.Source)
}
