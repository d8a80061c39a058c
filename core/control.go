// core/control.go
package core

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

const (
	// IDAny means "no identifier constraint".
	IDAny = -1
	// AutoIDBase is the first id handed to controls declared without one.
	// Automatic ids count down from here so they never fall inside a
	// non-negative id range.
	AutoIDBase = -2000
)

// ErrNotPlaceholder is returned by Fill on a control that was not declared
// with the "unknown" class.
var ErrNotPlaceholder = errors.New("control is not a placeholder")

// Control is one named element of a loaded window: a widget, a container, a
// menu item, or the window itself.
type Control struct {
	Name   string
	ID     int
	Class  string
	Object any

	slot *fyne.Container
}

func NewControl(name string, id int, class string, obj any) *Control {
	return &Control{Name: name, ID: id, Class: class, Object: obj}
}

// NewPlaceholder returns an empty control backed by slot. The application
// supplies the real widget later with Fill.
func NewPlaceholder(name string, id int, slot *fyne.Container) *Control {
	return &Control{Name: name, ID: id, Class: "unknown", slot: slot}
}

// Empty reports whether the control was found but carries nothing usable,
// e.g. a placeholder that was never filled.
func (c *Control) Empty() bool {
	return c == nil || c.Object == nil
}

func (c *Control) Placeholder() bool { return c.slot != nil }

// Widget returns the control's canvas object, or nil for menu items and
// windows.
func (c *Control) Widget() fyne.CanvasObject {
	obj, _ := c.Object.(fyne.CanvasObject)
	return obj
}

// Fill puts obj into a placeholder's slot.
func (c *Control) Fill(obj fyne.CanvasObject) error {
	if c.slot == nil {
		return fmt.Errorf("%w: %s", ErrNotPlaceholder, c)
	}
	c.Object = obj
	c.slot.Objects = []fyne.CanvasObject{obj}
	c.slot.Refresh()
	return nil
}

// InRange reports whether the control's id lies in [id1, id2]. An id2 of
// IDAny matches id1 exactly; a negative id1 matches nothing.
func (c *Control) InRange(id1, id2 int) bool {
	if id1 < 0 {
		return false
	}
	if id2 < 0 {
		return c.ID == id1
	}
	return c.ID >= id1 && c.ID <= id2
}

func (c *Control) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.Name == "" {
		return fmt.Sprintf("%s#%d", c.Class, c.ID)
	}
	return fmt.Sprintf("%s %q#%d", c.Class, c.Name, c.ID)
}
