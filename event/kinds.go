// event/kinds.go
package event

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"

	"xrcform/logging"
)

// Built-in kinds. Each hook chains onto whatever callback the widget
// already had, so binding never silences code set up elsewhere.
var (
	Button              = Register("EVT_BUTTON", hookButton)
	Hyperlink           = Register("EVT_HYPERLINK", hookHyperlink)
	Text                = Register("EVT_TEXT", hookText)
	TextEnter           = Register("EVT_TEXT_ENTER", hookTextEnter)
	Checkbox            = Register("EVT_CHECKBOX", hookCheckbox)
	Choice              = Register("EVT_CHOICE", hookChoice)
	Combobox            = Register("EVT_COMBOBOX", hookCombobox)
	Slider              = Register("EVT_SLIDER", hookSlider)
	ScrollChanged       = Register("EVT_SCROLL_CHANGED", hookScrollChanged)
	Radiobox            = Register("EVT_RADIOBOX", hookRadiobox)
	Menu                = Register("EVT_MENU", hookMenu)
	NotebookPageChanged = Register("EVT_NOTEBOOK_PAGE_CHANGED", hookNotebook)
	Close               = Register("EVT_CLOSE", hookClose)
)

func hookButton(obj any) (func(Fire), bool) {
	b, ok := obj.(*widget.Button)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := b.OnTapped
		b.OnTapped = func() {
			if prev != nil {
				prev()
			}
			fire(nil)
		}
	}, true
}

// Unhandled or skipped hyperlink events open the link.
func hookHyperlink(obj any) (func(Fire), bool) {
	h, ok := obj.(*widget.Hyperlink)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := h.OnTapped
		h.OnTapped = func() {
			if prev != nil {
				prev()
			}
			url := ""
			if h.URL != nil {
				url = h.URL.String()
			}
			if ev := fire(url); ev.Skipped() && h.URL != nil {
				openURL(h)
			}
		}
	}, true
}

func openURL(h *widget.Hyperlink) {
	if a := fyne.CurrentApp(); a != nil {
		if err := a.OpenURL(h.URL); err == nil {
			return
		}
	}
	if err := open.Run(h.URL.String()); err != nil {
		logging.L().Warn().Err(err).Str("url", h.URL.String()).Msg("open hyperlink")
	}
}

func entryOf(obj any) *widget.Entry {
	switch e := obj.(type) {
	case *widget.Entry:
		return e
	case *widget.SelectEntry:
		return &e.Entry
	}
	return nil
}

func hookText(obj any) (func(Fire), bool) {
	e := entryOf(obj)
	if e == nil {
		return nil, false
	}
	return func(fire Fire) {
		prev := e.OnChanged
		e.OnChanged = func(s string) {
			if prev != nil {
				prev(s)
			}
			fire(s)
		}
	}, true
}

func hookTextEnter(obj any) (func(Fire), bool) {
	e := entryOf(obj)
	if e == nil {
		return nil, false
	}
	return func(fire Fire) {
		prev := e.OnSubmitted
		e.OnSubmitted = func(s string) {
			if prev != nil {
				prev(s)
			}
			fire(s)
		}
	}, true
}

func hookCheckbox(obj any) (func(Fire), bool) {
	c, ok := obj.(*widget.Check)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := c.OnChanged
		c.OnChanged = func(b bool) {
			if prev != nil {
				prev(b)
			}
			fire(b)
		}
	}, true
}

func hookChoice(obj any) (func(Fire), bool) {
	s, ok := obj.(*widget.Select)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := s.OnChanged
		s.OnChanged = func(v string) {
			if prev != nil {
				prev(v)
			}
			fire(v)
		}
	}, true
}

func hookCombobox(obj any) (func(Fire), bool) {
	s, ok := obj.(*widget.SelectEntry)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := s.OnChanged
		s.OnChanged = func(v string) {
			if prev != nil {
				prev(v)
			}
			fire(v)
		}
	}, true
}

func hookSlider(obj any) (func(Fire), bool) {
	s, ok := obj.(*widget.Slider)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := s.OnChanged
		s.OnChanged = func(v float64) {
			if prev != nil {
				prev(v)
			}
			fire(v)
		}
	}, true
}

func hookScrollChanged(obj any) (func(Fire), bool) {
	s, ok := obj.(*widget.Slider)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := s.OnChangeEnded
		s.OnChangeEnded = func(v float64) {
			if prev != nil {
				prev(v)
			}
			fire(v)
		}
	}, true
}

func hookRadiobox(obj any) (func(Fire), bool) {
	r, ok := obj.(*widget.RadioGroup)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := r.OnChanged
		r.OnChanged = func(v string) {
			if prev != nil {
				prev(v)
			}
			fire(v)
		}
	}, true
}

func hookMenu(obj any) (func(Fire), bool) {
	m, ok := obj.(*fyne.MenuItem)
	if !ok || m.IsSeparator {
		return nil, false
	}
	return func(fire Fire) {
		prev := m.Action
		m.Action = func() {
			if prev != nil {
				prev()
			}
			fire(m.Label)
		}
	}, true
}

func hookNotebook(obj any) (func(Fire), bool) {
	t, ok := obj.(*container.AppTabs)
	if !ok {
		return nil, false
	}
	return func(fire Fire) {
		prev := t.OnSelected
		t.OnSelected = func(item *container.TabItem) {
			if prev != nil {
				prev(item)
			}
			fire(item.Text)
		}
	}, true
}

type closeInterceptor interface {
	SetCloseIntercept(func())
	Close()
}

type closeNotifier interface {
	SetOnClosed(func())
}

// A window only closes when its close event goes unhandled or is skipped.
// Dialogs cannot veto closing; their handlers are told after the fact.
func hookClose(obj any) (func(Fire), bool) {
	switch w := obj.(type) {
	case closeInterceptor:
		return func(fire Fire) {
			w.SetCloseIntercept(func() {
				if ev := fire(nil); ev.Skipped() {
					w.Close()
				}
			})
		}, true
	case closeNotifier:
		return func(fire Fire) {
			w.SetOnClosed(func() { fire(nil) })
		}, true
	}
	return nil, false
}
