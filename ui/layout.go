// ui/layout.go
package ui

import (
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"

	"xrcform/binding"
	"xrcform/core"
	"xrcform/event"
	"xrcform/form"
	"xrcform/logging"
	"xrcform/resource"
	appTheme "xrcform/theme"
)

// traceLines is how many events the trace pane keeps.
const traceLines = 200

// Preview is the main window of the preview tool: store entries on the
// left, opened panels in tabs, every event the opened windows emit in the
// trace pane.
type Preview struct {
	app    fyne.App
	win    fyne.Window
	store  *resource.Store
	prefix string
	dark   bool

	tabs    *container.DocTabs
	trace   *widget.Label
	lines   []string
	current string
	opened  map[string]*form.Form
}

func NewPreview(app fyne.App, win fyne.Window, store *resource.Store, prefix string) *Preview {
	if store == nil {
		store = resource.Default()
	}
	return &Preview{
		app:    app,
		win:    win,
		store:  store,
		prefix: prefix,
		tabs:   container.NewDocTabs(),
		trace:  widget.NewLabel(""),
		opened: make(map[string]*form.Form),
	}
}

// SetDark records the current theme so the toggle starts on the right icon.
func (p *Preview) SetDark(dark bool) { p.dark = dark }

// Tabs holds the opened panels.
func (p *Preview) Tabs() *container.DocTabs { return p.tabs }

// Trace returns the recorded events, oldest first.
func (p *Preview) Trace() []string { return p.lines }

// Opened returns the window opened for name, if any.
func (p *Preview) Opened(name string) (*form.Form, bool) {
	f, ok := p.opened[name]
	return f, ok
}

// Open loads the named entry: panels as tabs, dialogs over the preview
// window, frames as windows of their own.
func (p *Preview) Open(name string) error {
	l, ok := p.store.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", resource.ErrNotFound, name)
	}
	p.current = name

	if l.WindowKind() == core.Panel {
		for _, item := range p.tabs.Items {
			if item.Text == name {
				p.tabs.Select(item)
				return nil
			}
		}
	}

	opts := form.Options{ResName: name, Store: p.store, NoAutoBind: true}
	var (
		f   *form.Form
		err error
	)
	switch l.WindowKind() {
	case core.Frame:
		f, err = form.NewFrame(p.app, opts)
	case core.Dialog:
		f, err = form.NewDialog(p.win, opts)
	default:
		f, err = form.NewPanel(opts)
	}
	if err != nil {
		return err
	}
	if err := binding.AutoBind(f, TraceTable(f, p.prefix, p.record), p.prefix); err != nil {
		f.Close()
		return err
	}
	p.opened[name] = f
	logging.L().Info().Str("resource", name).Str("kind", f.Kind().String()).Int("handlers", f.Handlers()).Msg("opened")

	if f.Kind() == core.Panel {
		tab := container.NewTabItemWithIcon(name, kindIcon(core.Panel), f.Content())
		p.tabs.Append(tab)
		p.tabs.Select(tab)
		return nil
	}
	f.Show()
	return nil
}

func (p *Preview) record(ev *event.Event) {
	line := ev.String()
	if v := ev.Text(); v != "" {
		line += ": " + v
	}
	p.lines = append(p.lines, line)
	if len(p.lines) > traceLines {
		p.lines = p.lines[len(p.lines)-traceLines:]
	}
	p.trace.SetText(strings.Join(p.lines, "\n"))
	logging.L().Debug().Str("event", ev.Kind.Name()).Int("id", ev.ID).Msg("trace")
}

// OpenSource opens the file the last opened entry came from with the
// system's default application.
func (p *Preview) OpenSource() error {
	l, ok := p.store.Get(p.current)
	if !ok {
		return fmt.Errorf("%w: nothing opened yet", resource.ErrNotFound)
	}
	if _, err := os.Stat(l.Source()); err != nil {
		return fmt.Errorf("%s was not loaded from a file: %w", l.Name, err)
	}
	return open.Run(l.Source())
}

// Content builds the preview window's content.
func (p *Preview) Content() fyne.CanvasObject {
	p.tabs.SetTabLocation(container.TabLocationTop)
	sidebar := container.NewScroll(p.createSidebar())

	traceScroll := container.NewVScroll(p.trace)
	traceScroll.SetMinSize(fyne.NewSize(0, 120))
	clearBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		p.lines = nil
		p.trace.SetText("")
	})
	traceBox := container.NewBorder(nil, nil, nil, container.NewVBox(clearBtn), traceScroll)

	body := container.NewVSplit(p.tabs, traceBox)
	body.Offset = 0.75
	split := container.NewHSplit(sidebar, body)
	split.Offset = 0.2

	themeToggleBtn := widget.NewButtonWithIcon("", appTheme.MoonIcon, nil)
	if p.dark {
		themeToggleBtn.SetIcon(appTheme.SunIcon)
	}
	themeToggleBtn.OnTapped = func() {
		if p.dark {
			p.app.Settings().SetTheme(appTheme.NewLightTheme())
			themeToggleBtn.SetIcon(appTheme.MoonIcon)
		} else {
			p.app.Settings().SetTheme(appTheme.NewDarkTheme())
			themeToggleBtn.SetIcon(appTheme.SunIcon)
		}
		p.dark = !p.dark
	}
	sourceBtn := widget.NewButtonWithIcon("", theme.DocumentIcon(), func() {
		if err := p.OpenSource(); err != nil {
			dialog.ShowError(err, p.win)
		}
	})

	buttonOverlay := container.NewBorder(
		container.NewHBox(layout.NewSpacer(), sourceBtn, themeToggleBtn),
		nil, nil, nil,
	)
	return container.NewStack(split, buttonOverlay)
}
