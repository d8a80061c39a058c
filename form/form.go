// form/form.go
package form

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"xrcform/binding"
	"xrcform/core"
	"xrcform/event"
	"xrcform/logging"
	"xrcform/resource"
)

var (
	ErrNoResourceName = errors.New("no resource name")
	ErrNoParent       = errors.New("dialog needs a parent window")
	ErrNoApp          = errors.New("frame needs an app")
)

const defaultDismiss = "Close"

type handlerEntry struct {
	kind     *event.Kind
	handler  event.Handler
	src      *core.Control
	id1, id2 int
}

type attachKey struct {
	ctrl *core.Control
	kind *event.Kind
}

// Form is a window loaded from a resource store. It implements
// binding.Window.
type Form struct {
	kind    core.Kind
	id      int
	name    string
	title   string
	resName string
	store   *resource.Store
	tree    *resource.Tree

	pre    *fyne.Container
	self   *core.Control
	window fyne.Window
	dialog dialog.Dialog
	panel  fyne.CanvasObject

	cache    map[string]*core.Control
	handlers []handlerEntry
	attached map[attachKey]bool
}

var _ binding.Window = (*Form)(nil)

// NewFrame loads a top-level window.
func NewFrame(a fyne.App, opts Options) (*Form, error) { return Load(a, core.Frame, opts) }

// NewDialog loads a dialog shown over parent.
func NewDialog(parent fyne.Window, opts Options) (*Form, error) {
	opts.Parent = parent
	return Load(nil, core.Dialog, opts)
}

// NewPanel loads a panel to be placed inside another window.
func NewPanel(opts Options) (*Form, error) { return Load(nil, core.Panel, opts) }

// Load builds a window of the given kind from its layout, applies opts and,
// unless opts.NoAutoBind is set, binds opts.Handlers. Any error abandons
// the window.
func Load(a fyne.App, kind core.Kind, opts Options) (*Form, error) {
	resName := opts.resourceName()
	if resName == "" {
		return nil, ErrNoResourceName
	}
	store := opts.Store
	if store == nil {
		store = resource.Default()
	}
	f := &Form{
		kind:     kind,
		id:       opts.ID,
		name:     opts.Name,
		resName:  resName,
		store:    store,
		pre:      container.NewStack(),
		cache:    make(map[string]*core.Control),
		attached: make(map[attachKey]bool),
	}
	if f.id == 0 {
		f.id = core.IDAny
	}
	if f.name == "" {
		f.name = resName
	}

	switch kind {
	case core.Frame:
		if a == nil {
			return nil, ErrNoApp
		}
		f.window = a.NewWindow("")
	case core.Dialog:
		if opts.Parent == nil {
			return nil, ErrNoParent
		}
	}

	tree, err := store.LoadOn(f.pre, kind, resName)
	if err != nil {
		f.abandon()
		return nil, err
	}
	f.tree = tree
	f.finish(opts)
	f.apply(opts)

	if !opts.NoAutoBind {
		b := &binding.Binder{Prefix: opts.Prefix, Excludes: opts.Excludes}
		if err := b.Bind(f, opts.Handlers); err != nil {
			f.abandon()
			return nil, err
		}
	}

	logging.L().Debug().
		Str("kind", kind.String()).
		Str("resource", resName).
		Int("controls", len(tree.Controls())).
		Int("handlers", len(f.handlers)).
		Msg("window loaded")
	return f, nil
}

// finish turns the loaded container into a live window of the right kind.
func (f *Form) finish(opts Options) {
	l := f.tree.Layout
	f.title = l.Title
	if opts.Title != "" {
		f.title = opts.Title
	}

	switch f.kind {
	case core.Frame:
		f.window.SetContent(f.pre)
		if f.tree.Menu != nil {
			f.window.SetMainMenu(f.tree.Menu)
		}
		f.self = core.NewControl(f.name, f.id, f.kind.String(), f.window)
	case core.Dialog:
		dismiss := l.Dismiss
		if dismiss == "" {
			dismiss = defaultDismiss
		}
		f.dialog = dialog.NewCustom(f.title, dismiss, f.pre, opts.Parent)
		f.self = core.NewControl(f.name, f.id, f.kind.String(), f.dialog)
	case core.Panel:
		f.panel = f.pre
		if !f.style(opts).Has(StyleNoPadding) {
			f.panel = container.NewPadded(f.pre)
		}
		f.self = core.NewControl(f.name, f.id, f.kind.String(), f.panel)
	}
}

func (f *Form) style(opts Options) Style {
	if opts.Style == 0 {
		return defaultStyle(f.kind)
	}
	return opts.Style
}

// apply sets the standard window properties.
func (f *Form) apply(opts Options) {
	l := f.tree.Layout
	size := opts.Size
	if zeroSize(size) && (l.Width > 0 || l.Height > 0) {
		size = fyne.NewSize(l.Width, l.Height)
	}
	style := f.style(opts)

	switch f.kind {
	case core.Frame:
		f.window.SetTitle(f.title)
		if !zeroSize(size) {
			f.window.Resize(size)
		}
		f.window.SetFixedSize(style.Has(StyleFixedSize))
		f.window.SetFullScreen(style.Has(StyleFullScreen))
		f.window.SetPadded(!style.Has(StyleNoPadding))
		if style.Has(StyleCentered) {
			f.window.CenterOnScreen()
		}
	case core.Dialog:
		if !zeroSize(size) {
			f.dialog.Resize(size)
		}
	case core.Panel:
		if !zeroSize(size) {
			f.panel.Resize(size)
		}
		f.panel.Move(opts.Pos)
	}
}

func zeroSize(s fyne.Size) bool { return s.Width == 0 && s.Height == 0 }

func (f *Form) abandon() {
	if f.window != nil {
		f.window.Close()
	}
}

func (f *Form) Kind() core.Kind        { return f.kind }
func (f *Form) ID() int                { return f.id }
func (f *Form) Name() string           { return f.name }
func (f *Form) Title() string          { return f.title }
func (f *Form) ResourceName() string   { return f.resName }
func (f *Form) Store() *resource.Store { return f.store }
func (f *Form) Tree() *resource.Tree   { return f.tree }
func (f *Form) Self() *core.Control    { return f.self }
func (f *Form) Window() fyne.Window    { return f.window }
func (f *Form) Dialog() dialog.Dialog  { return f.dialog }
func (f *Form) Menu() *fyne.MainMenu   { return f.tree.Menu }
func (f *Form) Handlers() int          { return len(f.handlers) }

// Content returns the object to embed: the panel itself, or the loaded
// content of a frame or dialog.
func (f *Form) Content() fyne.CanvasObject {
	if f.panel != nil {
		return f.panel
	}
	return f.pre
}

func (f *Form) Show() {
	switch {
	case f.window != nil:
		f.window.Show()
	case f.dialog != nil:
		f.dialog.Show()
	default:
		f.panel.Show()
	}
}

func (f *Form) Close() {
	switch {
	case f.window != nil:
		f.window.Close()
	case f.dialog != nil:
		f.dialog.Hide()
	default:
		f.panel.Hide()
	}
}

// Lookup finds a control by name. The window answers to its own name.
// Found controls are cached per name; a placeholder is found even while
// empty.
func (f *Form) Lookup(name string) (*core.Control, bool) {
	if c, ok := f.cache[name]; ok {
		return c, true
	}
	var c *core.Control
	if name != "" && name == f.name {
		c = f.self
	} else {
		var ok bool
		if c, ok = f.tree.Find(name); !ok {
			return nil, false
		}
	}
	f.cache[name] = c
	return c, true
}

// Attach fills the placeholder called name with obj and wires any
// handlers already bound to it.
func (f *Form) Attach(name string, obj fyne.CanvasObject) error {
	c, ok := f.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q in %s", resource.ErrNotFound, name, f.name)
	}
	if err := c.Fill(obj); err != nil {
		return err
	}
	for _, h := range f.handlers {
		if h.matches(c) {
			f.attach(c, h.kind)
		}
	}
	return nil
}
