// resource/builder.go
package resource

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"xrcform/core"
)

// Tree is a materialized layout: the toolkit objects plus every control in
// document order.
type Tree struct {
	Layout *Layout
	Root   fyne.CanvasObject
	Menu   *fyne.MainMenu

	controls []*core.Control
}

func (t *Tree) Controls() []*core.Control {
	return append([]*core.Control(nil), t.controls...)
}

// Find returns the first control named name in document order.
func (t *Tree) Find(name string) (*core.Control, bool) {
	if name == "" {
		return nil, false
	}
	for _, c := range t.controls {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// InRange returns the controls whose id lies in [id1, id2].
func (t *Tree) InRange(id1, id2 int) []*core.Control {
	var out []*core.Control
	for _, c := range t.controls {
		if c.InRange(id1, id2) {
			out = append(out, c)
		}
	}
	return out
}

// Builder turns layout nodes into toolkit objects. Class functions call
// back into it for their children.
type Builder struct {
	layout *Layout
	tree   *Tree
	nextID int
}

func newBuilder(l *Layout) *Builder {
	return &Builder{
		layout: l,
		tree:   &Tree{Layout: l},
		nextID: core.AutoIDBase,
	}
}

func (b *Builder) Layout() *Layout { return b.layout }

// Path resolves p against the directory of the layout's source file.
func (b *Builder) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || b.layout.dir == "" {
		return p
	}
	return filepath.Join(b.layout.dir, p)
}

func (b *Builder) id(declared *int) int {
	if declared != nil {
		return *declared
	}
	id := b.nextID
	b.nextID--
	return id
}

// Build materializes n and registers it as a control.
func (b *Builder) Build(n *Node) (fyne.CanvasObject, error) {
	class, fn, err := lookupClass(n.Class)
	if err != nil {
		return nil, err
	}
	if class == ClassUnknown {
		slot := container.NewStack()
		b.tree.controls = append(b.tree.controls, core.NewPlaceholder(n.Name, b.id(n.ID), slot))
		return slot, nil
	}

	ctrl := core.NewControl(n.Name, b.id(n.ID), class, nil)
	b.tree.controls = append(b.tree.controls, ctrl)
	obj, err := fn(b, n)
	if err != nil {
		return nil, err
	}
	if d, ok := obj.(fyne.Disableable); ok && n.Disabled {
		d.Disable()
	}
	ctrl.Object = obj
	return obj, nil
}

func (b *Builder) BuildChildren(nodes []Node) ([]fyne.CanvasObject, error) {
	objs := make([]fyne.CanvasObject, 0, len(nodes))
	for i := range nodes {
		obj, err := b.Build(&nodes[i])
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

func (b *Builder) buildMenu(nodes []MenuNode) *fyne.MainMenu {
	menus := make([]*fyne.Menu, 0, len(nodes))
	for i := range nodes {
		menus = append(menus, fyne.NewMenu(nodes[i].Label, b.buildMenuItems(nodes[i].Items)...))
	}
	return fyne.NewMainMenu(menus...)
}

func (b *Builder) buildMenuItems(nodes []MenuNode) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if n.Separator {
			items = append(items, fyne.NewMenuItemSeparator())
			continue
		}
		item := fyne.NewMenuItem(n.Label, nil)
		item.Disabled = n.Disabled
		if len(n.Items) > 0 {
			item.ChildMenu = fyne.NewMenu("", b.buildMenuItems(n.Items)...)
		}
		b.tree.controls = append(b.tree.controls, core.NewControl(n.Name, b.id(n.ID), "menuitem", item))
		items = append(items, item)
	}
	return items
}

// LoadOn materializes the layout called name into pre, a container the
// caller has already placed (or will place) in its window. The layout must
// be of the requested kind.
func (s *Store) LoadOn(pre *fyne.Container, kind core.Kind, name string) (*Tree, error) {
	l, ok := s.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if l.kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s, not a %s", ErrKindMismatch, name, l.kind, kind)
	}
	tree, err := Materialize(l)
	if err != nil {
		return nil, err
	}
	if pre != nil {
		pre.Objects = []fyne.CanvasObject{tree.Root}
		pre.Refresh()
	}
	return tree, nil
}

// Materialize builds a fresh set of toolkit objects for l.
func Materialize(l *Layout) (*Tree, error) {
	b := newBuilder(l)
	root, err := b.Build(&l.Root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Name, err)
	}
	b.tree.Root = root
	if len(l.Menu) > 0 {
		b.tree.Menu = b.buildMenu(l.Menu)
	}
	return b.tree, nil
}
