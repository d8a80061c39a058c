// resource/classes.go
package resource

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ClassFunc builds the toolkit object for a node.
type ClassFunc func(b *Builder, n *Node) (fyne.CanvasObject, error)

// ClassUnknown is the placeholder class; the application fills it at
// runtime.
const ClassUnknown = "unknown"

var (
	classMu sync.RWMutex
	classes = make(map[string]ClassFunc)
	aliases = make(map[string]string)
)

// RegisterClass makes a control class available to layouts, under its name
// and any aliases.
func RegisterClass(name string, fn ClassFunc, alias ...string) {
	classMu.Lock()
	defer classMu.Unlock()
	name = normalizeClass(name)
	classes[name] = fn
	for _, a := range alias {
		aliases[normalizeClass(a)] = name
	}
}

// Classes lists every registered class name, sorted.
func Classes() []string {
	classMu.RLock()
	defer classMu.RUnlock()
	names := []string{ClassUnknown}
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalizeClass makes "wxButton", "Button" and "button" the same class.
func normalizeClass(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > 2 && strings.HasPrefix(s, "wx") {
		s = s[2:]
	}
	return s
}

func lookupClass(class string) (string, ClassFunc, error) {
	name := normalizeClass(class)
	if name == ClassUnknown {
		return name, nil, nil
	}
	classMu.RLock()
	defer classMu.RUnlock()
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	fn, ok := classes[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	return name, fn, nil
}

func init() {
	RegisterClass("button", buildButton)
	RegisterClass("label", buildLabel, "statictext")
	RegisterClass("entry", buildEntry, "textctrl")
	RegisterClass("password", buildPassword)
	RegisterClass("multiline", buildMultiline)
	RegisterClass("check", buildCheck, "checkbox")
	RegisterClass("select", buildSelect, "choice")
	RegisterClass("combobox", buildCombobox)
	RegisterClass("slider", buildSlider)
	RegisterClass("radio", buildRadio, "radiobox")
	RegisterClass("hyperlink", buildHyperlink, "hyperlinkctrl")
	RegisterClass("progress", buildProgress, "gauge")
	RegisterClass("separator", buildSeparator, "staticline")
	RegisterClass("spacer", buildSpacer)
	RegisterClass("image", buildImage, "staticbitmap")
	RegisterClass("vbox", buildVBox, "panel")
	RegisterClass("hbox", buildHBox)
	RegisterClass("grid", buildGrid)
	RegisterClass("border", buildBorder)
	RegisterClass("scroll", buildScroll, "scrolledwindow")
	RegisterClass("form", buildForm)
	RegisterClass("tabs", buildTabs, "notebook")
	RegisterClass("center", buildCenter)
	RegisterClass("padded", buildPadded)
}

func buildButton(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	return widget.NewButton(n.Text, nil), nil
}

func buildLabel(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	l := widget.NewLabel(n.Text)
	if n.Wrap {
		l.Wrapping = fyne.TextWrapWord
	}
	return l, nil
}

func fillEntry(e *widget.Entry, n *Node) *widget.Entry {
	e.SetPlaceHolder(n.Placeholder)
	e.SetText(n.Text)
	if n.Wrap {
		e.Wrapping = fyne.TextWrapWord
	}
	return e
}

func buildEntry(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	return fillEntry(widget.NewEntry(), n), nil
}

func buildPassword(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	return fillEntry(widget.NewPasswordEntry(), n), nil
}

func buildMultiline(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	return fillEntry(widget.NewMultiLineEntry(), n), nil
}

func buildCheck(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	c := widget.NewCheck(n.Text, nil)
	c.Checked = n.Checked
	return c, nil
}

func buildSelect(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	s := widget.NewSelect(n.Options, nil)
	if n.Placeholder != "" {
		s.PlaceHolder = n.Placeholder
	}
	s.Selected = n.Selected
	return s, nil
}

func buildCombobox(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	s := widget.NewSelectEntry(n.Options)
	s.SetPlaceHolder(n.Placeholder)
	if n.Selected != "" {
		s.SetText(n.Selected)
	} else {
		s.SetText(n.Text)
	}
	return s, nil
}

func buildSlider(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	hi := n.Max
	if hi <= n.Min {
		hi = n.Min + 100
	}
	s := widget.NewSlider(n.Min, hi)
	if n.Step > 0 {
		s.Step = n.Step
	}
	s.Value = n.Value
	if s.Value < n.Min {
		s.Value = n.Min
	}
	return s, nil
}

func buildRadio(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	r := widget.NewRadioGroup(n.Options, nil)
	r.Horizontal = n.Horizontal
	r.Selected = n.Selected
	return r, nil
}

func buildHyperlink(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	u, err := url.Parse(n.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: hyperlink %q: %v", ErrInvalidLayout, n.Name, err)
	}
	text := n.Text
	if text == "" {
		text = n.URL
	}
	return widget.NewHyperlink(text, u), nil
}

func buildProgress(_ *Builder, n *Node) (fyne.CanvasObject, error) {
	p := widget.NewProgressBar()
	if n.Max > n.Min {
		p.Min, p.Max = n.Min, n.Max
	}
	p.Value = n.Value
	return p, nil
}

func buildSeparator(*Builder, *Node) (fyne.CanvasObject, error) {
	return widget.NewSeparator(), nil
}

func buildSpacer(*Builder, *Node) (fyne.CanvasObject, error) {
	return layout.NewSpacer(), nil
}

func buildVBox(b *Builder, n *Node) (fyne.CanvasObject, error) {
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	return container.NewVBox(kids...), nil
}

func buildHBox(b *Builder, n *Node) (fyne.CanvasObject, error) {
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	return container.NewHBox(kids...), nil
}

func buildGrid(b *Builder, n *Node) (fyne.CanvasObject, error) {
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	cols := n.Columns
	if cols <= 0 {
		cols = 2
	}
	return container.NewGridWithColumns(cols, kids...), nil
}

func buildBorder(b *Builder, n *Node) (fyne.CanvasObject, error) {
	var edges [4]fyne.CanvasObject
	for i, slot := range []*Node{n.Top, n.Bottom, n.Left, n.Right} {
		if slot == nil {
			continue
		}
		obj, err := b.Build(slot)
		if err != nil {
			return nil, err
		}
		edges[i] = obj
	}
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	return container.NewBorder(edges[0], edges[1], edges[2], edges[3], kids...), nil
}

func buildScroll(b *Builder, n *Node) (fyne.CanvasObject, error) {
	if len(n.Children) != 1 {
		return nil, fmt.Errorf("%w: scroll %q needs exactly one child, has %d", ErrInvalidLayout, n.Name, len(n.Children))
	}
	kid, err := b.Build(&n.Children[0])
	if err != nil {
		return nil, err
	}
	return container.NewScroll(kid), nil
}

func buildForm(b *Builder, n *Node) (fyne.CanvasObject, error) {
	f := widget.NewForm()
	for i := range n.Children {
		kid, err := b.Build(&n.Children[i])
		if err != nil {
			return nil, err
		}
		f.AppendItem(widget.NewFormItem(n.Children[i].Label, kid))
	}
	return f, nil
}

func buildTabs(b *Builder, n *Node) (fyne.CanvasObject, error) {
	tabs := container.NewAppTabs()
	for i := range n.Children {
		kid, err := b.Build(&n.Children[i])
		if err != nil {
			return nil, err
		}
		label := n.Children[i].Label
		if label == "" {
			label = n.Children[i].Name
		}
		tabs.Append(container.NewTabItem(label, kid))
	}
	return tabs, nil
}

func buildCenter(b *Builder, n *Node) (fyne.CanvasObject, error) {
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	return container.NewCenter(kids...), nil
}

func buildPadded(b *Builder, n *Node) (fyne.CanvasObject, error) {
	kids, err := b.BuildChildren(n.Children)
	if err != nil {
		return nil, err
	}
	return container.NewPadded(kids...), nil
}
