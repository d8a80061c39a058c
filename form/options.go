// form/options.go
package form

import (
	"fyne.io/fyne/v2"

	"xrcform/binding"
	"xrcform/core"
	"xrcform/resource"
)

// Style holds window flags. The zero value means the default style of the
// window kind.
type Style uint

const (
	StyleFixedSize Style = 1 << iota
	StyleFullScreen
	StyleNoPadding
	StyleCentered
	// StylePlain asks for no flags at all, not even the kind's defaults.
	StylePlain
)

const (
	DefaultFrameStyle  = StyleCentered
	DefaultDialogStyle = StylePlain
	DefaultPanelStyle  = StyleNoPadding
)

func (s Style) Has(flag Style) bool { return s&flag != 0 }

func defaultStyle(kind core.Kind) Style {
	switch kind {
	case core.Frame:
		return DefaultFrameStyle
	case core.Panel:
		return DefaultPanelStyle
	}
	return DefaultDialogStyle
}

// Options are the constructor arguments of a window. Zero values leave the
// layout's own settings in place.
type Options struct {
	// ID is the window's own id; zero means core.IDAny.
	ID    int
	Title string
	// Pos only applies to panels; fyne does not position windows.
	Pos   fyne.Position
	Size  fyne.Size
	Style Style
	// Name defaults to the resource name.
	Name string

	// ResName is the layout to load. It defaults to the handler table's
	// owner type name, then to Name.
	ResName string
	// Store defaults to resource.Default().
	Store *resource.Store
	// Parent is required for dialogs.
	Parent fyne.Window

	NoAutoBind bool
	Prefix     string
	Excludes   []string
	Handlers   *binding.Table
}

func (o *Options) resourceName() string {
	switch {
	case o.ResName != "":
		return o.ResName
	case o.Handlers != nil && o.Handlers.Owner() != "":
		return o.Handlers.Owner()
	}
	return o.Name
}
