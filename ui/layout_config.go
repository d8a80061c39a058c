// ui/layout_config.go
package ui

import "xrcform/core"

// CategoryLayout is one sidebar group: the store entries of one window kind.
type CategoryLayout struct {
	Name string
	Kind core.Kind
}

// SidebarLayout orders the sidebar groups. Empty groups are not shown.
var SidebarLayout = []CategoryLayout{
	{Name: "Frames", Kind: core.Frame},
	{Name: "Dialogs", Kind: core.Dialog},
	{Name: "Panels", Kind: core.Panel},
}
