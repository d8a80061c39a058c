// ui/sidebar.go
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"xrcform/core"
)

func kindIcon(k core.Kind) fyne.Resource {
	switch k {
	case core.Frame:
		return theme.ComputerIcon()
	case core.Dialog:
		return theme.InfoIcon()
	}
	return theme.GridIcon()
}

func (p *Preview) createSidebar() *widget.Accordion {
	var accordionItems []*widget.AccordionItem
	for _, category := range SidebarLayout {
		buttonList := container.NewVBox()

		for _, l := range p.store.Layouts(category.Kind) {
			name := l.Name
			btn := widget.NewButtonWithIcon(name, kindIcon(category.Kind), func() {
				if err := p.Open(name); err != nil {
					dialog.ShowError(err, p.win)
				}
			})

			btn.Alignment = widget.ButtonAlignLeading
			indentation := canvas.NewRectangle(color.Transparent)
			indentation.SetMinSize(fyne.NewSize(16, 0))
			buttonList.Add(container.NewBorder(nil, nil, indentation, nil, btn))
		}

		if len(buttonList.Objects) > 0 {
			accordionItems = append(accordionItems, widget.NewAccordionItem(category.Name, buttonList))
		}
	}

	accordion := widget.NewAccordion(accordionItems...)
	if len(accordion.Items) > 0 {
		accordion.Open(0)
	}
	return accordion
}
