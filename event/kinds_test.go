package event

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrcform/core"
)

// recorder returns a Fire that remembers every value it was handed.
func recorder(kind *Kind, values *[]any) Fire {
	return func(v any) *Event {
		*values = append(*values, v)
		return New(kind, nil, v)
	}
}

func TestButtonHookChainsPreviousCallback(t *testing.T) {
	test.NewTempApp(t)

	prevCalls := 0
	b := widget.NewButton("OK", func() { prevCalls++ })
	var got []any
	require.True(t, Button.Attach(b, recorder(Button, &got)))

	test.Tap(b)
	assert.Equal(t, 1, prevCalls)
	assert.Equal(t, []any{nil}, got)
}

func TestEntryHooks(t *testing.T) {
	test.NewTempApp(t)

	e := widget.NewEntry()
	var changed, submitted []any
	require.True(t, Text.Attach(e, recorder(Text, &changed)))
	require.True(t, TextEnter.Attach(e, recorder(TextEnter, &submitted)))

	e.SetText("hi")
	e.OnSubmitted(e.Text)

	assert.Equal(t, []any{"hi"}, changed)
	assert.Equal(t, []any{"hi"}, submitted)
}

func TestSelectEntrySupportsTextAndCombobox(t *testing.T) {
	test.NewTempApp(t)

	se := widget.NewSelectEntry([]string{"a", "b"})
	assert.True(t, Text.Supports(se))
	assert.True(t, Combobox.Supports(se))
	assert.False(t, Choice.Supports(se))

	var text, combo []any
	Text.Attach(se, recorder(Text, &text))
	Combobox.Attach(se, recorder(Combobox, &combo))
	se.SetText("b")
	assert.Equal(t, []any{"b"}, text)
	assert.Equal(t, []any{"b"}, combo)
}

func TestValueHooks(t *testing.T) {
	test.NewTempApp(t)

	check := widget.NewCheck("c", nil)
	sel := widget.NewSelect([]string{"x", "y"}, nil)
	slider := widget.NewSlider(0, 10)
	radio := widget.NewRadioGroup([]string{"r1", "r2"}, nil)

	var got []any
	Checkbox.Attach(check, recorder(Checkbox, &got))
	Choice.Attach(sel, recorder(Choice, &got))
	Slider.Attach(slider, recorder(Slider, &got))
	Radiobox.Attach(radio, recorder(Radiobox, &got))

	check.SetChecked(true)
	sel.SetSelected("y")
	slider.SetValue(4)
	radio.SetSelected("r2")

	assert.Equal(t, []any{true, "y", 4.0, "r2"}, got)
}

func TestMenuHookSkipsSeparators(t *testing.T) {
	item := fyne.NewMenuItem("Quit", nil)
	assert.True(t, Menu.Supports(item))
	assert.False(t, Menu.Supports(fyne.NewMenuItemSeparator()))

	var got []any
	Menu.Attach(item, recorder(Menu, &got))
	item.Action()
	assert.Equal(t, []any{"Quit"}, got)
}

func TestNotebookHook(t *testing.T) {
	test.NewTempApp(t)

	tabs := container.NewAppTabs(
		container.NewTabItem("One", widget.NewLabel("1")),
		container.NewTabItem("Two", widget.NewLabel("2")),
	)
	var got []any
	require.True(t, NotebookPageChanged.Attach(tabs, recorder(NotebookPageChanged, &got)))
	tabs.SelectIndex(1)
	assert.Equal(t, []any{"Two"}, got)
}

func TestUnsupportedObjects(t *testing.T) {
	test.NewTempApp(t)

	label := widget.NewLabel("x")
	for _, k := range []*Kind{Button, Text, Checkbox, Slider, Menu, Close} {
		assert.False(t, k.Supports(label), k.Name())
		assert.False(t, k.Attach(label, nil), k.Name())
	}
}

func TestEventAccessors(t *testing.T) {
	src := core.NewControl("Volume", 7, "slider", nil)
	ev := New(Slider, src, 2.5)
	assert.Equal(t, 7, ev.ID)
	assert.Equal(t, 2.5, ev.Number())
	assert.Equal(t, "2.5", ev.Text())
	assert.False(t, ev.Checked())

	assert.False(t, ev.Skipped())
	ev.Skip()
	assert.True(t, ev.Skipped())
	ev.Reset()
	assert.False(t, ev.Skipped())

	assert.Equal(t, core.IDAny, New(Button, nil, nil).ID)
	assert.True(t, New(Checkbox, nil, true).Checked())
}
