package core

import (
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInRange(t *testing.T) {
	c := NewControl("OK", 1005, "button", nil)
	assert.True(t, c.InRange(1005, IDAny))
	assert.True(t, c.InRange(1000, 1010))
	assert.False(t, c.InRange(1006, 1010))
	assert.False(t, c.InRange(1000, IDAny))
	assert.False(t, c.InRange(IDAny, 2000))

	auto := NewControl("", AutoIDBase, "label", nil)
	assert.False(t, auto.InRange(0, 1<<30))
}

func TestPlaceholderFill(t *testing.T) {
	test.NewTempApp(t)
	slot := container.NewStack()
	c := NewPlaceholder("Later", 7, slot)
	assert.True(t, c.Empty())
	assert.True(t, c.Placeholder())
	assert.Equal(t, "unknown", c.Class)

	b := widget.NewButton("b", nil)
	require.NoError(t, c.Fill(b))
	assert.False(t, c.Empty())
	assert.Same(t, b, c.Widget())
	require.Len(t, slot.Objects, 1)

	plain := NewControl("B", 1, "button", widget.NewButton("x", nil))
	assert.ErrorIs(t, plain.Fill(b), ErrNotPlaceholder)
	assert.False(t, plain.Placeholder())
}

func TestControlString(t *testing.T) {
	assert.Equal(t, `button "OK"#5`, NewControl("OK", 5, "button", nil).String())
	assert.Equal(t, "vbox#-2000", NewControl("", AutoIDBase, "vbox", nil).String())
	var nilCtrl *Control
	assert.Equal(t, "<nil>", nilCtrl.String())
	assert.True(t, nilCtrl.Empty())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"frame": Frame, "wxDialog": Dialog, " PANEL ": Panel} {
		k, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, k)
		assert.Equal(t, want.String(), k.String())
	}
	_, err := ParseKind("window")
	assert.Error(t, err)
	assert.Len(t, Kinds(), 3)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
