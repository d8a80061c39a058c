package binding

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrcform/core"
	"xrcform/event"
)

type registration struct {
	kind     *event.Kind
	src      *core.Control
	id1, id2 int
	handler  event.Handler
}

type fakeWindow struct {
	name     string
	controls map[string]*core.Control
	bound    []registration
	lookups  []string
}

func newFakeWindow(t *testing.T) *fakeWindow {
	test.NewTempApp(t)
	return &fakeWindow{
		name: "MainFrame",
		controls: map[string]*core.Control{
			"Button1": core.NewControl("Button1", 1001, "button", widget.NewButton("b", nil)),
			"Name":    core.NewControl("Name", 1002, "entry", widget.NewEntry()),
			"Slot":    core.NewPlaceholder("Slot", 1003, nil),
		},
	}
}

func (w *fakeWindow) Name() string { return w.name }

func (w *fakeWindow) Lookup(name string) (*core.Control, bool) {
	w.lookups = append(w.lookups, name)
	c, ok := w.controls[name]
	return c, ok
}

func (w *fakeWindow) Bind(kind *event.Kind, h event.Handler, src *core.Control, id1, id2 int) {
	w.bound = append(w.bound, registration{kind: kind, src: src, id1: id1, id2: id2, handler: h})
}

func TestAutoBindRegistersEligibleHandlers(t *testing.T) {
	w := newFakeWindow(t)
	calls := 0
	attrs := NewTable().
		On("on_Button1_button", func(*event.Event) { calls++ }).
		Set("on_1001_1010_button", func() { calls++ }).
		Set("on_Name_text", event.Handler(func(*event.Event) {})).
		Set("on_Name_title", "not callable").
		Set("helper", func() {})

	require.NoError(t, AutoBind(w, attrs, DefaultPrefix))
	require.Len(t, w.bound, 3)

	// Sorted attribute order: on_1001_1010_button, on_Button1_button, on_Name_text.
	assert.Same(t, event.Button, w.bound[0].kind)
	assert.Nil(t, w.bound[0].src)
	assert.Equal(t, 1001, w.bound[0].id1)
	assert.Equal(t, 1010, w.bound[0].id2)

	assert.Same(t, w.controls["Button1"], w.bound[1].src)
	assert.Equal(t, -1, w.bound[1].id1)
	assert.Equal(t, -1, w.bound[1].id2)

	assert.Same(t, event.Text, w.bound[2].kind)

	w.bound[0].handler(nil)
	w.bound[1].handler(nil)
	assert.Equal(t, 2, calls)
}

func TestAutoBindIgnoresOtherPrefixesAndExcludes(t *testing.T) {
	w := newFakeWindow(t)
	attrs := NewTable().
		On("handle_Button1_button", func(*event.Event) {}).
		On("on_Button1_button", func(*event.Event) {})

	require.NoError(t, AutoBind(w, attrs, DefaultPrefix, "on_Button1_button"))
	assert.Empty(t, w.bound)
	assert.Empty(t, w.lookups)
}

func TestAutoBindMissingWidgetRegistersNothing(t *testing.T) {
	w := newFakeWindow(t)
	attrs := NewTable().
		On("on_Button1_button", func(*event.Event) {}).
		On("on_Missing_button", func(*event.Event) {})

	err := AutoBind(w, attrs, DefaultPrefix)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingWidget)
	assert.Contains(t, err.Error(), "Missing")
	assert.Contains(t, err.Error(), "MainFrame")
	assert.Empty(t, w.bound)
}

func TestAutoBindEmptyPlaceholderIsMissing(t *testing.T) {
	w := newFakeWindow(t)
	err := AutoBind(w, NewTable().On("on_Slot_button", func(*event.Event) {}), DefaultPrefix)
	assert.ErrorIs(t, err, ErrMissingWidget)
	assert.Empty(t, w.bound)
}

func TestAutoBindUnsupportedEvent(t *testing.T) {
	w := newFakeWindow(t)
	err := AutoBind(w, NewTable().On("on_Button1_checkbox", func(*event.Event) {}), DefaultPrefix)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
	assert.Empty(t, w.bound)
}

func TestAutoBindPropagatesParseErrors(t *testing.T) {
	w := newFakeWindow(t)

	err := AutoBind(w, NewTable().On("on_button", func(*event.Event) {}), DefaultPrefix)
	assert.ErrorIs(t, err, ErrInvalidName)

	// The prefix filter is a plain string prefix.
	err = AutoBind(w, NewTable().On("onion", func(*event.Event) {}), DefaultPrefix)
	assert.ErrorIs(t, err, ErrInvalidName)

	err = AutoBind(w, NewTable().
		On("on_Button1_button", func(*event.Event) {}).
		On("on_Button1_bogusevent", func(*event.Event) {}), DefaultPrefix)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.Empty(t, w.bound)
}

func TestAutoBindNilTable(t *testing.T) {
	w := newFakeWindow(t)
	assert.NoError(t, New().Bind(w, nil))
}

type mainFrame struct {
	clicks int
}

func (f *mainFrame) On_Button1_button(*event.Event) { f.clicks++ }
func (f *mainFrame) On_Name_text(ev *event.Event)   {}
func (f *mainFrame) On_Button1_helper(n int)        {}
func (f *mainFrame) Reset()                         { f.clicks = 0 }

func TestMethodsTable(t *testing.T) {
	f := &mainFrame{}
	attrs := Methods(f)

	assert.Equal(t, "mainFrame", attrs.Owner())
	assert.Equal(t, []string{"on_Button1_button", "on_Button1_helper", "on_Name_text", "reset"}, attrs.Names())

	w := newFakeWindow(t)
	require.NoError(t, New().Bind(w, attrs))
	require.Len(t, w.bound, 2)

	w.bound[0].handler(event.New(event.Button, w.controls["Button1"], nil))
	assert.Equal(t, 1, f.clicks)
}

func TestMethodsNil(t *testing.T) {
	assert.Equal(t, 0, Methods(nil).Len())
}
