package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrcform/event"
)

func TestParseName(t *testing.T) {
	cases := []struct {
		name string
		want Rule
	}{
		{"on_Button1_button", Rule{Kind: event.Button, Source: "Button1", ID1: -1, ID2: -1}},
		{"on_1001_1010_button", Rule{Kind: event.Button, ID1: 1001, ID2: 1010}},
		{"on_1001_button", Rule{Kind: event.Button, ID1: 1001, ID2: -1}},
		{"on_Volume_scroll_changed", Rule{Kind: event.ScrollChanged, Source: "Volume", ID1: -1, ID2: -1}},
		{"on_Name_text_enter", Rule{Kind: event.TextEnter, Source: "Name", ID1: -1, ID2: -1}},
		{"on_Tabs_notebook_page_changed", Rule{Kind: event.NotebookPageChanged, Source: "Tabs", ID1: -1, ID2: -1}},
		{"on_5_9_text_enter", Rule{Kind: event.TextEnter, ID1: 5, ID2: 9}},
		{"on_Main_CLOSE", Rule{Kind: event.Close, Source: "Main", ID1: -1, ID2: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := ParseName(tc.name, DefaultPrefix)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNameTooFewTokens(t *testing.T) {
	for _, name := range []string{"on_button", "on", "", "x_y"} {
		_, ok, err := ParseName(name, DefaultPrefix)
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.False(t, ok)
	}
}

func TestParseNameUnknownEvent(t *testing.T) {
	_, ok, err := ParseName("on_Button1_bogusevent", DefaultPrefix)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.ErrorIs(t, err, event.ErrUnknownKind)
	assert.Contains(t, err.Error(), "EVT_BOGUSEVENT")
}

func TestParseNameEmptySuffix(t *testing.T) {
	// Both numeric tokens are consumed as ids, leaving no event name.
	_, _, err := ParseName("on_1001_1010", DefaultPrefix)
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestParseNameOtherPrefix(t *testing.T) {
	rule, ok, err := ParseName("handle_Button1_button", DefaultPrefix)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Rule{}, rule)

	rule, ok, err = ParseName("handle_Button1_button", "handle")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Button1", rule.Source)
}

// The convention cannot tell a numeric id2 from an event name that starts
// with digits; a numeric third token is always taken as id2.
func TestParseNameNumericThirdTokenIsAlwaysID2(t *testing.T) {
	rule, ok, err := ParseName("on_1_2_button", DefaultPrefix)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, rule.ID1)
	assert.Equal(t, 2, rule.ID2)

	// A named source does not stop the third token being read as id2.
	rule, ok, err = ParseName("on_Button1_2_button", DefaultPrefix)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Rule{Kind: event.Button, Source: "Button1", ID1: -1, ID2: 2}, rule)

	// A token mixing digits and letters is part of the event name.
	_, _, err = ParseName("on_1_2a_button", DefaultPrefix)
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestParseNameIDOverflow(t *testing.T) {
	_, _, err := ParseName("on_99999999999999999999999_button", DefaultPrefix)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestParseNameIdempotent(t *testing.T) {
	for _, name := range []string{"on_Button1_button", "on_1001_1010_button", "on_1001_button"} {
		a, okA, errA := ParseName(name, DefaultPrefix)
		b, okB, errB := ParseName(name, DefaultPrefix)
		assert.Equal(t, a, b)
		assert.Equal(t, okA, okB)
		assert.Equal(t, errA, errB)
		assert.True(t, a == b)
	}
}

func TestBinderParseUsesOwnRegistry(t *testing.T) {
	reg := event.NewRegistry()
	ping := reg.Register("EVT_PING", func(any) (func(event.Fire), bool) { return nil, false })
	b := &Binder{Prefix: "do", Registry: reg}

	rule, ok, err := b.Parse("do_Pinger_ping")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, ping, rule.Kind)

	_, _, err = b.Parse("do_Pinger_button")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestRuleTargeted(t *testing.T) {
	assert.True(t, Rule{Source: "x", ID1: -1, ID2: -1}.Targeted())
	assert.True(t, Rule{ID1: 3, ID2: -1}.Targeted())
	assert.False(t, Rule{ID1: -1, ID2: -1}.Targeted())
}
