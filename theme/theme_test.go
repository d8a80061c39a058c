package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xrcform/resource"
)

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#0078d7":   {R: 0, G: 120, B: 215, A: 255},
		"fff":       {R: 255, G: 255, B: 255, A: 255},
		"#10203040": {R: 16, G: 32, B: 48, A: 64},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromPalette(t *testing.T) {
	test.NewTempApp(t)
	th, err := FromPalette(&resource.Palette{Variant: "dark", Primary: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t, theme.DarkTheme().Color(theme.ColorNameForeground, theme.VariantDark),
		th.Color(theme.ColorNameForeground, theme.VariantDark))

	_, err = FromPalette(&resource.Palette{Variant: "sepia"})
	assert.Error(t, err)

	_, err = FromPalette(&resource.Palette{Button: "nope"})
	assert.Error(t, err)

	th, err = FromPalette(nil)
	require.NoError(t, err)
	assert.NotNil(t, th)
}

func TestNamed(t *testing.T) {
	test.NewTempApp(t)
	dark := Named("DARK")
	assert.Equal(t, color.NRGBA{R: 32, G: 32, B: 32, A: 255}, dark.Color(theme.ColorNameBackground, theme.VariantDark))
	light := Named("whatever")
	assert.Equal(t, accent, light.Color(theme.ColorNamePrimary, theme.VariantLight))
}
