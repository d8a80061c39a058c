// theme/theme.go
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"xrcform/assets"
	"xrcform/resource"
)

var (
	sunResource  = &fyne.StaticResource{StaticName: "sun.svg", StaticContent: assets.IconSunSVG}
	moonResource = &fyne.StaticResource{StaticName: "moon.svg", StaticContent: assets.IconMoonSVG}

	SunIcon  fyne.Resource = theme.NewThemedResource(sunResource)
	MoonIcon fyne.Resource = theme.NewThemedResource(moonResource)
)

var accent = color.NRGBA{R: 0, G: 120, B: 215, A: 255}

// paletteTheme overrides a base theme's colours by name.
type paletteTheme struct {
	fyne.Theme
	colors map[fyne.ThemeColorName]color.Color
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return t.Theme.Color(name, variant)
}

func NewDarkTheme() fyne.Theme {
	return &paletteTheme{Theme: theme.DarkTheme(), colors: map[fyne.ThemeColorName]color.Color{
		theme.ColorNamePrimary:    accent,
		theme.ColorNameBackground: color.NRGBA{R: 32, G: 32, B: 32, A: 255},
	}}
}

func NewLightTheme() fyne.Theme {
	return &paletteTheme{Theme: theme.LightTheme(), colors: map[fyne.ThemeColorName]color.Color{
		theme.ColorNamePrimary: accent,
	}}
}

// Named returns the light or dark theme; anything else is light.
func Named(name string) fyne.Theme {
	if strings.EqualFold(name, "dark") {
		return NewDarkTheme()
	}
	return NewLightTheme()
}

// FromPalette builds a theme from a resource palette. Unset colours fall
// back to the variant's defaults.
func FromPalette(p *resource.Palette) (fyne.Theme, error) {
	if p == nil {
		return theme.DefaultTheme(), nil
	}
	base := theme.DefaultTheme()
	switch strings.ToLower(p.Variant) {
	case "dark":
		base = theme.DarkTheme()
	case "light":
		base = theme.LightTheme()
	case "":
	default:
		return nil, fmt.Errorf("unknown theme variant %q", p.Variant)
	}

	t := &paletteTheme{Theme: base, colors: make(map[fyne.ThemeColorName]color.Color)}
	for name, hex := range map[fyne.ThemeColorName]string{
		theme.ColorNamePrimary:         p.Primary,
		theme.ColorNameBackground:      p.Background,
		theme.ColorNameForeground:      p.Foreground,
		theme.ColorNameButton:          p.Button,
		theme.ColorNameInputBackground: p.Input,
	} {
		if hex == "" {
			continue
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.colors[name] = c
	}
	return t, nil
}

// ParseColor reads #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
