package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/colornames"
)

// InkpadTheme provides a custom theme for the application.
type InkpadTheme struct{}

var _ fyne.Theme = (*InkpadTheme)(nil)

func (t *InkpadTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colornames.Steelblue // matches the default ink color
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0x60}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *InkpadTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *InkpadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *InkpadTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
