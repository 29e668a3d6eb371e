package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	Pink     = color.NRGBA{R: 255, G: 192, B: 203, A: 255}
	DeepPink = color.NRGBA{R: 214, G: 84, B: 138, A: 255}
	Ink      = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
)

// pokedexTheme is the light default theme on a pink background.
type pokedexTheme struct {
	base fyne.Theme
}

func NewTheme() fyne.Theme {
	return &pokedexTheme{base: theme.DefaultTheme()}
}

func (t *pokedexTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return Pink
	case theme.ColorNameForeground:
		return Ink
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return DeepPink
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *pokedexTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *pokedexTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *pokedexTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 22
	}
	return t.base.Size(name)
}
