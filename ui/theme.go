package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BackgroundColor is the overlay background.
var BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

// OverlayTheme is the default dark theme with a dark background and a
// configurable text size.
type OverlayTheme struct {
	fyne.Theme
	textSize float32
}

// NewOverlayTheme creates the overlay theme.
func NewOverlayTheme(textSize float32) fyne.Theme {
	return &OverlayTheme{Theme: theme.DefaultTheme(), textSize: textSize}
}

// Color forces the dark variant and the overlay background.
func (t *OverlayTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return BackgroundColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}

// Size returns the configured text size and defers everything else.
func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return t.Theme.Size(name)
}
