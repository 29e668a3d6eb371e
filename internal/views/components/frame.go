package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FrameBorder is the outline colour of every framed section.
var FrameBorder = color.NRGBA{R: 176, G: 96, B: 128, A: 255}

// Framed draws a bordered box around content, like a raised or sunken panel.
func Framed(content fyne.CanvasObject, borderWidth float32) *fyne.Container {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = FrameBorder
	border.StrokeWidth = borderWidth

	return container.NewStack(border, container.NewPadded(content))
}

// NewHeading returns a centred label in the larger heading style.
func NewHeading(text string) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	label.SizeName = theme.SizeNameHeadingText
	return label
}

// NewBodyLabel returns a centred label in the regular text size.
func NewBodyLabel(text string) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	label.Wrapping = fyne.TextWrapWord
	return label
}
