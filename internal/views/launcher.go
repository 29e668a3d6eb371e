package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pokedex/internal/views/components"
)

const LauncherTitle = "Login"

// LauncherView is the parent window whose button opens a lookup window.
type LauncherView struct {
	openButton *widget.Button
}

// NewLauncherView fills window with the launcher; open runs on every press.
func NewLauncherView(window fyne.Window, open func()) *LauncherView {
	lv := &LauncherView{}

	lv.openButton = widget.NewButton("Open Pokédex", open)
	lv.openButton.Importance = widget.HighImportance

	window.SetContent(components.Framed(container.NewVBox(
		components.NewHeading("Welcome, Trainer"),
		components.NewBodyLabel("Open the Pokédex to look up a Pokémon by name."),
		container.NewCenter(lv.openButton),
	), 2))

	return lv
}

func (lv *LauncherView) OpenButton() *widget.Button {
	return lv.openButton
}
