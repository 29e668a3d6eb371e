package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the name entry and the search button.
type SearchBar struct {
	container    *fyne.Container
	entry        *widget.Entry
	searchButton *widget.Button

	searchHandler func()
}

// NewSearchBar creates the entry and the "Search!" button. Enter in the
// entry submits like the button.
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	sb.setupEventHandlers()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Pokémon name")

	sb.searchButton = widget.NewButton("Search!", nil)
	sb.searchButton.Importance = widget.HighImportance
}

func (sb *SearchBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil, sb.searchButton, sb.entry)
}

// Enter in the entry behaves like the button.
func (sb *SearchBar) setupEventHandlers() {
	sb.searchButton.OnTapped = sb.fire
	sb.entry.OnSubmitted = func(string) {
		if sb.searchButton.Disabled() {
			return
		}
		sb.fire()
	}
}

func (sb *SearchBar) fire() {
	if sb.searchHandler != nil {
		sb.searchHandler()
	}
}

func (sb *SearchBar) SetSearchHandler(handler func()) {
	sb.searchHandler = handler
}

// Text returns the raw entry contents.
func (sb *SearchBar) Text() string {
	return sb.entry.Text
}

func (sb *SearchBar) SetText(text string) {
	sb.entry.SetText(text)
}

// SetBusy disables input while a lookup is running.
func (sb *SearchBar) SetBusy(busy bool) {
	if busy {
		sb.searchButton.Disable()
		sb.entry.Disable()
	} else {
		sb.searchButton.Enable()
		sb.entry.Enable()
	}
}

func (sb *SearchBar) Busy() bool {
	return sb.searchButton.Disabled()
}

func (sb *SearchBar) Button() *widget.Button {
	return sb.searchButton
}

func (sb *SearchBar) Entry() *widget.Entry {
	return sb.entry
}

func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
