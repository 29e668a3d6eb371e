package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pokedex/internal/models"
	"pokedex/internal/views/components"
)

const WindowTitle = "Pokédex"

// MainView is the lookup window. Its methods touch widgets directly and must
// run on the fyne main goroutine.
type MainView struct {
	window    fyne.Window
	searchBar *components.SearchBar
	picture   *components.PictureFrame
	types     *components.TypeFrame
	info      *components.InfoFrame
	statusBar *components.StatusBar

	// open is the message dialog currently on screen, if any.
	open *openDialog
}

type openDialog struct {
	dialog  dialog.Dialog
	title   string
	message string
}

// NewMainView lays out the lookup window inside window. spriteSize is the
// edge of the square sprite area.
func NewMainView(window fyne.Window, spriteSize float32) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(spriteSize)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(spriteSize float32) {
	mv.searchBar = components.NewSearchBar()
	mv.picture = components.NewPictureFrame(spriteSize)
	mv.types = components.NewTypeFrame()
	mv.info = components.NewInfoFrame()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout places the search frame across the top, picture and type
// frames down the left, and the entry panel filling the rest.
func (mv *MainView) buildLayout() {
	left := container.NewBorder(
		nil,
		components.Framed(mv.types.GetContainer(), 2),
		nil, nil,
		components.Framed(mv.picture.GetContainer(), 2),
	)

	content := container.NewGridWithColumns(2,
		left,
		components.Framed(mv.info.GetContainer(), 4),
	)

	mv.window.SetContent(container.NewBorder(
		components.Framed(mv.searchBar.GetContainer(), 2),
		mv.statusBar.GetContainer(),
		nil, nil,
		content,
	))
	mv.window.Canvas().Focus(mv.searchBar.Entry())
}

func (mv *MainView) SetSearchHandler(handler func()) {
	mv.searchBar.SetSearchHandler(handler)
}

// Query returns the text currently typed into the search entry.
func (mv *MainView) Query() string {
	return mv.searchBar.Text()
}

// SetEntry writes every label and the sprite from entry.
func (mv *MainView) SetEntry(entry *models.Entry) {
	mv.picture.SetName(entry.Name)
	mv.picture.SetSprite(entry.Sprite)
	mv.types.SetTypes(entry.Type1, entry.Type2)
	mv.info.SetDetails(entry.Height, entry.Weight, entry.CatchRate, entry.Abilities)
}

func (mv *MainView) ClearSprite() {
	mv.picture.ClearSprite()
}

func (mv *MainView) SetBusy(busy bool) {
	mv.searchBar.SetBusy(busy)
	mv.statusBar.SetActive(busy)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) ShowWarning(title, message string) {
	mv.showMessage(title, message, theme.WarningIcon())
}

func (mv *MainView) ShowError(title, message string) {
	mv.showMessage(title, message, theme.ErrorIcon())
}

func (mv *MainView) showMessage(title, message string, icon fyne.Resource) {
	content := container.NewHBox(widget.NewIcon(icon), widget.NewLabel(message))
	d := dialog.NewCustom(title, "OK", content, mv.window)

	shown := &openDialog{dialog: d, title: title, message: message}
	mv.open = shown
	d.SetOnClosed(func() {
		if mv.open == shown {
			mv.open = nil
		}
	})
	d.Show()
}

func (mv *MainView) GetSearchBar() *components.SearchBar {
	return mv.searchBar
}

// ViewState is a snapshot of every visible label and the open dialog.
type ViewState struct {
	Name      string
	Type1     string
	Type2     string
	Height    string
	Weight    string
	CatchRate string
	Abilities string
	HasSprite bool
	Status    string
	Busy      bool

	// DialogTitle and DialogMessage describe the message dialog still on
	// screen; both are empty once it is dismissed.
	DialogTitle   string
	DialogMessage string
}

func (mv *MainView) GetViewState() ViewState {
	type1, type2 := mv.types.Types()
	height, weight, catchRate, abilities := mv.info.Details()
	state := ViewState{
		Name:      mv.picture.Name(),
		Type1:     type1,
		Type2:     type2,
		Height:    height,
		Weight:    weight,
		CatchRate: catchRate,
		Abilities: abilities,
		HasSprite: mv.picture.HasSprite(),
		Status:    mv.statusBar.GetStatus(),
		Busy:      mv.searchBar.Busy(),
	}
	if mv.open != nil {
		state.DialogTitle = mv.open.title
		state.DialogMessage = mv.open.message
	}
	return state
}
