package controllers

import (
	"image"
	"net/http"
	"testing"
	"time"

	"pokedex/internal/models"
	"pokedex/internal/pokeapi"
	"pokedex/internal/pokeapi/pokeapitest"
	"pokedex/internal/services"
	"pokedex/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type squareScaler struct{}

func (squareScaler) Scale([]byte) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 150, 150)), nil
}

type harness struct {
	server     *pokeapitest.Server
	view       *views.MainView
	controller *MainController
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	app := test.NewTempApp(t)

	srv := pokeapitest.NewServer(pokeapitest.Bulbasaur, pokeapitest.Ditto)
	t.Cleanup(srv.Close)

	cfg := pokeapi.DefaultConfig()
	cfg.BaseURL = srv.BaseURL()
	lookup := services.NewLookupService(pokeapi.NewClient(cfg, nil), squareScaler{}, models.NewEntryRepository(), nil)

	window := app.NewWindow(views.WindowTitle)
	view := views.NewMainView(window, 150)
	controller := NewMainController(lookup, nil, 5*time.Second, WithDispatcher(immediate))
	controller.SetMainView(view)

	return &harness{server: srv, view: view, controller: controller}
}

func (h *harness) search(query string) views.ViewState {
	bar := h.view.GetSearchBar()
	bar.SetText(query)
	test.Tap(bar.Button())
	h.controller.Wait()
	return h.view.GetViewState()
}

func (h *harness) dialogShown() bool {
	return h.view.GetViewState().DialogTitle != ""
}

func TestAcceptanceKnownName(t *testing.T) {
	h := newHarness(t)

	state := h.search("bulbasaur")

	assert.Equal(t, "Bulbasaur", state.Name)
	assert.Equal(t, "Type 1: Grass", state.Type1)
	assert.Equal(t, "Type 2: Poison", state.Type2)
	assert.Equal(t, "Abilities: Overgrow, Chlorophyll", state.Abilities)
	assert.Equal(t, "Height: 0.7 m", state.Height)
	assert.Equal(t, "Weight: 6.9 kg", state.Weight)
	assert.Equal(t, "Catch Rate: 45", state.CatchRate)
	assert.True(t, state.HasSprite)
	assert.False(t, state.Busy)
	assert.False(t, h.dialogShown())
}

func TestAcceptanceUnknownName(t *testing.T) {
	h := newHarness(t)
	h.search("bulbasaur")

	state := h.search("missingno")

	assert.Equal(t, "Not Found", state.DialogTitle)
	assert.Equal(t, "Pokémon 'Missingno' not found!", state.DialogMessage)
	assert.False(t, state.HasSprite)
	assert.Equal(t, "Not found", state.Status)
}

func TestAcceptanceServerErrorReadsAsNotFound(t *testing.T) {
	h := newHarness(t)
	h.search("bulbasaur")
	h.server.FailPath("/api/v2/pokemon/", http.StatusInternalServerError)

	state := h.search("Bulbasaur")

	assert.Equal(t, "Not Found", state.DialogTitle)
	assert.Equal(t, "Pokémon 'Bulbasaur' not found!", state.DialogMessage)
	assert.False(t, state.HasSprite)
	assert.Equal(t, "Bulbasaur", state.Name)
}

func TestAcceptanceUnreachableHost(t *testing.T) {
	h := newHarness(t)
	h.server.Close()

	state := h.search("pikachu")

	assert.Equal(t, "Lookup Failed", state.DialogTitle)
	assert.Equal(t, "Could not reach PokeAPI to look up 'Pikachu'. Check your connection and try again.", state.DialogMessage)
	assert.False(t, state.HasSprite)
}

func TestAcceptanceEmptyInput(t *testing.T) {
	h := newHarness(t)

	state := h.search("   ")

	assert.Equal(t, "Input Error", state.DialogTitle)
	assert.Equal(t, "Please enter a Pokémon name!", state.DialogMessage)
	assert.Zero(t, h.server.Requests())
	assert.Equal(t, "Pokémon Name", state.Name)
}

func TestAcceptanceSingleType(t *testing.T) {
	h := newHarness(t)

	state := h.search("Ditto")

	assert.Equal(t, "Type 1: Normal", state.Type1)
	assert.Equal(t, "Type 2: N/A", state.Type2)
}

func TestAcceptanceSpeciesUnavailable(t *testing.T) {
	h := newHarness(t)
	h.server.FailPath("/api/v2/pokemon-species/", http.StatusServiceUnavailable)

	state := h.search("bulbasaur")

	require.False(t, h.dialogShown())
	assert.Equal(t, "Bulbasaur", state.Name)
	assert.Equal(t, "Height: 0.7 m", state.Height)
	assert.Equal(t, "Catch Rate: N/A", state.CatchRate)
}
