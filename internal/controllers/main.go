package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pokedex/internal/logger"
	"pokedex/internal/models"
	"pokedex/internal/services"

	"fyne.io/fyne/v2"
)

const (
	inputErrorTitle   = "Input Error"
	inputErrorMessage = "Please enter a Pokémon name!"
	notFoundTitle     = "Not Found"
	lookupFailedTitle = "Lookup Failed"

	notFoundMessage     = "Pokémon '%s' not found!"
	lookupFailedMessage = "Could not reach PokeAPI to look up '%s'. Check your connection and try again."
)

// View is the part of the lookup window the controller drives.
type View interface {
	SetSearchHandler(handler func())
	Query() string
	SetEntry(entry *models.Entry)
	ClearSprite()
	SetBusy(busy bool)
	UpdateStatus(status string)
	ShowWarning(title, message string)
	ShowError(title, message string)
}

// Lookup performs one search by name.
type Lookup interface {
	Lookup(ctx context.Context, query string) (*models.Entry, error)
}

// MainController runs searches for one lookup window. At most one search is
// in flight; clicks while busy are ignored.
type MainController struct {
	lookup  Lookup
	logger  logger.Logger
	timeout time.Duration

	mainView View

	// runOnMain hands widget updates to the UI goroutine.
	runOnMain func(func())

	mu     sync.Mutex
	busy   bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a MainController.
type Option func(*MainController)

// WithDispatcher replaces fyne.Do as the way results reach the view.
func WithDispatcher(dispatch func(func())) Option {
	return func(mc *MainController) {
		mc.runOnMain = dispatch
	}
}

// NewMainController creates a controller whose searches give up after timeout.
func NewMainController(lookup Lookup, log logger.Logger, timeout time.Duration, opts ...Option) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	mc := &MainController{
		lookup:    lookup,
		logger:    log,
		timeout:   timeout,
		runOnMain: fyne.Do,
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}

// SetMainView associates the view and connects its search button.
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetSearchHandler(mc.Search)
}

// Search is the search button handler. It runs on the UI goroutine; the
// network work happens on a background goroutine.
func (mc *MainController) Search() {
	if mc.mainView == nil {
		return
	}

	query := mc.mainView.Query()
	name := services.NormalizeQuery(query)
	if name == "" {
		mc.mainView.ShowWarning(inputErrorTitle, inputErrorMessage)
		return
	}

	mc.mu.Lock()
	if mc.busy {
		mc.mu.Unlock()
		mc.logger.Debug("MainController", "search ignored, lookup in progress", map[string]interface{}{
			"query": name,
		})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), mc.timeout)
	mc.busy = true
	mc.cancel = cancel
	mc.wg.Add(1)
	mc.mu.Unlock()

	mc.mainView.SetBusy(true)
	mc.mainView.UpdateStatus(fmt.Sprintf("Searching for %s...", models.Capitalize(name)))

	go func() {
		defer mc.wg.Done()
		defer cancel()

		entry, err := mc.lookup.Lookup(ctx, query)
		mc.runOnMain(func() {
			mc.finishSearch(name, entry, err)
		})
	}()
}

func (mc *MainController) finishSearch(name string, entry *models.Entry, err error) {
	mc.mu.Lock()
	mc.busy = false
	mc.cancel = nil
	mc.mu.Unlock()

	mc.mainView.SetBusy(false)

	if err != nil {
		mc.handleError(name, err)
		return
	}

	mc.mainView.SetEntry(entry)
	mc.mainView.UpdateStatus(fmt.Sprintf("Found %s", entry.Name))
}

func (mc *MainController) handleError(name string, err error) {
	display := models.Capitalize(name)

	var notFound *services.NotFoundError
	switch {
	case errors.As(err, &notFound):
		mc.mainView.ShowError(notFoundTitle, fmt.Sprintf(notFoundMessage, display))
		mc.mainView.ClearSprite()
		mc.mainView.UpdateStatus("Not found")
	case errors.Is(err, context.Canceled):
		mc.mainView.UpdateStatus("Search cancelled")
	default:
		mc.logger.Error("MainController", err, map[string]interface{}{"query": name})
		mc.mainView.ShowError(lookupFailedTitle, fmt.Sprintf(lookupFailedMessage, display))
		mc.mainView.ClearSprite()
		mc.mainView.UpdateStatus("Lookup failed")
	}
}

// IsBusy reports whether a search is in flight.
func (mc *MainController) IsBusy() bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.busy
}

// Wait blocks until the background part of the current search has returned.
func (mc *MainController) Wait() {
	mc.wg.Wait()
}

// Shutdown cancels an in-flight search and waits for it to unwind.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	if mc.cancel != nil {
		mc.cancel()
	}
	mc.mu.Unlock()

	mc.wg.Wait()
}
