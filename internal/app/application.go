package app

import (
	"runtime"
	"time"

	"pokedex/internal/config"
	"pokedex/internal/controllers"
	"pokedex/internal/logger"
	"pokedex/internal/models"
	"pokedex/internal/opencv/conversion"
	"pokedex/internal/pokeapi"
	"pokedex/internal/services"
	"pokedex/internal/shutdown"
	"pokedex/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Pokédex"
	AppID      = "io.pokedex.viewer"
	AppVersion = "1.0.0"

	launcherWidth   = 420
	launcherHeight  = 220
	shutdownTimeout = 5 * time.Second
)

// Application wires the lookup service to one or more lookup windows.
type Application struct {
	fyneApp  fyne.App
	cfg      config.Config
	logger   logger.Logger
	lookup   *services.LookupService
	shutdown *shutdown.Manager
}

// NewApplication builds the shared lookup pipeline. Windows are created by
// Run or by the launcher.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	fyneApp.Settings().SetTheme(views.NewTheme())

	apiCfg := pokeapi.DefaultConfig()
	apiCfg.BaseURL = cfg.APIBaseURL
	apiCfg.Timeout = cfg.Timeout

	client := pokeapi.NewClient(apiCfg, log)
	scaler := conversion.NewSpriteScaler(cfg.SpriteSize)
	lookup := services.NewLookupService(client, scaler, models.NewEntryRepository(), log)

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":     AppVersion,
		"api":         cfg.APIBaseURL,
		"launcher":    cfg.Launcher,
		"window_size": []float32{cfg.WindowWidth, cfg.WindowHeight},
		"go_version":  runtime.Version(),
	})

	return &Application{
		fyneApp:  fyneApp,
		cfg:      cfg,
		logger:   log,
		lookup:   lookup,
		shutdown: shutdown.NewManager(log, shutdownTimeout),
	}
}

// NewLookupWindow builds a lookup window with its own controller. The
// controller is stopped when the window closes.
func (a *Application) NewLookupWindow() fyne.Window {
	window := a.fyneApp.NewWindow(views.WindowTitle)
	window.Resize(fyne.NewSize(a.cfg.WindowWidth, a.cfg.WindowHeight))
	window.CenterOnScreen()

	view := views.NewMainView(window, float32(a.cfg.SpriteSize))
	controller := controllers.NewMainController(a.lookup, a.logger, a.cfg.Timeout)
	controller.SetMainView(view)

	a.shutdown.Register("lookup window controller", controller)
	window.SetOnClosed(func() {
		controller.Shutdown()
		a.shutdown.Unregister(controller)
		a.logger.Debug("Application", "lookup window closed", map[string]interface{}{
			"open_controllers": a.shutdown.Registered(),
		})
	})

	return window
}

// NewLauncherWindow builds the login-style window whose button opens a new
// lookup window on every press.
func (a *Application) NewLauncherWindow() fyne.Window {
	window := a.fyneApp.NewWindow(views.LauncherTitle)
	window.Resize(fyne.NewSize(launcherWidth, launcherHeight))
	window.CenterOnScreen()

	views.NewLauncherView(window, func() {
		a.logger.Info("Application", "opening lookup window", nil)
		a.NewLookupWindow().Show()
	})

	return window
}

// Run shows the first window and blocks in the fyne event loop.
func (a *Application) Run() {
	var master fyne.Window
	if a.cfg.Launcher {
		master = a.NewLauncherWindow()
	} else {
		master = a.NewLookupWindow()
	}
	master.SetMaster()
	master.Show()

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.logger.Info("Application", "GUI displayed", map[string]interface{}{
		"window": master.Title(),
	})
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
}
