package app

import (
	"testing"

	"pokedex/internal/config"
	"pokedex/internal/logger"
	"pokedex/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLookupWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	application := NewApplication(fyneApp, config.Default(), logger.Nop())

	window := application.NewLookupWindow()
	assert.Equal(t, views.WindowTitle, window.Title())
	assert.NotNil(t, window.Content())
	assert.Equal(t, 1, application.shutdown.Registered())
}

func TestClosedLookupWindowsAreReleased(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	application := NewApplication(fyneApp, config.Default(), logger.Nop())

	first := application.NewLookupWindow()
	second := application.NewLookupWindow()
	require.Equal(t, 2, application.shutdown.Registered())

	first.Close()
	assert.Equal(t, 1, application.shutdown.Registered())
	second.Close()
	assert.Zero(t, application.shutdown.Registered())

	application.shutdown.Shutdown()
}

func TestLauncherOpensLookupWindows(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	cfg := config.Default()
	cfg.Launcher = true
	application := NewApplication(fyneApp, cfg, logger.Nop())

	launcher := application.NewLauncherWindow()
	assert.Equal(t, views.LauncherTitle, launcher.Title())

	button := findButton(launcher.Content(), "Open Pokédex")
	require.NotNil(t, button)

	before := len(fyneApp.Driver().AllWindows())
	test.Tap(button)
	test.Tap(button)
	assert.Equal(t, before+2, len(fyneApp.Driver().AllWindows()))
	assert.Equal(t, 2, application.shutdown.Registered())
}

func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	if b, ok := obj.(*widget.Button); ok && b.Text == text {
		return b
	}
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			if b := findButton(child, text); b != nil {
				return b
			}
		}
	}
	return nil
}
