package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the lookup status with an activity indicator.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	activity    *widget.ProgressBarInfinite
}

// NewStatusBar creates an idle status bar reading "Ready".
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.activity = widget.NewProgressBarInfinite()
	sb.activity.Stop()
	sb.activity.Hide()
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, sb.statusLabel, nil, sb.activity)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetActive shows and animates the indicator while a lookup runs.
func (sb *StatusBar) SetActive(active bool) {
	if active {
		sb.activity.Show()
		sb.activity.Start()
		return
	}
	sb.activity.Stop()
	sb.activity.Hide()
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
