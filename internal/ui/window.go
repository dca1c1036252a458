// Package ui builds the squeezebox demo window.
package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/squeezebox/accordion"
	"github.com/shhac/squeezebox/internal/content"
)

// AppController defines the app-level operations the UI needs.
type AppController interface {
	Logger() *slog.Logger
	Library() *content.Library
}

// MainWindow manages the demo window: one tab per content set, each
// holding an uncontrolled accordion, plus a tab demonstrating controlled
// state.
type MainWindow struct {
	window fyne.Window
	logger *slog.Logger
}

// NewMainWindow builds the demo window from the app's content library.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Squeezebox - Accordion Demo")

	mw := &MainWindow{
		window: window,
		logger: app.Logger(),
	}

	tabs := container.NewAppTabs()
	for _, set := range app.Library().Sets {
		tabs.Append(container.NewTabItem(set.Name, mw.buildSet(set)))
	}
	tabs.Append(container.NewTabItem("Controlled", mw.buildControlled()))

	window.SetContent(tabs)
	window.Resize(fyne.NewSize(560, 480))
	return mw
}

// Window returns the underlying Fyne window.
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// buildSet turns a content set into an uncontrolled accordion.
func (mw *MainWindow) buildSet(set content.Set) fyne.CanvasObject {
	cfg := accordion.Config{
		Multiple:    set.Multiple,
		ReadOnly:    set.ReadOnly,
		Collapsible: set.Collapsible,
	}

	opts := []accordion.Option{accordion.WithLogger(mw.logger)}
	if set.Defaults != nil {
		opts = append(opts, accordion.WithDefaults(set.Defaults...))
	}

	acc := accordion.New(cfg, opts...)
	for _, section := range set.Sections {
		body := widget.NewLabel(section.Body)
		body.Wrapping = fyne.TextWrapWord
		acc.Append(accordion.NewItem(section.Title, body))
	}
	return container.NewVScroll(acc)
}

// buildControlled demonstrates caller-owned state: the accordion only
// reports toggles, and the view feeds the computed value back through
// SetValue while mirroring it in a status label.
func (mw *MainWindow) buildControlled() fyne.CanvasObject {
	cfg := accordion.Config{Multiple: true, Collapsible: true}
	status := widget.NewLabel("")

	value := accordion.MultipleOpen(0)
	var acc *accordion.Accordion
	acc = accordion.NewControlled(value, func(index int) {
		value = accordion.Next(value, index, cfg)
		acc.SetValue(value)
		status.SetText(fmt.Sprintf("open: %v", value.Indices()))
		mw.logger.Debug("controlled toggle applied",
			slog.Int("index", index),
			slog.Any("open", value.Indices()),
		)
	}, cfg, accordion.WithLogger(mw.logger))

	for i := 0; i < 3; i++ {
		title := fmt.Sprintf("Panel %d", i+1)
		body := widget.NewLabel("State for this accordion lives outside the widget.")
		body.Wrapping = fyne.TextWrapWord
		acc.Append(accordion.NewItem(title, body))
	}

	status.SetText(fmt.Sprintf("open: %v", value.Indices()))
	return container.NewBorder(nil, status, nil, nil, container.NewVScroll(acc))
}
