package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/atotto/clipboard"

	"github.com/pyatavikram/ExamGenAi/internal/editor"
)

// RunApp opens the diagram editor window seeded from the incoming
// vector document. onConfirm receives the exported document when the
// user confirms; closing or cancelling leaves the caller's document
// untouched.
func RunApp(initial string, onConfirm func(string)) {
	fyneApp := app.New()
	win := fyneApp.NewWindow("Diagram Editor")

	session := editor.New(initial)
	sketch := NewSketchWidget(session, win)
	toolbar := NewToolbar(session, sketch)

	status := widget.NewLabel("")
	if !session.Recovered() {
		status.SetText("No diagram recovered — starting on a blank canvas")
	}

	confirm := widget.NewButton("Confirm", func() {
		if onConfirm != nil {
			onConfirm(session.Confirm())
		}
		win.Close()
	})
	confirm.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() {
		win.Close()
	})
	copySVG := widget.NewButton("Copy SVG", func() {
		if err := clipboard.WriteAll(session.Confirm()); err != nil {
			log.Printf("copy to clipboard failed: %v", err)
			status.SetText("Clipboard unavailable")
			return
		}
		status.SetText("Diagram copied as SVG")
	})

	actions := container.NewHBox(status, layout.NewSpacer(), copySVG, cancel, confirm)

	win.SetContent(container.NewBorder(toolbar, actions, nil, nil, sketch))
	win.Resize(fyne.NewSize(1024, 820))
	win.ShowAndRun()
}
