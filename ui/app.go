package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Times Tables Worksheet Tool")
	win.Resize(NewWindowSize())

	configForm := NewConfigForm()
	sheetView := NewSheetView()
	textView := NewTextView()
	historyView := NewHistoryView()
	savedFiles := NewSavedFilesList()
	controls := NewControls(configForm, sheetView, textView, historyView, savedFiles)

	prefs := app.Preferences()
	configForm.LoadPreferences(prefs)

	leftPanel := container.NewVBox(
		configForm.Container(),
		controls.Container(),
	)

	topRow := container.NewHSplit(leftPanel, sheetView.Container())
	topRow.SetOffset(0.4)

	textTab := container.NewTabItem("Text", textView.Container())
	historyTab := container.NewTabItem("History", historyView.Container())
	savedTab := container.NewTabItem("Saved Files", savedFiles.Container())
	tabs := container.NewAppTabs(textTab, historyTab, savedTab)

	content := container.NewVSplit(topRow, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		configForm.SavePreferences(prefs)
		win.Close()
	})

	return win
}
