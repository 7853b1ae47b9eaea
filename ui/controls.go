package ui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/drill"
	"github.com/adamlewis-97/timestableworksheet/internal/export"
	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

var presentBtnBg = color.NRGBA{R: 25, G: 105, B: 64, A: 255}

// Controls manages the Generate / Save / Present buttons and holds the
// worksheet currently on display.
type Controls struct {
	mu         sync.Mutex
	current    *model.Worksheet
	presenting bool

	generateBtn *widget.Button
	saveBtn     *widget.Button
	presentBtn  *StyledButton
	statusLabel *widget.Label

	configForm  *ConfigForm
	sheetView   *SheetView
	textView    *TextView
	historyView *HistoryView
	savedFiles  *SavedFilesList
	gen         *drill.Generator

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(cf *ConfigForm, sv *SheetView, tv *TextView, hv *HistoryView, sfl *SavedFilesList) *Controls {
	c := &Controls{
		configForm:  cf,
		sheetView:   sv,
		textView:    tv,
		historyView: hv,
		savedFiles:  sfl,
		gen:         drill.New(),
	}

	c.generateBtn = widget.NewButton("Generate", c.onGenerate)
	c.saveBtn = widget.NewButton("Save Files", c.onSave)
	c.saveBtn.Disable()
	c.presentBtn = NewStyledButton("Present", c.onPresent, presentBtnBg, color.White)
	c.presentBtn.Disable()

	c.statusLabel = widget.NewLabel("")
	c.statusLabel.Wrapping = fyne.TextWrapWord

	// Picking an old sheet from the history puts it back on display
	hv.OnSelect = func(ws model.Worksheet) {
		c.setCurrent(&ws)
		c.statusLabel.SetText(fmt.Sprintf("Showing sheet %s from history", ws.ShortID()))
	}

	c.container = container.NewVBox(
		container.NewHBox(c.generateBtn, c.saveBtn, c.presentBtn),
		c.statusLabel,
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// CurrentSheet returns the worksheet on display, or nil before the first run.
func (c *Controls) CurrentSheet() *model.Worksheet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controls) onGenerate() {
	cfg, err := c.configForm.Config()
	if err != nil {
		c.statusLabel.SetText(fmt.Sprintf("Config error: %v", err))
		return
	}
	if err := cfg.Validate(); err != nil {
		c.statusLabel.SetText(fmt.Sprintf("Config error: %v", err))
		return
	}

	ws := c.gen.Worksheet(cfg.Tables, cfg.Count, cfg.WithDivision)
	c.historyView.AddWorksheet(ws)
	c.setCurrent(&ws)
	c.statusLabel.SetText(fmt.Sprintf("Sheet %s: %d questions on tables %s",
		ws.ShortID(), len(ws.Questions), ws.TablesLabel()))
}

// setCurrent swaps the displayed worksheet and refreshes every view of it.
func (c *Controls) setCurrent(ws *model.Worksheet) {
	c.mu.Lock()
	c.current = ws
	c.mu.Unlock()

	plan := layout.PrintLayout(len(ws.Questions))
	c.sheetView.ShowWorksheet(ws)
	c.textView.SetWorksheet(ws, plan.Columns)
	c.saveBtn.Enable()
	c.presentBtn.Enable()
}

func (c *Controls) onSave() {
	ws := c.CurrentSheet()
	if ws == nil {
		c.statusLabel.SetText("Nothing to save yet.")
		return
	}

	wins := fyne.CurrentApp().Driver().AllWindows()
	if len(wins) == 0 {
		return
	}
	win := wins[0]

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		go c.saveFiles(ws, path, win)
	}, win)
	d.SetFileName(filepath.Base(export.BuildPath(export.DefaultDir, export.DefaultBase, ".pdf", ws.CreatedAt)))
	d.Show()
}

// saveFiles writes the printable PDF plus its CSV answer key and plain-text
// companions next to it, then refreshes the saved files tab.
func (c *Controls) saveFiles(ws *model.Worksheet, path string, win fyne.Window) {
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		path += ".pdf"
	}
	base := strings.TrimSuffix(path, ".pdf")
	plan := layout.PrintLayout(len(ws.Questions))

	if err := export.WritePDF(path, ws, plan); err != nil {
		c.showError(err, win)
		return
	}
	if err := export.WriteCSV(base+".csv", ws); err != nil {
		c.showError(err, win)
		return
	}
	if err := export.WriteTXT(base+".txt", ws, plan.Columns); err != nil {
		c.showError(err, win)
		return
	}

	fyne.Do(func() {
		c.statusLabel.SetText(fmt.Sprintf("Saved %s with its answer key and text copy", filepath.Base(path)))
		c.savedFiles.Refresh()
	})
}

func (c *Controls) showError(err error, win fyne.Window) {
	fyne.Do(func() {
		dialog.ShowError(err, win)
	})
}

func (c *Controls) onPresent() {
	ws := c.CurrentSheet()
	if ws == nil {
		return
	}

	c.mu.Lock()
	if c.presenting {
		c.mu.Unlock()
		return
	}
	c.presenting = true
	c.mu.Unlock()
	c.presentBtn.Disable()

	p := NewPresentation(fyne.CurrentApp(), ws)
	p.SetOnClosed(func() {
		c.mu.Lock()
		c.presenting = false
		c.mu.Unlock()
		c.presentBtn.Enable()
	})
	p.Show()
}
