package ui

import (
	"fmt"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

var historyColumns = []string{"Time", "Sheet", "Tables", "Questions", "Division"}

// HistoryView displays a table of the worksheets generated this session.
// Selecting a row brings that worksheet back on display.
type HistoryView struct {
	mu     sync.Mutex
	sheets []model.Worksheet
	table  *widget.Table

	// OnSelect is called with the picked worksheet when a row is tapped.
	OnSelect func(model.Worksheet)
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 160) // Time
	hv.table.SetColumnWidth(1, 100) // Sheet
	hv.table.SetColumnWidth(2, 180) // Tables
	hv.table.SetColumnWidth(3, 90)  // Questions
	hv.table.SetColumnWidth(4, 100) // Division

	hv.table.OnSelected = hv.onSelected

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddWorksheet appends a generated worksheet to the history.
func (hv *HistoryView) AddWorksheet(ws model.Worksheet) {
	hv.mu.Lock()
	hv.sheets = append(hv.sheets, ws)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Worksheets returns a copy of all stored worksheets.
func (hv *HistoryView) Worksheets() []model.Worksheet {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Worksheet, len(hv.sheets))
	copy(out, hv.sheets)
	return out
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.sheets) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.sheets) {
		label.SetText("")
		return
	}

	ws := hv.sheets[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(ws.CreatedAt.Format("2006-01-02 15:04:05"))
	case 1:
		label.SetText(ws.ShortID())
	case 2:
		label.SetText(ws.TablesLabel())
	case 3:
		label.SetText(strconv.Itoa(len(ws.Questions)))
	case 4:
		if ws.WithDivision {
			label.SetText(fmt.Sprintf("%d of %d", ws.DivisionCount(), len(ws.Questions)))
		} else {
			label.SetText("no")
		}
	}
}

func (hv *HistoryView) onSelected(id widget.TableCellID) {
	// Deselect immediately to allow re-selection
	hv.table.UnselectAll()

	if id.Row < 1 {
		return
	}

	hv.mu.Lock()
	idx := id.Row - 1
	if idx >= len(hv.sheets) {
		hv.mu.Unlock()
		return
	}
	ws := hv.sheets[idx]
	hv.mu.Unlock()

	if hv.OnSelect != nil {
		hv.OnSelect(ws)
	}
}
