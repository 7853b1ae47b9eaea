package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// answerColor matches the accent used for answers on the PDF answer key.
var answerColor = color.NRGBA{R: 198, G: 34, B: 34, A: 255}

// SheetView renders the current worksheet as an on-screen question grid.
type SheetView struct {
	scroll  *container.Scroll
	content *fyne.Container
}

// NewSheetView creates an empty worksheet view with a placeholder message.
func NewSheetView() *SheetView {
	sv := &SheetView{}

	placeholder := widget.NewLabel("Generate a worksheet to see it here.")
	sv.content = container.NewVBox(placeholder)
	sv.scroll = container.NewVScroll(sv.content)
	sv.scroll.SetMinSize(NewPreviewMinSize())

	return sv
}

// Container returns the view's scrolling container.
func (sv *SheetView) Container() *container.Scroll {
	return sv.scroll
}

// ShowWorksheet replaces the view contents with the given worksheet, laid out
// for the viewport height the view currently has.
func (sv *SheetView) ShowWorksheet(ws *model.Worksheet) {
	height := float64(sv.scroll.Size().Height)
	if height <= 0 {
		height = PreviewMinHeight
	}

	plan := layout.ScreenLayout(len(ws.Questions), height)
	sv.content.Objects = []fyne.CanvasObject{buildQuestionGrid(ws, plan, false)}
	sv.content.Refresh()
	sv.scroll.ScrollToTop()
}

// buildQuestionGrid lays the questions out column-major in a fixed-column
// grid, so the on-screen reading order matches the printed sheet: display
// row r, column c holds question c*rows + r.
func buildQuestionGrid(ws *model.Worksheet, plan layout.ScreenPlan, showAnswers bool) *fyne.Container {
	cells := make([]fyne.CanvasObject, 0, plan.Columns*plan.Rows)
	for row := 0; row < plan.Rows; row++ {
		for col := 0; col < plan.Columns; col++ {
			idx := col*plan.Rows + row
			if idx >= len(ws.Questions) {
				// Keep the grid rectangular
				cells = append(cells, widget.NewLabel(""))
				continue
			}
			cells = append(cells, questionCell(ws.Questions[idx], plan.FontSize, showAnswers))
		}
	}
	return container.NewGridWithColumns(plan.Columns, cells...)
}

// questionCell draws one question. With showAnswer set, the blank is replaced
// by the answer in the accent color while the rest keeps the theme color.
func questionCell(q model.Question, fontSize float64, showAnswer bool) fyne.CanvasObject {
	if !showAnswer {
		text := canvas.NewText(q.Text, theme.Color(theme.ColorNameForeground))
		text.TextSize = float32(fontSize)
		return text
	}

	head := canvas.NewText(q.Prefix(), theme.Color(theme.ColorNameForeground))
	head.TextSize = float32(fontSize)

	answer := canvas.NewText(strconv.Itoa(q.Answer), answerColor)
	answer.TextSize = float32(fontSize)
	answer.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewHBox(head, answer)
}
