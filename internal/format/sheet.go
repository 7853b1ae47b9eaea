package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// FormatWorksheet produces a text rendering of the sheet: a header with the
// generation settings, then numbered questions in columns read top to bottom
// and left to right, the same order the print and screen renderers use.
func FormatWorksheet(ws *model.Worksheet, columns int) string {
	var b strings.Builder

	b.WriteString("=== Times Tables Practice ===\n")
	b.WriteString(fmt.Sprintf("Date:      %s\n", ws.CreatedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Tables:    %s\n", ws.TablesLabel()))
	b.WriteString(fmt.Sprintf("Questions: %d\n", len(ws.Questions)))
	if ws.WithDivision {
		b.WriteString("Division:  included\n")
	}
	b.WriteString(fmt.Sprintf("Sheet:     %s\n", ws.ShortID()))
	b.WriteString("\n")

	writeColumns(&b, ws.Questions, columns, false)
	return b.String()
}

// FormatAnswerKey produces the same grid with every blank filled in.
func FormatAnswerKey(ws *model.Worksheet, columns int) string {
	var b strings.Builder

	b.WriteString("=== Answer Key ===\n")
	b.WriteString(fmt.Sprintf("Sheet:     %s\n", ws.ShortID()))
	b.WriteString("\n")

	writeColumns(&b, ws.Questions, columns, true)
	return b.String()
}

func writeColumns(b *strings.Builder, questions []model.Question, columns int, answered bool) {
	if columns < 1 {
		columns = 1
	}
	rows := (len(questions) + columns - 1) / columns

	cell := func(i int) string {
		text := questions[i].Text
		if answered {
			text = questions[i].AnsweredText()
		}
		return fmt.Sprintf("%2d) %s", i+1, text)
	}

	width := 0
	for i := range questions {
		if w := utf8.RuneCountInString(cell(i)); w > width {
			width = w
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			i := col*rows + row
			if i >= len(questions) {
				break
			}
			if col > 0 {
				b.WriteString("   ")
			}
			text := cell(i)
			if i+rows < len(questions) {
				text = padRight(text, width)
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
}

// padRight pads by rune count so the × and ÷ glyphs do not skew columns.
func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
