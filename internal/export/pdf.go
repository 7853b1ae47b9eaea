package export

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// continuationSpacing is the line advance for wrapped question text,
// relative to the normal line height.
const continuationSpacing = 0.6

// columnGap keeps neighbouring columns from touching, in mm.
const columnGap = 4.0

// PDFConfig styles the exported document. Sizes are in millimetres so they
// compose with the print plan.
type PDFConfig struct {
	PageSize     string
	FontFamily   string
	TitleSize    float64
	SubtitleSize float64
	FooterSize   float64
	InkColor     [3]int
	AnswerColor  [3]int // answers on the key page
	FooterColor  [3]int
}

// DefaultPDFConfig returns the standard worksheet appearance.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		PageSize:     "A4",
		FontFamily:   "Helvetica",
		TitleSize:    8,
		SubtitleSize: 4.2,
		FooterSize:   3,
		InkColor:     [3]int{30, 30, 30},
		AnswerColor:  [3]int{198, 34, 34},
		FooterColor:  [3]int{128, 128, 128},
	}
}

// WritePDF paints the worksheet as a two-page document: page one the
// questions with blanks, page two the answer key on the identical grid.
// The geometry comes from plan, so the printed page matches what the
// layout engine computed.
func WritePDF(path string, ws *model.Worksheet, plan layout.PrintPlan) error {
	return WritePDFWith(path, ws, plan, DefaultPDFConfig())
}

// WritePDFWith is WritePDF with an explicit appearance config.
func WritePDFWith(path string, ws *model.Worksheet, plan layout.PrintPlan, cfg PDFConfig) error {
	pdf := fpdf.New("P", "mm", cfg.PageSize, "")
	pdf.SetMargins(layout.MarginSide, layout.MarginTop, layout.MarginSide)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(sheetTitle(ws), true)

	p := &pdfPainter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		cfg:  cfg,
		ws:   ws,
		plan: plan,
	}
	p.paintPage(false)
	p.paintPage(true)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf file: %w", err)
	}
	return nil
}

// sheetTitle builds the document heading from the operations on the sheet.
func sheetTitle(ws *model.Worksheet) string {
	op := model.Multiplication.String()
	if ws.WithDivision {
		op += " and " + model.Division.String()
	}
	return cases.Title(language.English).String(op) + " Practice"
}

type pdfPainter struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string // UTF-8 to core-font cp1252, covers × and ÷
	cfg  PDFConfig
	ws   *model.Worksheet
	plan layout.PrintPlan
}

func (p *pdfPainter) paintPage(answers bool) {
	p.pdf.AddPage()
	p.paintHeader(answers)
	p.paintFooter()

	geo := layout.DefaultGeometry()
	colWidth := geo.UsableWidth / float64(p.plan.Columns)
	top := layout.MarginTop + layout.TitleHeight

	p.questionFont()
	p.setColor(p.cfg.InkColor)

	// Column-major placement: fill the first column top to bottom, then
	// the next, mirroring the on-screen reading order.
	for i := range p.ws.Questions {
		col := i / p.plan.Rows
		row := i % p.plan.Rows
		x := layout.MarginSide + float64(col)*colWidth
		y := top + float64(row)*p.plan.LineHeight
		p.paintQuestion(i, x, y, colWidth, answers)
	}
}

func (p *pdfPainter) paintQuestion(i int, x, lineTop, colWidth float64, answers bool) {
	q := &p.ws.Questions[i]

	text := q.Text
	if answers {
		text = q.AnsweredText()
	}
	full := p.tr(fmt.Sprintf("%d) %s", i+1, text))

	width := colWidth - columnGap
	lines := []string{full}
	if p.pdf.GetStringWidth(full) > width {
		lines = p.pdf.SplitText(full, width)
	}

	baseline := lineTop + baselineOffset(p.plan.LineHeight, p.plan.FontSize)
	for n, line := range lines {
		y := baseline + float64(n)*continuationSpacing*p.plan.LineHeight
		if answers && n == len(lines)-1 {
			p.paintAnsweredLine(line, x, y, q)
			continue
		}
		p.pdf.Text(x, y, line)
	}
}

// paintAnsweredLine draws the closing line of an answer-key entry with the
// answer itself in the accent colour.
func (p *pdfPainter) paintAnsweredLine(line string, x, y float64, q *model.Question) {
	answer := p.tr(strconv.Itoa(q.Answer))
	if !strings.HasSuffix(line, answer) {
		p.pdf.Text(x, y, line)
		return
	}

	head := strings.TrimSuffix(line, answer)
	p.pdf.Text(x, y, head)
	p.setColor(p.cfg.AnswerColor)
	p.pdf.Text(x+p.pdf.GetStringWidth(head), y, answer)
	p.setColor(p.cfg.InkColor)
}

func (p *pdfPainter) paintHeader(answers bool) {
	pdf := p.pdf
	p.setColor(p.cfg.InkColor)

	pdf.SetFont(p.cfg.FontFamily, "B", 12)
	pdf.SetFontUnitSize(p.cfg.TitleSize)
	title := p.tr(sheetTitle(p.ws))
	pdf.Text((layout.PageWidth-pdf.GetStringWidth(title))/2, layout.MarginTop+p.cfg.TitleSize*0.8, title)

	pdf.SetFont(p.cfg.FontFamily, "", 12)
	pdf.SetFontUnitSize(p.cfg.SubtitleSize)
	sub := "Name: ______________________          Date: ______________"
	if answers {
		sub = "Answer Key"
	}
	sub = p.tr(sub)
	pdf.Text((layout.PageWidth-pdf.GetStringWidth(sub))/2, layout.MarginTop+layout.TitleHeight-4, sub)
}

func (p *pdfPainter) paintFooter() {
	pdf := p.pdf
	pdf.SetFont(p.cfg.FontFamily, "", 12)
	pdf.SetFontUnitSize(p.cfg.FooterSize)
	p.setColor(p.cfg.FooterColor)

	note := fmt.Sprintf("Sheet %s · %s · Tables %s",
		p.ws.ShortID(), DateStamp(p.ws.CreatedAt), p.ws.TablesLabel())
	pdf.Text(layout.MarginSide, layout.PageHeight-layout.MarginBottom+6, p.tr(note))
}

func (p *pdfPainter) questionFont() {
	p.pdf.SetFont(p.cfg.FontFamily, "", 12)
	p.pdf.SetFontUnitSize(p.plan.FontSize)
}

func (p *pdfPainter) setColor(c [3]int) {
	p.pdf.SetTextColor(c[0], c[1], c[2])
}

// baselineOffset positions the text baseline inside a line box, assuming
// the usual 80/20 ascent split.
func baselineOffset(lineHeight, fontSize float64) float64 {
	ascent := 0.8 * fontSize
	leading := lineHeight - fontSize
	if leading < 0 {
		leading = 0
	}
	return ascent + leading/2
}
