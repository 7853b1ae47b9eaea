package layout

import "math"

// A4 page dimensions and the worksheet print margins, in millimetres. The
// PDF exporter shares these so the painted page matches the computed plan.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginSide   = 14.0
	MarginTop    = 15.0
	MarginBottom = 15.0
	TitleHeight  = 20.0 // title and name/date block below the top margin
)

// Column breakpoints for the printed page.
const (
	printOneColMax   = 5  // up to here a single wide column reads best
	printTwoColMax   = 20 // 6..20 split into two columns
	printThreeColMax = 66 // 21..66 always three columns
	printThreeColMin = 90 // 90..99 revert to three columns regardless
)

// Font sizing for the printed page, in millimetres.
const (
	printMaxFont  = 20.0
	printMinFont  = 9.5
	printFontEase = 0.7  // easing exponent; early counts shed size faster
	fontLineRatio = 0.85 // font may take at most this share of the line height
)

// Line-height floors for sparse sheets. On the default A4 geometry the
// fill-exact line height stays above both, so they only bind for smaller
// page formats.
const (
	lineFloorTiny     = 30.0 // counts 1..5
	lineFloorSmall    = 20.0 // counts 6..10
	lineFloorSmallMax = 10
)

// Geometry is the printable area of a page in millimetres, after margins
// and the title block are taken off.
type Geometry struct {
	UsableWidth  float64
	UsableHeight float64
}

// DefaultGeometry returns the printable area of a portrait A4 sheet with
// the standard worksheet margins and title block.
func DefaultGeometry() Geometry {
	return Geometry{
		UsableWidth:  PageWidth - 2*MarginSide,
		UsableHeight: PageHeight - MarginTop - MarginBottom - TitleHeight,
	}
}

// PrintColumns returns the column count for a printed sheet. Counts in
// 67..89 prefer four columns, except multiples of three which divide evenly
// into three; from 90 on, three columns win regardless so rows stay short
// enough to read.
func PrintColumns(count int) int {
	count = clampCount(count)
	switch {
	case count <= printOneColMax:
		return 1
	case count <= printTwoColMax:
		return 2
	case count <= printThreeColMax:
		return 3
	case count%3 == 0 || count >= printThreeColMin:
		return 3
	default:
		return 4
	}
}

// PrintLayout computes the page plan for count questions on the default A4
// geometry. Counts outside 1..99 are clamped; validation upstream keeps
// them in range, so the clamp is a backstop only.
func PrintLayout(count int) PrintPlan {
	return PrintLayoutFor(count, DefaultGeometry())
}

// PrintLayoutFor computes the page plan for count questions on an explicit
// geometry.
//
// The line height divides the usable height evenly across the tallest
// column, so the sheet fills the page exactly. The font size eases from
// printMaxFont down to printMinFont as the count grows, is capped at
// fontLineRatio of the line height, and is then clamped back into the
// absolute bounds. The absolute floor is applied last and wins over the
// ratio cap on very dense sheets.
func PrintLayoutFor(count int, geo Geometry) PrintPlan {
	count = clampCount(count)

	columns := PrintColumns(count)
	rows := ceilDiv(count, columns)

	lineHeight := geo.UsableHeight / float64(rows)

	ease := math.Pow(float64(count-MinQuestions)/float64(MaxQuestions-MinQuestions), printFontEase)
	fontSize := printMaxFont - (printMaxFont-printMinFont)*ease

	if limit := fontLineRatio * lineHeight; fontSize > limit {
		fontSize = limit
	}
	fontSize = clampFloat(fontSize, printMinFont, printMaxFont)

	switch {
	case count <= printOneColMax:
		lineHeight = math.Max(lineHeight, lineFloorTiny)
	case count <= lineFloorSmallMax:
		lineHeight = math.Max(lineHeight, lineFloorSmall)
	}

	return PrintPlan{
		Columns:    columns,
		Rows:       rows,
		FontSize:   round1(fontSize),
		LineHeight: round1(lineHeight),
	}
}
