// Package layout computes worksheet layout plans: how many columns to use
// and how large to draw questions so a sheet fills its medium without
// overflowing. The print engine targets millimetres on a physical page, the
// screen engine pixels in a resizable viewport. Both are pure functions of
// their inputs and are recomputed on every render.
package layout

import "math"

// MinQuestions and MaxQuestions bound the supported worksheet size. The
// print easing curve is defined over this range; form and flag validation
// enforce it before generation.
const (
	MinQuestions = 1
	MaxQuestions = 99
)

// PrintPlan is the computed layout for a printed page.
type PrintPlan struct {
	Columns    int
	Rows       int     // questions in the tallest column
	FontSize   float64 // mm
	LineHeight float64 // mm
}

// ScreenPlan is the computed layout for the presentation view. There is no
// line height: on screen the grid scrolls instead of compressing rows.
type ScreenPlan struct {
	Columns  int
	Rows     int     // questions in the tallest column
	FontSize float64 // px
}

func clampCount(count int) int {
	if count < MinQuestions {
		return MinQuestions
	}
	if count > MaxQuestions {
		return MaxQuestions
	}
	return count
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
