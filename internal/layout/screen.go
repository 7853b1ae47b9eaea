package layout

import "math"

// Column breakpoints for the presentation view. Independent of the font
// tiers below; keep them that way.
const (
	screenThreeColMax = 9
	screenFourColMax  = 20
)

// Font sizing for the presentation view, in pixels.
const (
	screenMinFont   = 18.0
	screenMaxFont   = 48.0
	viewportDivisor = 18.0 // viewport height that must fit one font row
)

// Font tier table: the largest count still served by each base size.
var screenFontTiers = []struct {
	maxCount int
	font     float64
}{
	{12, 40},
	{24, 32},
	{40, 26},
	{60, 22},
}

// ScreenOptions tunes the presentation clamp.
type ScreenOptions struct {
	// StrictViewportCap applies the viewport ceiling after the minimum
	// font floor, so a very short viewport can force the font below
	// screenMinFont. Default off: the floor wins, keeping text legible
	// and letting the grid scroll instead.
	StrictViewportCap bool
}

// ScreenColumns returns the column count for the presentation view. Counts
// past screenFourColMax always use five columns; overflow scrolls rather
// than shrinking further.
func ScreenColumns(count int) int {
	switch {
	case count <= screenThreeColMax:
		return 3
	case count <= screenFourColMax:
		return 4
	default:
		return 5
	}
}

func screenBaseFont(count int) float64 {
	for _, tier := range screenFontTiers {
		if count <= tier.maxCount {
			return tier.font
		}
	}
	return screenMinFont
}

// ScreenLayout computes the presentation plan for count questions in a
// viewport of the given height in pixels, with the default clamp ordering.
func ScreenLayout(count int, viewportHeight float64) ScreenPlan {
	return ScreenLayoutWith(count, viewportHeight, ScreenOptions{})
}

// ScreenLayoutWith computes the presentation plan with explicit options.
//
// The base font comes from the count tier table and is capped at
// min(screenMaxFont, viewportHeight/viewportDivisor). By default the
// screenMinFont floor is applied last, so it wins when a short viewport
// pushes the cap below it.
func ScreenLayoutWith(count int, viewportHeight float64, opts ScreenOptions) ScreenPlan {
	if count < MinQuestions {
		count = MinQuestions
	}

	columns := ScreenColumns(count)
	rows := ceilDiv(count, columns)

	base := screenBaseFont(count)
	maxAllowed := math.Min(screenMaxFont, viewportHeight/viewportDivisor)

	var font float64
	if opts.StrictViewportCap {
		font = math.Min(math.Max(base, screenMinFont), maxAllowed)
	} else {
		font = math.Max(screenMinFont, math.Min(base, maxAllowed))
	}

	return ScreenPlan{
		Columns:  columns,
		Rows:     rows,
		FontSize: font,
	}
}
