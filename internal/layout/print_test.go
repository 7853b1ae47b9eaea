package layout

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestPrintColumns(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 1},
		{5, 1},
		{6, 2},
		{20, 2},
		{21, 3},
		{66, 3},
		{67, 4},  // 67 % 3 != 0
		{68, 4},  // 68 % 3 != 0
		{69, 3},  // 69 % 3 == 0, divides evenly
		{72, 3},  // 72 % 3 == 0
		{89, 4},  // 89 % 3 != 0, below the high-count cutover
		{90, 3},  // from 90 on, always three
		{95, 3},  // 95 % 3 != 0 but >= 90
		{99, 3},
	}
	for _, tt := range tests {
		if got := PrintColumns(tt.count); got != tt.want {
			t.Errorf("PrintColumns(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestPrintLayoutBounds(t *testing.T) {
	for count := 1; count <= 99; count++ {
		plan := PrintLayout(count)
		if plan.Columns < 1 || plan.Columns > 4 {
			t.Errorf("PrintLayout(%d).Columns = %d, want 1..4", count, plan.Columns)
		}
		if plan.FontSize < 9.5 || plan.FontSize > 20 {
			t.Errorf("PrintLayout(%d).FontSize = %v, want within [9.5, 20]", count, plan.FontSize)
		}
		if plan.LineHeight <= 0 {
			t.Errorf("PrintLayout(%d).LineHeight = %v, want > 0", count, plan.LineHeight)
		}
		if plan.Rows*plan.Columns < count {
			t.Errorf("PrintLayout(%d): %d rows * %d columns cannot hold all questions",
				count, plan.Rows, plan.Columns)
		}
		if (plan.Rows-1)*plan.Columns >= count {
			t.Errorf("PrintLayout(%d): %d rows is one more than needed for %d columns",
				count, plan.Rows, plan.Columns)
		}
	}
}

func TestPrintLayoutValues(t *testing.T) {
	tests := []struct {
		count          int
		wantColumns    int
		wantFontSize   float64
		wantLineHeight float64
	}{
		{1, 1, 20.0, 247.0},
		{5, 1, 18.9, 49.4},
		{6, 2, 18.7, 82.3},
		{10, 2, 18.0, 49.4},
		{20, 2, 16.7, 24.7},
		{66, 3, 9.5, 11.2},  // ratio cap engages just above the floor
		{67, 4, 12.0, 14.5}, // four columns relax the cap again
		{69, 3, 9.5, 10.7},  // back to three, floor wins over the cap
		{90, 3, 9.5, 8.2},
		{99, 3, 9.5, 7.5},
	}
	for _, tt := range tests {
		plan := PrintLayout(tt.count)
		if plan.Columns != tt.wantColumns {
			t.Errorf("PrintLayout(%d).Columns = %d, want %d", tt.count, plan.Columns, tt.wantColumns)
		}
		if !almostEqual(plan.FontSize, tt.wantFontSize) {
			t.Errorf("PrintLayout(%d).FontSize = %v, want %v", tt.count, plan.FontSize, tt.wantFontSize)
		}
		if !almostEqual(plan.LineHeight, tt.wantLineHeight) {
			t.Errorf("PrintLayout(%d).LineHeight = %v, want %v", tt.count, plan.LineHeight, tt.wantLineHeight)
		}
	}
}

func TestPrintLayoutRounding(t *testing.T) {
	for count := 1; count <= 99; count++ {
		plan := PrintLayout(count)
		if !almostEqual(plan.FontSize, round1(plan.FontSize)) {
			t.Errorf("PrintLayout(%d).FontSize = %v, want one decimal place", count, plan.FontSize)
		}
		if !almostEqual(plan.LineHeight, round1(plan.LineHeight)) {
			t.Errorf("PrintLayout(%d).LineHeight = %v, want one decimal place", count, plan.LineHeight)
		}
	}
}

func TestPrintLayoutFloorWinsOverRatioCap(t *testing.T) {
	// At 90 questions the line height is 8.2 mm and the ratio cap would
	// allow only ~7.0 mm of font, but the absolute floor is applied last.
	plan := PrintLayout(90)
	if !almostEqual(plan.FontSize, 9.5) {
		t.Errorf("PrintLayout(90).FontSize = %v, want the 9.5 floor", plan.FontSize)
	}
	if plan.FontSize <= fontLineRatio*plan.LineHeight {
		t.Errorf("expected the floor to override the ratio cap at count 90")
	}
}

func TestPrintLayoutForSmallGeometry(t *testing.T) {
	// On reduced page formats the sparse-sheet line-height floors bind.
	tests := []struct {
		name           string
		count          int
		geo            Geometry
		wantLineHeight float64
		wantFontSize   float64
	}{
		{
			name:           "tiny count floor",
			count:          5,
			geo:            Geometry{UsableWidth: 100, UsableHeight: 120},
			wantLineHeight: 30.0, // organic 24.0 raised to the floor
			wantFontSize:   18.9,
		},
		{
			name:           "small count floor",
			count:          8,
			geo:            Geometry{UsableWidth: 100, UsableHeight: 70},
			wantLineHeight: 20.0, // organic 17.5 raised to the floor
			wantFontSize:   14.9, // capped at 85% of the pre-floor line height
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PrintLayoutFor(tt.count, tt.geo)
			if !almostEqual(plan.LineHeight, tt.wantLineHeight) {
				t.Errorf("LineHeight = %v, want %v", plan.LineHeight, tt.wantLineHeight)
			}
			if !almostEqual(plan.FontSize, tt.wantFontSize) {
				t.Errorf("FontSize = %v, want %v", plan.FontSize, tt.wantFontSize)
			}
		})
	}
}

func TestPrintLayoutFloorsInertOnDefaultGeometry(t *testing.T) {
	// The default A4 usable height keeps sparse line heights above both
	// floors, so the floored plan equals the unfloored arithmetic.
	for count := 1; count <= 10; count++ {
		plan := PrintLayout(count)
		organic := round1(DefaultGeometry().UsableHeight / float64(plan.Rows))
		if !almostEqual(plan.LineHeight, organic) {
			t.Errorf("PrintLayout(%d).LineHeight = %v, want organic %v", count, plan.LineHeight, organic)
		}
	}
}

func TestPrintLayoutClampsCount(t *testing.T) {
	if got, want := PrintLayout(0), PrintLayout(1); got != want {
		t.Errorf("PrintLayout(0) = %+v, want clamped to %+v", got, want)
	}
	if got, want := PrintLayout(150), PrintLayout(99); got != want {
		t.Errorf("PrintLayout(150) = %+v, want clamped to %+v", got, want)
	}
}

func TestPrintLayoutIdempotent(t *testing.T) {
	for _, count := range []int{1, 5, 42, 67, 99} {
		first := PrintLayout(count)
		second := PrintLayout(count)
		if first != second {
			t.Errorf("PrintLayout(%d) differs across calls: %+v vs %+v", count, first, second)
		}
	}
}
