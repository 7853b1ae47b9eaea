package drill

import (
	"fmt"
	"testing"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// checkTruth parses the filled-in text and verifies the arithmetic holds.
func checkTruth(t *testing.T, q model.Question) {
	t.Helper()
	var a, b, c int
	var format string
	switch q.Kind {
	case model.Multiplication:
		format = "%d × %d = %d"
	case model.Division:
		format = "%d ÷ %d = %d"
	}
	if _, err := fmt.Sscanf(q.AnsweredText(), format, &a, &b, &c); err != nil {
		t.Fatalf("cannot parse answered text %q: %v", q.AnsweredText(), err)
	}
	switch q.Kind {
	case model.Multiplication:
		if a*b != c {
			t.Errorf("answered text %q is false: %d * %d != %d", q.AnsweredText(), a, b, c)
		}
	case model.Division:
		if b*c != a {
			t.Errorf("answered text %q is false: %d / %d != %d", q.AnsweredText(), a, b, c)
		}
	}
}

func TestQuestionTruthInvariant(t *testing.T) {
	g := NewWithSeed(1)
	tables := []int{1, 3, 7, 12, 20}
	for i := 0; i < 500; i++ {
		q := g.Question(tables, true)
		checkTruth(t, q)
	}
}

func TestQuestionRanges(t *testing.T) {
	g := NewWithSeed(2)
	tables := []int{4, 9, 17}
	inTables := func(base int) bool {
		for _, v := range tables {
			if v == base {
				return true
			}
		}
		return false
	}
	for i := 0; i < 500; i++ {
		q := g.Question(tables, true)
		if !inTables(q.Base) {
			t.Fatalf("Question base = %d, not in selected tables %v", q.Base, tables)
		}
		if q.Operand < 1 || q.Operand > 12 {
			t.Fatalf("Question operand = %d, want 1..12", q.Operand)
		}
	}
}

func TestQuestionAnswers(t *testing.T) {
	g := NewWithSeed(3)
	for i := 0; i < 200; i++ {
		q := g.Question([]int{6}, true)
		switch q.Kind {
		case model.Multiplication:
			if q.Answer != q.Base*q.Operand {
				t.Errorf("multiplication answer = %d, want %d", q.Answer, q.Base*q.Operand)
			}
		case model.Division:
			if q.Answer != q.Operand {
				t.Errorf("division answer = %d, want operand %d", q.Answer, q.Operand)
			}
			if q.Dividend() != q.Base*q.Operand {
				t.Errorf("division dividend = %d, want %d", q.Dividend(), q.Base*q.Operand)
			}
		}
	}
}

func TestQuestionDisplayText(t *testing.T) {
	tests := []struct {
		name string
		q    model.Question
		want string
	}{
		{"multiplication", model.NewMultiplication(7, 8), "7 × 8 = ____"},
		{"division", model.NewDivision(7, 8), "56 ÷ 7 = ____"},
		{"by one", model.NewMultiplication(13, 1), "13 × 1 = ____"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.q.Text != tt.want {
				t.Errorf("Text = %q, want %q", tt.q.Text, tt.want)
			}
		})
	}
}

func TestWorksheetMultiplicationOnly(t *testing.T) {
	g := New()
	tables := []int{2, 5, 10}
	ws := g.Worksheet(tables, 10, false)

	if len(ws.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10", len(ws.Questions))
	}
	for i, q := range ws.Questions {
		if q.Kind != model.Multiplication {
			t.Errorf("question %d kind = %v, want multiplication", i, q.Kind)
		}
		if q.Base != 2 && q.Base != 5 && q.Base != 10 {
			t.Errorf("question %d base = %d, want one of %v", i, q.Base, tables)
		}
		if q.Operand < 1 || q.Operand > 12 {
			t.Errorf("question %d operand = %d, want 1..12", i, q.Operand)
		}
		checkTruth(t, q)
	}
	if ws.DivisionCount() != 0 {
		t.Errorf("DivisionCount() = %d, want 0", ws.DivisionCount())
	}
}

func TestWorksheetMetadata(t *testing.T) {
	g := NewWithSeed(4)
	ws := g.Worksheet([]int{10, 2, 5}, 3, true)

	if ws.ID == "" {
		t.Error("worksheet ID is empty")
	}
	if ws.ShortID() == "" || len(ws.ShortID()) >= len(ws.ID) {
		t.Errorf("ShortID() = %q, want a shortened form of %q", ws.ShortID(), ws.ID)
	}
	if ws.CreatedAt.IsZero() {
		t.Error("worksheet CreatedAt is zero")
	}
	if !ws.WithDivision {
		t.Error("WithDivision = false, want true")
	}
	if got, want := ws.TablesLabel(), "2, 5, 10"; got != want {
		t.Errorf("TablesLabel() = %q, want %q (sorted)", got, want)
	}
}

func TestWorksheetSeededDeterminism(t *testing.T) {
	a := NewWithSeed(42).Worksheet([]int{3, 4}, 20, true)
	b := NewWithSeed(42).Worksheet([]int{3, 4}, 20, true)

	for i := range a.Questions {
		if a.Questions[i] != b.Questions[i] {
			t.Fatalf("question %d differs between equally seeded runs: %+v vs %+v",
				i, a.Questions[i], b.Questions[i])
		}
	}
}

func TestDivisionCoinProducesBothKinds(t *testing.T) {
	g := NewWithSeed(5)
	ws := g.Worksheet([]int{7}, 400, true)

	div := ws.DivisionCount()
	mul := len(ws.Questions) - div
	if div == 0 || mul == 0 {
		t.Fatalf("got %d division and %d multiplication questions, want both present", div, mul)
	}
	// A fair coin over 400 draws stays well within this band for a fixed seed.
	if div < 120 || div > 280 {
		t.Errorf("division count = %d of 400, want roughly half", div)
	}
}

func TestDuplicatesAllowed(t *testing.T) {
	// One table and multiplication only gives 12 possible questions, so 60
	// draws must repeat. The generator never deduplicates.
	ws := NewWithSeed(6).Worksheet([]int{9}, 60, false)
	seen := make(map[string]int)
	for _, q := range ws.Questions {
		seen[q.Text]++
	}
	if len(seen) >= 60 {
		t.Errorf("60 draws from 12 possible questions produced no duplicates")
	}
}
