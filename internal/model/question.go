package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Blank is the answer placeholder printed on worksheets.
const Blank = "____"

// MinTable and MaxTable bound the selectable table multipliers.
const (
	MinTable = 1
	MaxTable = 20
)

// QuestionKind selects the arithmetic operation a question drills.
type QuestionKind int

const (
	Multiplication QuestionKind = iota
	Division
)

// String returns the kind name used in exports and the history view.
func (k QuestionKind) String() string {
	if k == Division {
		return "division"
	}
	return "multiplication"
}

// Question is a single worksheet item. It is never mutated after creation;
// renderers derive everything they display from it.
type Question struct {
	Kind    QuestionKind
	Base    int    // selected table multiplier (1-20)
	Operand int    // 1-12
	Text    string // display form, e.g. "7 × 8 = ____"
	Answer  int    // the unique value that completes Text
}

// NewMultiplication builds a times-table question: base × operand = ____.
func NewMultiplication(base, operand int) Question {
	return Question{
		Kind:    Multiplication,
		Base:    base,
		Operand: operand,
		Text:    fmt.Sprintf("%d × %d = %s", base, operand, Blank),
		Answer:  base * operand,
	}
}

// NewDivision builds the inverse form. The dividend base*operand is shown
// and the operand is the expected answer, e.g. 56 ÷ 7 = ____.
func NewDivision(base, operand int) Question {
	return Question{
		Kind:    Division,
		Base:    base,
		Operand: operand,
		Text:    fmt.Sprintf("%d ÷ %d = %s", base*operand, base, Blank),
		Answer:  operand,
	}
}

// Dividend returns the product shown on the left side of a division question.
func (q *Question) Dividend() int {
	return q.Base * q.Operand
}

// Prefix returns the question text up to the blank.
func (q *Question) Prefix() string {
	return strings.TrimSuffix(q.Text, Blank)
}

// AnsweredText returns the text with the blank replaced by the answer.
func (q *Question) AnsweredText() string {
	return q.Prefix() + strconv.Itoa(q.Answer)
}

// Worksheet is one generated batch of questions together with the settings
// that produced it. Generating again replaces the whole value; nothing
// mutates a worksheet in place.
type Worksheet struct {
	ID           string // full sheet ID; see ShortID
	CreatedAt    time.Time
	Tables       []int // selected table multipliers, ascending
	WithDivision bool
	Questions    []Question
}

// ShortID returns the first ID group, printed in export footers so a blanks
// page can be matched to its answer key.
func (w *Worksheet) ShortID() string {
	if i := strings.IndexByte(w.ID, '-'); i > 0 {
		return w.ID[:i]
	}
	return w.ID
}

// TablesLabel returns the selected tables as "2, 5, 10".
func (w *Worksheet) TablesLabel() string {
	parts := make([]string, len(w.Tables))
	for i, t := range w.Tables {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ", ")
}

// DivisionCount returns how many questions are division questions.
func (w *Worksheet) DivisionCount() int {
	n := 0
	for i := range w.Questions {
		if w.Questions[i].Kind == Division {
			n++
		}
	}
	return n
}
