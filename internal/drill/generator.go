// Package drill generates randomized times-table questions from a set of
// selected tables.
package drill

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

// operandMax bounds the second factor, the classic 1..12 drill range.
const operandMax = 12

// Generator draws random questions. It is not safe for concurrent use; the
// GUI and the CLI each own one.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded from the wall clock.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed, for reproducible sheets.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Question draws a single question. The base comes uniformly from tables and
// the operand uniformly from 1..12. With division enabled a fair coin picks
// between the multiplication form and the inverse division form.
// tables must be non-empty; selections are validated before generation.
func (g *Generator) Question(tables []int, withDivision bool) model.Question {
	base := tables[g.rng.Intn(len(tables))]
	operand := 1 + g.rng.Intn(operandMax)
	if withDivision && g.rng.Intn(2) == 0 {
		return model.NewDivision(base, operand)
	}
	return model.NewMultiplication(base, operand)
}

// Worksheet draws count independent questions and wraps them with a fresh
// sheet ID and timestamp. Draws are independent, so repeated questions are
// expected; repetition is part of the drill.
func (g *Generator) Worksheet(tables []int, count int, withDivision bool) model.Worksheet {
	questions := make([]model.Question, count)
	for i := range questions {
		questions[i] = g.Question(tables, withDivision)
	}
	sorted := append([]int(nil), tables...)
	sort.Ints(sorted)
	return model.Worksheet{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Tables:       sorted,
		WithDivision: withDivision,
		Questions:    questions,
	}
}
