package tutor

import (
	"fmt"
	"io"
	"math"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/internal/solver"
	"gopkg.in/yaml.v3"
)

// Bank holds the practice questions a student can draw from.
type Bank struct {
	questions []domain.Question
	byID      map[int]domain.Question
}

func NewBank(questions []domain.Question) *Bank {
	byID := make(map[int]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Bank{
		questions: questions,
		byID:      byID,
	}
}

// Questions returns all questions in bank order.
func (b *Bank) Questions() []domain.Question {
	return b.questions
}

// Lookup returns the question with the given id.
func (b *Bank) Lookup(id int) (domain.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// DefaultBank returns the built-in practice questions.
func DefaultBank() []domain.Question {
	return []domain.Question{
		{ID: 1, Expression: "2 + 3 * 4", Difficulty: domain.Easy, Concept: "Multiplication before Addition", CorrectAnswer: 14},
		{ID: 2, Expression: "(2 + 3) * 4", Difficulty: domain.Easy, Concept: "Brackets first", CorrectAnswer: 20},
		{ID: 3, Expression: "10 - 2 * 3", Difficulty: domain.Medium, Concept: "Multiplication before Subtraction", CorrectAnswer: 4},
		{ID: 4, Expression: "20 / 4 + 3", Difficulty: domain.Medium, Concept: "Division before Addition", CorrectAnswer: 8},
		{ID: 5, Expression: "18 / (4 + 2)", Difficulty: domain.Medium, Concept: "Brackets before Division", CorrectAnswer: 3},
		{ID: 6, Expression: "(10 - 4) * 2 + 3", Difficulty: domain.Hard, Concept: "Complex expression", CorrectAnswer: 15},
		{ID: 7, Expression: "24 / 3 / 2", Difficulty: domain.Hard, Concept: "Division left to right", CorrectAnswer: 4},
		{ID: 8, Expression: "2 * 3 + 4 * 5", Difficulty: domain.Hard, Concept: "Multiple operations", CorrectAnswer: 26},
	}
}

type bankFile struct {
	Questions []domain.Question `yaml:"questions"`
}

// BankLoader decodes a YAML question bank.
type BankLoader struct {
	reader io.Reader
}

func NewBankLoader(reader io.Reader) *BankLoader {
	return &BankLoader{
		reader: reader,
	}
}

// Load decodes the bank. With validate set, every expression is solved and
// checked against its recorded answer.
func (l *BankLoader) Load(validate bool) ([]domain.Question, error) {
	decoder := yaml.NewDecoder(l.reader)
	var file bankFile
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}
	if validate {
		if err := validateBank(file.Questions); err != nil {
			return nil, err
		}
	}
	return file.Questions, nil
}

func validateBank(questions []domain.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("bank must contain at least one question")
	}

	sv := solver.New()
	seen := make(map[int]bool, len(questions))

	for _, q := range questions {
		if q.ID <= 0 {
			return fmt.Errorf("question %q: id must be positive", q.Expression)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if err := q.Difficulty.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}

		sol, err := sv.Solve(q.Expression)
		if err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
		if math.Abs(sol.Value-q.CorrectAnswer) > AnswerTolerance {
			return fmt.Errorf("question %d: recorded answer %v does not match computed %v", q.ID, q.CorrectAnswer, sol.Value)
		}
	}

	return nil
}
