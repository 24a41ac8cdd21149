package domain

import (
	"time"

	"github.com/bodmaslab/bodmas-master/pkg/utils"
	"github.com/google/uuid"
)

// ConceptCustom labels attempts on expressions entered outside the
// question bank.
const ConceptCustom = "custom"

// Attempt records one answered expression by a student.
type Attempt struct {
	ID               uuid.UUID    `json:"id"`
	QuestionID       *int         `json:"questionId,omitempty"`
	Expression       string       `json:"expression"`
	Concept          string       `json:"concept"`
	GivenAnswer      float64      `json:"givenAnswer"`
	CorrectAnswer    float64      `json:"correctAnswer"`
	Correct          bool         `json:"correct"`
	Pattern          ErrorPattern `json:"pattern,omitempty"`
	TimeTakenSeconds int          `json:"timeTakenSeconds,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// ConceptStats summarizes attempts on a single concept.
type ConceptStats struct {
	Concept  string  `json:"concept"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Mastery  float64 `json:"mastery"`
}

// MasteryScore is the fraction of correct attempts, rounded to two decimals.
func MasteryScore(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return utils.RoundDecimal(float64(correct)/float64(attempts), 2)
}
