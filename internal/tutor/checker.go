package tutor

import (
	"fmt"
	"math"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/internal/solver"
	"github.com/bodmaslab/bodmas-master/pkg/utils"
)

// AnswerTolerance absorbs floating point noise when comparing a student's
// answer with the computed one.
const AnswerTolerance = 1e-4

// CheckResult is the outcome of checking one answer.
type CheckResult struct {
	Expression    string
	GivenAnswer   float64
	CorrectAnswer float64
	Correct       bool
	Steps         []solver.Step
	Feedback      string
	Diagnosis     *Diagnosis
}

// Diagnosis names the misconception that best explains a wrong answer,
// with tutoring hints and the concept to review. Pattern is empty when no
// known misconception reproduces the answer.
type Diagnosis struct {
	Pattern       domain.ErrorPattern
	Hints         []string
	ReviewConcept string
}

type Checker struct {
	solver *solver.Solver
}

func NewChecker(sv *solver.Solver) *Checker {
	return &Checker{
		solver: sv,
	}
}

// Check solves the expression, compares the student's answer against the
// computed one and, for wrong answers, tries to identify the misconception.
func (c *Checker) Check(expression string, answer float64) (*CheckResult, error) {
	sol, err := c.solver.Solve(expression)
	if err != nil {
		return nil, err
	}

	correct := math.Abs(answer-sol.Value) < AnswerTolerance

	result := &CheckResult{
		Expression:    expression,
		GivenAnswer:   answer,
		CorrectAnswer: sol.Value,
		Correct:       correct,
		Steps:         sol.Steps,
	}

	if correct {
		result.Feedback = "Excellent! Your answer is correct!"
		return result, nil
	}

	result.Feedback = fmt.Sprintf("Incorrect. Your answer: %s, Correct answer: %s",
		utils.FormatNumber(answer), utils.FormatNumber(sol.Value))
	result.Diagnosis = c.diagnose(expression, answer)

	return result, nil
}

// diagnose replays the expression under known misconceptions and reports
// the first one that reproduces the student's answer.
func (c *Checker) diagnose(expression string, answer float64) *Diagnosis {
	var pattern domain.ErrorPattern

	if v, err := c.solver.SolveIgnoringBrackets(expression); err == nil && math.Abs(v-answer) < AnswerTolerance {
		pattern = domain.IgnoredBrackets
	} else if v, err := c.solver.SolveLeftToRight(expression); err == nil && math.Abs(v-answer) < AnswerTolerance {
		pattern = domain.IgnoredPrecedence
	}

	actions := pattern.SuggestedActions()
	hints := make([]string, 0, len(actions))
	for _, a := range actions {
		hints = append(hints, a.Text())
	}

	return &Diagnosis{
		Pattern:       pattern,
		Hints:         hints,
		ReviewConcept: pattern.ReviewConcept(),
	}
}
