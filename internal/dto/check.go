package dto

import "github.com/bodmaslab/bodmas-master/internal/tutor"

// CheckAnswerRequest carries either a bank question id or a free-form
// expression, plus the student's answer.
type CheckAnswerRequest struct {
	QuestionID       *int     `json:"question_id,omitempty"`
	Expression       string   `json:"expression,omitempty"`
	Answer           *float64 `json:"answer"`
	TimeTakenSeconds int      `json:"time_taken_seconds,omitempty"`
}

type CheckAnswerResponse struct {
	Success       bool       `json:"success"`
	Expression    string     `json:"expression"`
	StudentAnswer float64    `json:"student_answer"`
	CorrectAnswer float64    `json:"correct_answer"`
	IsCorrect     bool       `json:"is_correct"`
	Steps         []Step     `json:"steps"`
	Feedback      string     `json:"feedback"`
	Diagnosis     *Diagnosis `json:"diagnosis,omitempty"`
	AttemptID     string     `json:"attempt_id,omitempty"`
}

// Diagnosis describes the misconception behind a wrong answer.
type Diagnosis struct {
	Pattern       string   `json:"pattern,omitempty"`
	Hints         []string `json:"hints"`
	ReviewConcept string   `json:"review_concept,omitempty"`
}

func NewCheckAnswerResponse(result *tutor.CheckResult) CheckAnswerResponse {
	response := CheckAnswerResponse{
		Success:       true,
		Expression:    result.Expression,
		StudentAnswer: result.GivenAnswer,
		CorrectAnswer: result.CorrectAnswer,
		IsCorrect:     result.Correct,
		Steps:         NewSteps(result.Steps),
		Feedback:      result.Feedback,
	}
	if result.Diagnosis != nil {
		response.Diagnosis = &Diagnosis{
			Pattern:       result.Diagnosis.Pattern.String(),
			Hints:         result.Diagnosis.Hints,
			ReviewConcept: result.Diagnosis.ReviewConcept,
		}
	}
	return response
}
