package dto

import (
	"time"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
)

type Attempt struct {
	ID               string    `json:"id"`
	QuestionID       *int      `json:"question_id,omitempty"`
	Expression       string    `json:"expression"`
	Concept          string    `json:"concept"`
	GivenAnswer      float64   `json:"given_answer"`
	CorrectAnswer    float64   `json:"correct_answer"`
	IsCorrect        bool      `json:"is_correct"`
	ErrorPattern     string    `json:"error_pattern,omitempty"`
	TimeTakenSeconds int       `json:"time_taken_seconds,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type AttemptsResponse struct {
	Success  bool                              `json:"success"`
	Attempts *pagination.OffsetResult[Attempt] `json:"attempts"`
}

type ConceptStats struct {
	Concept  string  `json:"concept"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Mastery  float64 `json:"mastery"`
}

type SummaryResponse struct {
	Success bool           `json:"success"`
	Summary []ConceptStats `json:"summary"`
}

func NewAttempt(attempt domain.Attempt) Attempt {
	return Attempt{
		ID:               attempt.ID.String(),
		QuestionID:       attempt.QuestionID,
		Expression:       attempt.Expression,
		Concept:          attempt.Concept,
		GivenAnswer:      attempt.GivenAnswer,
		CorrectAnswer:    attempt.CorrectAnswer,
		IsCorrect:        attempt.Correct,
		ErrorPattern:     attempt.Pattern.String(),
		TimeTakenSeconds: attempt.TimeTakenSeconds,
		CreatedAt:        attempt.CreatedAt,
	}
}

func NewAttemptsResponse(result *pagination.OffsetResult[domain.Attempt]) AttemptsResponse {
	items := make([]Attempt, 0, len(result.Items))
	for _, attempt := range result.Items {
		items = append(items, NewAttempt(attempt))
	}

	return AttemptsResponse{
		Success: true,
		Attempts: &pagination.OffsetResult[Attempt]{
			Items:   items,
			Total:   result.Total,
			Page:    result.Page,
			Size:    result.Size,
			HasMore: result.HasMore,
		},
	}
}

func NewSummaryResponse(stats []domain.ConceptStats) SummaryResponse {
	summary := make([]ConceptStats, 0, len(stats))
	for _, s := range stats {
		summary = append(summary, ConceptStats{
			Concept:  s.Concept,
			Attempts: s.Attempts,
			Correct:  s.Correct,
			Mastery:  s.Mastery,
		})
	}

	return SummaryResponse{
		Success: true,
		Summary: summary,
	}
}
