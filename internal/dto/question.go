package dto

import "github.com/bodmaslab/bodmas-master/internal/domain"

type Question struct {
	ID            int     `json:"id"`
	Question      string  `json:"question"`
	Difficulty    string  `json:"difficulty"`
	Concept       string  `json:"concept"`
	CorrectAnswer float64 `json:"correct_answer"`
}

type QuestionsResponse struct {
	Success   bool       `json:"success"`
	Questions []Question `json:"questions"`
}

func NewQuestionsResponse(questions []domain.Question) QuestionsResponse {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, Question{
			ID:            q.ID,
			Question:      q.Expression,
			Difficulty:    q.Difficulty.String(),
			Concept:       q.Concept,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return QuestionsResponse{
		Success:   true,
		Questions: out,
	}
}
