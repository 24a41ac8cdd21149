package dto

import "github.com/bodmaslab/bodmas-master/internal/domain"

type Lesson struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Rule           string   `json:"rule"`
	Example        string   `json:"example"`
	CommonMistakes []string `json:"common_mistakes"`
}

type LessonResponse struct {
	Success bool   `json:"success"`
	Concept Lesson `json:"concept"`
}

func NewLessonResponse(lesson domain.Lesson) LessonResponse {
	return LessonResponse{
		Success: true,
		Concept: Lesson{
			Title:          lesson.Title,
			Description:    lesson.Description,
			Rule:           lesson.Rule,
			Example:        lesson.Example,
			CommonMistakes: lesson.CommonMistakes,
		},
	}
}
