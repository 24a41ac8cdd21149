package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/internal/dto"
	"github.com/labstack/echo/v4"
)

func (r *TutorRouter) questionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewQuestionsResponse(r.bank.Questions()))
}

func (r *TutorRouter) checkAnswerHandler(c echo.Context) error {
	var req dto.CheckAnswerRequest
	if err := c.Bind(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "answer" {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid answer format. Please enter a number."})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
	}
	if req.Answer == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Expression and answer are required"})
	}

	expression := req.Expression
	concept := domain.ConceptCustom
	if req.QuestionID != nil {
		question, ok := r.bank.Lookup(*req.QuestionID)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]any{"success": false, "error": fmt.Sprintf("Unknown question id: %d", *req.QuestionID)})
		}
		expression = question.Expression
		concept = question.Concept
	}
	if expression == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Expression and answer are required"})
	}

	result, err := r.checker.Check(expression, *req.Answer)
	if err != nil {
		return err
	}

	response := dto.NewCheckAnswerResponse(result)

	if r.store != nil {
		attempt := domain.Attempt{
			QuestionID:       req.QuestionID,
			Expression:       expression,
			Concept:          concept,
			GivenAnswer:      *req.Answer,
			CorrectAnswer:    result.CorrectAnswer,
			Correct:          result.Correct,
			TimeTakenSeconds: req.TimeTakenSeconds,
		}
		if result.Diagnosis != nil {
			attempt.Pattern = result.Diagnosis.Pattern
		}

		// feedback still goes out when persistence fails
		id, err := r.store.Save(c.Request().Context(), attempt)
		if err != nil {
			slog.Error("Failed to save attempt", "error", err)
		} else {
			response.AttemptID = id.String()
		}
	}

	return c.JSON(http.StatusOK, response)
}
