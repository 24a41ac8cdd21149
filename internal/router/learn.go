package router

import (
	"fmt"
	"net/http"

	"github.com/bodmaslab/bodmas-master/internal/dto"
	"github.com/labstack/echo/v4"
)

func (r *TutorRouter) learnHandler(c echo.Context) error {
	concept := c.Param("concept")

	lesson, ok := r.lessons.Lookup(concept)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "error": fmt.Sprintf("Unknown concept: %s", concept)})
	}

	return c.JSON(http.StatusOK, dto.NewLessonResponse(lesson))
}
