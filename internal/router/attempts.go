package router

import (
	"log/slog"
	"net/http"

	"github.com/bodmaslab/bodmas-master/internal/dto"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
	"github.com/labstack/echo/v4"
)

func (r *TutorRouter) attemptsHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid pagination parameters"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
	}

	result, err := r.store.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		slog.Error("Failed to list attempts", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, dto.NewAttemptsResponse(result))
}

func (r *TutorRouter) summaryHandler(c echo.Context) error {
	summary, err := r.store.Summary(c.Request().Context())
	if err != nil {
		slog.Error("Failed to summarize attempts", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}
