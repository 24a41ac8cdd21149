package router

import (
	"net/http"

	"github.com/bodmaslab/bodmas-master/internal/dto"
	"github.com/labstack/echo/v4"
)

func (r *TutorRouter) solveHandler(c echo.Context) error {
	var req dto.SolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
	}
	if req.Expression == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Expression is required"})
	}

	solution, err := r.solver.Solve(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewSolveResponse(solution))
}
