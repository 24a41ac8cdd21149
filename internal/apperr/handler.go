package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var se *SyntaxError
		if errors.As(err, &se) {
			_ = c.JSON(http.StatusBadRequest, map[string]any{"success": false, "kind": KindSyntax, "error": se.Message})
			return
		}

		var dz *DivisionByZeroError
		if errors.As(err, &dz) {
			_ = c.JSON(http.StatusBadRequest, map[string]any{"success": false, "kind": KindDivisionByZero, "error": dz.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			if he.Code == http.StatusNotFound && msg == "Not Found" {
				msg = "Endpoint not found"
			}
			_ = c.JSON(he.Code, map[string]any{"success": false, "error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": "Internal server error"})
	}
}
