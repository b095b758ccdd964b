package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/agencyhub/lead-import/internal/application/lead"
)

type RunHandler struct {
	useCase app.GetImportRun
}

func NewRunHandler(useCase app.GetImportRun) *RunHandler {
	return &RunHandler{useCase: useCase}
}

func (h *RunHandler) GetImportRun(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context(), app.GetImportRunInput{
		ID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidRunID) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_run_id",
				Message: "id must be a valid UUID",
			}})
		}
		if errors.Is(err, app.ErrRunNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "import run not found",
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get import run",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
