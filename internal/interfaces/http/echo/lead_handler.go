package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/agencyhub/lead-import/internal/application/lead"
)

type LeadHandler struct {
	useCase app.GetLeadByUsername
}

func NewLeadHandler(useCase app.GetLeadByUsername) *LeadHandler {
	return &LeadHandler{useCase: useCase}
}

func (h *LeadHandler) GetLeadByUsername(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context(), app.GetLeadByUsernameInput{
		Username: c.Param("username"),
	})
	if err != nil {
		if errors.Is(err, app.ErrLeadNotFound) {
			return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
				Code:    "not_found",
				Message: "lead not found",
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to get lead",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
