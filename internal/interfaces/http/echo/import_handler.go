package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/agencyhub/lead-import/internal/application/lead"
	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

type ImportHandler struct {
	useCase app.StartLeadImport
}

type importLeadsRequest struct {
	Usernames   string `json:"usernames" validate:"required"`
	Followers   string `json:"followers"`
	Following   string `json:"following"`
	Posts       string `json:"posts"`
	FullNames   string `json:"full_names"`
	Bios        string `json:"bios"`
	ProfileURLs string `json:"profile_urls"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewImportHandler(useCase app.StartLeadImport) *ImportHandler {
	return &ImportHandler{useCase: useCase}
}

func (h *ImportHandler) ImportLeads(c echo.Context) error {
	var req importLeadsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "missing_usernames",
			Message: "usernames column is required",
		}})
	}

	out, err := h.useCase.Execute(c.Request().Context(), app.StartLeadImportInput{
		Columns: domain.ColumnSet{
			Usernames:   req.Usernames,
			Followers:   req.Followers,
			Following:   req.Following,
			Posts:       req.Posts,
			FullNames:   req.FullNames,
			Bios:        req.Bios,
			ProfileURLs: req.ProfileURLs,
		},
	})
	if err != nil {
		if errors.Is(err, app.ErrNoUsernames) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "no_usernames",
				Message: "add at least one username",
			}})
		}
		var rowErr *app.RowValidationError
		if errors.As(err, &rowErr) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_rows",
				Message: rowErr.Error(),
				Details: rowErr.Errors,
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to enqueue import run",
		}})
	}

	return c.JSON(http.StatusAccepted, apiResponse{Data: out})
}
