package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"alumniport/internal/errors"
	"alumniport/internal/repository"
	"alumniport/internal/service"
)

// UserHandler handles the alumni/student directory endpoint.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary List directory entries, optionally filtered by batch year and branch
// @Tags users
// @Produce json
// @Param batch_year query int false "Batch year filter"
// @Param branch query string false "Branch filter"
// @Success 200 {array} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	var filter repository.UserFilter

	if raw := c.QueryParam("batch_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "batch_year must be an integer",
				Code:  "VALIDATION_ERROR",
			})
		}
		filter.BatchYear = &year
	}
	filter.Branch = c.QueryParam("branch")

	users, err := h.userService.ListUsers(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, users)
}
