package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"alumniport/internal/auth"
	"alumniport/internal/errors"
)

// currentClaims returns the verified claims the JWT middleware stashed in
// the context. A miss means the route was registered outside the secured
// group, which is a wiring bug surfaced as 401 rather than a panic.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	return claims, nil
}
