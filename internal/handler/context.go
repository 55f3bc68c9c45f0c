package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devhub/internal/auth"
)

// currentUserID extracts the authenticated user id that the auth middleware
// attached to the request context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
	}
	return claims.UserID, nil
}
