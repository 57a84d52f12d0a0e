package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: email must be non-empty, since
// every owner-scoped query keys on it. Presence proves the middleware ran.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims := domain.Claims{}
	claims.UID, _ = c.Get("uid").(string)
	claims.Email, _ = c.Get("email").(string)
	claims.Username, _ = c.Get("username").(string)
	claims.Role, _ = c.Get("role").(string)

	if claims.Email == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
