package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty email
// proves the middleware ran and gives every handler the caller's identity.
func ctxIdentity(c echo.Context) (email, role string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return email, role, nil
}
