package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerhub/job-board-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and performs
// a fast-fail check before any service call: both user_id and role must be
// present, otherwise the token is structurally valid but operationally
// unusable and the request is rejected with 401.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return ports.Caller{UserID: userID, Email: email, Role: role}, nil
}
