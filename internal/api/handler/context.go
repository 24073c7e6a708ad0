package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userdesk/user-api/internal/core/domain"
)

// ctxUsername extracts the authenticated caller's username injected by the
// Auth middleware. An empty value means the request reached the handler
// without passing authentication, which is an authorization failure rather
// than a not-found.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", domain.ErrUnauthenticated
	}
	return username, nil
}

// pathID parses the numeric :id path parameter. A non-numeric value is a
// client error, reported the same way as a binding type mismatch.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid parameter: id")
	}
	return id, nil
}
