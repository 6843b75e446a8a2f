package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/middleware"
	"github.com/worklane/hr-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing or empty
// identity means the middleware did not run (or ran against a broken token),
// so the request is rejected with 401 before touching the service layer.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if ident.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized request")
	}
	return ident, nil
}
