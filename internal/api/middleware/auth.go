package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/metrics"
	"github.com/worklane/hr-system/internal/core/ports"
	"github.com/worklane/hr-system/internal/core/token"
)

// IdentityKey is the echo context key the resolved identity is stored under.
const IdentityKey = "identity"

// AccessTokenCookie is the cookie the access token travels in; the
// Authorization header is the fallback.
const AccessTokenCookie = "accessToken"

// Auth gates a request: extract token (cookie, then bearer header), verify
// signature and expiry, resolve the subject to a User or Client, and attach
// the sanitized identity to the context. Any failure is terminal with 401.
func Auth(verifier *token.Verifier, resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized request")
			}

			claims, err := verifier.Verify(raw, token.Access)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, verifyMessage(err))
			}

			ident, err := resolver.ResolveByID(c.Request().Context(), claims.Subject)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_identity").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Access Token")
			}

			c.Set(IdentityKey, ident.Sanitize())
			return next(c)
		}
	}
}

// AuthOptional attaches the resolved identity when the request carries a
// valid token, and lets the request through anonymously otherwise. Handlers
// behind it decide what an anonymous caller means; logout answers it with a
// 400 rather than the 401 a gated route would produce.
func AuthOptional(verifier *token.Verifier, resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return next(c)
			}

			claims, err := verifier.Verify(raw, token.Access)
			if err != nil {
				return next(c)
			}

			ident, err := resolver.ResolveByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return next(c)
			}

			c.Set(IdentityKey, ident.Sanitize())
			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func verifyMessage(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "Access token expired"
	case errors.Is(err, token.ErrMalformed):
		return "Malformed access token"
	default:
		return "Invalid Access Token"
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired_token"
	case errors.Is(err, token.ErrMalformed):
		return "malformed_token"
	default:
		return "invalid_token"
	}
}
