package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/api/metrics"
	"github.com/worklane/hr-system/internal/api/middleware"
	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// RefreshTokenCookie is the cookie the refresh token travels in.
const RefreshTokenCookie = "refreshToken"

// AuthHandler handles HTTP requests for session operations.
type AuthHandler struct {
	auth       ports.AuthService
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type loginRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User         domain.Identity `json:"user"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

type forgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Login authenticates a user or client and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure", "unknown").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success", string(res.Identity.Kind)).Inc()

	h.setSessionCookies(c, res.AccessToken, res.RefreshToken)
	return respond(c, http.StatusOK, "User logged in successfully", loginResponse{
		User:         res.Identity,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// Logout closes the caller's session and clears both token cookies. The
// route carries no hard auth gate: a request without a resolved identity is
// a 400, not a 401.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ident, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if ident.ID == "" {
		return domain.ErrNotAuthenticated
	}

	if err := h.auth.Logout(c.Request().Context(), ident); err != nil {
		return err
	}

	h.clearSessionCookies(c)
	return respond(c, http.StatusOK, "User logged out", nil)
}

// ForgetPassword starts the password reset flow by mailing a one-time link.
//
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgetPasswordRequest  true  "Account email"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /forget-password [post]
func (h *AuthHandler) ForgetPassword(c echo.Context) error {
	var req forgetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ForgetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	return respond(c, http.StatusOK, "Password reset link sent", nil)
}

// ResetPassword completes the reset flow using the mailed one-time token.
//
// @Summary      Reset password with a one-time token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                true  "Reset token from the emailed link"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  apiResponse
// @Failure      400    {object}  map[string]string
// @Router       /reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ResetPassword(c.Request().Context(), c.Param("token"), req.Password); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()
	return respond(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *AuthHandler) setSessionCookies(c echo.Context, access, refresh string) {
	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, access, h.accessTTL))
	c.SetCookie(sessionCookie(RefreshTokenCookie, refresh, h.refreshTTL))
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	c.SetCookie(expiredCookie(middleware.AccessTokenCookie))
	c.SetCookie(expiredCookie(RefreshTokenCookie))
}

func sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
