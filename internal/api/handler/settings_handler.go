package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/ports"
)

// SettingsHandler handles HTTP requests for per-tenant advanced settings.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Create stores a new settings document for a tenant.
//
// @Summary      Create advanced settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.AdvancedSettings  true  "Settings details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]string
// @Router       /settings/create [post]
func (h *SettingsHandler) Create(c echo.Context) error {
	var settings domain.AdvancedSettings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.settings.Create(c.Request().Context(), &settings)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Settings created successfully", created)
}

// List returns all settings documents.
//
// @Summary      List advanced settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Router       /settings/list [get]
func (h *SettingsHandler) List(c echo.Context) error {
	all, err := h.settings.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Settings fetched successfully", all)
}

// Detail returns a single settings document by id.
//
// @Summary      Get advanced settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Settings id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /settings/{id}/detail [get]
func (h *SettingsHandler) Detail(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Settings fetched successfully", settings)
}

// Update applies a partial field set to a settings document.
//
// @Summary      Update advanced settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Settings id"
// @Param        body  body      map[string]any  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  map[string]string
// @Router       /settings/{id}/update [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.settings.Update(c.Request().Context(), c.Param("id"), updates)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Settings updated successfully", settings)
}

// Delete removes a settings document.
//
// @Summary      Delete advanced settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Settings id"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  map[string]string
// @Router       /settings/{id}/delete [delete]
func (h *SettingsHandler) Delete(c echo.Context) error {
	if err := h.settings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Settings deleted successfully", nil)
}
